package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	api "github.com/rpupo63/portfolio-showcase-backend/api"
	"github.com/rpupo63/portfolio-showcase-backend/config"
	"github.com/rpupo63/portfolio-showcase-backend/database"
	"github.com/rpupo63/portfolio-showcase-backend/models"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()
	dbPath := config.GetString(c, "DB_PATH", "portfolio.db")
	fmt.Printf("Opening database: %s\n", dbPath)

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	// SQLite does not enforce foreign keys unless asked to
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		fmt.Printf("Error enabling foreign key enforcement: %v\n", err)
		os.Exit(1)
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		fmt.Printf("Error testing database connection: %v\n", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Portfolio{}); err != nil {
		fmt.Printf("Error migrating schema: %v\n", err)
		os.Exit(1)
	}

	currentDB := database.New(db)

	if err := seedOwner(currentDB, c); err != nil {
		fmt.Printf("Error seeding owner user: %v\n", err)
		os.Exit(1)
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// seedOwner creates the initial site owner when the users table is
// empty. Admin actions attach every portfolio entry to this user.
func seedOwner(db database.Database, c map[string]string) error {
	existing, err := db.UserRepo().First()
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	owner := models.User{
		Name:  config.GetString(c, "SEED_USER_NAME", "Site Owner"),
		Email: config.GetString(c, "SEED_USER_EMAIL", "owner@example.com"),
	}
	if err := db.UserRepo().Add(&owner); err != nil {
		return err
	}

	fmt.Printf("Seeded owner user: %s\n", owner.Email)
	return nil
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
