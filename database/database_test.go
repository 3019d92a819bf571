package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rpupo63/portfolio-showcase-backend/models"
)

// newTestDatabase opens a throwaway SQLite database with the full schema
// migrated and foreign keys enforced.
func newTestDatabase(t *testing.T) Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Category{}, &models.Portfolio{}))

	return New(db)
}

func seedUser(t *testing.T, db Database) *models.User {
	t.Helper()

	user := models.User{Name: "Owner", Email: "owner@example.com"}
	require.NoError(t, db.UserRepo().Add(&user))
	return &user
}

// addPortfolio inserts an entry with an explicit creation time so
// ordering tests are deterministic.
func addPortfolio(t *testing.T, db Database, userID uint, title string, createdAt time.Time) *models.Portfolio {
	t.Helper()

	entry := models.Portfolio{
		UserID:      userID,
		Title:       title,
		Description: "description of " + title,
		ProjectURL:  "https://example.com/" + title,
		CreatedAt:   createdAt,
	}
	require.NoError(t, db.PortfolioRepo().Add(&entry))
	return &entry
}

func TestUserRepoFirst(t *testing.T) {
	db := newTestDatabase(t)

	user, err := db.UserRepo().First()
	require.NoError(t, err)
	require.Nil(t, user, "empty table should yield no user")

	first := models.User{Name: "First", Email: "first@example.com"}
	require.NoError(t, db.UserRepo().Add(&first))
	second := models.User{Name: "Second", Email: "second@example.com"}
	require.NoError(t, db.UserRepo().Add(&second))

	user, err = db.UserRepo().First()
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, first.ID, user.ID, "First should return the oldest row")
}

func TestUserRepoEmailUnique(t *testing.T) {
	db := newTestDatabase(t)
	seedUser(t, db)

	duplicate := models.User{Name: "Other", Email: "owner@example.com"}
	require.Error(t, db.UserRepo().Add(&duplicate))
}

func TestUserRepoFindByEmail(t *testing.T) {
	db := newTestDatabase(t)
	seeded := seedUser(t, db)

	user, err := db.UserRepo().FindByEmail("owner@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, seeded.ID, user.ID)

	user, err = db.UserRepo().FindByEmail("missing@example.com")
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestPortfolioRepoFindAllOrderingAndLimit(t *testing.T) {
	db := newTestDatabase(t)
	user := seedUser(t, db)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"oldest", "older", "newer", "newest"} {
		addPortfolio(t, db, user.ID, title, base.Add(time.Duration(i)*time.Hour))
	}

	all, err := db.PortfolioRepo().FindAll(0)
	require.NoError(t, err)
	require.Len(t, all, 4)
	require.Equal(t, []string{"newest", "newer", "older", "oldest"},
		[]string{all[0].Title, all[1].Title, all[2].Title, all[3].Title})

	limited, err := db.PortfolioRepo().FindAll(3)
	require.NoError(t, err)
	require.Len(t, limited, 3)
	require.Equal(t, "newest", limited[0].Title)
	require.Equal(t, "older", limited[2].Title)
}

func TestPortfolioRepoFindByID(t *testing.T) {
	db := newTestDatabase(t)
	user := seedUser(t, db)
	entry := addPortfolio(t, db, user.ID, "site", time.Now())

	found, err := db.PortfolioRepo().FindByID(entry.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, entry.Title, found.Title)
	require.Nil(t, found.UpdatedAt, "freshly created rows carry no update timestamp")

	missing, err := db.PortfolioRepo().FindByID(entry.ID + 1000)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPortfolioRepoUpdate(t *testing.T) {
	db := newTestDatabase(t)
	user := seedUser(t, db)
	entry := addPortfolio(t, db, user.ID, "site", time.Now())

	now := time.Now()
	entry.Title = "renamed"
	entry.UpdatedAt = &now
	require.NoError(t, db.PortfolioRepo().Update(entry))

	found, err := db.PortfolioRepo().FindByID(entry.ID)
	require.NoError(t, err)
	require.Equal(t, "renamed", found.Title)
	require.NotNil(t, found.UpdatedAt)
}

func TestPortfolioRepoDelete(t *testing.T) {
	db := newTestDatabase(t)
	user := seedUser(t, db)
	keep := addPortfolio(t, db, user.ID, "keep", time.Now())
	drop := addPortfolio(t, db, user.ID, "drop", time.Now())

	require.NoError(t, db.PortfolioRepo().Delete(drop.ID))

	gone, err := db.PortfolioRepo().FindByID(drop.ID)
	require.NoError(t, err)
	require.Nil(t, gone)

	kept, err := db.PortfolioRepo().FindByID(keep.ID)
	require.NoError(t, err)
	require.NotNil(t, kept)
}

func TestCategoryRepo(t *testing.T) {
	db := newTestDatabase(t)

	category := models.Category{Category: "web"}
	require.NoError(t, db.CategoryRepo().Add(&category))
	require.NotZero(t, category.ID)

	categories, err := db.CategoryRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, categories, 1)
	require.Equal(t, "web", categories[0].Category)
	require.Nil(t, categories[0].UpdatedAt)
}

func TestPortfolioRepoForeignKeyEnforced(t *testing.T) {
	db := newTestDatabase(t)

	orphan := models.Portfolio{
		UserID:      42,
		Title:       "orphan",
		Description: "no owner",
		ProjectURL:  "https://example.com/orphan",
	}
	require.Error(t, db.PortfolioRepo().Add(&orphan), "entries must reference an existing user")
}
