package database

import (
	"gorm.io/gorm"
)

type Database struct {
	userRepo      *UserRepo
	categoryRepo  *CategoryRepo
	portfolioRepo *PortfolioRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo:      NewUserRepo(db),
		categoryRepo:  NewCategoryRepo(db),
		portfolioRepo: NewPortfolioRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}

func (d Database) PortfolioRepo() *PortfolioRepo {
	return d.portfolioRepo
}
