package database

import (
	"errors"

	"github.com/rpupo63/portfolio-showcase-backend/models"
	"gorm.io/gorm"
)

type PortfolioRepo struct {
	db *gorm.DB
}

func NewPortfolioRepo(db *gorm.DB) *PortfolioRepo {
	return &PortfolioRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *PortfolioRepo) GetDB() *gorm.DB {
	return r.db
}

// FindAll returns portfolio entries ordered by creation time, newest
// first. A limit of zero or less returns every row.
func (r *PortfolioRepo) FindAll(limit int) ([]*models.Portfolio, error) {
	var portfolios []*models.Portfolio
	query := r.db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&portfolios).Error
	return portfolios, err
}

// FindByID returns a portfolio entry by its ID, or nil if absent.
func (r *PortfolioRepo) FindByID(id uint) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	err := r.db.First(&portfolio, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &portfolio, nil
}

// Add inserts a new portfolio entry into the database
func (r *PortfolioRepo) Add(portfolio *models.Portfolio) error {
	return r.db.Create(portfolio).Error
}

// Update writes an existing portfolio entry back to the database
func (r *PortfolioRepo) Update(portfolio *models.Portfolio) error {
	return r.db.Save(portfolio).Error
}

// Delete removes a portfolio entry from the database by id
func (r *PortfolioRepo) Delete(id uint) error {
	return r.db.Delete(&models.Portfolio{}, id).Error
}
