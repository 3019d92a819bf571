package api

import (
	"github.com/rpupo63/portfolio-showcase-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, principal Principal) *routeHandlers {
	return &routeHandlers{
		portfolioHandler: newPortfolioHandler(database.PortfolioRepo()),
		adminHandler:     newAdminHandler(database.PortfolioRepo(), principal),
	}
}
