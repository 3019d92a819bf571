package api

import "github.com/rpupo63/portfolio-showcase-backend/models"

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	portfolioHandler portfolioHandler
	adminHandler     adminHandler
}

// homePageData is the payload for the home page: the newest entries only.
type homePageData struct {
	FeaturedProjects []*models.Portfolio `json:"featuredProjects"`
}

// portfolioPageData is the payload for the full portfolio and admin lists.
type portfolioPageData struct {
	Projects []*models.Portfolio `json:"projects"`
}

// actionResult reports a successful admin mutation back to the form.
type actionResult struct {
	Success bool   `json:"success"`
	Action  string `json:"action,omitempty"`
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error string `json:"error" example:"Project not found."`
	Data  any    `json:"data,omitempty"`
}
