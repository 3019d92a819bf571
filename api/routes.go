package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the page load and admin action endpoints
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Page load endpoints
		r.Get("/", handlers.portfolioHandler.homeFeed())
		r.Get("/portfolio", handlers.portfolioHandler.listProjects())
		r.Get("/admin", handlers.portfolioHandler.adminList())

		// Admin form action endpoints
		r.Post("/admin/create", handlers.adminHandler.createProject())
		r.Post("/admin/update", handlers.adminHandler.updateProject())
		r.Post("/admin/delete", handlers.adminHandler.deleteProject())
	})
}
