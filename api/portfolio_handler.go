package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-showcase-backend/database"
	"github.com/rpupo63/portfolio-showcase-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// homeFeedLimit caps how many entries the home page highlights.
const homeFeedLimit = 3

type portfolioHandler struct {
	responder     Responder
	logger        zerolog.Logger
	portfolioRepo *database.PortfolioRepo
}

func newPortfolioHandler(portfolioRepo *database.PortfolioRepo) portfolioHandler {
	logger := log.With().Str("handlerName", "portfolioHandler").Logger()

	return portfolioHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		portfolioRepo: portfolioRepo,
	}
}

// homeFeed serves the home page data: the three newest portfolio entries.
// Storage failures are logged and swallowed; a browsing user always gets
// an array, never an error.
// @Summary Home feed
// @Description Returns the three most recently created portfolio entries
// @Tags Pages
// @Produce json
// @Success 200 {object} homePageData "Featured projects, newest first"
// @Router / [get]
func (h portfolioHandler) homeFeed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.portfolioRepo.FindAll(homeFeedLimit)
		if err != nil {
			h.logger.Error().Err(err).Msg("Error loading featured projects")
			projects = nil
		}
		if projects == nil {
			projects = []*models.Portfolio{}
		}

		h.responder.WriteJSON(w, homePageData{FeaturedProjects: projects})
	}
}

// listProjects serves the full portfolio page data with the same
// fail-open policy as the home feed.
// @Summary Portfolio list
// @Description Returns every portfolio entry, newest first
// @Tags Pages
// @Produce json
// @Success 200 {object} portfolioPageData "All projects, newest first"
// @Router /portfolio [get]
func (h portfolioHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.portfolioRepo.FindAll(0)
		if err != nil {
			h.logger.Error().Err(err).Msg("Error loading portfolio projects")
			projects = nil
		}
		if projects == nil {
			projects = []*models.Portfolio{}
		}

		h.responder.WriteJSON(w, portfolioPageData{Projects: projects})
	}
}

// adminList serves the admin page data. Same query and payload shape as
// the portfolio page.
// @Summary Admin project list
// @Description Returns every portfolio entry for the admin page, newest first
// @Tags Pages
// @Produce json
// @Success 200 {object} portfolioPageData "All projects, newest first"
// @Router /admin [get]
func (h portfolioHandler) adminList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.portfolioRepo.FindAll(0)
		if err != nil {
			h.logger.Error().Err(err).Msg("Error loading projects")
			projects = nil
		}
		if projects == nil {
			projects = []*models.Portfolio{}
		}

		h.responder.WriteJSON(w, portfolioPageData{Projects: projects})
	}
}
