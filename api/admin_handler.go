package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rpupo63/portfolio-showcase-backend/database"
	"github.com/rpupo63/portfolio-showcase-backend/errs"
	"github.com/rpupo63/portfolio-showcase-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// User-facing messages for the admin form. The rendering layer shows
// these verbatim, typically as toasts.
const (
	msgFieldsRequired = "All fields are required."
	msgInvalidURL     = "Please enter a valid URL."
	msgInvalidID      = "Invalid project ID."
	msgNotFound       = "Project not found."
	msgNoChanges      = "No changes detected. All fields have the same values."
	msgCreateFailed   = "Failed to create project. Please try again."
	msgUpdateFailed   = "Failed to update project. Please try again."
	msgDeleteFailed   = "Failed to delete project. Please try again."
)

type adminHandler struct {
	responder     Responder
	logger        zerolog.Logger
	validate      *validator.Validate
	portfolioRepo *database.PortfolioRepo
	principal     Principal
}

func newAdminHandler(portfolioRepo *database.PortfolioRepo, principal Principal) adminHandler {
	logger := log.With().Str("handlerName", "adminHandler").Logger()

	return adminHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		validate:      validator.New(),
		portfolioRepo: portfolioRepo,
		principal:     principal,
	}
}

// portfolioForm holds the editable fields submitted by the admin form.
type portfolioForm struct {
	Title       string `validate:"required"`
	Description string `validate:"required"`
	ProjectURL  string `validate:"required,url"`
	ImageURL    string
}

func parsePortfolioForm(r *http.Request) portfolioForm {
	return portfolioForm{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		ProjectURL:  r.PostFormValue("projectUrl"),
		ImageURL:    r.PostFormValue("imageUrl"),
	}
}

// echo returns the submitted values in response-contract shape for form
// repopulation after a failure.
func (f portfolioForm) echo() map[string]any {
	return map[string]any{
		"title":       f.Title,
		"description": f.Description,
		"projectUrl":  f.ProjectURL,
		"imageUrl":    f.ImageURL,
	}
}

// validationError translates validator output into the form's two
// user-facing messages: missing fields take precedence over a bad URL.
func validationError(err error, data map[string]any) *errs.ApiErr {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		for _, fieldError := range fieldErrors {
			if fieldError.Tag() == "required" {
				return errs.NewValidationError(msgFieldsRequired, data)
			}
		}
		return errs.NewValidationError(msgInvalidURL, data)
	}
	return errs.NewValidationError(msgFieldsRequired, data)
}

// createProject inserts a new portfolio entry owned by the current user
// @Summary Create project
// @Description Validates the submitted form and creates a new portfolio entry
// @Tags Admin
// @Accept x-www-form-urlencoded
// @Produce json
// @Param title formData string true "Project title"
// @Param description formData string true "Project description"
// @Param projectUrl formData string true "Project URL"
// @Param imageUrl formData string false "Image URL"
// @Success 200 {object} actionResult "Create succeeded"
// @Failure 400 {object} ErrorResponse "Validation failure with echoed form data"
// @Failure 500 {object} ErrorResponse "No user exists or the write failed"
// @Router /admin/create [post]
func (h adminHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			h.responder.WriteError(w, errs.Malformed("form"))
			return
		}

		form := parsePortfolioForm(r)
		if err := h.validate.Struct(form); err != nil {
			h.responder.WriteError(w, validationError(err, form.echo()))
			return
		}

		// Owner comes from the principal abstraction, not the form
		user, err := h.principal.CurrentUser(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		entry := models.Portfolio{
			UserID:      user.ID,
			Title:       form.Title,
			Description: form.Description,
			ProjectURL:  form.ProjectURL,
			ImageURL:    form.ImageURL,
		}

		if err := h.portfolioRepo.Add(&entry); err != nil {
			h.responder.WriteError(w, errs.NewStorageError(msgCreateFailed, form.echo(), err))
			return
		}

		h.responder.WriteJSON(w, actionResult{Success: true, Action: "create"})
	}
}

// updateProject rewrites the four editable fields of an existing entry
// @Summary Update project
// @Description Validates the submitted form and updates an existing portfolio entry
// @Tags Admin
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id formData int true "Project ID"
// @Param title formData string true "Project title"
// @Param description formData string true "Project description"
// @Param projectUrl formData string true "Project URL"
// @Param imageUrl formData string false "Image URL"
// @Success 200 {object} actionResult "Update succeeded"
// @Failure 400 {object} ErrorResponse "Validation failure or no changes detected"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "The write failed"
// @Router /admin/update [post]
func (h adminHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			h.responder.WriteError(w, errs.Malformed("form"))
			return
		}

		form := parsePortfolioForm(r)
		idValue := r.PostFormValue("id")

		echo := form.echo()
		echo["id"] = idValue

		id, err := strconv.ParseUint(idValue, 10, 64)
		if err != nil || id == 0 {
			h.responder.WriteError(w, errs.NewValidationError(msgFieldsRequired, echo))
			return
		}

		if err := h.validate.Struct(form); err != nil {
			h.responder.WriteError(w, validationError(err, echo))
			return
		}

		existing, err := h.portfolioRepo.FindByID(uint(id))
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError(msgUpdateFailed, echo, err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundErrorWithData(msgNotFound, echo))
			return
		}

		// Reject no-op writes outright rather than bumping updated_at
		hasChanges := existing.Title != form.Title ||
			existing.Description != form.Description ||
			existing.ProjectURL != form.ProjectURL ||
			existing.ImageURL != form.ImageURL
		if !hasChanges {
			h.responder.WriteError(w, errs.NewPreconditionFailedError(msgNoChanges, echo))
			return
		}

		// The update timestamp is assigned here, never taken from the form
		now := time.Now()
		existing.Title = form.Title
		existing.Description = form.Description
		existing.ProjectURL = form.ProjectURL
		existing.ImageURL = form.ImageURL
		existing.UpdatedAt = &now

		if err := h.portfolioRepo.Update(existing); err != nil {
			h.responder.WriteError(w, errs.NewStorageError(msgUpdateFailed, echo, err))
			return
		}

		h.responder.WriteJSON(w, actionResult{Success: true, Action: "update"})
	}
}

// deleteProject removes an entry after confirming it exists
// @Summary Delete project
// @Description Deletes a portfolio entry by ID
// @Tags Admin
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id formData int true "Project ID"
// @Success 200 {object} actionResult "Delete succeeded"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "The delete failed"
// @Router /admin/delete [post]
func (h adminHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			h.responder.WriteError(w, errs.Malformed("form"))
			return
		}

		id, err := strconv.ParseUint(r.PostFormValue("id"), 10, 64)
		if err != nil || id == 0 {
			h.responder.WriteError(w, errs.NewValidationError(msgInvalidID, nil))
			return
		}

		existing, err := h.portfolioRepo.FindByID(uint(id))
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError(msgDeleteFailed, nil, err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError(msgNotFound))
			return
		}

		if err := h.portfolioRepo.Delete(uint(id)); err != nil {
			h.responder.WriteError(w, errs.NewStorageError(msgDeleteFailed, nil, err))
			return
		}

		h.responder.WriteJSON(w, actionResult{Success: true, Action: "delete"})
	}
}
