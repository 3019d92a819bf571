package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rpupo63/portfolio-showcase-backend/database"
	"github.com/rpupo63/portfolio-showcase-backend/models"
)

// newTestServer wires a router against a throwaway SQLite database. The
// raw gorm handle is returned so tests can reach behind the router.
func newTestServer(t *testing.T) (*gorm.DB, database.Database, http.Handler) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Category{}, &models.Portfolio{}))

	currentDB := database.New(db)
	return db, currentDB, newRouter(currentDB)
}

func seedOwner(t *testing.T, db database.Database) *models.User {
	t.Helper()

	owner := models.User{Name: "Owner", Email: "owner@example.com"}
	require.NoError(t, db.UserRepo().Add(&owner))
	return &owner
}

func seedPortfolio(t *testing.T, db database.Database, userID uint, title string, createdAt time.Time) *models.Portfolio {
	t.Helper()

	entry := models.Portfolio{
		UserID:      userID,
		Title:       title,
		Description: "description of " + title,
		ProjectURL:  "https://example.com/" + title,
		ImageURL:    "https://example.com/" + title + ".png",
		CreatedAt:   createdAt,
	}
	require.NoError(t, db.PortfolioRepo().Add(&entry))
	return &entry
}

func getPage(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func postForm(t *testing.T, h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func validForm() url.Values {
	return url.Values{
		"title":       {"My Project"},
		"description": {"A project worth showing off"},
		"projectUrl":  {"https://example.com/project"},
		"imageUrl":    {"https://example.com/project.png"},
	}
}
