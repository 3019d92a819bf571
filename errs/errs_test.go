package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorCarriesEchoData(t *testing.T) {
	data := map[string]any{"title": "t"}
	err := NewValidationError("All fields are required.", data)

	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "All fields are required.", err.Message())
	assert.Equal(t, data, err.Data)
	assert.True(t, IsValidationError(err))
}

func TestPreconditionFailedError(t *testing.T) {
	err := NewPreconditionFailedError("No changes detected. All fields have the same values.", nil)

	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.True(t, IsPreconditionFailed(err))
	assert.False(t, IsValidationError(err))
}

func TestDependencyMissingErrorIs500Class(t *testing.T) {
	err := NewDependencyMissingError("No user found. Create a user first.")

	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
	assert.True(t, IsDependencyMissing(err))
}

func TestStorageErrorHidesCause(t *testing.T) {
	cause := errors.New("database is locked")
	err := NewStorageError("Failed to create project. Please try again.", nil, cause)

	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
	assert.Equal(t, "Failed to create project. Please try again.", err.Message())
	assert.NotContains(t, err.Message(), "locked")
	assert.Contains(t, err.GetFullError(), "locked")
	assert.True(t, IsStorageError(err))
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("Project not found.")

	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Equal(t, "Project not found.", err.Message())
}

func TestApiErrUnwrap(t *testing.T) {
	err := NewNotFound("project")
	assert.True(t, IsNotFound(err))
}
