package errs

import (
	"errors"
	"net/http"
)

// Request & Input-Validation Errors
var (
	ErrValidation         = errors.New("validation failed")
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrDependencyMissing  = errors.New("missing dependency")
)

func Malformed(payloadName string) *ApiErr {
	return NewApiErr(http.StatusBadRequest, payloadName+" malformed")
}

func BadRequest(message string) *ApiErr {
	return NewApiErr(http.StatusBadRequest, message)
}

// NewValidationError reports a missing or malformed form field. The
// submitted values are echoed back so the caller can repopulate the form.
func NewValidationError(message string, data any) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrValidation,
		Details:    message,
		Data:       data,
	}
}

// NewPreconditionFailedError reports a rejected no-op write, such as an
// update where every incoming field matches the stored row.
func NewPreconditionFailedError(message string, data any) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrPreconditionFailed,
		Details:    message,
		Data:       data,
	}
}

// NewNotFoundErrorWithData is NewNotFoundError carrying echoed form data.
func NewNotFoundErrorWithData(message string, data any) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        errors.New(message),
		Data:       data,
	}
}

// NewDependencyMissingError reports that a row the operation depends on
// does not exist, e.g. no user row to own a new portfolio entry.
func NewDependencyMissingError(message string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDependencyMissing,
		Details:    message,
	}
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsPreconditionFailed(err error) bool {
	return errors.Is(err, ErrPreconditionFailed)
}

func IsDependencyMissing(err error) bool {
	return errors.Is(err, ErrDependencyMissing)
}
