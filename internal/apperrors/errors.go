// Package apperrors defines the typed errors that handlers raise and the
// mapping from storage-layer errors to HTTP status codes. Every error that
// reaches the client passes through here exactly once, via the error-handler
// middleware.
package apperrors

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

// ValidationError is a single field-level validation failure.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// ApiError carries an HTTP status code and a client-safe message.
type ApiError struct {
	StatusCode       int
	Message          string
	ValidationErrors []ValidationError
}

func (e *ApiError) Error() string { return e.Message }

func New(status int, message string) *ApiError {
	return &ApiError{StatusCode: status, Message: message}
}

func NotFound(message string) *ApiError {
	return &ApiError{StatusCode: http.StatusNotFound, Message: message}
}

func Conflict(message string) *ApiError {
	return &ApiError{StatusCode: http.StatusConflict, Message: message}
}

// ValidationFailed wraps a non-empty list of field violations as a 400.
func ValidationFailed(violations []ValidationError) *ApiError {
	return &ApiError{
		StatusCode:       http.StatusBadRequest,
		Message:          "Validation failed",
		ValidationErrors: violations,
	}
}

// FromDB classifies a storage error into an ApiError. Unrecognized errors
// come back as a generic 500 so no driver detail leaks to clients.
func FromDB(err error) *ApiError {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Conflict("A record with this data already exists")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound("Record not found")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return New(http.StatusBadRequest, "Invalid reference to related record")
	case errors.Is(err, gorm.ErrInvalidField):
		return New(http.StatusBadRequest, "Invalid ID provided")
	default:
		return New(http.StatusInternalServerError, "Database operation failed")
	}
}
