package mediaclient

import (
	"fmt"

	"media-catalog/internal/apperrors"
)

// APIError is the decoded error envelope from a failed API call.
type APIError struct {
	StatusCode       int
	Message          string
	ValidationErrors []apperrors.ValidationError
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// FieldMessages flattens validation details into UI-ready strings.
func (e *APIError) FieldMessages() []string {
	out := make([]string, 0, len(e.ValidationErrors))
	for _, ve := range e.ValidationErrors {
		out = append(out, ve.Field+": "+ve.Message)
	}
	return out
}

// IsValidation reports whether the error carries field-level detail.
func (e *APIError) IsValidation() bool {
	return len(e.ValidationErrors) > 0
}
