package middleware

import (
	"errors"
	"log"
	"net/http"
	"runtime/debug"

	"media-catalog/internal/api/respond"
	"media-catalog/internal/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorHandler is the single stage that turns any error raised during a
// request into the uniform error envelope. Handlers never write error
// responses themselves; they record errors with c.Error and stop.
//
// Stack detail is exposed only in development mode.
func ErrorHandler(environment string) gin.HandlerFunc {
	development := environment == "development"

	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				stack := string(debug.Stack())
				log.Printf("panic recovered: %v\n%s", r, stack)

				body := &respond.ErrorBody{
					Message:    "Internal Server Error",
					StatusCode: http.StatusInternalServerError,
				}
				if development {
					body.Stack = stack
				}
				respond.Error(c, http.StatusInternalServerError, body)
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		apiErr := normalize(err)
		if development {
			log.Printf("request error: %d %s (%v)", apiErr.StatusCode, apiErr.Message, err)
		} else if apiErr.StatusCode >= http.StatusInternalServerError {
			log.Printf("request error: %d %s", apiErr.StatusCode, apiErr.Message)
		}

		body := &respond.ErrorBody{
			Message:          apiErr.Message,
			StatusCode:       apiErr.StatusCode,
			ValidationErrors: apiErr.ValidationErrors,
		}
		if development && apiErr.StatusCode >= http.StatusInternalServerError {
			body.Stack = err.Error()
		}
		respond.Error(c, apiErr.StatusCode, body)
	}
}

// normalize maps the known error families to ApiError and defaults the rest
// to an opaque 500.
func normalize(err error) *apperrors.ApiError {
	var apiErr *apperrors.ApiError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		violations := make([]apperrors.ValidationError, 0, len(verrs))
		for _, fe := range verrs {
			violations = append(violations, apperrors.ValidationError{
				Field:   fe.Field(),
				Message: fe.Error(),
				Code:    fe.Tag(),
			})
		}
		return apperrors.ValidationFailed(violations)
	}

	if mapped := apperrors.FromDB(err); mapped.StatusCode != http.StatusInternalServerError {
		return mapped
	}
	return apperrors.New(http.StatusInternalServerError, "Internal Server Error")
}

// NotFoundRoute handles requests that match no registered route.
func NotFoundRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, &respond.ErrorBody{
			Message:    "Route " + c.Request.URL.Path + " not found",
			StatusCode: http.StatusNotFound,
		})
	}
}
