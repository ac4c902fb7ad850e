// Package respond centralizes the JSON envelope every endpoint returns:
// {success, data?, message?, error?}. Error envelopes are written by the
// error-handler middleware, not here.
package respond

import (
	"net/http"

	"media-catalog/internal/apperrors"

	"github.com/gin-gonic/gin"
)

type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

type ErrorBody struct {
	Message          string                      `json:"message"`
	StatusCode       int                         `json:"statusCode"`
	ValidationErrors []apperrors.ValidationError `json:"validationErrors,omitempty"`
	Stack            string                      `json:"stack,omitempty"`
}

func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

func OKWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

func Error(c *gin.Context, status int, body *ErrorBody) {
	c.JSON(status, Envelope{Success: false, Error: body})
}
