package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"media-catalog/internal/api/respond"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// SanitizeInput strips HTML from every top-level string field of mutating
// JSON requests using bluemonday. Non-string values (numbers, nulls, bools)
// pass through untouched so partial-update null semantics survive the
// round trip.
func SanitizeInput() gin.HandlerFunc {
	policy := bluemonday.StrictPolicy()

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		buf, err := io.ReadAll(c.Request.Body)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, &respond.ErrorBody{
				Message:    "Invalid body",
				StatusCode: http.StatusBadRequest,
			})
			c.Abort()
			return
		}
		if len(bytes.TrimSpace(buf)) == 0 {
			c.Request.Body = io.NopCloser(bytes.NewBuffer(buf))
			c.Next()
			return
		}

		var body map[string]interface{}
		if err := json.Unmarshal(buf, &body); err != nil {
			respond.Error(c, http.StatusBadRequest, &respond.ErrorBody{
				Message:    "Malformed JSON",
				StatusCode: http.StatusBadRequest,
			})
			c.Abort()
			return
		}

		for k, v := range body {
			if str, ok := v.(string); ok {
				body[k] = policy.Sanitize(str)
			}
		}

		newBody, _ := json.Marshal(body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(newBody))
		c.Request.ContentLength = int64(len(newBody))

		c.Next()
	}
}
