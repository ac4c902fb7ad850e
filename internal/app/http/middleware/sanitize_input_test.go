package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sanitizeRouter() (*gin.Engine, *map[string]interface{}) {
	gin.SetMode(gin.TestMode)
	var seen map[string]interface{}
	r := gin.New()
	r.Use(SanitizeInput())
	handler := func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		_ = json.Unmarshal(body, &seen)
		c.Status(http.StatusOK)
	}
	r.POST("/echo", handler)
	r.PUT("/echo", handler)
	return r, &seen
}

func TestSanitizeInput_StripsHTMLFromStrings(t *testing.T) {
	r, seen := sanitizeRouter()

	body := `{"title":"Safe<script>alert('x')</script> Title","rating":8.5,"genre":null}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/echo", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Safe Title", (*seen)["title"])
	assert.Equal(t, 8.5, (*seen)["rating"])
	// explicit null survives the round trip
	v, present := (*seen)["genre"]
	assert.True(t, present)
	assert.Nil(t, v)
}

func TestSanitizeInput_RejectsMalformedJSON(t *testing.T) {
	r, _ := sanitizeRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("PUT", "/echo", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Malformed JSON")
}

func TestSanitizeInput_IgnoresGet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SanitizeInput())
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
