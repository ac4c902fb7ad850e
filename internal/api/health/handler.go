package health

import (
	"net/http"
	"time"

	"media-catalog/config"

	"github.com/gin-gonic/gin"
)

// Check is the liveness endpoint.
func Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": config.APP_ENV,
	})
}
