package routes

import (
	"time"

	"media-catalog/config"
	"media-catalog/internal/api/health"
	mediaapi "media-catalog/internal/api/media"
	"media-catalog/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler(config.APP_ENV))

	r.NoRoute(middleware.NotFoundRoute())

	r.GET("/health", health.Check)

	api := r.Group("/api")
	api.Use(middleware.RateLimit(config.RATE_LIMIT_MAX, time.Duration(config.RATE_LIMIT_WINDOW_MINUTES)*time.Minute))
	api.Use(middleware.AuthMiddleware())
	api.Use(middleware.SanitizeInput())

	h := mediaapi.NewHandler(db, mediaapi.NewValidator())

	api.GET("/media", h.List)
	api.GET("/media/:id", h.GetByID)
	// gin's tree cannot mix a static "stats" segment with :id at the same
	// depth, so /media/stats/overview is matched through the :id pattern.
	api.GET("/media/:id/overview", func(c *gin.Context) {
		if c.Param("id") != "stats" {
			middleware.NotFoundRoute()(c)
			return
		}
		h.Stats(c)
	})
	api.POST("/media", h.Create)
	api.PUT("/media/:id", h.Update)
	api.DELETE("/media/:id", h.Delete)
}
