package middleware

import (
	"github.com/gin-gonic/gin"
)

// AuthMiddleware is a pass-through placeholder. The catalog API runs without
// authentication; this hook exists so protected routing can be added without
// reshaping the route table.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
	}
}
