package middleware

import (
	"net/http"
	"sync"
	"time"

	"media-catalog/internal/api/respond"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit throttles each client IP to max requests per window using a
// token bucket sized to the full window budget. Idle client entries are
// evicted after two windows so the map cannot grow without bound.
func RateLimit(max int, window time.Duration) gin.HandlerFunc {
	type client struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}

	var (
		mu      sync.Mutex
		clients = map[string]*client{}
	)

	go func() {
		for range time.Tick(window) {
			mu.Lock()
			for ip, cl := range clients {
				if time.Since(cl.lastSeen) > 2*window {
					delete(clients, ip)
				}
			}
			mu.Unlock()
		}
	}()

	perSecond := rate.Limit(float64(max) / window.Seconds())

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		cl, ok := clients[ip]
		if !ok {
			cl = &client{limiter: rate.NewLimiter(perSecond, max)}
			clients[ip] = cl
		}
		cl.lastSeen = time.Now()
		allowed := cl.limiter.Allow()
		mu.Unlock()

		if !allowed {
			respond.Error(c, http.StatusTooManyRequests, &respond.ErrorBody{
				Message:    "Too many requests from this IP, please try again later.",
				StatusCode: http.StatusTooManyRequests,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
