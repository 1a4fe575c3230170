package mw

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// limiterTTL bounds how long an idle client's limiter is kept around.
const limiterTTL = 10 * time.Minute

// RateLimiter is a middleware for per-client-IP rate limiting.
// Limiters live in a TTL cache so the per-IP map cannot grow without
// bound under churning client addresses.
func RateLimiter(r rate.Limit, burst int) gin.HandlerFunc {
	limiters := cache.New(limiterTTL, 2*limiterTTL)

	getLimiter := func(ip string) *rate.Limiter {
		if v, found := limiters.Get(ip); found {
			return v.(*rate.Limiter)
		}
		limiter := rate.NewLimiter(r, burst)
		// Another request may have raced us; keep whichever won.
		if err := limiters.Add(ip, limiter, cache.DefaultExpiration); err != nil {
			if v, found := limiters.Get(ip); found {
				return v.(*rate.Limiter)
			}
		}
		return limiter
	}

	return func(c *gin.Context) {
		if !getLimiter(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
