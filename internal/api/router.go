package api

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"vendswift-backend/config"
	"vendswift-backend/internal/mw"
	"vendswift-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, cfg *config.ServerConfig) *gin.Engine {
	r := gin.Default()
	r.Use(mw.RequestID())

	handler := NewHandler(s)

	// Liveness stays outside the rate limiter so orchestrator probes
	// never get throttled.
	r.GET("/health", handler.GetHealth)

	machines := r.Group("/machines")
	machines.Use(mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst))
	{
		// GET /machines/{machine_code}/products
		machines.GET("/:machine_code/products", handler.GetMachineProducts)
	}

	return r
}
