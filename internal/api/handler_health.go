package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHealth handles the GET /health request. It intentionally does not
// touch the database: it reports process liveness, not store health.
func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
