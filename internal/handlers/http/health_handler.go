package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler responde ao health check
type HealthHandler struct {
	env  string
	ping func(ctx context.Context) error
}

// NewHealthHandler cria um HealthHandler. ping pode ser nil.
func NewHealthHandler(env string, ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{env: env, ping: ping}
}

// Health godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := h.ping(ctx); err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unavailable",
				"env":      h.env,
				"database": "down",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"env":      h.env,
		"database": "up",
	})
}
