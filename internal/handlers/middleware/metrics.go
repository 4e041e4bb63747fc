package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/ecoleta/internal/infrastructure/metrics"
)

// Metrics registra contagem, duração e requisições em andamento.
// A rota é o padrão registrado (/points/:id), não o path concreto.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.IncInFlight()
		defer m.DecInFlight()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
