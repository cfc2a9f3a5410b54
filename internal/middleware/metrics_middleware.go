package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-quiz/internal/metrics"
)

// Metrics учитывает количество и длительность запросов по шаблону маршрута
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// Шаблон маршрута, чтобы id в пути не плодили метки
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
