package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/yourusername/trivia-quiz/internal/logging"
)

// HealthHandler проверяет доступность зависимостей
type HealthHandler struct {
	db          *gorm.DB
	redisClient redis.UniversalClient
}

// NewHealthHandler создает обработчик health-check. redisClient может быть nil.
func NewHealthHandler(db *gorm.DB, redisClient redis.UniversalClient) *HealthHandler {
	return &HealthHandler{db: db, redisClient: redisClient}
}

// Healthz пингует PostgreSQL и Redis
// GET /healthz
func (h *HealthHandler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	logger := logging.FromContext(c.Request.Context())
	status := http.StatusOK
	checks := gin.H{"database": "ok", "redis": "disabled"}

	if err := h.pingDB(ctx); err != nil {
		logger.Error().Err(err).Msg("database health check failed")
		checks["database"] = "unavailable"
		status = http.StatusServiceUnavailable
	}

	if h.redisClient != nil {
		checks["redis"] = "ok"
		if err := h.redisClient.Ping(ctx).Err(); err != nil {
			logger.Error().Err(err).Msg("redis health check failed")
			checks["redis"] = "unavailable"
			status = http.StatusServiceUnavailable
		}
	}

	c.JSON(status, gin.H{
		"success": status == http.StatusOK,
		"checks":  checks,
	})
}

func (h *HealthHandler) pingDB(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
