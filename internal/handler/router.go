package handler

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yourusername/trivia-quiz/internal/handler/helper"
	"github.com/yourusername/trivia-quiz/internal/metrics"
	"github.com/yourusername/trivia-quiz/internal/middleware"
	"github.com/yourusername/trivia-quiz/pkg/auth"
)

// RouterDeps: зависимости HTTP-слоя
type RouterDeps struct {
	Logger          zerolog.Logger
	Metrics         *metrics.Metrics
	CategoryHandler *CategoryHandler
	QuestionHandler *QuestionHandler
	QuizHandler     *QuizHandler
	HealthHandler   *HealthHandler
	Permissions     *middleware.PermissionMiddleware
	RateLimiter     *middleware.RateLimiter // nil: без ограничения частоты
	QuizRateLimit   middleware.RateLimitConfig
	AllowedOrigins  []string
}

// NewRouter собирает gin.Engine со всеми маршрутами API
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		deps.Logger.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("recovered from panic")
		helper.AbortWithStatus(c, http.StatusInternalServerError)
	}))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(deps.Logger))
	if deps.Metrics != nil {
		router.Use(middleware.Metrics(deps.Metrics))
	}
	router.Use(cors.New(corsConfig(deps.AllowedOrigins)))

	router.NoRoute(func(c *gin.Context) {
		helper.AbortWithStatus(c, http.StatusNotFound)
	})
	router.NoMethod(func(c *gin.Context) {
		helper.AbortWithStatus(c, http.StatusMethodNotAllowed)
	})

	// Служебные маршруты
	if deps.HealthHandler != nil {
		router.GET("/healthz", deps.HealthHandler.Healthz)
	}
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	// Категории
	router.GET("/categories", deps.CategoryHandler.GetCategories)
	router.GET("/categories/:id/questions",
		middleware.ExtractUintParam("id", "categoryID"),
		deps.CategoryHandler.GetQuestionsByCategory)

	// Вопросы
	questions := router.Group("/questions")
	{
		questions.GET("", deps.QuestionHandler.GetQuestions)
		questions.POST("", deps.QuestionHandler.CreateOrSearchQuestions)
		questions.POST("/search", deps.QuestionHandler.SearchQuestions)
		questions.GET("/export",
			deps.Permissions.RequirePermission(auth.PermissionExportQuestions),
			deps.QuestionHandler.ExportQuestions)
		questions.DELETE("/:id",
			middleware.ExtractUintParam("id", "questionID"),
			deps.Permissions.RequirePermission(auth.PermissionDeleteQuestions),
			deps.QuestionHandler.DeleteQuestion)
	}

	// Викторина
	quizHandlers := []gin.HandlerFunc{deps.QuizHandler.PlayQuiz}
	if deps.RateLimiter != nil {
		quizHandlers = append([]gin.HandlerFunc{deps.RateLimiter.Limit(deps.QuizRateLimit)}, quizHandlers...)
	}
	router.POST("/quizzes", quizHandlers...)

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cfg
}
