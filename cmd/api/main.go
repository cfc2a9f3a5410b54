package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/yourusername/trivia-quiz/internal/config"
	"github.com/yourusername/trivia-quiz/internal/domain/repository"
	"github.com/yourusername/trivia-quiz/internal/handler"
	"github.com/yourusername/trivia-quiz/internal/logging"
	"github.com/yourusername/trivia-quiz/internal/metrics"
	"github.com/yourusername/trivia-quiz/internal/middleware"
	pgRepo "github.com/yourusername/trivia-quiz/internal/repository/postgres"
	redisRepo "github.com/yourusername/trivia-quiz/internal/repository/redis"
	"github.com/yourusername/trivia-quiz/internal/service"
	"github.com/yourusername/trivia-quiz/internal/service/quizmanager"
	"github.com/yourusername/trivia-quiz/pkg/auth"
	"github.com/yourusername/trivia-quiz/pkg/database"
)

const appName = "trivia-quiz"

func main() {
	// .env нужен только для локальной разработки
	if os.Getenv("GIN_MODE") != gin.ReleaseMode {
		_ = godotenv.Load()
	}

	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		bootLogger := logging.New(appName, "info", logging.FormatConsole)
		bootLogger.Fatal().Err(err).Str("path", configPath).Msg("Failed to load config")
	}

	logger := logging.New(appName, cfg.Log.Level, cfg.Log.Format)
	logger.Info().Str("path", configPath).Msg("Конфигурация загружена")

	gin.SetMode(cfg.Server.Mode)

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Применяем миграции
	if cfg.Database.AutoMigrate {
		if err := database.MigrateDB(db, logger); err != nil {
			logger.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	// Redis необязателен: без него кеш категорий и rate limiting выключены
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	redisClient, err := database.NewUniversalRedisClient(pingCtx, cfg.Redis)
	pingCancel()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}

	var cacheRepo repository.CacheRepository
	if redisClient != nil {
		logger.Info().Str("mode", cfg.Redis.Mode).Msg("Successfully connected to Redis")

		cache, err := redisRepo.NewCacheRepo(redisClient, cfg.Redis.KeyPrefix)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to initialize CacheRepo")
		}
		cacheRepo = cache
	} else {
		logger.Warn().Msg("Redis не настроен: кеш категорий и ограничение частоты выключены")
	}

	m := metrics.New("trivia")

	// Инициализируем репозитории
	categoryRepo := pgRepo.NewCategoryRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)

	quizConfig := &quizmanager.Config{
		QuestionsPerPage: cfg.Trivia.QuestionsPerPage,
		CategoryOffset:   cfg.Trivia.CategoryOffset,
	}
	if err := quizConfig.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("Invalid trivia configuration")
	}

	// Инициализируем сервисы
	categoryService := service.NewCategoryService(categoryRepo, cacheRepo, cfg.Trivia.CacheTTL(), m, logger)
	questionService := service.NewQuestionService(questionRepo, categoryRepo, quizConfig, logger)
	quizService := service.NewQuizService(questionRepo, quizmanager.NewSelector(nil), m, logger)

	// Проверка разрешений включается секретом
	var verifier *auth.PermissionVerifier
	if cfg.Auth.Enabled() {
		verifier, err = auth.NewPermissionVerifier(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.Audience)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to initialize permission verifier")
		}
	} else {
		logger.Warn().Msg("AUTH_SECRET не задан: проверка разрешений выключена")
	}
	permissions := middleware.NewPermissionMiddleware(verifier)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled && redisClient != nil {
		rateLimiter = middleware.NewRateLimiter(redisClient, logger)
	}
	quizRateLimit := middleware.DefaultQuizRateLimitConfig()
	quizRateLimit.MaxRequests = cfg.RateLimit.QuizRequests
	quizRateLimit.Window = cfg.RateLimit.Window()

	// Инициализируем обработчики и роутер
	router := handler.NewRouter(handler.RouterDeps{
		Logger:          logger,
		Metrics:         m,
		CategoryHandler: handler.NewCategoryHandler(categoryService, questionService, quizConfig),
		QuestionHandler: handler.NewQuestionHandler(questionService, categoryService, permissions, quizConfig),
		QuizHandler:     handler.NewQuizHandler(quizService, quizConfig),
		HealthHandler:   handler.NewHealthHandler(db, redisClient),
		Permissions:     permissions,
		RateLimiter:     rateLimiter,
		QuizRateLimit:   quizRateLimit,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
	})

	// Настройка доверенных прокси для корректной работы c.ClientIP()
	if gin.Mode() == gin.ReleaseMode {
		if err := router.SetTrustedProxies(nil); err != nil {
			logger.Warn().Err(err).Msg("Failed to set trusted proxies")
		}
	} else if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
		logger.Warn().Err(err).Msg("Failed to set trusted proxies")
	}

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	closeResources(logger, db, redisClient)
	logger.Info().Msg("Server exited properly")
}

func closeResources(logger zerolog.Logger, db *gorm.DB, redisClient redis.UniversalClient) {
	if sqlDB, err := database.GetSQLDB(db); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error().Err(err).Msg("Error closing database")
		}
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error().Err(err).Msg("Error closing Redis client")
		}
	}
}
