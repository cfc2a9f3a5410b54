package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

// Config хранит все настройки приложения
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Trivia    TriviaConfig
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Auth      AuthConfig
	CORS      CORSConfig `mapstructure:"cors"`
	Log       LogConfig
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port            string
	Mode            string // режим gin: debug, release, test
	ReadTimeout     int    `mapstructure:"read_timeout"`     // секунды
	WriteTimeout    int    `mapstructure:"write_timeout"`    // секунды
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // секунды
}

// DatabaseConfig содержит настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string

	MaxOpenConns    int  `mapstructure:"max_open_conns"`
	MaxIdleConns    int  `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int  `mapstructure:"conn_max_lifetime"` // минуты
	AutoMigrate     bool `mapstructure:"auto_migrate"`      // применять миграции при старте API
}

// RedisConfig содержит унифицированные настройки подключения к Redis
// Поддерживает режимы: single, sentinel, cluster
type RedisConfig struct {
	// Mode: Режим работы Redis ("single", "sentinel", "cluster"). По умолчанию "single".
	Mode string `mapstructure:"mode"`

	// Addrs: Список адресов Redis (хост:порт). Используется для всех режимов.
	// Для 'single', если не пуст, используется первый адрес из списка.
	Addrs []string `mapstructure:"addrs"`

	// Addr: Альтернативный адрес для режима 'single'.
	// Используется, если Mode="single" и Addrs пустой.
	Addr string `mapstructure:"addr"`

	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`

	// MasterName: Имя мастер-сервера Redis (только для режима "sentinel")
	MasterName string `mapstructure:"master_name"`

	// MaxRetries: Максимальное количество попыток переподключения (-1 - без ретраев).
	MaxRetries int `mapstructure:"max_retries"`

	// MinRetryBackoff: Минимальный интервал между попытками (в миллисекундах). По умолчанию 8ms.
	MinRetryBackoff int `mapstructure:"min_retry_backoff"`

	// MaxRetryBackoff: Максимальный интервал между попытками (в миллисекундах). По умолчанию 512ms.
	MaxRetryBackoff int `mapstructure:"max_retry_backoff"`

	// KeyPrefix: Префикс всех ключей кеша
	KeyPrefix string `mapstructure:"key_prefix"`
}

// Enabled сообщает, задан ли адрес Redis. Без Redis кеш и rate limiting выключены.
func (r *RedisConfig) Enabled() bool {
	return len(r.Addrs) > 0 || r.Addr != ""
}

// TriviaConfig содержит настройки выдачи вопросов
type TriviaConfig struct {
	QuestionsPerPage   int `mapstructure:"questions_per_page"`
	CategoryOffset     int `mapstructure:"category_offset"`
	CategoriesCacheTTL int `mapstructure:"categories_cache_ttl"` // секунды
}

// CacheTTL возвращает время жизни кеша категорий
func (t *TriviaConfig) CacheTTL() time.Duration {
	return time.Duration(t.CategoriesCacheTTL) * time.Second
}

// RateLimitConfig содержит настройки ограничения частоты POST /quizzes
type RateLimitConfig struct {
	Enabled       bool
	QuizRequests  int `mapstructure:"quiz_requests"`
	WindowSeconds int `mapstructure:"window_seconds"`
}

// Window возвращает длительность окна
func (r *RateLimitConfig) Window() time.Duration {
	return time.Duration(r.WindowSeconds) * time.Second
}

// AuthConfig содержит настройки проверки разрешений.
// Пустой Secret выключает проверку.
type AuthConfig struct {
	Secret   string
	Issuer   string
	Audience string
}

// Enabled сообщает, включена ли проверка разрешений
func (a *AuthConfig) Enabled() bool {
	return a.Secret != ""
}

// CORSConfig содержит настройки CORS
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig содержит настройки логирования
type LogConfig struct {
	Level  string
	Format string // console или json
}

// PostgresConnectionString формирует строку подключения к PostgreSQL
func (d *DatabaseConfig) PostgresConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// PostgresURL формирует URL подключения для golang-migrate и lib/pq
func (d *DatabaseConfig) PostgresURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

func setDefaults(vip *viper.Viper) {
	vip.SetDefault("server.port", "8080")
	vip.SetDefault("server.mode", "debug")
	vip.SetDefault("server.read_timeout", 10)
	vip.SetDefault("server.write_timeout", 30)
	vip.SetDefault("server.shutdown_timeout", 15)

	vip.SetDefault("database.port", "5432")
	vip.SetDefault("database.sslmode", "disable")
	vip.SetDefault("database.max_open_conns", 25)
	vip.SetDefault("database.max_idle_conns", 10)
	vip.SetDefault("database.conn_max_lifetime", 60)
	vip.SetDefault("database.auto_migrate", true)

	vip.SetDefault("redis.mode", "single")
	vip.SetDefault("redis.key_prefix", "trivia:")

	vip.SetDefault("trivia.questions_per_page", 10)
	vip.SetDefault("trivia.category_offset", 1)
	vip.SetDefault("trivia.categories_cache_ttl", 300)

	vip.SetDefault("ratelimit.enabled", true)
	vip.SetDefault("ratelimit.quiz_requests", 120)
	vip.SetDefault("ratelimit.window_seconds", 60)

	vip.SetDefault("cors.allowed_origins", []string{"*"})

	vip.SetDefault("log.level", "info")
	vip.SetDefault("log.format", "console")
}

func bindEnv(vip *viper.Viper) {
	// Привязка для секции Server
	_ = vip.BindEnv("server.port", "SERVER_PORT")
	_ = vip.BindEnv("server.mode", "GIN_MODE")

	// Привязка для секции Database
	_ = vip.BindEnv("database.host", "DATABASE_HOST")
	_ = vip.BindEnv("database.port", "DATABASE_PORT")
	_ = vip.BindEnv("database.user", "DATABASE_USER")
	_ = vip.BindEnv("database.password", "DATABASE_PASSWORD")
	_ = vip.BindEnv("database.dbname", "DATABASE_DBNAME")
	_ = vip.BindEnv("database.sslmode", "DATABASE_SSLMODE")
	_ = vip.BindEnv("database.auto_migrate", "DATABASE_AUTO_MIGRATE")

	// Привязка для секции Redis
	_ = vip.BindEnv("redis.mode", "REDIS_MODE")
	_ = vip.BindEnv("redis.addrs", "REDIS_ADDRS") // Для массива строк через запятую
	_ = vip.BindEnv("redis.addr", "REDIS_ADDR")
	_ = vip.BindEnv("redis.password", "REDIS_PASSWORD")
	_ = vip.BindEnv("redis.db", "REDIS_DB")
	_ = vip.BindEnv("redis.master_name", "REDIS_MASTER_NAME")

	// Привязка для секции Trivia
	_ = vip.BindEnv("trivia.questions_per_page", "TRIVIA_QUESTIONS_PER_PAGE")
	_ = vip.BindEnv("trivia.category_offset", "TRIVIA_CATEGORY_OFFSET")

	// Привязка для секции RateLimit
	_ = vip.BindEnv("ratelimit.enabled", "RATELIMIT_ENABLED")
	_ = vip.BindEnv("ratelimit.quiz_requests", "RATELIMIT_QUIZ_REQUESTS")

	// Привязка для секции Auth
	_ = vip.BindEnv("auth.secret", "AUTH_SECRET")
	_ = vip.BindEnv("auth.issuer", "AUTH_ISSUER")
	_ = vip.BindEnv("auth.audience", "AUTH_AUDIENCE")

	_ = vip.BindEnv("cors.allowed_origins", "CORS_ALLOWED_ORIGINS")

	_ = vip.BindEnv("log.level", "LOG_LEVEL")
	_ = vip.BindEnv("log.format", "LOG_FORMAT")
}

// Load загружает конфигурацию из файла и переменных окружения.
// Отсутствие файла не ошибка: значения берутся из окружения и умолчаний.
func Load(configPath string) (*Config, error) {
	vip := viper.New() // Новый экземпляр Viper, чтобы избежать глобального состояния

	setDefaults(vip)
	bindEnv(vip)

	if configPath != "" {
		vip.SetConfigFile(configPath)
		if err := vip.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
			}
		}
	}

	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		return fmt.Errorf("database configuration (host, dbname, user) is incomplete in config (check DATABASE_HOST, DATABASE_DBNAME, DATABASE_USER env vars)")
	}
	// В release-режиме пустой пароль БД почти наверняка ошибка конфигурации
	if c.Server.Mode == "release" && c.Database.Password == "" {
		return fmt.Errorf("database password is required in release mode (check DATABASE_PASSWORD env var)")
	}
	if c.Trivia.QuestionsPerPage < 1 {
		return fmt.Errorf("trivia.questions_per_page must be positive, got %d", c.Trivia.QuestionsPerPage)
	}
	if c.Trivia.CategoryOffset < 0 {
		return fmt.Errorf("trivia.category_offset must not be negative, got %d", c.Trivia.CategoryOffset)
	}
	if c.RateLimit.Enabled && (c.RateLimit.QuizRequests < 1 || c.RateLimit.WindowSeconds < 1) {
		return fmt.Errorf("ratelimit.quiz_requests and ratelimit.window_seconds must be positive when rate limiting is enabled")
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unsupported log format %q (expected console or json)", c.Log.Format)
	}
	return nil
}
