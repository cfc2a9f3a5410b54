package database

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/yourusername/trivia-quiz/internal/config"
)

// Режимы работы Redis
const (
	RedisModeSingle   = "single"
	RedisModeSentinel = "sentinel"
	RedisModeCluster  = "cluster"
)

// NewUniversalRedisClient подключается к Redis в режиме single, sentinel или cluster.
// Если адрес не задан, возвращает (nil, nil): кеш и rate limiting работают без Redis.
func NewUniversalRedisClient(ctx context.Context, cfg config.RedisConfig) (redis.UniversalClient, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	options, err := universalOptions(cfg)
	if err != nil {
		return nil, err
	}

	client := redis.NewUniversalClient(options)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis (mode: %s, addrs: %v): %w", redisMode(cfg), options.Addrs, err)
	}
	return client, nil
}

func redisMode(cfg config.RedisConfig) string {
	if cfg.Mode == "" {
		return RedisModeSingle
	}
	return cfg.Mode
}

// universalOptions переводит RedisConfig в опции go-redis.
// NewUniversalClient выбирает тип клиента сам: MasterName дает sentinel, несколько адресов дают cluster.
func universalOptions(cfg config.RedisConfig) (*redis.UniversalOptions, error) {
	addrs := cfg.Addrs
	if len(addrs) == 0 && cfg.Addr != "" {
		addrs = []string{cfg.Addr}
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("redis configuration error: addrs or addr must be provided")
	}

	options := &redis.UniversalOptions{
		Password:        cfg.Password,
		DB:              cfg.DB,
		MaxRetries:      cfg.MaxRetries,
		MinRetryBackoff: time.Duration(cfg.MinRetryBackoff) * time.Millisecond,
		MaxRetryBackoff: time.Duration(cfg.MaxRetryBackoff) * time.Millisecond,
	}

	switch mode := redisMode(cfg); mode {
	case RedisModeSingle:
		// Один адрес, иначе go-redis создаст cluster-клиент
		options.Addrs = addrs[:1]
	case RedisModeSentinel:
		if cfg.MasterName == "" {
			return nil, fmt.Errorf("redis sentinel mode requires master_name")
		}
		options.Addrs = addrs
		options.MasterName = cfg.MasterName
	case RedisModeCluster:
		options.Addrs = addrs
		// Cluster не поддерживает выбор базы
		options.DB = 0
	default:
		return nil, fmt.Errorf("unsupported redis mode: %s", mode)
	}

	return options, nil
}
