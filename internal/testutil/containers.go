//go:build integration

// Package testutil поднимает Redis и PostgreSQL в контейнерах для интеграционных тестов.
package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/yourusername/trivia-quiz/internal/config"
)

// StartRedis запускает redis:7-alpine и возвращает адрес host:port.
// Контейнер останавливается в t.Cleanup.
func StartRedis(ctx context.Context, t *testing.T) string {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, redisC.Terminate(context.Background()))
	})

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	return fmt.Sprintf("%s:%s", host, port.Port())
}

// StartPostgres запускает postgres:16-alpine и возвращает параметры подключения
func StartPostgres(ctx context.Context, t *testing.T) config.DatabaseConfig {
	t.Helper()

	const (
		user     = "trivia"
		password = "trivia"
		dbName   = "trivia_test"
	)

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": password,
			"POSTGRES_DB":       dbName,
		},
		// Postgres перезапускается после init-скриптов, поэтому лог ждем дважды
		WaitingFor: wait.ForAll(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForListeningPort("5432/tcp"),
		),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, pgC.Terminate(context.Background()))
	})

	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return config.DatabaseConfig{
		Host:     host,
		Port:     port.Port(),
		User:     user,
		Password: password,
		DBName:   dbName,
		SSLMode:  "disable",
	}
}
