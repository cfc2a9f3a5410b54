package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  port: "9090"
database:
  host: db.local
  user: trivia
  password: secret
  dbname: trivia
trivia:
  questions_per_page: 5
redis:
  addr: redis.local:6379
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, testYAML))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "db.local", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port, "порт по умолчанию")
	assert.Equal(t, 5, cfg.Trivia.QuestionsPerPage)
	assert.Equal(t, 1, cfg.Trivia.CategoryOffset)
	assert.Equal(t, 5*time.Minute, cfg.Trivia.CacheTTL())
	assert.Equal(t, time.Minute, cfg.RateLimit.Window())
	assert.Equal(t, 120, cfg.RateLimit.QuizRequests)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "trivia:", cfg.Redis.KeyPrefix)
	assert.True(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Auth.Enabled())
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("DATABASE_HOST", "env-host")
	t.Setenv("TRIVIA_CATEGORY_OFFSET", "0")
	t.Setenv("AUTH_SECRET", "s3cr3t")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load(writeConfig(t, testYAML))
	require.NoError(t, err)

	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 0, cfg.Trivia.CategoryOffset)
	assert.True(t, cfg.Auth.Enabled())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_MissingFileUsesEnvironment(t *testing.T) {
	t.Setenv("DATABASE_HOST", "localhost")
	t.Setenv("DATABASE_USER", "postgres")
	t.Setenv("DATABASE_DBNAME", "trivia")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 10, cfg.Trivia.QuestionsPerPage)
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{
			name:    "нет параметров БД",
			content: "server:\n  port: \"8080\"\n",
		},
		{
			name:    "нулевой размер страницы",
			content: testYAML,
			env:     map[string]string{"TRIVIA_QUESTIONS_PER_PAGE": "0"},
		},
		{
			name:    "пустой пароль в release",
			content: "database:\n  host: h\n  user: u\n  dbname: d\n",
			env:     map[string]string{"GIN_MODE": "release"},
		},
		{
			name:    "неизвестный формат логов",
			content: testYAML,
			env:     map[string]string{"LOG_FORMAT": "xml"},
		},
		{
			name:    "битый yaml",
			content: "database: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestDatabaseConfig_ConnectionStrings(t *testing.T) {
	d := DatabaseConfig{Host: "h", Port: "5432", User: "u", Password: "p", DBName: "db", SSLMode: "disable"}

	assert.Equal(t, "host=h port=5432 user=u password=p dbname=db sslmode=disable", d.PostgresConnectionString())
	assert.Equal(t, "postgres://u:p@h:5432/db?sslmode=disable", d.PostgresURL())
}
