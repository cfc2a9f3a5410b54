// Команда migrate управляет схемой базы данных вне API:
//
//	migrate up
//	migrate down
//	migrate version
//	migrate force N
package main

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strconv"

	migrateV4 "github.com/golang-migrate/migrate/v4"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/yourusername/trivia-quiz/internal/config"
	"github.com/yourusername/trivia-quiz/internal/logging"
	"github.com/yourusername/trivia-quiz/pkg/database"
)

func main() {
	_ = godotenv.Load()
	logger := logging.New("trivia-migrate", "info", logging.FormatConsole)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	db, err := sql.Open("postgres", cfg.Database.PostgresURL())
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open database")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to ping database")
	}

	m, err := database.NewMigrator(db)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create migrator")
	}

	if err := run(m, os.Args[1:], logger); err != nil {
		logger.Fatal().Err(err).Str("command", os.Args[1]).Msg("Migration command failed")
	}
}

func run(m *migrateV4.Migrate, args []string, logger zerolog.Logger) error {
	switch args[0] {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrateV4.ErrNoChange) {
			return err
		}
	case "down":
		// Откатывает только последнюю миграцию
		if err := m.Steps(-1); err != nil && !errors.Is(err, migrateV4.ErrNoChange) {
			return err
		}
	case "version":
	case "force":
		if len(args) < 2 {
			return fmt.Errorf("force requires a version")
		}
		version, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid version %q: %w", args[1], err)
		}
		// Снимает dirty-флаг после неудачной миграции
		if err := m.Force(version); err != nil {
			return err
		}
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}

	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrateV4.ErrNilVersion):
		logger.Info().Msg("Миграции не применялись")
	case err != nil:
		return err
	default:
		logger.Info().Uint("version", version).Bool("dirty", dirty).Msg("Текущая версия схемы")
	}
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: migrate up | down | version | force N")
}
