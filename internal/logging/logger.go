package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Форматы вывода логов
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

type loggerKey struct{}

// New создает структурированный логгер приложения.
// format "console" дает человекочитаемый вывод для разработки, иначе пишется JSON.
// Неизвестный уровень трактуется как info.
func New(appName, level, format string) zerolog.Logger {
	return newLogger(os.Stdout, appName, level, format)
}

func newLogger(out io.Writer, appName, level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	if format == FormatConsole {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Str("app", appName).
		Logger()
}

// FromContext возвращает логгер из контекста или пустой логгер
func FromContext(ctx context.Context) zerolog.Logger {
	if ctx == nil {
		return zerolog.Nop()
	}
	if logger, ok := ctx.Value(loggerKey{}).(zerolog.Logger); ok {
		return logger
	}
	return zerolog.Nop()
}

// IntoContext кладет логгер в контекст
func IntoContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}
