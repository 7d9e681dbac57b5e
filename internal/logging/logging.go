// Package logging owns the process-wide zerolog logger and exposes it to the
// rest of the service as a *slog.Logger, so components can take a logger
// through options without depending on zerolog directly.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type Config struct {
	Level  string
	Format string // json | console
	Output io.Writer
}

var (
	mu     sync.RWMutex
	global zerolog.Logger
)

func init() {
	initLogger(Config{Level: "info", Format: "json"})
}

// Init reconfigures the global logger and installs it as the slog default.
func Init(cfg Config) *slog.Logger {
	mu.Lock()
	initLogger(cfg)
	mu.Unlock()

	l := slog.New(NewSlogHandler())
	slog.SetDefault(l)
	return l
}

func initLogger(cfg Config) {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	out := cfg.Output
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: "15:04:05"}
	}

	global = zerolog.New(out).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Logger returns a copy of the global zerolog logger.
func Logger() *zerolog.Logger {
	mu.RLock()
	l := global
	mu.RUnlock()
	return &l
}

// New wraps an arbitrary zerolog logger, mostly for tests.
func New(l zerolog.Logger) *slog.Logger {
	return slog.New(&SlogHandler{logger: l, fromGlobal: false})
}
