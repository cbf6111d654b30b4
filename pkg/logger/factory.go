package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/formstate/pkg/config"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for production log aggregation systems.
	FormatJSON Format = "json"
	// FormatText outputs human-readable logs for development debugging.
	FormatText Format = "text"
)

// Config describes the environment-driven logger settings.
type Config struct {
	Level  string `env:"FORMSTATE_LOG_LEVEL" envDefault:"info"`
	Format string `env:"FORMSTATE_LOG_FORMAT" envDefault:"text"`
}

// Option configures logger creation.
type Option func(*loggerConfig)

func WithLevel(l slog.Level) Option {
	return func(c *loggerConfig) { c.level = l }
}

// WithFormat sets output format. Panics on an invalid format so a
// misconfigured logger surfaces at construction, not at the first log call.
func WithFormat(f Format) Option {
	return func(c *loggerConfig) {
		switch f {
		case FormatJSON, FormatText:
			c.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

// WithOutput sets custom output destination, ignoring nil writers for safety.
func WithOutput(w io.Writer) Option {
	return func(c *loggerConfig) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds static attributes to every log record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *loggerConfig) {
		if len(attrs) > 0 {
			c.attrs = append(c.attrs, attrs...)
		}
	}
}

type loggerConfig struct {
	level  slog.Level
	format Format
	output io.Writer
	attrs  []slog.Attr
}

// defaultConfig provides quiet defaults: text format at INFO level on stderr,
// suitable for a library embedded in arbitrary host processes.
func defaultConfig() *loggerConfig {
	return &loggerConfig{
		level:  slog.LevelInfo,
		format: FormatText,
		output: os.Stderr,
	}
}

// New creates a configured *slog.Logger.
func New(opts ...Option) *slog.Logger {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}

	var handler slog.Handler
	if cfg.format == FormatJSON {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	}

	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}

	return slog.New(handler)
}

// NewFromEnv creates a logger configured from FORMSTATE_LOG_LEVEL and
// FORMSTATE_LOG_FORMAT environment variables. Unknown values fall back to
// the defaults rather than failing: logging must never prevent the host
// application from starting.
func NewFromEnv() *slog.Logger {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return New()
	}

	opts := []Option{WithLevel(parseLevel(cfg.Level))}
	switch Format(strings.ToLower(cfg.Format)) {
	case FormatJSON:
		opts = append(opts, WithFormat(FormatJSON))
	case FormatText:
		opts = append(opts, WithFormat(FormatText))
	}
	return New(opts...)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
