package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Config controls logger construction.
type Config struct {
	Level   string
	Format  string // json (default), text, or console
	Service string
	Version string
	Output  io.Writer
}

// NewLogger returns a structured logger with sane defaults.
func NewLogger(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "text":
		handler = slog.NewTextHandler(out, opts)
	case "console":
		handler = slog.NewJSONHandler(consoleWriter(out), opts)
	default:
		handler = slog.NewJSONHandler(out, opts)
	}

	attrs := WithCommon(nil, cfg.Service, cfg.Version)
	if len(attrs) > 0 {
		handler = handler.WithAttrs(attrs)
	}
	return slog.New(handler)
}

// ParseLevel maps a textual level onto slog, defaulting to info.
func ParseLevel(raw string) slog.Level {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return slog.LevelInfo
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(raw))
	if err != nil {
		return slog.LevelInfo
	}
	switch {
	case lvl <= zerolog.DebugLevel:
		return slog.LevelDebug
	case lvl == zerolog.InfoLevel:
		return slog.LevelInfo
	case lvl == zerolog.WarnLevel:
		return slog.LevelWarn
	case lvl == zerolog.NoLevel, lvl == zerolog.Disabled:
		return slog.LevelInfo
	default:
		return slog.LevelError
	}
}

// consoleWriter renders slog JSON lines in zerolog's human-readable console layout.
func consoleWriter(out io.Writer) io.Writer {
	return zerolog.ConsoleWriter{
		Out:           out,
		NoColor:       true,
		PartsOrder:    []string{zerolog.TimestampFieldName, zerolog.LevelFieldName, slog.MessageKey},
		FieldsExclude: []string{slog.MessageKey},
	}
}
