// Package logging builds the site's slog loggers and carries them through
// request contexts.
//
//	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("request_id", id)))
//	logging.FromContext(ctx).WarnContext(ctx, "brochure probe failed", slog.Any("error", err))
//
// Error records carry the operation and the error chain:
//
//	logger.ErrorContext(ctx, "submission failed",
//	    slog.String("operation", "booking.confirm"),
//	    slog.String("submission_id", id),
//	    slog.Any("error", err),
//	)
//
// Content diagnostics (fallback documents, rejected entities) matter only
// while editing content; Diagnostics silences them elsewhere.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type contextKey struct{}

// EnvDevelopment is the environment in which diagnostics are logged.
const EnvDevelopment = "development"

// New returns a logger writing to w. level is one of debug, info, warn or
// error in any case; anything else means info. format "text" selects
// logfmt-style output, anything else JSON. Debug loggers also report the
// source location. Personal and credential attributes are always masked.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: redactor(),
	}

	if strings.EqualFold(format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel maps a configured level name to a slog level, defaulting to
// info.
func ParseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Diagnostics returns logger in development and a discarding logger in any
// other environment.
func Diagnostics(logger *slog.Logger, env string) *slog.Logger {
	if strings.EqualFold(env, EnvDevelopment) {
		return logger
	}
	return slog.New(slog.DiscardHandler)
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
