// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the todo server and client.
//
// *Logger embeds zerolog.Logger, so the whole zerolog event API is
// available on it. Request-scoped loggers travel in the context: the
// transport middlewares store one tagged with the trace id and the lower
// layers read it back with FromContext or FromRequest.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// TraceIDField is the name of the field holding the request trace id.
const TraceIDField = "trace_id"

// Logger is a zerolog.Logger with a few application helpers.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns the JSON logger of a server process. Every entry
// carries the role, a timestamp and the name of the calling function in
// the "func" field. The global level is reset to debug; main narrows it
// with SetLevel once the configuration is loaded.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{
		zerolog.New(os.Stdout).With().
			Str("role", role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// NewConsoleLogger returns a plain-text logger writing warnings and errors
// to w. The command-line client uses it so that log lines do not mix with
// command output.
func NewConsoleLogger(role string, w io.Writer) *Logger {
	return &Logger{
		zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
			Level(zerolog.WarnLevel).
			With().
			Str("role", role).
			Timestamp().
			Logger(),
	}
}

// SetLevel sets the global level by name ("debug", "info", "warn", ...).
// An empty name leaves the level unchanged.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)

	return nil
}

// Nop returns a logger that writes nothing.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithTraceID returns a child of l whose entries carry traceID.
func (l *Logger) WithTraceID(traceID string) *Logger {
	return &Logger{l.With().Str(TraceIDField, traceID).Logger()}
}

// FromRequest returns the logger stored in the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored in ctx with WithContext. Without
// one, zerolog's disabled logger is returned, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
