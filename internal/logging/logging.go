// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package logging contains the logging functionality for the webinar service.
package logging

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	slogotel "github.com/remychantenay/slog-otel"
)

type ctxKey string

// Public constants
const (
	ErrKey = "error"
)

// Private constants
const (
	slogFields      ctxKey = "slog_fields"
	logLevelDefault        = slog.LevelDebug

	// Log levels
	debug = "debug"
	warn  = "warn"
	err   = "error"
	info  = "info"

	// Log formats
	formatText = "text"

	// Log field for errors an operator has to act on, e.g. rejected provider credentials.
	priorityCritical = "critical"
)

type contextHandler struct {
	slog.Handler
}

// Handle adds contextual attributes to the Record before calling the underlying handler
func (h contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(slogFields).([]slog.Attr); ok {
		for _, v := range attrs {
			r.AddAttrs(v)
		}
	}

	return h.Handler.Handle(ctx, r)
}

// WithAttrs keeps the context handler in the chain when loggers are derived with With.
func (h contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return contextHandler{h.Handler.WithAttrs(attrs)}
}

// WithGroup keeps the context handler in the chain when loggers are derived with WithGroup.
func (h contextHandler) WithGroup(name string) slog.Handler {
	return contextHandler{h.Handler.WithGroup(name)}
}

// AppendCtx adds an slog attribute to the provided context so that it will be
// included in any Record created with such context
func AppendCtx(parent context.Context, attr slog.Attr) context.Context {
	if parent == nil {
		parent = context.Background()
	}

	existing, _ := parent.Value(slogFields).([]slog.Attr)

	// Copy so sibling contexts derived from the same parent never share a backing array.
	v := make([]slog.Attr, 0, len(existing)+1)
	v = append(v, existing...)
	v = append(v, attr)
	return context.WithValue(parent, slogFields, v)
}

// options holds the parsed LOG_* environment.
type options struct {
	level     slog.Level
	addSource bool
	format    string
}

func optionsFromEnv() options {
	opts := options{level: logLevelDefault}

	switch os.Getenv("LOG_LEVEL") {
	case debug:
		opts.level = slog.LevelDebug
	case warn:
		opts.level = slog.LevelWarn
	case err:
		opts.level = slog.LevelError
	case info:
		opts.level = slog.LevelInfo
	}

	addSource := os.Getenv("LOG_ADD_SOURCE")
	opts.addSource = addSource == "true" || addSource == "t" || addSource == "1"
	opts.format = strings.ToLower(os.Getenv("LOG_FORMAT"))

	return opts
}

// newHandler builds the handler chain: context attributes -> otel trace correlation -> JSON/text output.
func newHandler(w io.Writer, opts options) slog.Handler {
	handlerOptions := &slog.HandlerOptions{
		Level:     opts.level,
		AddSource: opts.addSource,
	}

	var h slog.Handler
	if opts.format == formatText {
		h = slog.NewTextHandler(w, handlerOptions)
	} else {
		h = slog.NewJSONHandler(w, handlerOptions)
	}

	return contextHandler{slogotel.OtelHandler{Next: h}}
}

// InitStructureLogConfig sets the structured log behavior
func InitStructureLogConfig() slog.Handler {
	opts := optionsFromEnv()
	h := newHandler(os.Stdout, opts)

	log.SetFlags(log.Llongfile)
	slog.SetDefault(slog.New(h))

	slog.Info("log config",
		"logLevel", opts.level,
		"addSource", opts.addSource,
		"format", opts.format,
	)

	return h
}

// Priority creates a slog.Attr for error priority classification
func Priority(level string) slog.Attr {
	return slog.String("priority", level)
}

// PriorityCritical creates a slog.Attr for critical errors
// this is used to identify critical errors in the logs
// the ones that should be escalated to the team
func PriorityCritical() slog.Attr {
	return Priority(priorityCritical)
}
