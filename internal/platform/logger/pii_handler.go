package logger

import (
	"context"
	"log/slog"

	"github.com/phrazzld/numerology-api/internal/redact"
)

// PIIHandler is a slog.Handler that masks personal data and credentials
// before records reach the wrapped handler.
//
// Attributes logged under a sensitive key (see redact.IsSensitiveKey) are
// masked whatever their value; error values and "error" strings are passed
// through redact.String.
type PIIHandler struct {
	handler slog.Handler
}

// NewPIIHandler wraps h.
func NewPIIHandler(h slog.Handler) *PIIHandler {
	return &PIIHandler{handler: h}
}

// Enabled implements the slog.Handler interface.
func (h *PIIHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// WithAttrs implements the slog.Handler interface.
func (h *PIIHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	masked := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		masked[i] = maskAttr(a)
	}
	return &PIIHandler{handler: h.handler.WithAttrs(masked)}
}

// WithGroup implements the slog.Handler interface.
func (h *PIIHandler) WithGroup(name string) slog.Handler {
	return &PIIHandler{handler: h.handler.WithGroup(name)}
}

// Handle implements the slog.Handler interface.
func (h *PIIHandler) Handle(ctx context.Context, record slog.Record) error {
	masked := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(a slog.Attr) bool {
		masked.AddAttrs(maskAttr(a))
		return true
	})
	return h.handler.Handle(ctx, masked)
}

func maskAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	switch {
	case a.Value.Kind() == slog.KindGroup:
		group := a.Value.Group()
		masked := make([]any, len(group))
		for i, ga := range group {
			masked[i] = maskAttr(ga)
		}
		return slog.Group(a.Key, masked...)

	case redact.IsSensitiveKey(a.Key):
		return slog.String(a.Key, redact.Value(a.Key, a.Value.String()))

	case a.Value.Kind() == slog.KindAny:
		if err, ok := a.Value.Any().(error); ok {
			return slog.String(a.Key, redact.Error(err))
		}

	case a.Key == "error" && a.Value.Kind() == slog.KindString:
		return slog.String(a.Key, redact.String(a.Value.String()))
	}

	return a
}
