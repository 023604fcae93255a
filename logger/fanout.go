package logger

import (
	"context"
	"log/slog"

	commonerrors "github.com/amp-labs/amp-containers/errors"
)

// fanoutHandler sends each record to every handler that is enabled for its
// level.
type fanoutHandler struct {
	handlers []slog.Handler
}

var _ slog.Handler = (*fanoutHandler)(nil)

func (f *fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

func (f *fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	errs := &commonerrors.Collection{}

	for _, h := range f.handlers {
		if !h.Enabled(ctx, record.Level) {
			continue
		}

		errs.Add(h.Handle(ctx, record.Clone()))
	}

	return errs.GetError()
}

func (f *fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return f.each(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (f *fanoutHandler) WithGroup(name string) slog.Handler {
	return f.each(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (f *fanoutHandler) each(fn func(slog.Handler) slog.Handler) slog.Handler {
	out := make([]slog.Handler, len(f.handlers))
	for i, h := range f.handlers {
		out[i] = fn(h)
	}

	return &fanoutHandler{handlers: out}
}
