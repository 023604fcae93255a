// Package shutdown cancels a context on SIGINT or SIGTERM and runs cleanup
// hooks registered against it.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"slices"
	"sync"
	"syscall"

	"github.com/amp-labs/amp-containers/logger"
)

type contextKey string

const handlerKey contextKey = "shutdownHandler"

// Handler owns the hooks for one process lifetime.
type Handler struct {
	mut     sync.Mutex
	hooks   []func(context.Context)
	once    sync.Once
	cancel  context.CancelFunc
	signals chan os.Signal
}

// SetupHandler returns a context that is canceled once a signal arrives or
// Shutdown is called. The handler is also stored in the context for
// BeforeShutdown.
func SetupHandler(ctx context.Context) (context.Context, *Handler) {
	ctx, cancel := context.WithCancel(ctx)

	h := &Handler{
		cancel:  cancel,
		signals: make(chan os.Signal, 1),
	}

	signal.Notify(h.signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-h.signals:
			logger.Get(ctx).Warn("received " + sig.String() + ", shutting down")
			h.Shutdown(ctx)
		case <-ctx.Done():
		}
	}()

	return context.WithValue(ctx, handlerKey, h), h
}

// BeforeShutdown registers hook on the handler stored in ctx. Without a
// handler the hook is dropped and false is returned.
func BeforeShutdown(ctx context.Context, hook func(context.Context)) bool {
	h, ok := ctx.Value(handlerKey).(*Handler)
	if !ok {
		return false
	}

	h.BeforeShutdown(hook)

	return true
}

// BeforeShutdown registers hook. Hooks run newest first.
func (h *Handler) BeforeShutdown(hook func(context.Context)) {
	h.mut.Lock()
	defer h.mut.Unlock()

	h.hooks = append(h.hooks, hook)
}

// Shutdown runs the hooks and cancels the context. Only the first call has
// any effect. Hooks get a context that is not canceled.
func (h *Handler) Shutdown(ctx context.Context) {
	h.once.Do(func() {
		signal.Stop(h.signals)

		h.mut.Lock()
		hooks := slices.Clone(h.hooks)
		h.hooks = nil
		h.mut.Unlock()

		hookCtx := context.WithoutCancel(ctx)

		for _, hook := range slices.Backward(hooks) {
			hook(hookCtx)
		}

		h.cancel()
	})
}
