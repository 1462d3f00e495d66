package events

import (
	"context"
	"log/slog"
	"sync"
)

// Handler receives a committed lifecycle event. Handlers must be idempotent
// against redelivery; errors are logged and never unwind the commit.
type Handler interface {
	Handle(ctx context.Context, ev Event) error
}

type HandlerFunc func(ctx context.Context, ev Event) error

func (f HandlerFunc) Handle(ctx context.Context, ev Event) error { return f(ctx, ev) }

// Dispatcher fans committed events out to subscribers synchronously, in
// subscription order, on the committing goroutine.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers []Handler
	logger   *slog.Logger
}

func NewDispatcher(logger *slog.Logger) *Dispatcher {
	return &Dispatcher{logger: logger}
}

func (d *Dispatcher) Subscribe(h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = append(d.handlers, h)
}

// Dispatch is called by the transaction coordinator immediately after a
// successful commit. A handler failure is a best-effort side effect gone
// wrong, not a reason to fail the request.
func (d *Dispatcher) Dispatch(ctx context.Context, evs []Event) {
	d.mu.RLock()
	handlers := make([]Handler, len(d.handlers))
	copy(handlers, d.handlers)
	d.mu.RUnlock()

	for _, ev := range evs {
		for _, h := range handlers {
			if err := h.Handle(ctx, ev); err != nil {
				d.logger.Error("event handler failed",
					"event", string(ev.Kind),
					"assignment_id", ev.Assignment.AssignmentID.String(),
					"provider", ev.Assignment.Provider,
					"error", err.Error())
			}
		}
	}
}
