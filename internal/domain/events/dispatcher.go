package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// EventHandler is a function that handles a domain event
type EventHandler func(ctx context.Context, event DomainEvent) error

type registration struct {
	id      uint64
	handler EventHandler
}

// Dispatcher dispatches domain events to registered handlers
type Dispatcher struct {
	handlers map[string][]registration
	nextID   uint64
	mu       sync.RWMutex
	logger   *slog.Logger
}

// NewDispatcher creates a new event dispatcher
func NewDispatcher(logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		handlers: make(map[string][]registration),
		logger:   logger,
	}
}

// Register registers an event handler for a specific event type.
// The returned function removes the handler; calling it more than once is a no-op.
func (d *Dispatcher) Register(eventType string, handler EventHandler) (unregister func()) {
	d.mu.Lock()
	d.nextID++
	id := d.nextID
	d.handlers[eventType] = append(d.handlers[eventType], registration{id: id, handler: handler})
	d.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { d.remove(eventType, id) })
	}
}

func (d *Dispatcher) remove(eventType string, id uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	regs := d.handlers[eventType]
	for i, r := range regs {
		if r.id == id {
			d.handlers[eventType] = append(regs[:i:i], regs[i+1:]...)
			break
		}
	}
	if len(d.handlers[eventType]) == 0 {
		delete(d.handlers, eventType)
	}
}

// HandlerCount returns the number of handlers registered for an event type
func (d *Dispatcher) HandlerCount(eventType string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.handlers[eventType])
}

// Dispatch dispatches an event to all registered handlers and waits for them to finish
func (d *Dispatcher) Dispatch(ctx context.Context, event DomainEvent) error {
	d.mu.RLock()
	regs := append([]registration(nil), d.handlers[event.EventType()]...)
	d.mu.RUnlock()

	if len(regs) == 0 {
		return nil
	}

	var wg sync.WaitGroup
	errChan := make(chan error, len(regs))

	for _, r := range regs {
		wg.Add(1)
		go func(h EventHandler) {
			defer wg.Done()
			if err := h(ctx, event); err != nil {
				d.logger.Warn("event handler failed",
					"event_type", event.EventType(),
					"event_id", event.EventID(),
					"error", err)
				errChan <- err
			}
		}(r.handler)
	}

	wg.Wait()
	close(errChan)

	var errs []error
	for err := range errChan {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors occurred while dispatching event: %w", errors.Join(errs...))
	}

	return nil
}

// DispatchAll dispatches multiple events
func (d *Dispatcher) DispatchAll(ctx context.Context, events []DomainEvent) error {
	for _, event := range events {
		if err := d.Dispatch(ctx, event); err != nil {
			return err
		}
	}
	return nil
}
