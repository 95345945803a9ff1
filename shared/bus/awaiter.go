package bus

import (
	"context"
	"sync"
	"time"

	"github.com/duche27/eStore-OrdersService/shared/events"
	"github.com/duche27/eStore-OrdersService/shared/models"
	"github.com/pkg/errors"
)

// ErrAwaitTimeout is returned when no matching event arrives in time
var ErrAwaitTimeout = errors.New("no result event received within the wait bound")

type eventWaiter struct {
	correlationID models.ID
	topics        map[string]struct{}
	ch            chan *events.Event
}

// EventAwaiter parks callers until an event with a matching topic and
// correlation key arrives. It sits on the inbound event path so command
// proxies can turn fire-and-forget capability replies into bounded,
// request/response shaped calls.
type EventAwaiter struct {
	mux     sync.Mutex
	waiters map[*eventWaiter]struct{}
}

// NewEventAwaiter creates an awaiter with no registered waiters
func NewEventAwaiter() *EventAwaiter {
	return &EventAwaiter{waiters: make(map[*eventWaiter]struct{})}
}

// HandlerID implements the subscriber handler contract
func (a *EventAwaiter) HandlerID() string {
	return "event-awaiter"
}

// Handle delivers the event to every waiter it matches. Matching is by
// topic plus correlation id; events correlate either through their
// CorrelationID or their AggregateID.
func (a *EventAwaiter) Handle(_ context.Context, event *events.Event) error {
	a.mux.Lock()
	defer a.mux.Unlock()

	for w := range a.waiters {
		if _, ok := w.topics[event.EventType]; !ok {
			continue
		}
		if event.CorrelationID != w.correlationID && event.AggregateID != w.correlationID {
			continue
		}

		select {
		case w.ch <- event.Clone():
		default:
			// waiter already satisfied
		}
	}

	return nil
}

// Watch registers interest before the caller triggers whatever will
// produce the reply. Registering first closes the window in which the
// reply could arrive with nobody listening.
func (a *EventAwaiter) Watch(correlationID models.ID, topics ...string) *Watch {
	w := &eventWaiter{
		correlationID: correlationID,
		topics:        make(map[string]struct{}, len(topics)),
		ch:            make(chan *events.Event, 1),
	}
	for _, t := range topics {
		w.topics[t] = struct{}{}
	}

	a.mux.Lock()
	a.waiters[w] = struct{}{}
	a.mux.Unlock()

	return &Watch{awaiter: a, waiter: w}
}

// Await registers a waiter and blocks until an event with one of the
// given topics and the given correlation id arrives, the timeout
// elapses, or ctx is cancelled.
func (a *EventAwaiter) Await(ctx context.Context, correlationID models.ID, timeout time.Duration, topics ...string) (*events.Event, error) {
	w := a.Watch(correlationID, topics...)
	defer w.Close()

	return w.Wait(ctx, timeout)
}

// Watch is a registered waiter. Close must be called once the caller
// is done with it.
type Watch struct {
	awaiter *EventAwaiter
	waiter  *eventWaiter
}

// Wait blocks until the watched event arrives, the timeout elapses,
// or ctx is cancelled.
func (w *Watch) Wait(ctx context.Context, timeout time.Duration) (*events.Event, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case event := <-w.waiter.ch:
		return event, nil
	case <-timer.C:
		return nil, ErrAwaitTimeout
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close deregisters the waiter
func (w *Watch) Close() {
	w.awaiter.mux.Lock()
	delete(w.awaiter.waiters, w.waiter)
	w.awaiter.mux.Unlock()
}
