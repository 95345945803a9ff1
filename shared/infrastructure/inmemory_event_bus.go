package infrastructure

import (
	"context"
	"sync"

	"github.com/duche27/eStore-OrdersService/shared/events"
	"github.com/rs/zerolog/log"
)

var (
	_ events.Publisher  = (*InMemoryEventBus)(nil)
	_ events.Subscriber = (*InMemoryEventBus)(nil)
)

// InMemoryEventBus delivers published events straight to the subscribed
// handler, in-process. Delivery is asynchronous but serialized per
// aggregate id, matching the single-writer-per-key guarantee the SQS
// path provides through the saga manager. Used for local runs and tests.
type InMemoryEventBus struct {
	mux      sync.RWMutex
	handler  events.EventHandler
	keyLocks sync.Map // aggregate id -> *sync.Mutex
	wg       sync.WaitGroup
}

// NewInMemoryEventBus creates a bus with no subscriber yet
func NewInMemoryEventBus() *InMemoryEventBus {
	return &InMemoryEventBus{}
}

// Subscribe registers the root handler; the eventType argument is
// ignored, filtering happens in the handler fan-out.
func (b *InMemoryEventBus) Subscribe(_ context.Context, _ string, handler events.EventHandler) error {
	b.mux.Lock()
	defer b.mux.Unlock()
	b.handler = handler
	return nil
}

// Publish implements events.Publisher
func (b *InMemoryEventBus) Publish(_ context.Context, evts ...*events.Event) error {
	for _, event := range evts {
		event := event.Clone()
		b.wg.Add(1)
		go func() {
			defer b.wg.Done()
			b.deliver(event)
		}()
	}
	return nil
}

// Wait blocks until every published event has been handled
func (b *InMemoryEventBus) Wait() {
	b.wg.Wait()
}

func (b *InMemoryEventBus) deliver(event *events.Event) {
	b.mux.RLock()
	handler := b.handler
	b.mux.RUnlock()

	if handler == nil {
		return
	}

	actual, _ := b.keyLocks.LoadOrStore(event.AggregateID.String(), &sync.Mutex{})
	lock := actual.(*sync.Mutex)

	lock.Lock()
	defer lock.Unlock()

	if err := handler.Handle(context.Background(), event); err != nil {
		log.Error().Err(err).
			Str("topic", string(event.Topic)).
			Str("aggregate_id", event.AggregateID.String()).
			Msg("event handler failed")
	}
}
