package bus

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// InMemoryBus is a registry-backed command and query bus for in-process
// wiring. Commands addressed to the same aggregate are executed one at a
// time in arrival order; commands for different aggregates run fully in
// parallel.
type InMemoryBus struct {
	mux      sync.RWMutex
	handlers map[string]CommandHandler
	queries  map[string]QueryHandler
	keyLocks sync.Map // aggregate id -> *sync.Mutex
}

// NewInMemoryBus creates an empty bus
func NewInMemoryBus() *InMemoryBus {
	return &InMemoryBus{
		handlers: make(map[string]CommandHandler),
		queries:  make(map[string]QueryHandler),
	}
}

// Register registers the single handler for a command name
func (b *InMemoryBus) Register(commandName string, handler CommandHandler) {
	b.mux.Lock()
	defer b.mux.Unlock()
	b.handlers[commandName] = handler
}

// RegisterQuery registers the single handler for a query name
func (b *InMemoryBus) RegisterQuery(queryName string, handler QueryHandler) {
	b.mux.Lock()
	defer b.mux.Unlock()
	b.queries[queryName] = handler
}

// Send executes the command's handler and reports its error, if any
func (b *InMemoryBus) Send(ctx context.Context, cmd Command) error {
	_, err := b.execute(ctx, cmd)
	return err
}

// SendAndWait executes the command's handler, waiting at most timeout
// for its result. An elapsed bound yields ErrCommandTimeout.
func (b *InMemoryBus) SendAndWait(ctx context.Context, cmd Command, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type outcome struct {
		result string
		err    error
	}

	done := make(chan outcome, 1)
	go func() {
		result, err := b.execute(ctx, cmd)
		done <- outcome{result: result, err: err}
	}()

	select {
	case out := <-done:
		if errors.Is(out.err, context.DeadlineExceeded) {
			return "", ErrCommandTimeout
		}
		return out.result, out.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", ErrCommandTimeout
		}
		return "", ctx.Err()
	}
}

// Query executes the query's handler
func (b *InMemoryBus) Query(ctx context.Context, query Query) (interface{}, error) {
	b.mux.RLock()
	handler, ok := b.queries[query.QueryName()]
	b.mux.RUnlock()

	if !ok {
		return nil, errors.Wrap(ErrNoQueryHandler, query.QueryName())
	}

	return handler.Handle(ctx, query)
}

func (b *InMemoryBus) execute(ctx context.Context, cmd Command) (string, error) {
	b.mux.RLock()
	handler, ok := b.handlers[cmd.CommandName()]
	b.mux.RUnlock()

	if !ok {
		return "", errors.Wrap(ErrNoHandler, cmd.CommandName())
	}

	lock := b.lockFor(cmd.AggregateID().String())
	lock.Lock()
	defer lock.Unlock()

	return handler.Handle(ctx, cmd)
}

func (b *InMemoryBus) lockFor(key string) *sync.Mutex {
	actual, _ := b.keyLocks.LoadOrStore(key, &sync.Mutex{})
	return actual.(*sync.Mutex)
}
