package infrastructure

import (
	"context"
	"sync"

	"github.com/duche27/eStore-OrdersService/orders-service/application"
	"github.com/duche27/eStore-OrdersService/shared/models"
)

// InMemorySagaStore implements SagaStore in memory, for local runs
// and tests
type InMemorySagaStore struct {
	mu     sync.RWMutex
	states map[string]application.OrderSagaState
}

// NewInMemorySagaStore creates a new InMemorySagaStore
func NewInMemorySagaStore() *InMemorySagaStore {
	return &InMemorySagaStore{states: make(map[string]application.OrderSagaState)}
}

// Load reads the saga state for an order
func (s *InMemorySagaStore) Load(_ context.Context, orderID models.ID) (*application.OrderSagaState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[orderID.String()]
	if !ok {
		return nil, application.ErrSagaNotFound
	}

	copied := state
	return &copied, nil
}

// Save upserts the saga state for an order
func (s *InMemorySagaStore) Save(_ context.Context, state *application.OrderSagaState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.states[state.OrderID.String()] = *state
	return nil
}

// Delete removes the saga state once the order reached a terminal status
func (s *InMemorySagaStore) Delete(_ context.Context, orderID models.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.states, orderID.String())
	return nil
}

var _ application.SagaStore = (*InMemorySagaStore)(nil)
