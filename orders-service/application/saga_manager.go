package application

import (
	"context"
	"sync"

	"github.com/duche27/eStore-OrdersService/shared/events"
	"github.com/duche27/eStore-OrdersService/shared/models"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// ErrSagaNotFound is returned by SagaStore.Load when no saga is open
// for the order
var ErrSagaNotFound = errors.New("saga not found")

// SagaStore persists saga progress between events
type SagaStore interface {
	Load(ctx context.Context, orderID models.ID) (*OrderSagaState, error)
	Save(ctx context.Context, state *OrderSagaState) error
	Delete(ctx context.Context, orderID models.ID) error
}

// SagaManager routes order events to their saga instance. An order
// created event opens the instance, terminal order events close it,
// and everything in between is processed strictly one event at a time
// per order.
type SagaManager struct {
	saga  *OrderSaga
	store SagaStore
	locks sync.Map
}

// NewSagaManager creates a new SagaManager
func NewSagaManager(saga *OrderSaga, store SagaStore) *SagaManager {
	return &SagaManager{saga: saga, store: store}
}

// HandlerID implements the subscriber handler contract
func (m *SagaManager) HandlerID() string {
	return "order-saga-manager"
}

// Handle implements events.EventHandler
func (m *SagaManager) Handle(ctx context.Context, event *events.Event) error {
	if !m.interestedIn(event) {
		return nil
	}

	orderID := event.AggregateID
	lock := m.lockFor(orderID)
	lock.Lock()
	defer lock.Unlock()

	var state *OrderSagaState
	if event.EventType == events.OrderCreatedEvent {
		existing, err := m.store.Load(ctx, orderID)
		if err != nil && !errors.Is(err, ErrSagaNotFound) {
			return errors.Wrap(err, "failed to load saga state")
		}
		if existing != nil {
			// Duplicate delivery of the opening event
			return nil
		}
		state = &OrderSagaState{OrderID: orderID}
	} else {
		loaded, err := m.store.Load(ctx, orderID)
		if errors.Is(err, ErrSagaNotFound) {
			log.Debug().
				Str("order_id", orderID.String()).
				Str("event_type", event.EventType).
				Msg("no open saga for event, dropping")
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to load saga state")
		}
		state = loaded
	}

	if err := m.saga.HandleEvent(ctx, state, event); err != nil {
		return errors.Wrapf(err, "saga failed on event %s", event.EventType)
	}

	if state.Ended {
		return errors.Wrap(m.store.Delete(ctx, orderID), "failed to close saga")
	}

	return errors.Wrap(m.store.Save(ctx, state), "failed to save saga state")
}

func (m *SagaManager) interestedIn(event *events.Event) bool {
	switch event.EventType {
	case events.OrderCreatedEvent,
		events.OrderApprovedEvent,
		events.OrderRejectedEvent,
		events.ProductReservedEvent,
		events.ProductReservationCancelledEvent,
		events.PaymentProcessedEvent,
		events.PaymentCancelledEvent,
		events.OrderShippedEvent,
		events.NotificationSentEvent:
		return true
	}

	return event.Topic.Matches(events.DeadlineTopicPrefix + "#")
}

func (m *SagaManager) lockFor(orderID models.ID) *sync.Mutex {
	lock, _ := m.locks.LoadOrStore(orderID.String(), &sync.Mutex{})
	return lock.(*sync.Mutex)
}
