package infrastructure

import (
	"context"

	"github.com/duche27/eStore-OrdersService/orders-service/domain"
	"github.com/duche27/eStore-OrdersService/shared/events"
	"github.com/duche27/eStore-OrdersService/shared/models"
	"github.com/pkg/errors"
)

// EventSourcedOrderRepository implements OrderRepository on top of the
// event store. Load replays the stream; Save appends the recorded
// events at the version the order was loaded at, so two writers racing
// on the same order lose deterministically.
type EventSourcedOrderRepository struct {
	eventStore events.EventStore
}

// NewEventSourcedOrderRepository creates a new EventSourcedOrderRepository
func NewEventSourcedOrderRepository(eventStore events.EventStore) *EventSourcedOrderRepository {
	return &EventSourcedOrderRepository{eventStore: eventStore}
}

// Load rebuilds an order from its event stream
func (r *EventSourcedOrderRepository) Load(ctx context.Context, orderID models.ID) (*domain.Order, error) {
	history, err := r.eventStore.GetEvents(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read order stream")
	}

	order, err := domain.ReplayOrder(history)
	if err != nil {
		return nil, err
	}

	return order, nil
}

// Save appends the order's recorded events to its stream. The events
// stay on the order so the caller can publish them afterwards.
func (r *EventSourcedOrderRepository) Save(ctx context.Context, order *domain.Order) error {
	recorded := order.Events()
	if len(recorded) == 0 {
		return nil
	}

	err := r.eventStore.SaveEvents(ctx, order.ID, recorded, order.CommittedVersion())
	if err != nil {
		return errors.Wrap(err, "failed to append order events")
	}

	return nil
}

var _ domain.OrderRepository = (*EventSourcedOrderRepository)(nil)
