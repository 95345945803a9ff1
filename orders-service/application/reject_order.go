package application

import (
	"context"

	"github.com/duche27/eStore-OrdersService/orders-service/domain"
	"github.com/duche27/eStore-OrdersService/shared/events"
	"github.com/pkg/errors"
)

// RejectOrder use case closes a validated order as REJECTED. The
// reason travels unmodified into the order stream so the read model
// shows the original failure, not a paraphrase of it.
type RejectOrder struct {
	orderRepository domain.OrderRepository
	eventPublisher  events.Publisher
}

// NewRejectOrder creates a new RejectOrder use case
func NewRejectOrder(
	orderRepository domain.OrderRepository,
	eventPublisher events.Publisher,
) *RejectOrder {
	return &RejectOrder{
		orderRepository: orderRepository,
		eventPublisher:  eventPublisher,
	}
}

// Execute executes the reject order use case
func (uc *RejectOrder) Execute(ctx context.Context, cmd *RejectOrderCommand) error {
	if cmd.OrderID.IsEmpty() {
		return errors.New("order ID is required")
	}

	order, err := uc.orderRepository.Load(ctx, cmd.OrderID)
	if err != nil {
		return errors.Wrap(err, "failed to load order")
	}

	if err := order.Reject(cmd.Reason); err != nil {
		return err
	}

	if err := uc.orderRepository.Save(ctx, order); err != nil {
		return errors.Wrap(err, "failed to save order")
	}

	if err := uc.eventPublisher.Publish(ctx, order.Events()...); err != nil {
		return errors.Wrap(err, "failed to publish events")
	}

	return nil
}
