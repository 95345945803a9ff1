package application

import (
	"context"

	"github.com/duche27/eStore-OrdersService/orders-service/domain"
	"github.com/duche27/eStore-OrdersService/shared/events"
	"github.com/pkg/errors"
)

// ApproveOrder use case closes a validated order as APPROVED
type ApproveOrder struct {
	orderRepository domain.OrderRepository
	eventPublisher  events.Publisher
}

// NewApproveOrder creates a new ApproveOrder use case
func NewApproveOrder(
	orderRepository domain.OrderRepository,
	eventPublisher events.Publisher,
) *ApproveOrder {
	return &ApproveOrder{
		orderRepository: orderRepository,
		eventPublisher:  eventPublisher,
	}
}

// Execute executes the approve order use case
func (uc *ApproveOrder) Execute(ctx context.Context, cmd *ApproveOrderCommand) error {
	if cmd.OrderID.IsEmpty() {
		return errors.New("order ID is required")
	}

	order, err := uc.orderRepository.Load(ctx, cmd.OrderID)
	if err != nil {
		return errors.Wrap(err, "failed to load order")
	}

	if err := order.Approve(); err != nil {
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
