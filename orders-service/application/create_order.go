package application

import (
	"context"

	"github.com/duche27/eStore-OrdersService/orders-service/domain"
	"github.com/duche27/eStore-OrdersService/shared/events"
	"github.com/pkg/errors"
)

// CreateOrderResponse represents the response after creating an order
type CreateOrderResponse struct {
	OrderID string             `json:"order_id"`
	Status  domain.OrderStatus `json:"status"`
}

// CreateOrder use case opens a new order and hands it to the
// validation pipeline
type CreateOrder struct {
	orderRepository domain.OrderRepository
	eventPublisher  events.Publisher
}

// NewCreateOrder creates a new CreateOrder use case
func NewCreateOrder(
	orderRepository domain.OrderRepository,
	eventPublisher events.Publisher,
) *CreateOrder {
	return &CreateOrder{
		orderRepository: orderRepository,
		eventPublisher:  eventPublisher,
	}
}

// Execute executes the create order use case
func (uc *CreateOrder) Execute(ctx context.Context, cmd *CreateOrderCommand) (*CreateOrderResponse, error) {
	order, err := domain.CreateOrder(cmd.OrderID, cmd.UserID, cmd.ProductID, cmd.Quantity, cmd.AddressID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid command")
	}

	if err := uc.orderRepository.Save(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to save order")
	}

	if err := uc.eventPublisher.Publish(ctx, order.Events()...); err != nil {
		return nil, errors.Wrap(err, "failed to publish events")
	}

	return &CreateOrderResponse{
		OrderID: order.ID.String(),
		Status:  order.Status,
	}, nil
}
