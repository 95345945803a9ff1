package application

import (
	"context"

	"github.com/duche27/eStore-OrdersService/orders-service/domain"
	"github.com/duche27/eStore-OrdersService/shared/models"
)

// OrderStatusUpdate is pushed to subscribers watching an order reach
// a terminal status
type OrderStatusUpdate struct {
	OrderID models.ID          `json:"order_id"`
	Status  domain.OrderStatus `json:"status"`
	Reason  string             `json:"reason,omitempty"`
}

// StatusNotifier delivers terminal status updates to interested watchers
type StatusNotifier interface {
	Notify(ctx context.Context, update *OrderStatusUpdate) error
}
