package application

import (
	"context"
	"time"

	"github.com/duche27/eStore-OrdersService/orders-service/domain"
	"github.com/duche27/eStore-OrdersService/shared/models"
	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned when no order exists for the given ID
var ErrOrderNotFound = errors.New("order not found")

// GetOrderQuery represents the query to get an order
type GetOrderQuery struct {
	OrderID string `json:"order_id"`
}

// OrderResponse represents one order in query responses
type OrderResponse struct {
	OrderID   string             `json:"order_id"`
	UserID    string             `json:"user_id"`
	ProductID string             `json:"product_id"`
	Quantity  int                `json:"quantity"`
	AddressID string             `json:"address_id"`
	Status    domain.OrderStatus `json:"status"`
	Reason    string             `json:"reason,omitempty"`
	CreatedAt string             `json:"created_at"`
	UpdatedAt string             `json:"updated_at"`
}

// GetOrder use case reads one order from the projection
type GetOrder struct {
	summaryRepository domain.OrderSummaryRepository
}

// NewGetOrder creates a new GetOrder use case
func NewGetOrder(summaryRepository domain.OrderSummaryRepository) *GetOrder {
	return &GetOrder{
		summaryRepository: summaryRepository,
	}
}

// Execute executes the get order use case
func (uc *GetOrder) Execute(ctx context.Context, query *GetOrderQuery) (*OrderResponse, error) {
	if query.OrderID == "" {
		return nil, errors.New("order ID is required")
	}

	orderID, err := models.NewID(query.OrderID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid order ID")
	}

	summary, err := uc.summaryRepository.FindByID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	if summary == nil {
		return nil, ErrOrderNotFound
	}

	return toOrderResponse(summary), nil
}

func toOrderResponse(summary *domain.OrderSummary) *OrderResponse {
	return &OrderResponse{
		OrderID:   summary.ID.String(),
		UserID:    summary.UserID.String(),
		ProductID: summary.ProductID.String(),
		Quantity:  summary.Quantity,
		AddressID: summary.AddressID.String(),
		Status:    summary.Status,
		Reason:    summary.Reason,
		CreatedAt: summary.Timestamps.CreatedAt.Format(time.RFC3339),
		UpdatedAt: summary.Timestamps.UpdatedAt.Format(time.RFC3339),
	}
}
