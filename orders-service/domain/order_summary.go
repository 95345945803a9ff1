package domain

import (
	"context"

	"github.com/duche27/eStore-OrdersService/shared/models"
)

// OrderSummary is the read model row projected from the order stream
type OrderSummary struct {
	ID         models.ID         `json:"id" db:"id"`
	UserID     models.ID         `json:"user_id" db:"user_id"`
	ProductID  models.ID         `json:"product_id" db:"product_id"`
	Quantity   int               `json:"quantity" db:"quantity"`
	AddressID  models.ID         `json:"address_id" db:"address_id"`
	Status     OrderStatus       `json:"status" db:"status"`
	Reason     string            `json:"reason,omitempty" db:"reason"`
	Timestamps models.Timestamps `json:"timestamps"`
}

// OrderSummaryRepository stores the queryable order projection
type OrderSummaryRepository interface {
	Save(ctx context.Context, summary *OrderSummary) error
	FindByID(ctx context.Context, orderID models.ID) (*OrderSummary, error)
	FindAll(ctx context.Context, limit, offset int) ([]*OrderSummary, error)
}
