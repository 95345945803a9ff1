package application

import (
	"context"

	"github.com/duche27/eStore-OrdersService/orders-service/domain"
	"github.com/pkg/errors"
)

const defaultPageSize = 50

// ListOrdersQuery represents the query to list orders
type ListOrdersQuery struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ListOrdersResponse represents a page of orders
type ListOrdersResponse struct {
	Orders []*OrderResponse `json:"orders"`
}

// ListOrders use case reads a page of orders from the projection
type ListOrders struct {
	summaryRepository domain.OrderSummaryRepository
}

// NewListOrders creates a new ListOrders use case
func NewListOrders(summaryRepository domain.OrderSummaryRepository) *ListOrders {
	return &ListOrders{
		summaryRepository: summaryRepository,
	}
}

// Execute executes the list orders use case
func (uc *ListOrders) Execute(ctx context.Context, query *ListOrdersQuery) (*ListOrdersResponse, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	offset := query.Offset
	if offset < 0 {
		offset = 0
	}

	summaries, err := uc.summaryRepository.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	response := &ListOrdersResponse{Orders: make([]*OrderResponse, 0, len(summaries))}
	for _, summary := range summaries {
		response.Orders = append(response.Orders, toOrderResponse(summary))
	}

	return response, nil
}
