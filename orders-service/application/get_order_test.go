package application

import (
	"context"
	"testing"

	"github.com/duche27/eStore-OrdersService/orders-service/domain"
	"github.com/duche27/eStore-OrdersService/orders-service/mocks"
	"github.com/duche27/eStore-OrdersService/shared/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetOrder_Execute(t *testing.T) {
	orderID := models.GenerateUUID()

	tests := []struct {
		name          string
		query         *GetOrderQuery
		setupMocks    func(repo *mocks.MockOrderSummaryRepository)
		expectedError error
		errorContains string
	}{
		{
			name:  "returns the order",
			query: &GetOrderQuery{OrderID: orderID.String()},
			setupMocks: func(repo *mocks.MockOrderSummaryRepository) {
				summary := existingSummary(orderID)
				summary.Status = domain.OrderStatusRejected
				summary.Reason = "item out of stock"
				repo.EXPECT().FindByID(mock.Anything, orderID).Return(summary, nil).Once()
			},
		},
		{
			name:          "requires an order ID",
			query:         &GetOrderQuery{},
			setupMocks:    func(repo *mocks.MockOrderSummaryRepository) {},
			errorContains: "order ID is required",
		},
		{
			name:          "refuses a malformed order ID",
			query:         &GetOrderQuery{OrderID: "not-a-uuid"},
			setupMocks:    func(repo *mocks.MockOrderSummaryRepository) {},
			errorContains: "invalid order ID",
		},
		{
			name:  "unknown order yields not found",
			query: &GetOrderQuery{OrderID: orderID.String()},
			setupMocks: func(repo *mocks.MockOrderSummaryRepository) {
				repo.EXPECT().FindByID(mock.Anything, orderID).
					Return((*domain.OrderSummary)(nil), nil).Once()
			},
			expectedError: ErrOrderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockOrderSummaryRepository(t)
			tt.setupMocks(repo)

			useCase := NewGetOrder(repo)
			response, err := useCase.Execute(context.Background(), tt.query)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, response)
				return
			}
			if tt.errorContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				assert.Nil(t, response)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, orderID.String(), response.OrderID)
			assert.Equal(t, domain.OrderStatusRejected, response.Status)
			assert.Equal(t, "item out of stock", response.Reason)
		})
	}
}

func TestListOrders_Execute(t *testing.T) {
	t.Run("defaults the page size", func(t *testing.T) {
		repo := mocks.NewMockOrderSummaryRepository(t)
		repo.EXPECT().FindAll(mock.Anything, defaultPageSize, 0).
			Return([]*domain.OrderSummary{existingSummary(models.GenerateUUID())}, nil).Once()

		useCase := NewListOrders(repo)
		response, err := useCase.Execute(context.Background(), &ListOrdersQuery{Offset: -3})

		require.NoError(t, err)
		require.Len(t, response.Orders, 1)
	})

	t.Run("passes the requested page through", func(t *testing.T) {
		repo := mocks.NewMockOrderSummaryRepository(t)
		repo.EXPECT().FindAll(mock.Anything, 10, 20).
			Return([]*domain.OrderSummary{}, nil).Once()

		useCase := NewListOrders(repo)
		response, err := useCase.Execute(context.Background(), &ListOrdersQuery{Limit: 10, Offset: 20})

		require.NoError(t, err)
		assert.Empty(t, response.Orders)
	})

	t.Run("propagates a store failure", func(t *testing.T) {
		repo := mocks.NewMockOrderSummaryRepository(t)
		repo.EXPECT().FindAll(mock.Anything, defaultPageSize, 0).
			Return(nil, errors.New("connection refused")).Once()

		useCase := NewListOrders(repo)
		_, err := useCase.Execute(context.Background(), &ListOrdersQuery{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list orders")
	})
}
