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

func TestRejectOrder_Execute(t *testing.T) {
	orderID := models.GenerateUUID()

	tests := []struct {
		name          string
		command       *RejectOrderCommand
		setupMocks    func(repo *mocks.MockOrderRepository, publisher *mocks.MockPublisher)
		expectedError string
	}{
		{
			name:    "rejects a pending order with the reason untouched",
			command: &RejectOrderCommand{OrderID: orderID, Reason: "item out of stock"},
			setupMocks: func(repo *mocks.MockOrderRepository, publisher *mocks.MockPublisher) {
				repo.EXPECT().Load(mock.Anything, orderID).Return(pendingOrder(t, orderID), nil).Once()
				repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(order *domain.Order) bool {
					return order.Status == domain.OrderStatusRejected && order.Reason == "item out of stock"
				})).Return(nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:          "requires an order ID",
			command:       &RejectOrderCommand{Reason: "item out of stock"},
			setupMocks:    func(repo *mocks.MockOrderRepository, publisher *mocks.MockPublisher) {},
			expectedError: "order ID is required",
		},
		{
			name:    "propagates a load failure",
			command: &RejectOrderCommand{OrderID: orderID, Reason: "item out of stock"},
			setupMocks: func(repo *mocks.MockOrderRepository, publisher *mocks.MockPublisher) {
				repo.EXPECT().Load(mock.Anything, orderID).
					Return(nil, errors.New("order not found")).Once()
			},
			expectedError: "failed to load order",
		},
		{
			name:    "refuses an order already approved",
			command: &RejectOrderCommand{OrderID: orderID, Reason: "too late"},
			setupMocks: func(repo *mocks.MockOrderRepository, publisher *mocks.MockPublisher) {
				order := pendingOrder(t, orderID)
				require.NoError(t, order.Approve())
				repo.EXPECT().Load(mock.Anything, orderID).Return(order, nil).Once()
			},
			expectedError: "cannot be rejected",
		},
		{
			name:    "propagates a publish failure",
			command: &RejectOrderCommand{OrderID: orderID, Reason: "item out of stock"},
			setupMocks: func(repo *mocks.MockOrderRepository, publisher *mocks.MockPublisher) {
				repo.EXPECT().Load(mock.Anything, orderID).Return(pendingOrder(t, orderID), nil).Once()
				repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).
					Return(errors.New("broker unavailable")).Once()
			},
			expectedError: "failed to publish events",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepository(t)
			publisher := mocks.NewMockPublisher(t)
			tt.setupMocks(repo, publisher)

			useCase := NewRejectOrder(repo, publisher)
			err := useCase.Execute(context.Background(), tt.command)

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				return
			}

			require.NoError(t, err)
		})
	}
}
