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

func pendingOrder(t *testing.T, orderID models.ID) *domain.Order {
	t.Helper()

	order, err := domain.CreateOrder(orderID, models.GenerateUUID(), models.GenerateUUID(), 1, models.GenerateUUID())
	require.NoError(t, err)
	order.ClearEvents()

	return order
}

func TestApproveOrder_Execute(t *testing.T) {
	orderID := models.GenerateUUID()

	tests := []struct {
		name          string
		command       *ApproveOrderCommand
		setupMocks    func(repo *mocks.MockOrderRepository, publisher *mocks.MockPublisher)
		expectedError string
	}{
		{
			name:    "approves a pending order",
			command: &ApproveOrderCommand{OrderID: orderID},
			setupMocks: func(repo *mocks.MockOrderRepository, publisher *mocks.MockPublisher) {
				repo.EXPECT().Load(mock.Anything, orderID).Return(pendingOrder(t, orderID), nil).Once()
				repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(order *domain.Order) bool {
					return order.Status == domain.OrderStatusApproved
				})).Return(nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:          "requires an order ID",
			command:       &ApproveOrderCommand{},
			setupMocks:    func(repo *mocks.MockOrderRepository, publisher *mocks.MockPublisher) {},
			expectedError: "order ID is required",
		},
		{
			name:    "propagates a load failure",
			command: &ApproveOrderCommand{OrderID: orderID},
			setupMocks: func(repo *mocks.MockOrderRepository, publisher *mocks.MockPublisher) {
				repo.EXPECT().Load(mock.Anything, orderID).
					Return(nil, errors.New("order not found")).Once()
			},
			expectedError: "failed to load order",
		},
		{
			name:    "refuses an order already closed",
			command: &ApproveOrderCommand{OrderID: orderID},
			setupMocks: func(repo *mocks.MockOrderRepository, publisher *mocks.MockPublisher) {
				order := pendingOrder(t, orderID)
				require.NoError(t, order.Reject("item out of stock"))
				repo.EXPECT().Load(mock.Anything, orderID).Return(order, nil).Once()
			},
			expectedError: "cannot be approved",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepository(t)
			publisher := mocks.NewMockPublisher(t)
			tt.setupMocks(repo, publisher)

			useCase := NewApproveOrder(repo, publisher)
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

func TestApproveOrder_IllegalTransitionSurfacesTypedError(t *testing.T) {
	orderID := models.GenerateUUID()
	repo := mocks.NewMockOrderRepository(t)
	publisher := mocks.NewMockPublisher(t)

	order := pendingOrder(t, orderID)
	require.NoError(t, order.Approve())
	order.ClearEvents()
	repo.EXPECT().Load(mock.Anything, orderID).Return(order, nil).Once()

	useCase := NewApproveOrder(repo, publisher)
	err := useCase.Execute(context.Background(), &ApproveOrderCommand{OrderID: orderID})

	var stateErr *domain.InvalidStateError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, domain.OrderStatusApproved, stateErr.Status)
}
