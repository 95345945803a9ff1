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

func TestCreateOrder_Execute(t *testing.T) {
	orderID := models.GenerateUUID()
	userID := models.GenerateUUID()
	productID := models.GenerateUUID()
	addressID := models.GenerateUUID()

	validCommand := &CreateOrderCommand{
		OrderID:   orderID,
		UserID:    userID,
		ProductID: productID,
		Quantity:  2,
		AddressID: addressID,
	}

	tests := []struct {
		name          string
		command       *CreateOrderCommand
		setupMocks    func(repo *mocks.MockOrderRepository, publisher *mocks.MockPublisher)
		expectedError string
	}{
		{
			name:    "creates and publishes the order",
			command: validCommand,
			setupMocks: func(repo *mocks.MockOrderRepository, publisher *mocks.MockPublisher) {
				repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(order *domain.Order) bool {
					return order.ID == orderID && order.Status == domain.OrderStatusOnValidation
				})).Return(nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "rejects an invalid command",
			command: &CreateOrderCommand{
				OrderID:   orderID,
				UserID:    userID,
				ProductID: productID,
				Quantity:  0,
				AddressID: addressID,
			},
			setupMocks:    func(repo *mocks.MockOrderRepository, publisher *mocks.MockPublisher) {},
			expectedError: "quantity must be positive",
		},
		{
			name:    "propagates a store failure",
			command: validCommand,
			setupMocks: func(repo *mocks.MockOrderRepository, publisher *mocks.MockPublisher) {
				repo.EXPECT().Save(mock.Anything, mock.Anything).
					Return(errors.New("connection refused")).Once()
			},
			expectedError: "failed to save order",
		},
		{
			name:    "propagates a publish failure",
			command: validCommand,
			setupMocks: func(repo *mocks.MockOrderRepository, publisher *mocks.MockPublisher) {
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

			useCase := NewCreateOrder(repo, publisher)
			response, err := useCase.Execute(context.Background(), tt.command)

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Nil(t, response)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, orderID.String(), response.OrderID)
			assert.Equal(t, domain.OrderStatusOnValidation, response.Status)
		})
	}
}
