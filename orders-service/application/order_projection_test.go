package application

import (
	"context"
	"testing"

	"github.com/duche27/eStore-OrdersService/orders-service/domain"
	"github.com/duche27/eStore-OrdersService/orders-service/mocks"
	"github.com/duche27/eStore-OrdersService/shared/events"
	"github.com/duche27/eStore-OrdersService/shared/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func existingSummary(orderID models.ID) *domain.OrderSummary {
	return &domain.OrderSummary{
		ID:         orderID,
		UserID:     models.GenerateUUID(),
		ProductID:  models.GenerateUUID(),
		Quantity:   2,
		AddressID:  models.GenerateUUID(),
		Status:     domain.OrderStatusOnValidation,
		Timestamps: models.NewTimestamps(),
	}
}

func TestOrderProjector_Handle(t *testing.T) {
	orderID := models.GenerateUUID()
	userID := models.GenerateUUID()
	productID := models.GenerateUUID()
	addressID := models.GenerateUUID()

	tests := []struct {
		name          string
		event         *events.Event
		setupMocks    func(repo *mocks.MockOrderSummaryRepository)
		expectedError string
	}{
		{
			name:  "order created inserts the summary row",
			event: orderCreatedEvent(orderID, userID, productID, 2, addressID),
			setupMocks: func(repo *mocks.MockOrderSummaryRepository) {
				repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(summary *domain.OrderSummary) bool {
					return summary.ID == orderID &&
						summary.UserID == userID &&
						summary.Status == domain.OrderStatusOnValidation
				})).Return(nil).Once()
			},
		},
		{
			name: "order approved flips the status",
			event: events.NewEvent(orderID, events.OrderApprovedEvent, domain.OrderApprovedData{
				OrderID: orderID,
				Status:  domain.OrderStatusApproved,
			}),
			setupMocks: func(repo *mocks.MockOrderSummaryRepository) {
				repo.EXPECT().FindByID(mock.Anything, orderID).Return(existingSummary(orderID), nil).Once()
				repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(summary *domain.OrderSummary) bool {
					return summary.Status == domain.OrderStatusApproved
				})).Return(nil).Once()
			},
		},
		{
			name: "order rejected records the reason",
			event: events.NewEvent(orderID, events.OrderRejectedEvent, domain.OrderRejectedData{
				OrderID: orderID,
				Status:  domain.OrderStatusRejected,
				Reason:  "item out of stock",
			}),
			setupMocks: func(repo *mocks.MockOrderSummaryRepository) {
				repo.EXPECT().FindByID(mock.Anything, orderID).Return(existingSummary(orderID), nil).Once()
				repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(summary *domain.OrderSummary) bool {
					return summary.Status == domain.OrderStatusRejected &&
						summary.Reason == "item out of stock"
				})).Return(nil).Once()
			},
		},
		{
			name: "status update without a summary row is dropped",
			event: events.NewEvent(orderID, events.OrderApprovedEvent, domain.OrderApprovedData{
				OrderID: orderID,
				Status:  domain.OrderStatusApproved,
			}),
			setupMocks: func(repo *mocks.MockOrderSummaryRepository) {
				repo.EXPECT().FindByID(mock.Anything, orderID).
					Return((*domain.OrderSummary)(nil), nil).Once()
			},
		},
		{
			name:       "unrelated events are ignored",
			event:      events.NewEvent(orderID, events.ProductReservedEvent, nil),
			setupMocks: func(repo *mocks.MockOrderSummaryRepository) {},
		},
		{
			name:  "store failure is propagated",
			event: orderCreatedEvent(orderID, userID, productID, 2, addressID),
			setupMocks: func(repo *mocks.MockOrderSummaryRepository) {
				repo.EXPECT().Save(mock.Anything, mock.Anything).
					Return(errors.New("connection refused")).Once()
			},
			expectedError: "failed to project order creation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockOrderSummaryRepository(t)
			tt.setupMocks(repo)

			projector := NewOrderProjector(repo)
			err := projector.Handle(context.Background(), tt.event)

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				return
			}

			require.NoError(t, err)
		})
	}
}
