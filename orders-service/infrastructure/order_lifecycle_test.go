package infrastructure

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/duche27/eStore-OrdersService/orders-service/application"
	"github.com/duche27/eStore-OrdersService/orders-service/domain"
	"github.com/duche27/eStore-OrdersService/orders-service/mocks"
	"github.com/duche27/eStore-OrdersService/shared/bus"
	"github.com/duche27/eStore-OrdersService/shared/events"
	sharedinfra "github.com/duche27/eStore-OrdersService/shared/infrastructure"
	"github.com/duche27/eStore-OrdersService/shared/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Drives one order through the whole in-process wiring: real use cases
// over the in-memory event store, real saga manager and store, stubbed
// capabilities on the command bus. The shipment notification fails on
// purpose; the order must still end APPROVED with both deadlines
// disarmed and no compensation issued.
func TestOrderLifecycle_ApprovedDespiteNotificationFailure(t *testing.T) {
	ctx := context.Background()
	orderID := models.GenerateUUID()
	userID := models.GenerateUUID()
	productID := models.GenerateUUID()
	addressID := models.GenerateUUID()

	eventBus := sharedinfra.NewInMemoryEventBus()
	eventStore := sharedinfra.NewInMemoryEventStore()
	orderRepository := NewEventSourcedOrderRepository(eventStore)
	sagaStore := NewInMemorySagaStore()
	notifier := NewInProcessStatusNotifier()
	commandBus := bus.NewInMemoryBus()

	var approvals, rejections, compensations int32

	// Order commands run the real use cases
	createOrder := application.NewCreateOrder(orderRepository, eventBus)
	approveOrder := application.NewApproveOrder(orderRepository, eventBus)
	rejectOrder := application.NewRejectOrder(orderRepository, eventBus)
	commandBus.Register(application.ApproveOrderCommandName, bus.CommandHandlerFunc(
		func(ctx context.Context, cmd bus.Command) (string, error) {
			atomic.AddInt32(&approvals, 1)
			c := cmd.(application.ApproveOrderCommand)
			return c.OrderID.String(), approveOrder.Execute(ctx, &c)
		}))
	commandBus.Register(application.RejectOrderCommandName, bus.CommandHandlerFunc(
		func(ctx context.Context, cmd bus.Command) (string, error) {
			atomic.AddInt32(&rejections, 1)
			c := cmd.(application.RejectOrderCommand)
			return c.OrderID.String(), rejectOrder.Execute(ctx, &c)
		}))

	// Capability stubs answer like the remote services would
	commandBus.Register(application.ReserveProductCommandName, bus.CommandHandlerFunc(
		func(ctx context.Context, cmd bus.Command) (string, error) {
			c := cmd.(application.ReserveProductCommand)
			return c.ProductID.String(), eventBus.Publish(ctx,
				events.NewEvent(c.OrderID, events.ProductReservedEvent, domain.ProductReservedData{
					OrderID:   c.OrderID,
					ProductID: c.ProductID,
					Quantity:  c.Quantity,
					UserID:    c.UserID,
				}))
		}))
	commandBus.Register(application.ProcessPaymentCommandName, bus.CommandHandlerFunc(
		func(ctx context.Context, cmd bus.Command) (string, error) {
			c := cmd.(application.ProcessPaymentCommand)
			return c.PaymentID.String(), eventBus.Publish(ctx,
				events.NewEvent(c.OrderID, events.PaymentProcessedEvent, domain.PaymentProcessedData{
					OrderID:   c.OrderID,
					PaymentID: c.PaymentID,
				}))
		}))
	commandBus.Register(application.ShipOrderCommandName, bus.CommandHandlerFunc(
		func(ctx context.Context, cmd bus.Command) (string, error) {
			c := cmd.(application.ShipOrderCommand)
			return c.ShipmentID.String(), eventBus.Publish(ctx,
				events.NewEvent(c.OrderID, events.OrderShippedEvent, domain.OrderShippedData{
					OrderID:    c.OrderID,
					ShipmentID: c.ShipmentID,
				}))
		}))
	commandBus.Register(application.SendNotificationCommandName, bus.CommandHandlerFunc(
		func(ctx context.Context, cmd bus.Command) (string, error) {
			return "", errors.New("mail relay down")
		}))
	recordCompensation := bus.CommandHandlerFunc(
		func(ctx context.Context, cmd bus.Command) (string, error) {
			atomic.AddInt32(&compensations, 1)
			return "", nil
		})
	commandBus.Register(application.CancelProductReservationCommandName, recordCompensation)
	commandBus.Register(application.CancelPaymentCommandName, recordCompensation)

	commandBus.RegisterQuery(application.FetchUserPaymentDetailsQueryName,
		NewStaticUserDirectory(&domain.User{
			UserID:    userID,
			FirstName: "John",
			LastName:  "Doe",
			Email:     "john.doe@example.com",
			PaymentDetails: domain.PaymentDetails{
				CardNumber:      "4242424242424242",
				ValidUntilMonth: 12,
				ValidUntilYear:  2030,
			},
		}))

	// Both deadlines must be armed exactly once and disarmed exactly once
	scheduler := mocks.NewMockScheduler(t)
	scheduler.EXPECT().Schedule(mock.Anything, mock.Anything, application.PaymentProcessingDeadline, mock.Anything).
		Return("payment-handle", nil).Once()
	scheduler.EXPECT().Schedule(mock.Anything, mock.Anything, application.ShipmentProcessingDeadline, mock.Anything).
		Return("shipment-handle", nil).Once()
	scheduler.EXPECT().Cancel(application.PaymentProcessingDeadline, "payment-handle").Once()
	scheduler.EXPECT().Cancel(application.ShipmentProcessingDeadline, "shipment-handle").Once()

	saga := application.NewOrderSaga(commandBus, commandBus, scheduler, notifier, application.DefaultOrderSagaConfig())
	manager := application.NewSagaManager(saga, sagaStore)
	require.NoError(t, eventBus.Subscribe(ctx, "", manager))

	subscription := notifier.Subscribe(orderID)
	defer subscription.Close()

	response, err := createOrder.Execute(ctx, &application.CreateOrderCommand{
		OrderID:   orderID,
		UserID:    userID,
		ProductID: productID,
		Quantity:  2,
		AddressID: addressID,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusOnValidation, response.Status)

	eventBus.Wait()

	assert.EqualValues(t, 1, atomic.LoadInt32(&approvals))
	assert.EqualValues(t, 0, atomic.LoadInt32(&rejections))
	assert.EqualValues(t, 0, atomic.LoadInt32(&compensations))

	order, err := orderRepository.Load(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusApproved, order.Status)

	_, err = sagaStore.Load(ctx, orderID)
	assert.ErrorIs(t, err, application.ErrSagaNotFound)

	select {
	case update := <-subscription.Updates():
		assert.Equal(t, domain.OrderStatusApproved, update.Status)
	case <-time.After(time.Second):
		t.Fatal("no terminal status update received")
	}
}
