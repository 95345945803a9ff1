package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/duche27/eStore-OrdersService/orders-service/application"
	"github.com/duche27/eStore-OrdersService/orders-service/domain"
	"github.com/duche27/eStore-OrdersService/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receiveUpdate(t *testing.T, sub *StatusSubscription) *application.OrderStatusUpdate {
	t.Helper()

	select {
	case update := <-sub.Updates():
		return update
	case <-time.After(time.Second):
		t.Fatal("no status update received")
		return nil
	}
}

func TestInProcessStatusNotifier_DeliversToWatcher(t *testing.T) {
	notifier := NewInProcessStatusNotifier()
	orderID := models.GenerateUUID()

	sub := notifier.Subscribe(orderID)
	defer sub.Close()

	err := notifier.Notify(context.Background(), &application.OrderStatusUpdate{
		OrderID: orderID,
		Status:  domain.OrderStatusApproved,
	})
	require.NoError(t, err)

	update := receiveUpdate(t, sub)
	assert.Equal(t, domain.OrderStatusApproved, update.Status)
}

func TestInProcessStatusNotifier_LateWatcherGetsRetainedUpdate(t *testing.T) {
	notifier := NewInProcessStatusNotifier()
	orderID := models.GenerateUUID()

	err := notifier.Notify(context.Background(), &application.OrderStatusUpdate{
		OrderID: orderID,
		Status:  domain.OrderStatusRejected,
		Reason:  "item out of stock",
	})
	require.NoError(t, err)

	// Subscribing after the order closed still answers immediately
	sub := notifier.Subscribe(orderID)
	defer sub.Close()

	update := receiveUpdate(t, sub)
	assert.Equal(t, domain.OrderStatusRejected, update.Status)
	assert.Equal(t, "item out of stock", update.Reason)
}

func TestInProcessStatusNotifier_FansOutToAllWatchers(t *testing.T) {
	notifier := NewInProcessStatusNotifier()
	orderID := models.GenerateUUID()

	first := notifier.Subscribe(orderID)
	defer first.Close()
	second := notifier.Subscribe(orderID)
	defer second.Close()

	err := notifier.Notify(context.Background(), &application.OrderStatusUpdate{
		OrderID: orderID,
		Status:  domain.OrderStatusApproved,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusApproved, receiveUpdate(t, first).Status)
	assert.Equal(t, domain.OrderStatusApproved, receiveUpdate(t, second).Status)
}

func TestInProcessStatusNotifier_ClosedWatcherIsNotDelivered(t *testing.T) {
	notifier := NewInProcessStatusNotifier()
	orderID := models.GenerateUUID()

	sub := notifier.Subscribe(orderID)
	sub.Close()
	sub.Close() // idempotent

	err := notifier.Notify(context.Background(), &application.OrderStatusUpdate{
		OrderID: orderID,
		Status:  domain.OrderStatusApproved,
	})
	require.NoError(t, err)

	select {
	case <-sub.Updates():
		t.Fatal("closed subscription received an update")
	default:
	}
}

func TestInProcessStatusNotifier_OtherOrdersUnaffected(t *testing.T) {
	notifier := NewInProcessStatusNotifier()
	watched := models.GenerateUUID()
	other := models.GenerateUUID()

	sub := notifier.Subscribe(watched)
	defer sub.Close()

	err := notifier.Notify(context.Background(), &application.OrderStatusUpdate{
		OrderID: other,
		Status:  domain.OrderStatusApproved,
	})
	require.NoError(t, err)

	select {
	case <-sub.Updates():
		t.Fatal("update for another order was delivered")
	default:
	}
}
