package infrastructure

import (
	"context"
	"testing"

	"github.com/duche27/eStore-OrdersService/orders-service/application"
	"github.com/duche27/eStore-OrdersService/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemorySagaStore(t *testing.T) {
	ctx := context.Background()
	store := NewInMemorySagaStore()
	orderID := models.GenerateUUID()

	t.Run("load before save yields not found", func(t *testing.T) {
		_, err := store.Load(ctx, orderID)
		assert.ErrorIs(t, err, application.ErrSagaNotFound)
	})

	t.Run("save then load round trips", func(t *testing.T) {
		state := &application.OrderSagaState{
			OrderID:               orderID,
			Quantity:              2,
			PaymentDeadlineHandle: "deadline-1",
		}
		require.NoError(t, store.Save(ctx, state))

		loaded, err := store.Load(ctx, orderID)
		require.NoError(t, err)
		assert.Equal(t, state, loaded)
	})

	t.Run("loaded state is a copy", func(t *testing.T) {
		loaded, err := store.Load(ctx, orderID)
		require.NoError(t, err)
		loaded.Ended = true

		again, err := store.Load(ctx, orderID)
		require.NoError(t, err)
		assert.False(t, again.Ended)
	})

	t.Run("delete closes the saga", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, orderID))

		_, err := store.Load(ctx, orderID)
		assert.ErrorIs(t, err, application.ErrSagaNotFound)
	})
}
