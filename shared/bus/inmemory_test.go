package bus

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/duche27/eStore-OrdersService/shared/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCommand struct {
	name        string
	aggregateID models.ID
}

func (c testCommand) CommandName() string    { return c.name }
func (c testCommand) AggregateID() models.ID { return c.aggregateID }

type testQuery struct{ name string }

func (q testQuery) QueryName() string { return q.name }

func TestInMemoryBus_Send(t *testing.T) {
	tests := []struct {
		name          string
		handler       CommandHandlerFunc
		register      bool
		expectedError string
	}{
		{
			name: "handler succeeds",
			handler: func(ctx context.Context, cmd Command) (string, error) {
				return "ok", nil
			},
			register: true,
		},
		{
			name: "handler error is surfaced",
			handler: func(ctx context.Context, cmd Command) (string, error) {
				return "", errors.New("item out of stock")
			},
			register:      true,
			expectedError: "item out of stock",
		},
		{
			name:          "unregistered command",
			register:      false,
			expectedError: "no handler registered for command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewInMemoryBus()
			if tt.register {
				b.Register("test.command", tt.handler)
			}

			err := b.Send(context.Background(), testCommand{name: "test.command", aggregateID: models.GenerateUUID()})

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInMemoryBus_SendAndWait(t *testing.T) {
	b := NewInMemoryBus()
	b.Register("fast.command", CommandHandlerFunc(func(ctx context.Context, cmd Command) (string, error) {
		return "done", nil
	}))
	b.Register("slow.command", CommandHandlerFunc(func(ctx context.Context, cmd Command) (string, error) {
		select {
		case <-time.After(time.Second):
			return "too late", nil
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}))

	result, err := b.SendAndWait(context.Background(), testCommand{name: "fast.command", aggregateID: models.GenerateUUID()}, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "done", result)

	_, err = b.SendAndWait(context.Background(), testCommand{name: "slow.command", aggregateID: models.GenerateUUID()}, 20*time.Millisecond)
	assert.ErrorIs(t, err, ErrCommandTimeout)
}

func TestInMemoryBus_Query(t *testing.T) {
	b := NewInMemoryBus()
	b.RegisterQuery("user.payment-details", QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) {
		return "details", nil
	}))

	result, err := b.Query(context.Background(), testQuery{name: "user.payment-details"})
	require.NoError(t, err)
	assert.Equal(t, "details", result)

	_, err = b.Query(context.Background(), testQuery{name: "unknown"})
	assert.ErrorIs(t, err, ErrNoQueryHandler)
}

func TestInMemoryBus_OrderingPerAggregate(t *testing.T) {
	b := NewInMemoryBus()

	var mu sync.Mutex
	var active int
	var maxActive int

	b.Register("counted.command", CommandHandlerFunc(func(ctx context.Context, cmd Command) (string, error) {
		mu.Lock()
		active++
		if active > maxActive {
			maxActive = active
		}
		mu.Unlock()

		time.Sleep(5 * time.Millisecond)

		mu.Lock()
		active--
		mu.Unlock()
		return "", nil
	}))

	aggregateID := models.GenerateUUID()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = b.Send(context.Background(), testCommand{name: "counted.command", aggregateID: aggregateID})
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxActive, "commands for one aggregate must not overlap")
}
