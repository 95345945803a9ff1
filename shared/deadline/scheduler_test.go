package deadline

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/duche27/eStore-OrdersService/shared/events"
	"github.com/duche27/eStore-OrdersService/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingPublisher struct {
	mux    sync.Mutex
	events []*events.Event
}

func (p *capturingPublisher) Publish(_ context.Context, evts ...*events.Event) error {
	p.mux.Lock()
	defer p.mux.Unlock()
	p.events = append(p.events, evts...)
	return nil
}

func (p *capturingPublisher) published() []*events.Event {
	p.mux.Lock()
	defer p.mux.Unlock()
	return append([]*events.Event(nil), p.events...)
}

func TestTimerScheduler_FiresAfterDuration(t *testing.T) {
	publisher := &capturingPublisher{}
	scheduler := NewTimerScheduler(publisher)
	defer scheduler.Stop()

	orderID := models.GenerateUUID()
	payload := events.NewEvent(orderID, events.ProductReservedEvent, map[string]interface{}{"order_id": orderID.String()})

	handle, err := scheduler.Schedule(context.Background(), 10*time.Millisecond, "payment-processing-deadline", payload)
	require.NoError(t, err)
	require.NotEmpty(t, handle)

	assert.Eventually(t, func() bool {
		return len(publisher.published()) == 1
	}, time.Second, 5*time.Millisecond)

	fired := publisher.published()[0]
	assert.Equal(t, events.DeadlineTopicPrefix+"payment-processing-deadline", fired.EventType)
	assert.Equal(t, orderID, fired.AggregateID)
	assert.Equal(t, orderID, fired.CorrelationID)

	gotHandle, ok := fired.Metadata.Get(HandleKey)
	require.True(t, ok)
	assert.Equal(t, handle, gotHandle)
}

func TestTimerScheduler_CancelPreventsFiring(t *testing.T) {
	publisher := &capturingPublisher{}
	scheduler := NewTimerScheduler(publisher)
	defer scheduler.Stop()

	payload := events.NewEvent(models.GenerateUUID(), events.ProductReservedEvent, nil)

	handle, err := scheduler.Schedule(context.Background(), 30*time.Millisecond, "payment-processing-deadline", payload)
	require.NoError(t, err)

	scheduler.Cancel("payment-processing-deadline", handle)

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, publisher.published())
}

func TestTimerScheduler_CancelUnknownHandleIsNoOp(t *testing.T) {
	scheduler := NewTimerScheduler(&capturingPublisher{})
	defer scheduler.Stop()

	scheduler.Cancel("payment-processing-deadline", "missing-handle")
}
