package deadline

import (
	"context"
	"sync"
	"time"

	"github.com/duche27/eStore-OrdersService/shared/events"
	"github.com/duche27/eStore-OrdersService/shared/models"
	"github.com/rs/zerolog/log"
)

// Metadata keys carried by fired deadline events
const (
	HandleKey = "deadline_handle"
	NameKey   = "deadline_name"
)

// Scheduler arms named timers keyed to an aggregate. A timer that is not
// cancelled before expiry fires as an ordinary event on the topic
// "order.deadline.<name>", carrying the payload captured at schedule
// time. Cancellation is best-effort: cancelling an unknown or already
// fired handle is a no-op.
type Scheduler interface {
	Schedule(ctx context.Context, duration time.Duration, name string, payload *events.Event) (string, error)
	Cancel(name, handle string)
}

// TimerScheduler implements Scheduler on process-local timers, delivering
// fired deadlines through an event publisher.
type TimerScheduler struct {
	publisher events.Publisher

	mux    sync.Mutex
	timers map[string]*time.Timer // name/handle -> timer
}

// NewTimerScheduler creates a scheduler publishing through the given publisher
func NewTimerScheduler(publisher events.Publisher) *TimerScheduler {
	return &TimerScheduler{
		publisher: publisher,
		timers:    make(map[string]*time.Timer),
	}
}

// Schedule arms a timer and returns its cancellation handle
func (s *TimerScheduler) Schedule(_ context.Context, duration time.Duration, name string, payload *events.Event) (string, error) {
	handle := models.GenerateUUID().String()
	key := timerKey(name, handle)

	s.mux.Lock()
	defer s.mux.Unlock()

	s.timers[key] = time.AfterFunc(duration, func() {
		s.fire(name, handle, payload)
	})

	return handle, nil
}

// Cancel stops the timer identified by name and handle, if still armed
func (s *TimerScheduler) Cancel(name, handle string) {
	key := timerKey(name, handle)

	s.mux.Lock()
	timer, ok := s.timers[key]
	delete(s.timers, key)
	s.mux.Unlock()

	if ok {
		timer.Stop()
	}
}

// Stop disarms every outstanding timer
func (s *TimerScheduler) Stop() {
	s.mux.Lock()
	defer s.mux.Unlock()

	for key, timer := range s.timers {
		timer.Stop()
		delete(s.timers, key)
	}
}

func (s *TimerScheduler) fire(name, handle string, payload *events.Event) {
	s.mux.Lock()
	delete(s.timers, timerKey(name, handle))
	s.mux.Unlock()

	event := events.NewEvent(payload.AggregateID, events.DeadlineTopicPrefix+name, payload.Data).
		WithCorrelationID(payload.CorrelationID).
		WithMetadata(NameKey, name).
		WithMetadata(HandleKey, handle)

	if event.CorrelationID.IsEmpty() {
		event.CorrelationID = payload.AggregateID
	}

	if err := s.publisher.Publish(context.Background(), event); err != nil {
		log.Error().Err(err).
			Str("deadline", name).
			Str("aggregate_id", payload.AggregateID.String()).
			Msg("failed to publish fired deadline")
	}
}

func timerKey(name, handle string) string {
	return name + "/" + handle
}
