package infrastructure

import (
	"context"
	"sync"

	"github.com/duche27/eStore-OrdersService/shared/events"
	"github.com/duche27/eStore-OrdersService/shared/models"
	"github.com/pkg/errors"
)

var _ events.EventStore = (*InMemoryEventStore)(nil)

// InMemoryEventStore keeps event streams in process memory. It enforces
// the same optimistic stream-version check as the postgres store.
type InMemoryEventStore struct {
	mux     sync.RWMutex
	streams map[models.ID][]*events.Event
}

// NewInMemoryEventStore creates an empty store
func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{
		streams: make(map[models.ID][]*events.Event),
	}
}

// SaveEvents appends events to the aggregate's stream
func (s *InMemoryEventStore) SaveEvents(_ context.Context, aggregateID models.ID, evts []*events.Event, expectedVersion int) error {
	if len(evts) == 0 {
		return nil
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	current := len(s.streams[aggregateID])
	if current != expectedVersion {
		return errors.Errorf("concurrency conflict: expected version %d, got %d", expectedVersion, current)
	}

	for _, event := range evts {
		s.streams[aggregateID] = append(s.streams[aggregateID], event.Clone())
	}

	return nil
}

// GetEvents returns the aggregate's stream in append order
func (s *InMemoryEventStore) GetEvents(_ context.Context, aggregateID models.ID) ([]*events.Event, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	stream := s.streams[aggregateID]
	result := make([]*events.Event, len(stream))
	for i, event := range stream {
		result[i] = event.Clone()
	}

	return result, nil
}

// GetEventsByType returns events of one type across all streams
func (s *InMemoryEventStore) GetEventsByType(_ context.Context, eventType string, offset, limit int) ([]*events.Event, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	var matched []*events.Event
	for _, stream := range s.streams {
		for _, event := range stream {
			if event.EventType == eventType {
				matched = append(matched, event.Clone())
			}
		}
	}

	if offset >= len(matched) {
		return nil, nil
	}

	end := offset + limit
	if limit <= 0 || end > len(matched) {
		end = len(matched)
	}

	return matched[offset:end], nil
}
