package telemetry

import (
	"encoding/json"
	"sync"
	"time"
)

// Repository stores engine events.
type Repository interface {
	RecordEvent(eventType EventType, metadata EventMetadata) error
	GetEvents(since time.Time, eventTypes []EventType) ([]Event, error)
	Clear() error
}

// MemoryRepository keeps events in memory. The service is stateless across
// restarts, so in-process history is all the season tuning workflow needs.
type MemoryRepository struct {
	mu     sync.RWMutex
	events []Event
	nextID int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		events: make([]Event, 0),
		nextID: 1,
	}
}

func (r *MemoryRepository) RecordEvent(eventType EventType, metadata EventMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return err
	}

	r.events = append(r.events, Event{
		ID:        r.nextID,
		Type:      eventType,
		Timestamp: time.Now(),
		Metadata:  string(metadataJSON),
	})
	r.nextID++

	return nil
}

func (r *MemoryRepository) GetEvents(since time.Time, eventTypes []EventType) ([]Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	typeFilter := make(map[EventType]bool)
	for _, t := range eventTypes {
		typeFilter[t] = true
	}

	result := make([]Event, 0)
	for _, event := range r.events {
		if event.Timestamp.Before(since) {
			continue
		}
		if len(eventTypes) > 0 && !typeFilter[event.Type] {
			continue
		}
		result = append(result, event)
	}

	return result, nil
}

func (r *MemoryRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = make([]Event, 0)
	r.nextID = 1

	return nil
}
