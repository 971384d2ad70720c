package events

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent represents a domain event.
// AggregateID names the thing the event is about, e.g. a profile slot key.
type DomainEvent interface {
	EventID() string
	EventType() string
	OccurredAt() time.Time
	AggregateID() string
}

// BaseEvent carries the fields shared by every event
type BaseEvent struct {
	id        string
	kind      string
	at        time.Time
	aggregate string
}

// NewBaseEvent stamps a new event with a random id and the current time
func NewBaseEvent(eventType, aggregateID string) BaseEvent {
	return BaseEvent{
		id:        uuid.NewString(),
		kind:      eventType,
		at:        time.Now().UTC(),
		aggregate: aggregateID,
	}
}

func (e BaseEvent) EventID() string       { return e.id }
func (e BaseEvent) EventType() string     { return e.kind }
func (e BaseEvent) OccurredAt() time.Time { return e.at }
func (e BaseEvent) AggregateID() string   { return e.aggregate }
