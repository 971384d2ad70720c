package profile

import (
	"portfolio-core/internal/domain/events"
)

// EventTypeProfileChanged fires after a profile slot is written
const EventTypeProfileChanged = "profile.changed"

// ProfileChangedEvent is raised when a slot receives a new profile.
// AggregateID is the slot's storage key.
type ProfileChangedEvent struct {
	events.BaseEvent
	Profile DiscordProfile
}

// NewProfileChangedEvent creates a new ProfileChangedEvent
func NewProfileChangedEvent(key string, p DiscordProfile) *ProfileChangedEvent {
	return &ProfileChangedEvent{
		BaseEvent: events.NewBaseEvent(EventTypeProfileChanged, key),
		Profile:   p,
	}
}
