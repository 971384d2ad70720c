package profile

import (
	"context"
	"encoding/json"
	"fmt"

	"portfolio-core/internal/domain/events"
)

// Listener receives the new profile of a slot
type Listener func(ctx context.Context, p DiscordProfile)

// Store is one visitor's profile slot
type Store struct {
	storage    Storage
	dispatcher *events.Dispatcher
	key        string
}

// NewStore creates a store over a single storage key
func NewStore(storage Storage, dispatcher *events.Dispatcher, key string) *Store {
	return &Store{storage: storage, dispatcher: dispatcher, key: key}
}

// Key returns the storage key of the slot
func (s *Store) Key() string {
	return s.key
}

// Get reads the slot. It returns nil, nil when the slot is empty.
func (s *Store) Get(ctx context.Context) (*DiscordProfile, error) {
	raw, ok, err := s.storage.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var p DiscordProfile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptProfile, err)
	}
	return &p, nil
}

// Set overwrites the slot and notifies subscribers.
// It returns after every subscriber has handled the change.
func (s *Store) Set(ctx context.Context, p *DiscordProfile) error {
	if p == nil {
		return fmt.Errorf("profile cannot be nil")
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := s.storage.Set(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}

	return s.dispatcher.Dispatch(ctx, NewProfileChangedEvent(s.key, *p))
}

// Subscribe registers a listener for changes to this slot only.
// The returned function unsubscribes; calling it twice is safe.
func (s *Store) Subscribe(listener Listener) (unsubscribe func()) {
	return s.dispatcher.Register(EventTypeProfileChanged, func(ctx context.Context, e events.DomainEvent) error {
		changed, ok := e.(*ProfileChangedEvent)
		if !ok || changed.AggregateID() != s.key {
			return nil
		}
		listener(ctx, changed.Profile)
		return nil
	})
}

// Stores hands out visitor-scoped profile slots sharing one backend
type Stores struct {
	storage    Storage
	dispatcher *events.Dispatcher
}

// NewStores creates the slot factory
func NewStores(storage Storage, dispatcher *events.Dispatcher) *Stores {
	return &Stores{storage: storage, dispatcher: dispatcher}
}

// For returns the slot of a visitor
func (s *Stores) For(visitorID string) *Store {
	return NewStore(s.storage, s.dispatcher, StorageKey+":"+visitorID)
}
