package profile_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"portfolio-core/internal/domain/events"
	"portfolio-core/internal/domain/profile"
)

type mapStorage struct {
	mu     sync.Mutex
	data   map[string]string
	setErr error
	writes int
}

func newMapStorage() *mapStorage {
	return &mapStorage{data: make(map[string]string)}
}

func (m *mapStorage) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *mapStorage) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.writes++
	m.data[key] = value
	return nil
}

func strPtr(s string) *string { return &s }

func TestStoreGetEmpty(t *testing.T) {
	store := profile.NewStores(newMapStorage(), events.NewDispatcher(nil)).For("v1")

	p, err := store.Get(context.Background())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if p != nil {
		t.Errorf("Get() = %+v, want nil", p)
	}
}

func TestStoreSetThenGet(t *testing.T) {
	storage := newMapStorage()
	store := profile.NewStores(storage, events.NewDispatcher(nil)).For("v1")

	in := &profile.DiscordProfile{
		ID:         "42",
		Avatar:     strPtr("abc"),
		GlobalName: strPtr("Ada"),
		Username:   "ada",
		Badge:      &profile.Badge{Tag: "T", ID: "B", GuildID: "G"},
	}
	if err := store.Set(context.Background(), in); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if _, ok := storage.data["discordUser:v1"]; !ok {
		t.Fatalf("storage keys = %v, want discordUser:v1", storage.data)
	}

	got, err := store.Get(context.Background())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.ID != "42" || got.Username != "ada" || *got.GlobalName != "Ada" {
		t.Errorf("Get() = %+v", got)
	}
	if got.Badge == nil || *got.Badge != (profile.Badge{Tag: "T", ID: "B", GuildID: "G"}) {
		t.Errorf("Badge = %+v", got.Badge)
	}
}

func TestStoreGetCorrupt(t *testing.T) {
	storage := newMapStorage()
	storage.data["discordUser:v1"] = "{not json"
	store := profile.NewStores(storage, events.NewDispatcher(nil)).For("v1")

	_, err := store.Get(context.Background())
	if !errors.Is(err, profile.ErrCorruptProfile) {
		t.Errorf("Get() error = %v, want %v", err, profile.ErrCorruptProfile)
	}
}

func TestStoreSetFailureDoesNotNotify(t *testing.T) {
	storage := newMapStorage()
	storage.setErr = errors.New("disk full")
	store := profile.NewStores(storage, events.NewDispatcher(nil)).For("v1")

	notified := false
	store.Subscribe(func(ctx context.Context, p profile.DiscordProfile) { notified = true })

	if err := store.Set(context.Background(), &profile.DiscordProfile{ID: "1", Username: "u"}); err == nil {
		t.Fatal("Set() error = nil, want failure")
	}
	if notified {
		t.Error("listener notified after failed write")
	}
}

func TestStoreSubscribeScopedToSlot(t *testing.T) {
	stores := profile.NewStores(newMapStorage(), events.NewDispatcher(nil))
	mine := stores.For("mine")
	other := stores.For("other")

	var got atomic.Int32
	unsubscribe := mine.Subscribe(func(ctx context.Context, p profile.DiscordProfile) {
		if p.ID != "1" {
			t.Errorf("listener got profile %q, want 1", p.ID)
		}
		got.Add(1)
	})

	if err := other.Set(context.Background(), &profile.DiscordProfile{ID: "2", Username: "b"}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := mine.Set(context.Background(), &profile.DiscordProfile{ID: "1", Username: "a"}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got.Load() != 1 {
		t.Fatalf("notifications = %d, want 1", got.Load())
	}

	unsubscribe()
	unsubscribe()
	if err := mine.Set(context.Background(), &profile.DiscordProfile{ID: "1", Username: "a"}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got.Load() != 1 {
		t.Errorf("notifications after unsubscribe = %d, want 1", got.Load())
	}
}

func TestStoreSetRejectsNil(t *testing.T) {
	store := profile.NewStores(newMapStorage(), events.NewDispatcher(nil)).For("v1")
	if err := store.Set(context.Background(), nil); err == nil {
		t.Error("Set(nil) error = nil")
	}
}
