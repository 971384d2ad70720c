package profile

import (
	"context"
)

// StorageKey is the name of the profile slot
const StorageKey = "discordUser"

// Storage is a string key/value store holding serialized profiles.
// This is defined in the domain layer, but implemented in infrastructure
type Storage interface {
	// Get returns the value and whether the key exists
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes the value, replacing any previous one
	Set(ctx context.Context, key, value string) error
}

// IdentityService exchanges an implicit-grant token for the caller's profile.
// Implementation will be in infrastructure layer
type IdentityService interface {
	FetchProfile(ctx context.Context, tokenType, accessToken string) (*DiscordProfile, error)
}
