package repo

import (
	"context"
	"time"
)

// GitHubRepository represents a repository fetched from GitHub API
type GitHubRepository struct {
	ID              int64
	Name            string
	Description     *string
	HTMLURL         string
	StargazersCount int
	WatchersCount   int
	ForksCount      int
	Language        *string
	UpdatedAt       time.Time
	Topics          []string
	OwnerLogin      string
	OwnerAvatarURL  string
}

// GitHubService is a domain service interface for interacting with GitHub
// Implementation will be in infrastructure layer
type GitHubService interface {
	// FetchUserRepositories lists the public repositories of a GitHub handle.
	// Failures are *DomainError values with one of the GITHUB_* codes.
	FetchUserRepositories(ctx context.Context, handle string) ([]*GitHubRepository, error)
}
