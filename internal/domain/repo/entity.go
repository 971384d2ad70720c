package repo

import (
	"fmt"
	"time"
)

// Repository is one public repository of the featured GitHub account.
// It is immutable once built from the API response.
type Repository struct {
	githubID        GitHubID
	name            Name
	description     *string
	htmlURL         URL
	stargazersCount int
	watchersCount   int
	forksCount      int
	language        *string
	updatedAt       time.Time
	topics          []string
	owner           Owner
}

// FromGitHub validates a raw API entry and builds a Repository from it
func FromGitHub(gh *GitHubRepository) (*Repository, error) {
	if gh == nil {
		return nil, ErrInvalidRepositoryData("entry", fmt.Errorf("nil repository"))
	}

	githubID, err := NewGitHubID(gh.ID)
	if err != nil {
		return nil, ErrInvalidRepositoryData("id", err)
	}

	name, err := NewName(gh.Name)
	if err != nil {
		return nil, ErrInvalidRepositoryData("name", err)
	}

	htmlURL, err := NewURL(gh.HTMLURL)
	if err != nil {
		return nil, ErrInvalidRepositoryData("html_url", err)
	}

	return &Repository{
		githubID:        githubID,
		name:            name,
		description:     gh.Description,
		htmlURL:         htmlURL,
		stargazersCount: gh.StargazersCount,
		watchersCount:   gh.WatchersCount,
		forksCount:      gh.ForksCount,
		language:        gh.Language,
		updatedAt:       gh.UpdatedAt,
		topics:          append([]string(nil), gh.Topics...),
		owner:           Owner{Login: gh.OwnerLogin, AvatarURL: gh.OwnerAvatarURL},
	}, nil
}

// FromGitHubList converts every valid entry and reports the invalid ones
func FromGitHubList(raw []*GitHubRepository) ([]*Repository, []error) {
	repos := make([]*Repository, 0, len(raw))
	var skipped []error
	for _, gh := range raw {
		r, err := FromGitHub(gh)
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		repos = append(repos, r)
	}
	return repos, skipped
}

// Getters

func (r *Repository) GitHubID() GitHubID {
	return r.githubID
}

func (r *Repository) Name() Name {
	return r.name
}

func (r *Repository) Description() *string {
	return r.description
}

func (r *Repository) HTMLURL() URL {
	return r.htmlURL
}

func (r *Repository) StargazersCount() int {
	return r.stargazersCount
}

func (r *Repository) WatchersCount() int {
	return r.watchersCount
}

func (r *Repository) ForksCount() int {
	return r.forksCount
}

func (r *Repository) Language() *string {
	return r.language
}

func (r *Repository) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Repository) Topics() []string {
	return append([]string(nil), r.topics...)
}

func (r *Repository) Owner() Owner {
	return r.owner
}

// String returns string representation (for debugging)
func (r *Repository) String() string {
	return fmt.Sprintf("Repository{githubID: %d, name: %s, watchers: %d}",
		r.githubID.Int64(), r.name.String(), r.watchersCount)
}
