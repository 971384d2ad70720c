package github

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"

	"portfolio-core/internal/domain/repo"
	"portfolio-core/internal/github"
	"portfolio-core/internal/metrics"
)

// GitHubServiceImpl implements the domain repo.GitHubService interface
type GitHubServiceImpl struct {
	client *github.Client
	group  singleflight.Group
}

// NewGitHubService creates a new GitHub service implementation
func NewGitHubService(client *github.Client) *GitHubServiceImpl {
	return &GitHubServiceImpl{client: client}
}

var _ repo.GitHubService = (*GitHubServiceImpl)(nil)

// FetchUserRepositories lists a handle's repositories. Concurrent calls for the
// same handle share one upstream request, which is not cancelled by any single caller.
func (g *GitHubServiceImpl) FetchUserRepositories(ctx context.Context, handle string) ([]*repo.GitHubRepository, error) {
	val, err, shared := g.group.Do("repos:"+handle, func() (interface{}, error) {
		return g.fetch(context.WithoutCancel(ctx), handle)
	})
	if shared {
		metrics.GitHubSharedFetchesTotal.Inc()
	}
	if err != nil {
		return nil, err
	}
	return val.([]*repo.GitHubRepository), nil
}

func (g *GitHubServiceImpl) fetch(ctx context.Context, handle string) ([]*repo.GitHubRepository, error) {
	start := time.Now()
	githubRepos, err := g.client.ListUserRepositories(ctx, handle)
	metrics.GitHubFetchDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		derr := toDomainError(err)
		metrics.GitHubFetchTotal.WithLabelValues(statusLabel(derr)).Inc()
		return nil, derr
	}
	metrics.GitHubFetchTotal.WithLabelValues("ok").Inc()

	// Convert to domain GitHub repositories
	domainRepos := make([]*repo.GitHubRepository, len(githubRepos))
	for i, ghRepo := range githubRepos {
		domainRepos[i] = &repo.GitHubRepository{
			ID:              ghRepo.ID,
			Name:            ghRepo.Name,
			Description:     ghRepo.Description,
			HTMLURL:         ghRepo.HTMLURL,
			StargazersCount: ghRepo.StargazersCount,
			WatchersCount:   ghRepo.WatchersCount,
			ForksCount:      ghRepo.ForksCount,
			Language:        ghRepo.Language,
			UpdatedAt:       ghRepo.UpdatedAt,
			Topics:          ghRepo.Topics,
			OwnerLogin:      ghRepo.Owner.Login,
			OwnerAvatarURL:  ghRepo.Owner.AvatarURL,
		}
	}

	return domainRepos, nil
}

func toDomainError(err error) *repo.DomainError {
	var se *github.StatusError
	if errors.As(err, &se) {
		if se.StatusCode == http.StatusForbidden {
			return repo.ErrRateLimited()
		}
		return repo.ErrFetchFailed(se.StatusCode)
	}
	return repo.ErrNetwork(err)
}

func statusLabel(err *repo.DomainError) string {
	switch err.Code {
	case repo.CodeRateLimited:
		return "rate_limited"
	case repo.CodeFetchFailed:
		return "http_error"
	default:
		return "network_error"
	}
}
