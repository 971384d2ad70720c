package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"portfolio-core/internal/domain/profile"
	"portfolio-core/internal/domain/repo"
	"portfolio-core/internal/webhook"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

// mockIdentityService records every exchange attempt
type mockIdentityService struct {
	mu        sync.Mutex
	profile   *profile.DiscordProfile
	err       error
	calls     int
	tokenType string
	token     string
}

func (m *mockIdentityService) FetchProfile(ctx context.Context, tokenType, accessToken string) (*profile.DiscordProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.tokenType = tokenType
	m.token = accessToken
	if m.err != nil {
		return nil, m.err
	}
	p := *m.profile
	return &p, nil
}

// mockProfileStore is an in-memory slot
type mockProfileStore struct {
	profile *profile.DiscordProfile
	setErr  error
	sets    int
}

func (m *mockProfileStore) Get(ctx context.Context) (*profile.DiscordProfile, error) {
	return m.profile, nil
}

func (m *mockProfileStore) Set(ctx context.Context, p *profile.DiscordProfile) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.sets++
	m.profile = p
	return nil
}

// mockGitHubService returns canned repositories and counts calls
type mockGitHubService struct {
	mu      sync.Mutex
	repos   []*repo.GitHubRepository
	err     error
	calls   int
	handles []string
	block   chan struct{}
}

func (m *mockGitHubService) FetchUserRepositories(ctx context.Context, handle string) ([]*repo.GitHubRepository, error) {
	m.mu.Lock()
	m.calls++
	m.handles = append(m.handles, handle)
	block := m.block
	m.mu.Unlock()

	if block != nil {
		<-block
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.repos, nil
}

func (m *mockGitHubService) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockWebhookSender captures sent messages
type mockWebhookSender struct {
	configured bool
	err        error
	sent       []webhook.Message
}

func (m *mockWebhookSender) Configured() bool { return m.configured }

func (m *mockWebhookSender) Send(ctx context.Context, msg webhook.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

var errBoom = errors.New("boom")
