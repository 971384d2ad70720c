package service

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"portfolio-core/internal/domain/profile"
	"portfolio-core/internal/metrics"
)

// Navigation targets after the Discord callback
const (
	RedirectAuthSuccess   = "/?discord_auth=success"
	RedirectNoToken       = "/?discord_error=no_token"
	RedirectFetchFailed   = "/?discord_error=fetch_failed"
	RedirectStorageFailed = "/?discord_error=storage_failed"
	RedirectNotConfigured = "/?discord_error=not_configured"
)

// ProfileStore is the visitor's profile slot
type ProfileStore interface {
	Get(ctx context.Context) (*profile.DiscordProfile, error)
	Set(ctx context.Context, p *profile.DiscordProfile) error
}

// AuthService completes the Discord implicit-grant redirect
type AuthService struct {
	identity profile.IdentityService
	logger   *slog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(identity profile.IdentityService, logger *slog.Logger) *AuthService {
	return &AuthService{identity: identity, logger: logger}
}

// OAuthErrorRedirect is the navigation target for a provider error
func OAuthErrorRedirect(reason string) string {
	return "/?discord_error=" + url.QueryEscape(reason)
}

// CompleteCallback handles the fragment of the OAuth redirect and returns where
// the visitor should go next. The redirect is set even when an error is returned.
// The store is written only after a successful profile fetch, and Set returns
// after every listener has seen the change.
func (s *AuthService) CompleteCallback(ctx context.Context, store ProfileStore, fragment string) (string, error) {
	values, err := url.ParseQuery(strings.TrimPrefix(fragment, "#"))
	if err != nil {
		s.logger.Warn("discord callback: unparsable fragment", "error", err)
	}

	if values.Has("error") {
		reason := values.Get("error")
		s.logger.Warn("discord callback: provider returned an error", "reason", reason)
		metrics.AuthCallbacksTotal.WithLabelValues("oauth_error").Inc()
		return OAuthErrorRedirect(reason), profile.ErrOAuth(reason)
	}

	accessToken := values.Get("access_token")
	tokenType := values.Get("token_type")
	if accessToken == "" || tokenType == "" {
		s.logger.Warn("discord callback: no access token or token type in fragment")
		metrics.AuthCallbacksTotal.WithLabelValues("no_token").Inc()
		return RedirectNoToken, profile.ErrNoToken()
	}

	p, err := s.identity.FetchProfile(ctx, tokenType, accessToken)
	if err != nil {
		s.logger.Error("discord callback: profile fetch failed", "error", err)
		metrics.AuthCallbacksTotal.WithLabelValues("fetch_failed").Inc()
		return RedirectFetchFailed, err
	}

	if err := store.Set(ctx, p); err != nil {
		s.logger.Error("discord callback: storing profile failed", "error", err)
		metrics.AuthCallbacksTotal.WithLabelValues("storage_failed").Inc()
		return RedirectStorageFailed, profile.ErrStorageFailed(err)
	}

	s.logger.Info("discord callback: profile stored", "discord_id", p.ID)
	metrics.AuthCallbacksTotal.WithLabelValues("success").Inc()
	return RedirectAuthSuccess, nil
}
