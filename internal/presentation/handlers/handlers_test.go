package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"portfolio-core/internal/application/service"
	"portfolio-core/internal/config"
	"portfolio-core/internal/discord"
	"portfolio-core/internal/domain/events"
	"portfolio-core/internal/domain/profile"
	"portfolio-core/internal/github"
	infraDiscord "portfolio-core/internal/infrastructure/discord"
	infraGitHub "portfolio-core/internal/infrastructure/github"
	"portfolio-core/internal/infrastructure/storage"
	"portfolio-core/internal/middleware"
	"portfolio-core/internal/webhook"
)

const (
	visitorA = "0b7f6f1e-3f5c-4c9b-9d55-1d2f7a9e0a01"
	visitorB = "7d3c1a2b-5e4f-4a6b-8c9d-0e1f2a3b4c5d"
)

// upstreams are the fake third-party APIs; a nil handler leaves the integration unconfigured
type upstreams struct {
	github   http.HandlerFunc
	discord  http.HandlerFunc
	webhook  http.HandlerFunc
	clientID string
}

type testEnv struct {
	router  *gin.Engine
	stores  *profile.Stores
	visitor *middleware.VisitorMiddleware
	profile *ProfileHandler
	storage *storage.MemoryStorage
}

func serve(t *testing.T, h http.HandlerFunc) string {
	t.Helper()
	if h == nil {
		return ""
	}
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv.URL
}

func newTestEnv(t *testing.T, up upstreams) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if up.github == nil {
		up.github = func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("[]"))
		}
	}
	if up.discord == nil {
		up.discord = func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}
	}

	mem := storage.NewMemoryStorage()
	stores := profile.NewStores(mem, events.NewDispatcher(logger))

	githubService := infraGitHub.NewGitHubService(github.NewClient(serve(t, up.github), "", 0))
	identity := infraDiscord.NewIdentityService(discord.NewClient(serve(t, up.discord), 0))
	webhookClient := webhook.NewClient(serve(t, up.webhook), 0)

	var oauthConfig *oauth2.Config
	if up.clientID != "" {
		oauthConfig = discord.NewOAuthConfig(up.clientID, "http://localhost:8080/auth/discord/callback")
	}

	visitor := middleware.NewVisitorMiddleware(&config.VisitorConfig{
		Secret:     "handler-test-secret",
		CookieName: "visitor",
		TTL:        time.Hour,
	})

	profileHandler := NewProfileHandler(stores)
	router := NewRouter(Handlers{
		Health:  NewHealthHandler(mem, config.StorageMemory),
		Auth:    NewAuthHandler(service.NewAuthService(identity, logger), stores, oauthConfig),
		Feed:    NewFeedHandler(service.NewFeedService(githubService, "octocat", logger)),
		Profile: profileHandler,
		Contact: NewContactHandler(service.NewContactService(webhookClient, logger), stores),
		Visitor: visitor,
	}, []string{"*"})

	return &testEnv{router: router, stores: stores, visitor: visitor, profile: profileHandler, storage: mem}
}

func (e *testEnv) newRequest(t *testing.T, method, path string, body any, visitorID string) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if visitorID != "" {
		token, err := e.visitor.Issue(visitorID)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: "visitor", Value: token})
	}
	return req
}

func (e *testEnv) do(t *testing.T, method, path string, body any, visitorID string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, e.newRequest(t, method, path, body, visitorID))
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func strPtr(s string) *string { return &s }

func githubRepos(n int) []github.Repository {
	out := make([]github.Repository, n)
	for i := range out {
		out[i] = github.Repository{
			ID:            int64(i + 1),
			Name:          fmt.Sprintf("repo-%02d", i),
			HTMLURL:       fmt.Sprintf("https://github.com/octocat/repo-%02d", i),
			WatchersCount: i,
			Language:      strPtr("Go"),
			Owner:         github.Owner{Login: "octocat"},
		}
	}
	return out
}

func jsonHandler(status int, body any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}
}

// webhookRecorder collects the messages posted to the fake webhook
type webhookRecorder struct {
	mu       sync.Mutex
	status   int
	messages []webhook.Message
}

func (r *webhookRecorder) handler(w http.ResponseWriter, req *http.Request) {
	var msg webhook.Message
	_ = json.NewDecoder(req.Body).Decode(&msg)
	r.mu.Lock()
	r.messages = append(r.messages, msg)
	status := r.status
	r.mu.Unlock()
	if status == 0 {
		status = http.StatusNoContent
	}
	w.WriteHeader(status)
}

func (r *webhookRecorder) sent() []webhook.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]webhook.Message(nil), r.messages...)
}
