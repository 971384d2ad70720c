package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"portfolio-core/internal/application/dto"
	"portfolio-core/internal/domain/feed"
	"portfolio-core/internal/domain/repo"
	"portfolio-core/internal/domain/viewport"
	"portfolio-core/internal/metrics"
)

// ErrSessionNotFound is returned for unknown or expired session ids
var ErrSessionNotFound = errors.New("feed session not found")

type feedSession struct {
	id         string
	feed       *feed.Feed
	controller *viewport.Controller
	lastAccess time.Time
}

// FeedService owns the repository feed sessions of all viewers
type FeedService struct {
	githubService repo.GitHubService
	handle        string
	logger        *slog.Logger
	now           func() time.Time

	mu       sync.Mutex
	sessions map[string]*feedSession
}

// NewFeedService creates a feed service listing the repositories of handle
func NewFeedService(githubService repo.GitHubService, handle string, logger *slog.Logger) *FeedService {
	return &FeedService{
		githubService: githubService,
		handle:        handle,
		logger:        logger,
		now:           time.Now,
		sessions:      make(map[string]*feedSession),
	}
}

// OpenSession creates a session and starts its fetch.
// With wait the call returns after the fetch settled; otherwise it returns the loading view.
func (s *FeedService) OpenSession(ctx context.Context, wait bool) (*dto.FeedViewResponse, error) {
	f := feed.New(s.handle)
	sess := &feedSession{
		id:         uuid.NewString(),
		feed:       f,
		controller: viewport.NewController(f),
		lastAccess: s.now(),
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	metrics.FeedSessionsActive.Set(float64(len(s.sessions)))
	s.mu.Unlock()

	if wait {
		s.fetch(ctx, sess)
		return s.toDTO(sess), nil
	}

	started := make(chan struct{})
	go func() {
		s.fetchStarted(context.WithoutCancel(ctx), sess, started)
	}()
	<-started
	return s.toDTO(sess), nil
}

// fetchStarted runs fetch and closes started once the feed is marked loading
func (s *FeedService) fetchStarted(ctx context.Context, sess *feedSession, started chan<- struct{}) {
	var once sync.Once
	signal := func() { once.Do(func() { close(started) }) }
	defer signal()

	err := sess.feed.Fetch(ctx, func(ctx context.Context, handle string) ([]*repo.Repository, error) {
		signal()
		return s.load(ctx, handle)
	})
	s.logFetch(sess, err)
}

func (s *FeedService) fetch(ctx context.Context, sess *feedSession) {
	err := sess.feed.Fetch(ctx, s.load)
	s.logFetch(sess, err)
}

func (s *FeedService) logFetch(sess *feedSession, err error) {
	if err != nil {
		s.logger.Warn("feed: fetch failed", "session_id", sess.id, "handle", s.handle, "error", err)
		return
	}
	s.logger.Debug("feed: fetch completed", "session_id", sess.id, "handle", s.handle)
}

func (s *FeedService) load(ctx context.Context, handle string) ([]*repo.Repository, error) {
	raw, err := s.githubService.FetchUserRepositories(ctx, handle)
	if err != nil {
		return nil, err
	}
	repos, skipped := repo.FromGitHubList(raw)
	for _, err := range skipped {
		s.logger.Warn("feed: skipping invalid repository", "handle", handle, "error", err)
	}
	return repos, nil
}

// GetView returns the current view of a session
func (s *FeedService) GetView(ctx context.Context, id string) (*dto.FeedViewResponse, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}
	return s.toDTO(sess), nil
}

// Search sets the search term of a session
func (s *FeedService) Search(ctx context.Context, id, term string) (*dto.FeedViewResponse, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}
	sess.feed.SetSearchTerm(term)
	return s.toDTO(sess), nil
}

// SelectLanguage sets the language filter of a session
func (s *FeedService) SelectLanguage(ctx context.Context, id, lang string) (*dto.FeedViewResponse, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}
	sess.feed.SetLanguage(lang)
	return s.toDTO(sess), nil
}

// LoadMore is the manual "load more" action
func (s *FeedService) LoadMore(ctx context.Context, id string) (*dto.PageResponse, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}
	loaded := sess.feed.LoadMore()
	return &dto.PageResponse{Loaded: loaded, View: s.toDTO(sess)}, nil
}

// Scroll handles one scroll event of the feed container
func (s *FeedService) Scroll(ctx context.Context, id string, req *dto.ScrollRequest) (*dto.PageResponse, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}
	loaded := sess.controller.OnScroll(viewport.Metrics{
		ScrollTop:    req.ScrollTop,
		ClientHeight: req.ClientHeight,
		ScrollHeight: req.ScrollHeight,
	})
	return &dto.PageResponse{Loaded: loaded, View: s.toDTO(sess)}, nil
}

// CloseSession tears a session down
func (s *FeedService) CloseSession(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	metrics.FeedSessionsActive.Set(float64(len(s.sessions)))
	return nil
}

// SessionCount returns the number of open sessions
func (s *FeedService) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep closes sessions idle for longer than maxIdle and returns how many it closed
func (s *FeedService) Sweep(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.lastAccess.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		metrics.FeedSessionsActive.Set(float64(len(s.sessions)))
		s.logger.Info("feed: swept idle sessions", "removed", removed, "remaining", len(s.sessions))
	}
	return removed
}

// RunSweeper sweeps every interval until ctx is done
func (s *FeedService) RunSweeper(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(maxIdle)
		}
	}
}

func (s *FeedService) session(id string) (*feedSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.lastAccess = s.now()
	return sess, nil
}

func (s *FeedService) toDTO(sess *feedSession) *dto.FeedViewResponse {
	v := sess.feed.Snapshot()

	repos := make([]*dto.RepositoryResponse, len(v.Displayed))
	for i, r := range v.Displayed {
		repos[i] = toRepositoryDTO(r)
	}

	resp := &dto.FeedViewResponse{
		SessionID:        sess.id,
		Handle:           v.Handle,
		State:            string(v.State),
		Loading:          v.Loading,
		SearchTerm:       v.SearchTerm,
		SelectedLanguage: v.SelectedLanguage,
		Languages:        v.Languages,
		Repositories:     repos,
		FilteredCount:    v.FilteredCount,
		TotalCount:       v.TotalCount,
		VisibleCount:     v.VisibleCount,
		HasMore:          v.HasMore,
	}
	if v.Err != nil {
		resp.Error = repo.UserMessage(v.Err)
		var de *repo.DomainError
		if errors.As(v.Err, &de) {
			resp.ErrorCode = de.Code
		}
	}
	return resp
}

func toRepositoryDTO(r *repo.Repository) *dto.RepositoryResponse {
	topics := r.Topics()
	if topics == nil {
		topics = []string{}
	}
	return &dto.RepositoryResponse{
		ID:          r.GitHubID().Int64(),
		Name:        r.Name().String(),
		Description: r.Description(),
		HTMLURL:     r.HTMLURL().String(),
		Stars:       r.StargazersCount(),
		Watchers:    r.WatchersCount(),
		Forks:       r.ForksCount(),
		Language:    r.Language(),
		Topics:      topics,
		Owner: dto.OwnerResponse{
			Login:     r.Owner().Login,
			AvatarURL: r.Owner().AvatarURL,
		},
		UpdatedAt: r.UpdatedAt(),
	}
}
