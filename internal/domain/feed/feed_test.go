package feed_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"portfolio-core/internal/domain/feed"
	"portfolio-core/internal/domain/repo"
)

func staticLoader(repos []*repo.Repository, err error) feed.Loader {
	return func(ctx context.Context, handle string) ([]*repo.Repository, error) {
		return repos, err
	}
}

func manyRepos(t *testing.T, n int, lang string) []*repo.Repository {
	t.Helper()
	fixtures := make([]fixture, n)
	for i := range fixtures {
		fixtures[i] = fixture{name: fmt.Sprintf("%s-%02d", lang, i), lang: strPtr(lang), watchers: n - i}
	}
	return build(t, fixtures...)
}

func TestNewFeed(t *testing.T) {
	f := feed.New("octocat")
	v := f.Snapshot()

	if v.VisibleCount != feed.InitialPageSize {
		t.Errorf("VisibleCount = %d, want %d", v.VisibleCount, feed.InitialPageSize)
	}
	if v.State != feed.StateEmpty {
		t.Errorf("State = %v, want %v", v.State, feed.StateEmpty)
	}
	if !reflect.DeepEqual(v.Languages, []string{""}) {
		t.Errorf("Languages = %v", v.Languages)
	}
}

func TestFetchSortsByWatchers(t *testing.T) {
	repos := build(t,
		fixture{name: "five", watchers: 5},
		fixture{name: "fifty", watchers: 50},
		fixture{name: "one", watchers: 1},
	)
	var gotHandle string
	f := feed.New("octocat")

	err := f.Fetch(context.Background(), func(ctx context.Context, handle string) ([]*repo.Repository, error) {
		gotHandle = handle
		return repos, nil
	})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if gotHandle != "octocat" {
		t.Errorf("loader handle = %q, want octocat", gotHandle)
	}

	v := f.Snapshot()
	var watchers []int
	for _, r := range v.Displayed {
		watchers = append(watchers, r.WatchersCount())
	}
	if !reflect.DeepEqual(watchers, []int{50, 5, 1}) {
		t.Errorf("watchers order = %v, want [50 5 1]", watchers)
	}
	if v.State != feed.StateGrid || v.Loading {
		t.Errorf("State = %v, Loading = %v", v.State, v.Loading)
	}
}

func TestFetchLanguagesFacet(t *testing.T) {
	repos := build(t,
		fixture{name: "a", lang: strPtr("Go")},
		fixture{name: "b", lang: strPtr("Rust")},
		fixture{name: "c", lang: strPtr("Go")},
		fixture{name: "d"},
	)
	f := feed.New("octocat")
	if err := f.Fetch(context.Background(), staticLoader(repos, nil)); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if got := f.Snapshot().Languages; !reflect.DeepEqual(got, []string{"", "Go", "Rust"}) {
		t.Errorf("Languages = %v", got)
	}
}

func TestFetchFailureClearsRepositories(t *testing.T) {
	f := feed.New("octocat")
	if err := f.Fetch(context.Background(), staticLoader(manyRepos(t, 3, "Go"), nil)); err != nil {
		t.Fatalf("first Fetch() error = %v", err)
	}

	err := f.Fetch(context.Background(), staticLoader(nil, repo.ErrRateLimited()))
	if !repo.HasCode(err, repo.CodeRateLimited) {
		t.Fatalf("Fetch() error = %v, want rate limit", err)
	}

	v := f.Snapshot()
	if v.State != feed.StateError {
		t.Errorf("State = %v, want %v", v.State, feed.StateError)
	}
	if v.TotalCount != 0 || len(v.Displayed) != 0 {
		t.Errorf("repositories should be empty after failure, got %d", v.TotalCount)
	}
	if msg := repo.UserMessage(v.Err); msg != "GitHub API rate limit exceeded. Please try again later." {
		t.Errorf("message = %q", msg)
	}
}

func TestFetchEmptyHandle(t *testing.T) {
	called := false
	f := feed.New("")

	err := f.Fetch(context.Background(), func(ctx context.Context, handle string) ([]*repo.Repository, error) {
		called = true
		return nil, nil
	})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if called {
		t.Error("loader must not be called for an empty handle")
	}
	if v := f.Snapshot(); v.State != feed.StateEmpty || v.Err != nil {
		t.Errorf("State = %v, Err = %v", v.State, v.Err)
	}
}

func TestFetchRefusedWhileLoading(t *testing.T) {
	f := feed.New("octocat")
	release := make(chan struct{})
	started := make(chan struct{})

	done := make(chan error, 1)
	go func() {
		done <- f.Fetch(context.Background(), func(ctx context.Context, handle string) ([]*repo.Repository, error) {
			close(started)
			<-release
			return nil, nil
		})
	}()
	<-started

	if !f.Loading() {
		t.Error("Loading() = false during fetch")
	}
	if v := f.Snapshot(); v.State != feed.StateGrid || !v.Loading {
		t.Errorf("in-flight State = %v, Loading = %v", v.State, v.Loading)
	}
	if err := f.Fetch(context.Background(), staticLoader(nil, nil)); !errors.Is(err, feed.ErrFetchInProgress) {
		t.Errorf("second Fetch() error = %v, want %v", err, feed.ErrFetchInProgress)
	}
	if f.LoadMore() {
		t.Error("LoadMore() must be refused while loading")
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
}

func TestFilterChangesResetVisibleCount(t *testing.T) {
	f := feed.New("octocat")
	repos := append(manyRepos(t, 60, "Go"), manyRepos(t, 5, "Rust")...)
	if err := f.Fetch(context.Background(), staticLoader(repos, nil)); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	for f.Snapshot().VisibleCount < 48 {
		if !f.LoadMore() {
			t.Fatal("LoadMore() refused before 48")
		}
	}

	if !f.SetLanguage("Go") {
		t.Error("SetLanguage() should report a change")
	}
	if got := f.Snapshot().VisibleCount; got != feed.InitialPageSize {
		t.Errorf("after SetLanguage VisibleCount = %d, want %d", got, feed.InitialPageSize)
	}

	f.LoadMore()
	f.LoadMore()
	if !f.SetSearchTerm("go-") {
		t.Error("SetSearchTerm() should report a change")
	}
	if got := f.Snapshot().VisibleCount; got != feed.InitialPageSize {
		t.Errorf("after SetSearchTerm VisibleCount = %d, want %d", got, feed.InitialPageSize)
	}

	f.LoadMore()
	if f.SetSearchTerm("go-") {
		t.Error("setting the same term should not report a change")
	}
	if got := f.Snapshot().VisibleCount; got != feed.InitialPageSize+feed.PageIncrement {
		t.Errorf("unchanged term reset VisibleCount to %d", got)
	}
}

func TestLoadMore(t *testing.T) {
	f := feed.New("octocat")
	if err := f.Fetch(context.Background(), staticLoader(manyRepos(t, 20, "Go"), nil)); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if got := f.Remaining(); got != 8 {
		t.Errorf("Remaining() = %d, want 8", got)
	}
	if !f.LoadMore() {
		t.Fatal("first LoadMore() refused")
	}
	if got := f.Snapshot().VisibleCount; got != 18 {
		t.Errorf("VisibleCount = %d, want 18", got)
	}
	if !f.LoadMore() {
		t.Fatal("second LoadMore() refused")
	}

	v := f.Snapshot()
	if len(v.Displayed) != 20 || v.HasMore {
		t.Errorf("Displayed = %d, HasMore = %v", len(v.Displayed), v.HasMore)
	}
	if f.LoadMore() {
		t.Error("LoadMore() with nothing remaining should be refused")
	}
	if got := f.Snapshot().VisibleCount; got != 24 {
		t.Errorf("VisibleCount = %d, want 24", got)
	}
}
