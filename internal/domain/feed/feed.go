package feed

import (
	"context"
	"errors"
	"sync"

	"portfolio-core/internal/domain/repo"
)

// Pagination constants
const (
	InitialPageSize = 12
	PageIncrement   = 6
)

// State is what the repository section renders
type State string

const (
	StateGrid  State = "grid"
	StateEmpty State = "empty"
	StateError State = "error"
)

// ErrFetchInProgress is returned when a fetch is started while one is in flight
var ErrFetchInProgress = errors.New("repository fetch already in progress")

// Loader fetches the repositories of a handle
type Loader func(ctx context.Context, handle string) ([]*repo.Repository, error)

// Feed is the repository listing state for one viewer
type Feed struct {
	mu sync.RWMutex

	handle           string
	all              []*repo.Repository
	searchTerm       string
	selectedLanguage string
	visibleCount     int
	loading          bool
	err              error
}

// View is a consistent snapshot of a Feed
type View struct {
	Handle           string
	State            State
	Loading          bool
	Err              error
	SearchTerm       string
	SelectedLanguage string
	Languages        []string
	Displayed        []*repo.Repository
	FilteredCount    int
	TotalCount       int
	VisibleCount     int
	HasMore          bool
}

// New creates an idle feed for a GitHub handle
func New(handle string) *Feed {
	return &Feed{
		handle:       handle,
		visibleCount: InitialPageSize,
	}
}

// Handle returns the GitHub account this feed lists
func (f *Feed) Handle() string {
	return f.handle
}

// Fetch loads and sorts the handle's repositories.
// With an empty handle nothing is requested and the feed stays empty.
// Any failure leaves the feed with no repositories and the error recorded.
func (f *Feed) Fetch(ctx context.Context, load Loader) error {
	if err := f.begin(); err != nil {
		return err
	}
	if f.handle == "" {
		f.complete(nil, nil)
		return nil
	}

	repos, err := load(ctx, f.handle)
	f.complete(repos, err)
	return err
}

// begin marks the feed as loading
func (f *Feed) begin() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.loading {
		return ErrFetchInProgress
	}
	f.loading = true
	f.err = nil
	return nil
}

func (f *Feed) complete(repos []*repo.Repository, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.all = nil
		f.err = err
	} else {
		f.all = SortByWatchers(repos)
		f.err = nil
	}
	f.loading = false
}

// SetSearchTerm changes the search term; the page size resets only on an actual change
func (f *Feed) SetSearchTerm(term string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if term == f.searchTerm {
		return false
	}
	f.searchTerm = term
	f.visibleCount = InitialPageSize
	return true
}

// SetLanguage changes the language filter; "" selects all languages
func (f *Feed) SetLanguage(lang string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if lang == f.selectedLanguage {
		return false
	}
	f.selectedLanguage = lang
	f.visibleCount = InitialPageSize
	return true
}

// LoadMore reveals another page when filtered items remain and no fetch is running
func (f *Feed) LoadMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.loading || f.remainingLocked() <= 0 {
		return false
	}
	f.visibleCount += PageIncrement
	return true
}

// Remaining returns how many filtered items are not displayed yet
func (f *Feed) Remaining() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.remainingLocked()
}

func (f *Feed) remainingLocked() int {
	filtered := len(Filter(f.all, f.searchTerm, f.selectedLanguage))
	if f.visibleCount >= filtered {
		return 0
	}
	return filtered - f.visibleCount
}

// Loading reports whether a fetch is in flight
func (f *Feed) Loading() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.loading
}

// Snapshot derives the displayed view from the current state
func (f *Feed) Snapshot() View {
	f.mu.RLock()
	defer f.mu.RUnlock()

	filtered := Filter(f.all, f.searchTerm, f.selectedLanguage)
	displayed := Window(filtered, f.visibleCount)

	return View{
		Handle:           f.handle,
		State:            f.stateLocked(),
		Loading:          f.loading,
		Err:              f.err,
		SearchTerm:       f.searchTerm,
		SelectedLanguage: f.selectedLanguage,
		Languages:        Languages(f.all),
		Displayed:        displayed,
		FilteredCount:    len(filtered),
		TotalCount:       len(f.all),
		VisibleCount:     f.visibleCount,
		HasMore:          len(displayed) < len(filtered),
	}
}

func (f *Feed) stateLocked() State {
	switch {
	case f.err != nil:
		return StateError
	case len(f.all) == 0 && !f.loading:
		return StateEmpty
	default:
		return StateGrid
	}
}
