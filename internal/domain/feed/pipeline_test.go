package feed_test

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"portfolio-core/internal/domain/feed"
	"portfolio-core/internal/domain/repo"
)

func strPtr(s string) *string { return &s }

type fixture struct {
	name     string
	desc     *string
	lang     *string
	watchers int
}

func build(t *testing.T, fixtures ...fixture) []*repo.Repository {
	t.Helper()
	out := make([]*repo.Repository, 0, len(fixtures))
	for i, f := range fixtures {
		r, err := repo.FromGitHub(&repo.GitHubRepository{
			ID:            int64(i + 1),
			Name:          f.name,
			Description:   f.desc,
			HTMLURL:       "https://github.com/octocat/" + f.name,
			WatchersCount: f.watchers,
			Language:      f.lang,
		})
		if err != nil {
			t.Fatalf("fixture %q: %v", f.name, err)
		}
		out = append(out, r)
	}
	return out
}

func names(repos []*repo.Repository) []string {
	out := make([]string, len(repos))
	for i, r := range repos {
		out[i] = r.Name().String()
	}
	return out
}

func TestSortByWatchers(t *testing.T) {
	repos := build(t,
		fixture{name: "five", watchers: 5},
		fixture{name: "fifty", watchers: 50},
		fixture{name: "one", watchers: 1},
		fixture{name: "five-again", watchers: 5},
	)

	sorted := feed.SortByWatchers(repos)

	want := []string{"fifty", "five", "five-again", "one"}
	if got := names(sorted); !reflect.DeepEqual(got, want) {
		t.Errorf("SortByWatchers() = %v, want %v", got, want)
	}
	if names(repos)[0] != "five" {
		t.Error("SortByWatchers() must not reorder its input")
	}
}

func TestFilter(t *testing.T) {
	repos := build(t,
		fixture{name: "Portfolio", desc: strPtr("My personal site"), lang: strPtr("TypeScript")},
		fixture{name: "dotfiles", desc: strPtr("Shell config for my SITE"), lang: strPtr("Shell")},
		fixture{name: "go-kit", desc: nil, lang: strPtr("Go")},
		fixture{name: "notes", desc: nil, lang: nil},
	)

	tests := []struct {
		name string
		term string
		lang string
		want []string
	}{
		{"no filter", "", "", []string{"Portfolio", "dotfiles", "go-kit", "notes"}},
		{"term in name case-insensitive", "PORT", "", []string{"Portfolio"}},
		{"term in description", "site", "", []string{"Portfolio", "dotfiles"}},
		{"nil description does not match", "config", "", []string{"dotfiles"}},
		{"language only", "", "Go", []string{"go-kit"}},
		{"term and language", "site", "Shell", []string{"dotfiles"}},
		{"null language never matches a selection", "notes", "Go", []string{}},
		{"unknown language", "", "Rust", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(feed.Filter(repos, tt.term, tt.lang))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter(%q, %q) = %v, want %v", tt.term, tt.lang, got, tt.want)
			}
		})
	}
}

func TestFilterIsPure(t *testing.T) {
	repos := build(t,
		fixture{name: "alpha", lang: strPtr("Go")},
		fixture{name: "beta", lang: strPtr("Go")},
		fixture{name: "gamma", lang: strPtr("Rust")},
	)

	first := feed.Filter(repos, "a", "Go")
	second := feed.Filter(repos, "a", "Go")
	if !reflect.DeepEqual(names(first), names(second)) {
		t.Errorf("Filter() not deterministic: %v vs %v", names(first), names(second))
	}
}

func TestFilterResultsContainTerm(t *testing.T) {
	var fixtures []fixture
	for i := 0; i < 30; i++ {
		var desc *string
		if i%3 == 0 {
			desc = strPtr(fmt.Sprintf("Tool number %d for CLI users", i))
		}
		fixtures = append(fixtures, fixture{name: fmt.Sprintf("repo-%d", i), desc: desc})
	}
	repos := build(t, fixtures...)

	for _, term := range []string{"cli", "REPO-1", "tool", "9", "zzz"} {
		needle := strings.ToLower(term)
		for _, r := range feed.Filter(repos, term, "") {
			inName := strings.Contains(strings.ToLower(r.Name().String()), needle)
			inDesc := r.Description() != nil && strings.Contains(strings.ToLower(*r.Description()), needle)
			if !inName && !inDesc {
				t.Errorf("term %q: %s matched without containing the term", term, r.Name().String())
			}
		}
	}
}

func TestLanguages(t *testing.T) {
	repos := build(t,
		fixture{name: "a", lang: strPtr("Go")},
		fixture{name: "b", lang: strPtr("Rust")},
		fixture{name: "c", lang: strPtr("Go")},
		fixture{name: "d", lang: nil},
	)

	want := []string{"", "Go", "Rust"}
	if got := feed.Languages(repos); !reflect.DeepEqual(got, want) {
		t.Errorf("Languages() = %v, want %v", got, want)
	}

	if got := feed.Languages(nil); !reflect.DeepEqual(got, []string{""}) {
		t.Errorf("Languages(nil) = %v, want [\"\"]", got)
	}
}

func TestWindow(t *testing.T) {
	repos := build(t,
		fixture{name: "a"}, fixture{name: "b"}, fixture{name: "c"},
	)

	tests := []struct {
		n    int
		want int
	}{
		{-1, 0},
		{0, 0},
		{2, 2},
		{3, 3},
		{12, 3},
	}

	for _, tt := range tests {
		if got := len(feed.Window(repos, tt.n)); got != tt.want {
			t.Errorf("len(Window(%d)) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestWindowDoesNotChangeRemainderMembership(t *testing.T) {
	var fixtures []fixture
	for i := 0; i < 25; i++ {
		fixtures = append(fixtures, fixture{name: fmt.Sprintf("r%02d", i)})
	}
	filtered := feed.Filter(build(t, fixtures...), "", "")

	// The filtered set is independent of the window; each window is a prefix of it.
	for _, n := range []int{12, 18, 24, 30} {
		w := feed.Window(filtered, n)
		if !reflect.DeepEqual(names(w), names(filtered)[:len(w)]) {
			t.Errorf("Window(%d) is not a prefix of the filtered list", n)
		}
	}
}
