package feed

import (
	"sort"
	"strings"

	"portfolio-core/internal/domain/repo"
)

// SortByWatchers returns a copy ordered by watcher count, highest first.
// Ties keep their original order.
func SortByWatchers(repos []*repo.Repository) []*repo.Repository {
	out := append([]*repo.Repository(nil), repos...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].WatchersCount() > out[j].WatchersCount()
	})
	return out
}

// Filter keeps repositories whose name or description contains term
// (case-insensitive) and whose language equals lang. Empty term or lang match everything.
func Filter(repos []*repo.Repository, term, lang string) []*repo.Repository {
	needle := strings.ToLower(term)
	out := make([]*repo.Repository, 0, len(repos))
	for _, r := range repos {
		if matchesTerm(r, needle) && matchesLanguage(r, lang) {
			out = append(out, r)
		}
	}
	return out
}

func matchesTerm(r *repo.Repository, needle string) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Name().String()), needle) {
		return true
	}
	d := r.Description()
	return d != nil && strings.Contains(strings.ToLower(*d), needle)
}

func matchesLanguage(r *repo.Repository, lang string) bool {
	if lang == "" {
		return true
	}
	l := r.Language()
	return l != nil && *l == lang
}

// Languages returns the language facet: "" (all languages) followed by
// every distinct non-null language, sorted ascending.
func Languages(repos []*repo.Repository) []string {
	seen := make(map[string]struct{})
	for _, r := range repos {
		if l := r.Language(); l != nil {
			seen[*l] = struct{}{}
		}
	}
	seen[""] = struct{}{}

	out := make([]string, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Window returns the first n items, or all of them when fewer exist
func Window(repos []*repo.Repository, n int) []*repo.Repository {
	if n < 0 {
		n = 0
	}
	if n > len(repos) {
		n = len(repos)
	}
	return repos[:n:n]
}
