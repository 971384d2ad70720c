package repo

import (
	"fmt"
	"strings"
)

// GitHubID is the opaque id GitHub assigns to a repository
type GitHubID struct {
	value int64
}

// NewGitHubID creates a new GitHubID with validation
func NewGitHubID(id int64) (GitHubID, error) {
	if id <= 0 {
		return GitHubID{}, fmt.Errorf("GitHub ID must be positive")
	}
	return GitHubID{value: id}, nil
}

func (g GitHubID) Int64() int64 {
	return g.value
}

func (g GitHubID) Equals(other GitHubID) bool {
	return g.value == other.value
}

// Name is a repository name as GitHub reports it
type Name struct {
	value string
}

// NewName trims and validates a repository name
func NewName(name string) (Name, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return Name{}, fmt.Errorf("repository name cannot be empty")
	}
	if len(name) > 100 {
		return Name{}, fmt.Errorf("repository name too long (max 100 characters)")
	}

	return Name{value: name}, nil
}

func (n Name) String() string {
	return n.value
}

// URL is an absolute http(s) link to the repository page
type URL struct {
	value string
}

// NewURL creates a new URL with validation
func NewURL(url string) (URL, error) {
	url = strings.TrimSpace(url)

	if url == "" {
		return URL{}, fmt.Errorf("repository URL cannot be empty")
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return URL{}, fmt.Errorf("repository URL must be a valid HTTP(S) URL")
	}

	return URL{value: url}, nil
}

func (u URL) String() string {
	return u.value
}

// Owner is the account a repository belongs to
type Owner struct {
	Login     string
	AvatarURL string
}
