package dto

import "time"

// OwnerResponse represents the owner of a repository
type OwnerResponse struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

// RepositoryResponse represents repository data in API responses
type RepositoryResponse struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description *string       `json:"description"`
	HTMLURL     string        `json:"html_url"`
	Stars       int           `json:"stars"`
	Watchers    int           `json:"watchers"`
	Forks       int           `json:"forks"`
	Language    *string       `json:"language"`
	Topics      []string      `json:"topics"`
	Owner       OwnerResponse `json:"owner"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
