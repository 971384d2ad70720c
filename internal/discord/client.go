package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultAPIURL is the Discord REST base
const DefaultAPIURL = "https://discord.com/api"

// Client handles Discord API interactions
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new Discord API client; a zero timeout disables it
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Clan is the primary guild tag of a user
type Clan struct {
	Tag             string `json:"tag"`
	Badge           string `json:"badge"`
	IdentityGuildID string `json:"identity_guild_id"`
}

// User is the subset of GET /users/@me used here
type User struct {
	ID         string  `json:"id"`
	Username   string  `json:"username"`
	GlobalName *string `json:"global_name"`
	Avatar     *string `json:"avatar"`
	Banner     *string `json:"banner"`
	Clan       *Clan   `json:"clan"`
}

// StatusError is returned when the API answers with a non-2xx status
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("discord API returned status %d: %s", e.StatusCode, e.Body)
}

// GetCurrentUser fetches the user the token was issued to.
// The Authorization header is "<tokenType> <accessToken>" exactly as received.
func (c *Client) GetCurrentUser(ctx context.Context, tokenType, accessToken string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users/@me", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", tokenType+" "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return &user, nil
}
