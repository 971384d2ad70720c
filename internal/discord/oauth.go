package discord

import (
	"golang.org/x/oauth2"
)

// Endpoint is Discord's OAuth2 endpoint
var Endpoint = oauth2.Endpoint{
	AuthURL:  "https://discord.com/oauth2/authorize",
	TokenURL: "https://discord.com/api/oauth2/token",
}

// NewOAuthConfig builds the implicit-grant configuration for the identify scope
func NewOAuthConfig(clientID, redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:    clientID,
		RedirectURL: redirectURL,
		Scopes:      []string{"identify"},
		Endpoint:    Endpoint,
	}
}

// LoginURL returns the authorize URL that sends the token back in the fragment
func LoginURL(cfg *oauth2.Config) string {
	return cfg.AuthCodeURL("", oauth2.SetAuthURLParam("response_type", "token"))
}
