package dto

// BadgeResponse is the clan badge of a profile
type BadgeResponse struct {
	Tag     string `json:"tag"`
	ID      string `json:"id"`
	GuildID string `json:"guild_id"`
	IconURL string `json:"icon_url"`
}

// ProfileResponse represents the visitor's Discord profile with resolved CDN links
type ProfileResponse struct {
	ID          string         `json:"id"`
	Username    string         `json:"username"`
	GlobalName  *string        `json:"global_name"`
	DisplayName string         `json:"display_name"`
	AvatarURL   string         `json:"avatar_url,omitempty"`
	BannerURL   string         `json:"banner_url,omitempty"`
	Badge       *BadgeResponse `json:"badge,omitempty"`
}

// CallbackRequest carries the URL fragment of the OAuth redirect
type CallbackRequest struct {
	Fragment string `json:"fragment"`
}

// CallbackResponse tells the callback page where to navigate
type CallbackResponse struct {
	Redirect string `json:"redirect" example:"/?discord_auth=success"`
	Success  bool   `json:"success"`
}
