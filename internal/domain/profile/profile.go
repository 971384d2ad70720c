package profile

import "fmt"

const cdnBaseURL = "https://cdn.discordapp.com"

// DiscordProfile is the visitor's Discord identity as persisted in their slot
type DiscordProfile struct {
	ID         string  `json:"id"`
	Avatar     *string `json:"avatar"`
	GlobalName *string `json:"globalName"`
	Username   string  `json:"username"`
	Banner     *string `json:"banner"`
	Badge      *Badge  `json:"badge,omitempty"`
}

// Badge is the clan tag shown next to the visitor's name
type Badge struct {
	Tag     string `json:"tag"`
	ID      string `json:"id"`
	GuildID string `json:"guildId"`
}

// DisplayName prefers the global name over the username
func (p *DiscordProfile) DisplayName() string {
	if p.GlobalName != nil && *p.GlobalName != "" {
		return *p.GlobalName
	}
	return p.Username
}

// AvatarURL returns the CDN avatar link, or "" without an avatar
func (p *DiscordProfile) AvatarURL() string {
	if p.Avatar == nil || *p.Avatar == "" {
		return ""
	}
	return fmt.Sprintf("%s/avatars/%s/%s", cdnBaseURL, p.ID, *p.Avatar)
}

// BannerURL returns the CDN banner link, or "" without a banner
func (p *DiscordProfile) BannerURL() string {
	if p.Banner == nil || *p.Banner == "" {
		return ""
	}
	return fmt.Sprintf("%s/banners/%s/%s?size=480", cdnBaseURL, p.ID, *p.Banner)
}

// BadgeIconURL returns the clan badge icon link, or "" without a badge
func (p *DiscordProfile) BadgeIconURL() string {
	if p.Badge == nil || p.Badge.ID == "" || p.Badge.GuildID == "" {
		return ""
	}
	return fmt.Sprintf("%s/clan-badges/%s/%s?size=16", cdnBaseURL, p.Badge.GuildID, p.Badge.ID)
}
