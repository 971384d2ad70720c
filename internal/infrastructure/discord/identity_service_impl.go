package discord

import (
	"context"

	"portfolio-core/internal/discord"
	"portfolio-core/internal/domain/profile"
)

// IdentityServiceImpl implements profile.IdentityService on the Discord API
type IdentityServiceImpl struct {
	client *discord.Client
}

// NewIdentityService creates a new Discord identity service
func NewIdentityService(client *discord.Client) *IdentityServiceImpl {
	return &IdentityServiceImpl{client: client}
}

var _ profile.IdentityService = (*IdentityServiceImpl)(nil)

// FetchProfile exchanges the token for the caller's profile
func (s *IdentityServiceImpl) FetchProfile(ctx context.Context, tokenType, accessToken string) (*profile.DiscordProfile, error) {
	user, err := s.client.GetCurrentUser(ctx, tokenType, accessToken)
	if err != nil {
		return nil, profile.ErrProfileFetchFailed(err)
	}
	return ToProfile(user), nil
}

// ToProfile projects the API user onto the persisted profile.
// The badge is set only when the user has a clan.
func ToProfile(u *discord.User) *profile.DiscordProfile {
	p := &profile.DiscordProfile{
		ID:         u.ID,
		Avatar:     u.Avatar,
		GlobalName: u.GlobalName,
		Username:   u.Username,
		Banner:     u.Banner,
	}
	if u.Clan != nil {
		p.Badge = &profile.Badge{
			Tag:     u.Clan.Tag,
			ID:      u.Clan.Badge,
			GuildID: u.Clan.IdentityGuildID,
		}
	}
	return p
}
