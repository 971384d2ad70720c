package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-core/internal/application/dto"
	"portfolio-core/internal/domain/profile"
	"portfolio-core/internal/metrics"
	"portfolio-core/internal/middleware"
)

const (
	defaultHeartbeat = 30 * time.Second
	streamSendWait   = 1 * time.Second
)

// ProfileHandler exposes the visitor's stored Discord profile
type ProfileHandler struct {
	stores    *profile.Stores
	heartbeat time.Duration
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(stores *profile.Stores) *ProfileHandler {
	return &ProfileHandler{stores: stores, heartbeat: defaultHeartbeat}
}

// GetProfile handles GET /profile
// @Summary Get the visitor's profile
// @Description Returns the Discord profile stored by the last successful sign-in
// @Tags Profile
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	p, err := h.stores.For(middleware.VisitorID(c)).Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to read profile",
			Details: err.Error(),
		})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "No Discord profile stored",
		})
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(p))
}

// StreamProfile handles GET /profile/events
// @Summary Stream profile changes
// @Description Sends a "profile" event every time the visitor's profile is stored while connected
// @Tags Profile
// @Produce text/event-stream
// @Success 200 {string} string "SSE stream"
// @Router /profile/events [get]
func (h *ProfileHandler) StreamProfile(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	ctx := c.Request.Context()
	changes := make(chan profile.DiscordProfile, 8)

	unsubscribe := h.stores.For(middleware.VisitorID(c)).Subscribe(func(_ context.Context, p profile.DiscordProfile) {
		select {
		case changes <- p:
		case <-ctx.Done():
		case <-time.After(streamSendWait):
			slog.Warn("profile stream: client too slow, change dropped", "discord_id", p.ID)
		}
	})
	defer unsubscribe()

	metrics.ProfileStreamsActive.Inc()
	defer metrics.ProfileStreamsActive.Dec()

	c.SSEvent("ready", "ok")
	c.Writer.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case p := <-changes:
			c.SSEvent("profile", toProfileResponse(&p))
			c.Writer.Flush()
		case <-ticker.C:
			c.SSEvent("heartbeat", "ping")
			c.Writer.Flush()
		}
	}
}

// senderProfile returns the visitor's profile, or nil when absent or unreadable
func senderProfile(c *gin.Context, stores *profile.Stores) *profile.DiscordProfile {
	p, err := stores.For(middleware.VisitorID(c)).Get(c.Request.Context())
	if err != nil {
		level := slog.LevelError
		if errors.Is(err, profile.ErrCorruptProfile) {
			level = slog.LevelWarn
		}
		slog.Log(c.Request.Context(), level, "reading sender profile failed", "error", err)
		return nil
	}
	return p
}

func toProfileResponse(p *profile.DiscordProfile) *dto.ProfileResponse {
	resp := &dto.ProfileResponse{
		ID:          p.ID,
		Username:    p.Username,
		GlobalName:  p.GlobalName,
		DisplayName: p.DisplayName(),
		AvatarURL:   p.AvatarURL(),
		BannerURL:   p.BannerURL(),
	}
	if p.Badge != nil {
		resp.Badge = &dto.BadgeResponse{
			Tag:     p.Badge.Tag,
			ID:      p.Badge.ID,
			GuildID: p.Badge.GuildID,
			IconURL: p.BadgeIconURL(),
		}
	}
	return resp
}
