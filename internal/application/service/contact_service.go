package service

import (
	"context"
	"log/slog"

	"portfolio-core/internal/application/dto"
	"portfolio-core/internal/domain/contact"
	"portfolio-core/internal/domain/profile"
	"portfolio-core/internal/metrics"
	"portfolio-core/internal/webhook"
)

// WebhookSender delivers contact messages
type WebhookSender interface {
	Configured() bool
	Send(ctx context.Context, msg webhook.Message) error
}

// ContactService forwards contact form submissions
type ContactService struct {
	sender WebhookSender
	logger *slog.Logger
}

// NewContactService creates a new contact service
func NewContactService(sender WebhookSender, logger *slog.Logger) *ContactService {
	return &ContactService{sender: sender, logger: logger}
}

// Submit validates the form and posts it once. sender may be nil.
func (s *ContactService) Submit(ctx context.Context, sender *profile.DiscordProfile, req *dto.ContactRequest) error {
	sub := contact.Submission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}.WithSenderName(sender)

	if err := sub.Validate(); err != nil {
		metrics.ContactSubmissionsTotal.WithLabelValues("invalid").Inc()
		return err
	}

	if !s.sender.Configured() {
		metrics.ContactSubmissionsTotal.WithLabelValues("not_configured").Inc()
		return contact.ErrWebhookNotConfigured()
	}

	msg := contact.Compose(sub, sender)
	err := s.sender.Send(ctx, webhook.Message{
		Content:   msg.Content,
		Username:  msg.Username,
		AvatarURL: msg.AvatarURL,
	})
	if err != nil {
		s.logger.Error("contact: webhook delivery failed", "error", err)
		metrics.ContactSubmissionsTotal.WithLabelValues("failed").Inc()
		return contact.ErrSendFailed(err)
	}

	metrics.ContactSubmissionsTotal.WithLabelValues("sent").Inc()
	return nil
}
