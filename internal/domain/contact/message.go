package contact

import (
	"fmt"

	"portfolio-core/internal/domain/profile"
)

// Submission is what the visitor typed into the contact form
type Submission struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Message is the outgoing notification
type Message struct {
	Content   string
	Username  string
	AvatarURL string
}

// WithSenderName fills an empty name from the sender's profile
func (s Submission) WithSenderName(sender *profile.DiscordProfile) Submission {
	if s.Name == "" && sender != nil {
		s.Name = sender.DisplayName()
	}
	return s
}

// Validate rejects a submission that has no name and lacks either contact detail
func (s Submission) Validate() error {
	if s.Name == "" && (s.Email == "" || s.Phone == "") {
		return ErrInvalid()
	}
	return nil
}

// Compose builds the notification for a submission.
// The sender's identity, when known, names and pictures the message.
func Compose(s Submission, sender *profile.DiscordProfile) Message {
	msg := Message{
		Content:  fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nMessage: %s", s.Name, s.Email, s.Phone, s.Message),
		Username: s.Name,
	}
	if sender != nil {
		if name := sender.DisplayName(); name != "" {
			msg.Username = name
		}
		msg.AvatarURL = sender.AvatarURL()
	}
	return msg
}
