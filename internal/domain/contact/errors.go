package contact

import (
	"errors"
	"fmt"
)

// Error codes
const (
	CodeInvalid       = "CONTACT_INVALID"
	CodeNotConfigured = "CONTACT_NOT_CONFIGURED"
	CodeSendFailed    = "CONTACT_SEND_FAILED"
)

// Domain errors

type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Predefined domain errors

func ErrInvalid() *DomainError {
	return &DomainError{
		Code:    CodeInvalid,
		Message: "Please fill in all fields",
	}
}

func ErrWebhookNotConfigured() *DomainError {
	return &DomainError{
		Code:    CodeNotConfigured,
		Message: "Discord webhook URL not configured",
	}
}

func ErrSendFailed(err error) *DomainError {
	return &DomainError{
		Code:    CodeSendFailed,
		Message: "Failed to send message. Please try again.",
		Err:     err,
	}
}

// CodeOf returns the DomainError code of err, or ""
func CodeOf(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
