package profile

import (
	"errors"
	"fmt"
)

// Error codes
const (
	CodeOAuthError         = "OAUTH_ERROR"
	CodeNoToken            = "NO_TOKEN"
	CodeProfileFetchFailed = "PROFILE_FETCH_FAILED"
	CodeStorageFailed      = "PROFILE_STORAGE_FAILED"
	CodeNotConfigured      = "DISCORD_NOT_CONFIGURED"
)

// ErrCorruptProfile is returned by Get when the slot holds undecodable data
var ErrCorruptProfile = errors.New("stored profile is corrupt")

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

func ErrOAuth(reason string) *DomainError {
	return &DomainError{
		Code:    CodeOAuthError,
		Message: reason,
	}
}

func ErrNoToken() *DomainError {
	return &DomainError{
		Code:    CodeNoToken,
		Message: "authorization response carried no access token",
	}
}

func ErrProfileFetchFailed(err error) *DomainError {
	return &DomainError{
		Code:    CodeProfileFetchFailed,
		Message: "failed to fetch Discord profile",
		Err:     err,
	}
}

func ErrStorageFailed(err error) *DomainError {
	return &DomainError{
		Code:    CodeStorageFailed,
		Message: "failed to store Discord profile",
		Err:     err,
	}
}

func ErrNotConfigured() *DomainError {
	return &DomainError{
		Code:    CodeNotConfigured,
		Message: "Discord login is not configured",
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
