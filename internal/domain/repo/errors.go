package repo

import (
	"errors"
	"fmt"
)

// Error codes
const (
	CodeInvalidRepositoryData = "INVALID_REPOSITORY_DATA"
	CodeRateLimited           = "GITHUB_RATE_LIMITED"
	CodeFetchFailed           = "GITHUB_FETCH_FAILED"
	CodeNetworkError          = "GITHUB_NETWORK_ERROR"
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

func ErrInvalidRepositoryData(field string, err error) *DomainError {
	return &DomainError{
		Code:    CodeInvalidRepositoryData,
		Message: fmt.Sprintf("invalid %s", field),
		Err:     err,
	}
}

func ErrRateLimited() *DomainError {
	return &DomainError{
		Code:    CodeRateLimited,
		Message: "GitHub API rate limit exceeded. Please try again later.",
	}
}

func ErrFetchFailed(status int) *DomainError {
	return &DomainError{
		Code:    CodeFetchFailed,
		Message: fmt.Sprintf("Failed to fetch repositories: %d", status),
	}
}

func ErrNetwork(err error) *DomainError {
	return &DomainError{
		Code:    CodeNetworkError,
		Message: err.Error(),
		Err:     err,
	}
}

// UserMessage returns the text shown to the visitor for a fetch failure
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var de *DomainError
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}

// HasCode reports whether err is a DomainError with the given code
func HasCode(err error, code string) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Code == code
}
