package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-core/internal/application/service"
	"portfolio-core/internal/domain/contact"
	"portfolio-core/internal/domain/profile"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// writeError maps a service error onto a status code and ErrorResponse
func writeError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "Feed session not found",
		})
		return
	}

	var ce *contact.DomainError
	if errors.As(err, &ce) {
		status := http.StatusInternalServerError
		switch ce.Code {
		case contact.CodeInvalid:
			status = http.StatusBadRequest
		case contact.CodeNotConfigured:
			status = http.StatusServiceUnavailable
		case contact.CodeSendFailed:
			status = http.StatusBadGateway
		}
		c.JSON(status, ErrorResponse{
			Error:   ce.Code,
			Message: ce.Message,
		})
		return
	}

	var pe *profile.DomainError
	if errors.As(err, &pe) {
		status := http.StatusInternalServerError
		switch pe.Code {
		case profile.CodeOAuthError, profile.CodeNoToken:
			status = http.StatusBadRequest
		case profile.CodeProfileFetchFailed:
			status = http.StatusBadGateway
		case profile.CodeNotConfigured:
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, ErrorResponse{
			Error:   pe.Code,
			Message: pe.Message,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "Internal server error",
		Details: err.Error(),
	})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "invalid_request",
		Message: "Invalid request body",
		Details: err.Error(),
	})
}
