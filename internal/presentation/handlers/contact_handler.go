package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-core/internal/application/dto"
	"portfolio-core/internal/application/service"
	"portfolio-core/internal/domain/profile"
)

// ContactHandler handles contact form submissions
type ContactHandler struct {
	contactService *service.ContactService
	stores         *profile.Stores
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *service.ContactService, stores *profile.Stores) *ContactHandler {
	return &ContactHandler{contactService: contactService, stores: stores}
}

// Submit handles POST /contact
// @Summary Send a contact message
// @Description Forwards the form to the configured webhook. A signed-in visitor's Discord name and avatar are attached.
// @Tags Contact
// @Accept json
// @Produce json
// @Param contact body dto.ContactRequest true "Contact form"
// @Success 200 {object} dto.ContactResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	sender := senderProfile(c, h.stores)
	if err := h.contactService.Submit(c.Request.Context(), sender, &req); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ContactResponse{Sent: true})
}
