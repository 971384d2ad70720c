package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-core/internal/application/dto"
	"portfolio-core/internal/application/service"
)

// FeedHandler handles repository feed session requests
type FeedHandler struct {
	feedService *service.FeedService
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(feedService *service.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// OpenSession handles POST /feed/sessions
// @Summary Open a feed session
// @Description Opens a repository feed and starts fetching. Fetch failures are reported in the view.
// @Tags Feed
// @Produce json
// @Param wait query bool false "Block until the fetch settled"
// @Success 201 {object} dto.FeedViewResponse
// @Failure 400 {object} ErrorResponse
// @Router /feed/sessions [post]
func (h *FeedHandler) OpenSession(c *gin.Context) {
	wait := false
	if raw := c.Query("wait"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "invalid_request",
				Message: "wait must be a boolean",
				Details: err.Error(),
			})
			return
		}
		wait = parsed
	}

	view, err := h.feedService.OpenSession(c.Request.Context(), wait)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GetSession handles GET /feed/sessions/:id
// @Summary Get a feed view
// @Tags Feed
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.FeedViewResponse
// @Failure 404 {object} ErrorResponse
// @Router /feed/sessions/{id} [get]
func (h *FeedHandler) GetSession(c *gin.Context) {
	view, err := h.feedService.GetView(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Search handles PUT /feed/sessions/:id/search
// @Summary Set the search term
// @Tags Feed
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param search body dto.SearchRequest true "Search term"
// @Success 200 {object} dto.FeedViewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /feed/sessions/{id}/search [put]
func (h *FeedHandler) Search(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	view, err := h.feedService.Search(c.Request.Context(), c.Param("id"), req.Term)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SelectLanguage handles PUT /feed/sessions/:id/language
// @Summary Select a language
// @Description An empty language selects all languages
// @Tags Feed
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param language body dto.LanguageRequest true "Language"
// @Success 200 {object} dto.FeedViewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /feed/sessions/{id}/language [put]
func (h *FeedHandler) SelectLanguage(c *gin.Context) {
	var req dto.LanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	view, err := h.feedService.SelectLanguage(c.Request.Context(), c.Param("id"), req.Language)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// LoadMore handles POST /feed/sessions/:id/more
// @Summary Show the next page
// @Tags Feed
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.PageResponse
// @Failure 404 {object} ErrorResponse
// @Router /feed/sessions/{id}/more [post]
func (h *FeedHandler) LoadMore(c *gin.Context) {
	page, err := h.feedService.LoadMore(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Scroll handles POST /feed/sessions/:id/scroll
// @Summary Report a scroll position
// @Description Shows the next page when the container is scrolled near its bottom
// @Tags Feed
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param scroll body dto.ScrollRequest true "Scroll metrics"
// @Success 200 {object} dto.PageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /feed/sessions/{id}/scroll [post]
func (h *FeedHandler) Scroll(c *gin.Context) {
	var req dto.ScrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	page, err := h.feedService.Scroll(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// CloseSession handles DELETE /feed/sessions/:id
// @Summary Close a feed session
// @Tags Feed
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /feed/sessions/{id} [delete]
func (h *FeedHandler) CloseSession(c *gin.Context) {
	if err := h.feedService.CloseSession(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
