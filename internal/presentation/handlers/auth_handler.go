package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"

	"portfolio-core/internal/application/dto"
	"portfolio-core/internal/application/service"
	"portfolio-core/internal/discord"
	"portfolio-core/internal/domain/profile"
	"portfolio-core/internal/middleware"
)

// callbackPage forwards the URL fragment, which never reaches the server, to the API
const callbackPage = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>Signing in</title></head>
<body>
<p>Signing in with Discord...</p>
<script>
fetch("/api/v1/auth/discord/callback", {
  method: "POST",
  credentials: "same-origin",
  headers: {"Content-Type": "application/json"},
  body: JSON.stringify({fragment: window.location.hash})
})
  .then(function (r) { return r.json(); })
  .then(function (b) { window.location.replace(b.redirect || "/?discord_error=fetch_failed"); })
  .catch(function () { window.location.replace("/?discord_error=fetch_failed"); });
</script>
</body>
</html>
`

// AuthHandler handles the Discord sign-in flow
type AuthHandler struct {
	authService *service.AuthService
	stores      *profile.Stores
	oauthConfig *oauth2.Config
}

// NewAuthHandler creates a new auth handler. oauthConfig is nil when Discord is not configured.
func NewAuthHandler(authService *service.AuthService, stores *profile.Stores, oauthConfig *oauth2.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		stores:      stores,
		oauthConfig: oauthConfig,
	}
}

// Login handles GET /auth/discord/login
// @Summary Start Discord sign-in
// @Description Redirects to the Discord authorize page using the implicit grant
// @Tags Auth
// @Success 302
// @Router /auth/discord/login [get]
func (h *AuthHandler) Login(c *gin.Context) {
	if h.oauthConfig == nil || h.oauthConfig.ClientID == "" {
		c.Redirect(http.StatusFound, service.RedirectNotConfigured)
		return
	}
	c.Redirect(http.StatusFound, discord.LoginURL(h.oauthConfig))
}

// CallbackPage handles GET /auth/discord/callback
// @Summary Discord redirect target
// @Description Serves the page that posts the URL fragment to the callback API
// @Tags Auth
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /auth/discord/callback [get]
func (h *AuthHandler) CallbackPage(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Header("Referrer-Policy", "no-referrer")
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(callbackPage))
}

// CompleteCallback handles POST /auth/discord/callback
// @Summary Complete Discord sign-in
// @Description Exchanges the access token in the fragment for the visitor's profile and stores it
// @Tags Auth
// @Accept json
// @Produce json
// @Param callback body dto.CallbackRequest true "URL fragment"
// @Success 200 {object} dto.CallbackResponse
// @Failure 400 {object} dto.CallbackResponse
// @Failure 500 {object} dto.CallbackResponse
// @Failure 502 {object} dto.CallbackResponse
// @Router /auth/discord/callback [post]
func (h *AuthHandler) CompleteCallback(c *gin.Context) {
	var req dto.CallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	store := h.stores.For(middleware.VisitorID(c))
	redirect, err := h.authService.CompleteCallback(c.Request.Context(), store, req.Fragment)

	c.JSON(callbackStatus(err), dto.CallbackResponse{
		Redirect: redirect,
		Success:  err == nil,
	})
}

func callbackStatus(err error) int {
	switch profile.CodeOf(err) {
	case "":
		if err != nil {
			return http.StatusInternalServerError
		}
		return http.StatusOK
	case profile.CodeOAuthError, profile.CodeNoToken:
		return http.StatusBadRequest
	case profile.CodeProfileFetchFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
