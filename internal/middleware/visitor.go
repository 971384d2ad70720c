package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"portfolio-core/internal/config"
)

const (
	visitorContextKey = "visitor_id"
	visitorIssuer     = "portfolio-core"
)

// VisitorMiddleware gives every browser a stable anonymous id in a signed cookie.
// It is an identity for the profile slot only and grants nothing.
type VisitorMiddleware struct {
	secret     []byte
	cookieName string
	ttl        time.Duration
	now        func() time.Time
}

// NewVisitorMiddleware creates the visitor middleware
func NewVisitorMiddleware(cfg *config.VisitorConfig) *VisitorMiddleware {
	return &VisitorMiddleware{
		secret:     []byte(cfg.Secret),
		cookieName: cfg.CookieName,
		ttl:        cfg.TTL,
		now:        time.Now,
	}
}

// Identify reads the visitor cookie, issuing a fresh one when missing or invalid
func (m *VisitorMiddleware) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, err := c.Cookie(m.cookieName); err == nil {
			if id, err := m.Parse(raw); err == nil {
				c.Set(visitorContextKey, id)
				c.Next()
				return
			}
		}

		id := uuid.NewString()
		token, err := m.Issue(id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "internal_error",
				"message": "Failed to issue visitor cookie",
			})
			c.Abort()
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(m.cookieName, token, int(m.ttl.Seconds()), "/", "", c.Request.TLS != nil, true)
		c.Set(visitorContextKey, id)
		c.Next()
	}
}

// Issue signs a visitor token for id
func (m *VisitorMiddleware) Issue(id string) (string, error) {
	now := m.now()
	claims := jwt.RegisteredClaims{
		Subject:   id,
		Issuer:    visitorIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse verifies a visitor token and returns its id
func (m *VisitorMiddleware) Parse(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(visitorIssuer),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("invalid visitor token: %w", err)
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return "", fmt.Errorf("invalid visitor id: %w", err)
	}
	return claims.Subject, nil
}

// VisitorID returns the id set by Identify, or ""
func VisitorID(c *gin.Context) string {
	return c.GetString(visitorContextKey)
}
