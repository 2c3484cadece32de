package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/server/http/dto"
)

const (
	// AccountIDContextKey is a gin context key for the authenticated account identifier.
	AccountIDContextKey = "accountID"
	sessionCookieName   = "orderdesk_session"
)

// SessionResolver turns an opaque session token into an account identifier.
type SessionResolver interface {
	RequireSession(ctx context.Context, token string) (int64, error)
}

// AuthRequired ensures the request carries a live session before reaching the handler.
func AuthRequired(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)

		accountID, err := resolver.RequireSession(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotAuthenticated) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Not authenticated"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error"})
			return
		}

		c.Set(AccountIDContextKey, accountID)
		c.Next()
	}
}

// ExtractToken reads the session token from the cookie or a bearer header.
func ExtractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(sessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}

// SetAuthCookie writes the session cookie with an absolute lifetime.
func SetAuthCookie(c *gin.Context, token string, ttl time.Duration) {
	c.SetCookie(sessionCookieName, token, int(ttl.Seconds()), "/", "", false, true)
}

// ClearAuthCookie removes the session cookie from the client.
func ClearAuthCookie(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
}
