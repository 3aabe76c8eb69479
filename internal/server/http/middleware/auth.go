package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/sweetcrumb/bakehouse/internal/domain/errors"
	"github.com/sweetcrumb/bakehouse/internal/domain/model"
	"github.com/sweetcrumb/bakehouse/internal/server/http/dto"
)

const (
	// UserContextKey is the gin context key holding the authenticated user.
	UserContextKey = "currentUser"
	authCookieName = "bakehouse_token"
)

// UserSource resolves bearer tokens into accounts.
type UserSource interface {
	ParseToken(token string) (int64, error)
	UserByID(ctx context.Context, id int64) (*model.User, error)
}

// AuthRequired authenticates the request and loads the account into the
// context. Deactivated accounts are rejected even with a valid token.
func AuthRequired(source UserSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abort(c, http.StatusUnauthorized, "not authenticated")
			return
		}

		userID, err := source.ParseToken(token)
		if err != nil {
			abort(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		user, err := source.UserByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				abort(c, http.StatusUnauthorized, "not authenticated")
				return
			}
			abort(c, http.StatusInternalServerError, "server error")
			return
		}
		if !user.IsActive {
			abort(c, http.StatusForbidden, "account is deactivated")
			return
		}

		c.Set(UserContextKey, user)
		c.Next()
	}
}

// OptionalAuth loads the account when a valid token accompanies the request
// but never rejects. Checkout uses it to link orders to signed-in customers
// while staying open to guests.
func OptionalAuth(source UserSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}
		userID, err := source.ParseToken(token)
		if err != nil {
			c.Next()
			return
		}
		user, err := source.UserByID(c.Request.Context(), userID)
		if err == nil && user.IsActive {
			c.Set(UserContextKey, user)
		}
		c.Next()
	}
}

// AdminRequired rejects authenticated users without the admin role. It must
// run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			abort(c, http.StatusUnauthorized, "not authenticated")
			return
		}
		if !user.IsAdmin() {
			abort(c, http.StatusForbidden, "admin access required")
			return
		}
		c.Next()
	}
}

// CurrentUser extracts the authenticated account from the context.
func CurrentUser(c *gin.Context) *model.User {
	val, ok := c.Get(UserContextKey)
	if !ok {
		return nil
	}
	user, _ := val.(*model.User)
	return user
}

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: message})
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}
