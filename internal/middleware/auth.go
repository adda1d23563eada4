// Package middleware provides HTTP middleware for the cycling API.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/EliandyDumortier/Cycling-App/internal/authz"
	"github.com/EliandyDumortier/Cycling-App/internal/models"
	"github.com/EliandyDumortier/Cycling-App/internal/service"
)

// contextUserKey is where the resolved user is stored in the gin context.
const contextUserKey = "current_user"

// RequireAuth resolves the bearer token into a user record and aborts with
// the mapped status on any failure. Handlers behind it can assume
// CurrentUser returns a valid user.
func RequireAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		user, err := authService.ResolveIdentity(c.Request.Context(), token)
		if err != nil {
			abortForAuthError(c, err)
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// OptionalAuth resolves the bearer token when one is present and continues
// anonymously otherwise. A token that is present but invalid still aborts:
// bad credentials never silently degrade to anonymous access.
func OptionalAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		user, err := authService.ResolveIdentity(c.Request.Context(), token)
		if err != nil {
			abortForAuthError(c, err)
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// RequireOperation checks the resolved user's role against the allow-list
// for op. Must be mounted after RequireAuth.
func RequireOperation(op authz.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if err := authz.Authorize(user.Role, op); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "you are not allowed to perform this action"})
			return
		}

		c.Next()
	}
}

// CurrentUser returns the user resolved by RequireAuth or OptionalAuth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(contextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

func abortForAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, service.ErrInvalidToken):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.Split(header, " ")
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}
