package middleware

import (
	"context"
	"net/http"
	"strings"

	"shopline/internal/auth"

	"github.com/gin-gonic/gin"
)

// RoleLookup resolves the role stored for a verified email. Roles live in the
// user collection, not in token claims.
type RoleLookup interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

// AuthRequired validates the Firebase ID token and sets the verified email in
// the request context.
func AuthRequired(v auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			return
		}
		email, err := v.Verify(c.Request.Context(), parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set("email", email)
		c.Next()
	}
}

// RequireRole checks that the verified identity holds the given role.
// Must run after AuthRequired.
func RequireRole(roles RoleLookup, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := GetEmail(c)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		r, err := roles.RoleByEmail(c.Request.Context(), email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if r != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// GetEmail returns the verified email from context (set by AuthRequired).
func GetEmail(c *gin.Context) string {
	v, _ := c.Get("email")
	if v == nil {
		return ""
	}
	return v.(string)
}
