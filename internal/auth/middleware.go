package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"kartikay_signage/internal/store"
)

// Gin context keys set by RequireAuth.
const (
	ContextSubjectKey = "auth.subject_id"
	ContextRoleKey    = "auth.role"
	ContextAccessKey  = "auth.access"
)

// RequireAuth validates the Bearer access token and injects the actor into
// the request context for downstream handlers.
func RequireAuth(tokens *Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Missing Authorization header"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid Authorization header format"})
			return
		}

		claims, err := tokens.ValidateAccessToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid or expired token"})
			return
		}

		c.Set(ContextSubjectKey, claims.SubjectID)
		c.Set(ContextRoleKey, claims.Role)
		c.Set(ContextAccessKey, claims.Access)
		c.Next()
	}
}

// RequireScope gates a route group on one admin access scope.
// SUPER_ADMIN passes every scope check.
func RequireScope(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRoleKey) == store.RoleSuperAdmin {
			c.Next()
			return
		}

		access, _ := c.Get(ContextAccessKey)
		scopes, _ := access.([]string)
		for _, s := range scopes {
			if s == scope {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "Access denied"})
	}
}

// RequireRole gates a route on an exact role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRoleKey) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "Access denied"})
			return
		}
		c.Next()
	}
}

// SubjectID returns the authenticated actor's ID, set by RequireAuth.
func SubjectID(c *gin.Context) string {
	return c.GetString(ContextSubjectKey)
}
