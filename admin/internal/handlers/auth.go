package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kartikay_signage/internal/auth"
	"kartikay_signage/internal/store"
)

const stateCookie = "oauth_state"

// AuthHandler runs back-office sign-in. Unlike the storefront, it fails
// closed: a Google account without an admin row gets nothing.
type AuthHandler struct {
	google   Authenticator
	tokens   *auth.Manager
	sessions *auth.SessionManager
	admins   *store.AdminStore
}

// Login redirects the browser to the Google consent screen.
// URL: GET /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	state := uuid.New().String()
	c.SetCookie(stateCookie, state, 600, "/", "", false, true)
	c.Redirect(http.StatusFound, h.google.LoginURL(state))
}

// Callback completes the OAuth flow and issues admin tokens carrying the
// role and access scopes from the admin row.
// URL: GET /api/auth/callback
func (h *AuthHandler) Callback(c *gin.Context) {
	state := c.Query("state")
	cookieState, err := c.Cookie(stateCookie)
	if err != nil || state == "" || state != cookieState {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid OAuth state"})
		return
	}

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing authorization code"})
		return
	}

	profile, err := h.google.Exchange(c.Request.Context(), code)
	if err != nil {
		log.Printf("[admin-auth] oauth exchange failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authentication failed"})
		return
	}

	// FAIL CLOSED: the Google account must already exist in the admins
	// table, there is no self-service registration for the back office.
	admin, err := h.admins.GetAdminByEmail(c.Request.Context(), profile.Email)
	if err != nil {
		log.Printf("[admin-auth] failed to look up admin %s: %v", profile.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Sign-in failed"})
		return
	}
	if admin == nil {
		log.Printf("[admin-auth] WARN access denied for %s (no admin record)", profile.Email)
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Access denied"})
		return
	}

	accessToken, err := h.tokens.IssueAccessToken(admin.ID, admin.Role, admin.Access)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to issue token"})
		return
	}
	refreshToken, err := h.sessions.Issue(c.Request.Context(), admin.ID, auth.SubjectAdmin)
	if err != nil {
		log.Printf("[admin-auth] failed to save session for %s: %v", admin.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to save session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}

// Refresh exchanges a refresh token for a new access token. Role and access
// are re-read from the admin row, so revoked scopes take effect here.
// URL: POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON"})
		return
	}

	sess, err := h.sessions.Redeem(c.Request.Context(), req.RefreshToken)
	if err != nil || sess.SubjectKind != auth.SubjectAdmin {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid or expired refresh token"})
		return
	}

	admin, err := h.admins.GetAdmin(c.Request.Context(), sess.SubjectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Sign-in failed"})
		return
	}
	if admin == nil {
		// Admin row deleted since sign-in: the session dies with it.
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Access denied"})
		return
	}

	accessToken, err := h.tokens.IssueAccessToken(admin.ID, admin.Role, admin.Access)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": accessToken})
}
