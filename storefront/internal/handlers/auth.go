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

// AuthHandler runs customer sign-in: Google OAuth, then our own tokens.
type AuthHandler struct {
	google    Authenticator
	tokens    *auth.Manager
	sessions  *auth.SessionManager
	customers *store.CustomerStore
}

// Login redirects the browser to the Google consent screen.
// URL: GET /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	state := uuid.New().String()
	c.SetCookie(stateCookie, state, 600, "/", "", false, true)
	c.Redirect(http.StatusFound, h.google.LoginURL(state))
}

// Callback completes the OAuth flow: verifies state, resolves the Google
// profile, upserts the customer and issues tokens.
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
		log.Printf("[auth] oauth exchange failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authentication failed"})
		return
	}

	customer, err := h.customers.UpsertCustomer(c.Request.Context(), profile.Email, profile.Name)
	if err != nil {
		log.Printf("[auth] failed to upsert customer %s: %v", profile.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create account"})
		return
	}

	accessToken, err := h.tokens.IssueAccessToken(customer.ID, auth.SubjectCustomer, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to issue token"})
		return
	}
	refreshToken, err := h.sessions.Issue(c.Request.Context(), customer.ID, auth.SubjectCustomer)
	if err != nil {
		log.Printf("[auth] failed to save session for %s: %v", customer.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to save session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}

// Refresh exchanges a valid refresh token for a new access token.
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
	if err != nil || sess.SubjectKind != auth.SubjectCustomer {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid or expired refresh token"})
		return
	}

	accessToken, err := h.tokens.IssueAccessToken(sess.SubjectID, auth.SubjectCustomer, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": accessToken})
}

// Logout revokes the refresh session.
// URL: POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON"})
		return
	}

	if err := h.sessions.Revoke(c.Request.Context(), req.RefreshToken); err != nil {
		log.Printf("[auth] failed to revoke session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to log out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
