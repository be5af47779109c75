package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler handles session login and logout endpoints
type Handler struct {
	service *Service
	secure  bool
}

// NewHandler creates a new auth handler. secure controls the cookie's Secure
// flag and should be true everywhere except local development.
func NewHandler(service *Service, secure bool) *Handler {
	return &Handler{service: service, secure: secure}
}

// LoginRequest represents the credential exchange body
type LoginRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// Login handles POST /api/auth/login
// @Summary Establish a session
// @Description Exchange a user id for a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{} "Session established"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Unknown user"
// @Router /api/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "user_id is required"})
		return
	}

	profile, err := h.service.LookupProfile(req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to establish session"})
		return
	}

	token, err := h.service.GenerateSessionToken(profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to establish session"})
		return
	}

	maxAge := int(h.service.TokenTTL().Seconds())
	c.SetCookie(h.service.CookieName(), token, maxAge, "/", "", h.secure, true)

	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}

// Logout handles POST /api/auth/logout
// @Summary End the session
// @Description Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Session cleared"
// @Router /api/auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(h.service.CookieName(), "", -1, "/", "", h.secure, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
}
