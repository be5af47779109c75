package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Middleware provides session-cookie authentication middleware
type Middleware struct {
	service *Service
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(service *Service) *Middleware {
	return &Middleware{service: service}
}

// RequireSession validates the session cookie and sets user context.
// A missing or invalid cookie always yields the same 401 envelope.
func (m *Middleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(m.service.CookieName())
		if err != nil || tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateSessionToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("session_claims", claims)

		c.Next()
	}
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	return id, ok
}

// GetUserEmail is a helper function to extract user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get("email")
	if !exists {
		return "", false
	}

	emailStr, ok := email.(string)
	return emailStr, ok
}

// GetSessionClaims is a helper function to extract full session claims from context
func GetSessionClaims(c *gin.Context) (*SessionClaims, bool) {
	claims, exists := c.Get("session_claims")
	if !exists {
		return nil, false
	}

	sessionClaims, ok := claims.(*SessionClaims)
	return sessionClaims, ok
}
