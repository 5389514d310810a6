package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "sessionId"
	sessionMaxAge = 60 * 60 * 24 * 7 // 7 days, in seconds
	sessionIDKey  = "sessionID"
)

func sessionFromCookie(c *gin.Context) string {
	v, err := c.Cookie(sessionCookie)
	if err != nil {
		return ""
	}
	return v
}

// requireSession rejects requests without a session cookie before they reach
// the handler and exposes the session ID to it otherwise.
func requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := sessionFromCookie(c)
		if sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set(sessionIDKey, sessionID)
		c.Next()
	}
}

// ensureSession returns the caller's session ID, issuing a new one in a
// cookie when the request carries none.
func ensureSession(c *gin.Context) string {
	if sessionID := sessionFromCookie(c); sessionID != "" {
		return sessionID
	}

	sessionID := uuid.NewString()
	c.SetCookie(sessionCookie, sessionID, sessionMaxAge, "/", "", false, false)
	return sessionID
}
