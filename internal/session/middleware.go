package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// TokenHeader carries the session token on authenticated requests.
	TokenHeader = "X-Session-Token"

	contextKey = "session"
)

// Middleware resolves the session token and stores the session on the
// request context. Requests without a valid token are rejected.
func Middleware(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing session token"})
			return
		}

		sess, err := store.Get(c, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}

		c.Set(contextKey, sess)
		c.Next()
	}
}

// RequireAdmin rejects requests whose session does not belong to an admin.
// Must run after Middleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := FromContext(c)
		if sess == nil || !sess.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// FromContext returns the session set by Middleware, or nil.
func FromContext(c *gin.Context) *Session {
	value, ok := c.Get(contextKey)
	if !ok {
		return nil
	}
	sess, ok := value.(*Session)
	if !ok {
		return nil
	}
	return sess
}
