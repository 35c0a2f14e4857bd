// Package middleware provides the gin middleware chain for the service.
package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TonyTawil/popcorn-app/internal/services/jwt"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "jwt"

const userIDKey = "userID"

var ErrNoUserID = errors.New("middleware: no user id in context")

// Logger logs each request through slog once the handler chain completes.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		slog.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"ip", c.ClientIP(),
		)
	}
}

// CORS handles cross-origin requests. The session cookie requires
// credentialed CORS, so the origin is echoed back instead of wildcarded.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		c.Header("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, X-CSRF-Token")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// Authenticate validates the session cookie and stores the account id in the
// request context for downstream handlers.
func Authenticate(tokens *jwt.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookieName)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized - no token provided"})
			return
		}

		claims, err := tokens.ParseSessionToken(c.Request.Context(), tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized - invalid token"})
			return
		}

		c.Set(userIDKey, claims.Subject)
		c.Next()
	}
}

// GetUserID returns the authenticated account id set by Authenticate.
func GetUserID(c *gin.Context) (string, error) {
	val, exists := c.Get(userIDKey)
	if !exists {
		return "", ErrNoUserID
	}

	userID, ok := val.(string)
	if !ok || userID == "" {
		return "", ErrNoUserID
	}

	return userID, nil
}
