package middleware

import (
	"net/http"
	"strings"

	"github.com/postpilot/postpilot-backend/internal/auth/jwt"
	"github.com/gin-gonic/gin"
)

// SessionToken extracts the session token from the Authorization header or,
// for browser-redirect flows that cannot set headers, the access_token cookie.
func SessionToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie
	}
	return ""
}

// JWTAuthMiddleware validates the session token and populates the request context
// with the authenticated user's claims. Requests without a valid session are rejected.
func JWTAuthMiddleware(jwter *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := SessionToken(c)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		claims, err := jwter.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Populate context with claims
		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("username", claims.Username)
		c.Next()
	}
}
