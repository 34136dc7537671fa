package authz

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RoleChecker is the subset of the enforcer needed by the middleware.
// Kept as an interface so handler tests can substitute a fake.
type RoleChecker interface {
	HasRole(userID, role string) (bool, error)
}

// RequireRole returns middleware that rejects requests whose session user does not
// hold the given role. Must run after the JWT session middleware.
func RequireRole(checker RoleChecker, role string, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		allowed, err := checker.HasRole(userID, role)
		if err != nil {
			logger.WithFields(logrus.Fields{
				"user_id": userID,
				"role":    role,
				"error":   err.Error(),
			}).Error("Role check failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":   "authorization_error",
				"message": "Failed to check user roles",
			})
			return
		}
		if !allowed {
			logger.WithFields(logrus.Fields{
				"user_id": userID,
				"role":    role,
				"path":    c.Request.URL.Path,
			}).Warn("Access denied")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":   "access_denied",
				"message": "You don't have permission to perform this action",
			})
			return
		}
		c.Next()
	}
}
