package middleware

import (
	"log/slog"
	"net/http"

	"github.com/CellkomStore/cellkom_store_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// RequireRoles creates a Gin middleware that allows the request through only
// when the authenticated user holds one of the given roles. It must run
// after AuthMiddleware. A missing role claim yields 401, a present but
// insufficient one yields 403.
func RequireRoles(allowed ...domain.UserRole) gin.HandlerFunc {
	allowedSet := make(map[domain.UserRole]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		role, ok := GetUserRoleFromContext(c)
		if !ok {
			logger.Warn("Role claim missing from authenticated request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if _, allowed := allowedSet[role]; !allowed {
			logger.Warn("Insufficient role for route", slog.String("role", string(role)), slog.String("path", c.FullPath()))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Next()
	}
}
