// File: internal/middleware/propagation.go
package middleware

import (
	"net/http"

	"careerhub_backend/internal/common"
	"careerhub_backend/internal/rolecache"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RolePropagation evaluates the role redirect table once per navigation for
// the given view. The resolver serves cached role state, so repeated
// navigations within the TTL reach the store at most once. Resolution
// failures are surfaced to the caller; there is no silent retry.
func RolePropagation(resolver *rolecache.Resolver, current rolecache.View, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := common.GetUserIDFromContext(c)
		if userID == "" {
			common.RespondWithError(c, common.ErrUnauthorized)
			return
		}

		status, err := resolver.Resolve(c.Request.Context(), userID)
		if err != nil {
			common.RespondWithError(c, err)
			return
		}

		if dest, redirect := rolecache.Decide(current, status); redirect {
			logger.Debug("Redirecting navigation",
				zap.String("userID", userID),
				zap.String("from", string(current)),
				zap.String("to", string(dest)))
			c.Redirect(http.StatusSeeOther, rolecache.PathForView(dest))
			c.Abort()
			return
		}

		c.Next()
	}
}
