// File: internal/organization/handler.go
package organization

import (
	"careerhub_backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for organization handlers.
type Handler struct {
	repo   Repository
	logger *zap.Logger
}

// NewHandler creates a new organization handler.
func NewHandler(repo Repository, logger *zap.Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

// RegisterRoutes sets up the routes for organization operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	orgGroup := router.Group("/organizations")
	orgGroup.Use(authMW)
	{
		orgGroup.GET("/me", h.getMyOrganization)
	}
}

func (h *Handler) getMyOrganization(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == "" {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}

	org, err := h.repo.FindByOwner(c.Request.Context(), userID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Organization retrieved successfully.", ToResponse(org))
}
