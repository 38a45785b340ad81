// File: internal/profile/handler.go
package profile

import (
	"errors"

	"careerhub_backend/internal/common"
	"careerhub_backend/internal/rolecache"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for profile handlers.
type Handler struct {
	service  *Service
	resolver *rolecache.Resolver
	logger   *zap.Logger
}

// NewHandler creates a new profile handler.
func NewHandler(service *Service, resolver *rolecache.Resolver, logger *zap.Logger) *Handler {
	return &Handler{
		service:  service,
		resolver: resolver,
		logger:   logger,
	}
}

// RegisterRoutes sets up the routes for profile operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	profileGroup := router.Group("/profile")
	profileGroup.Use(authMW)
	{
		profileGroup.GET("", h.getProfile)
		profileGroup.GET("/role", h.getRole)
		profileGroup.POST("/role", h.selectRole)
	}
}

func (h *Handler) selectRole(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == "" {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}

	var req SelectRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Select role: Invalid request body", zap.Error(err))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	assigned, err := h.service.AssignRole(c.Request.Context(), userID, common.Role(req.Role), req.Organization)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	// A confirmed role change makes every cached view of this user stale.
	h.resolver.Invalidate(userID)

	common.RespondOK(c, "Role assigned successfully.", AssignedRoleResponse{
		Role:          assigned.Role,
		RoleConfirmed: assigned.RoleConfirmed,
	})
}

// getRole resolves the caller's role through the cache layer rather than the
// store, so repeated navigations within the TTL cost no lookup.
func (h *Handler) getRole(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == "" {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}

	status, err := h.resolver.Resolve(c.Request.Context(), userID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Role resolved successfully.", status)
}

func (h *Handler) getProfile(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == "" {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}

	p, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Profile retrieved successfully.", ToResponse(p))
}
