package handlers

import (
	"net/http"

	"band-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RoleHandler handles HTTP requests for role flags
type RoleHandler struct {
	roleService service.RoleServiceInterface
}

// NewRoleHandler creates a new role handler
func NewRoleHandler(roleService service.RoleServiceInterface) *RoleHandler {
	return &RoleHandler{
		roleService: roleService,
	}
}

// GetMyRoles handles GET /roles/me
func (h *RoleHandler) GetMyRoles(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	roles, err := h.roleService.GetRoles(actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, roles)
}

// ListRoles handles GET /roles
func (h *RoleHandler) ListRoles(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	roles, err := h.roleService.ListRoles(actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"roles": roles, "count": len(roles)})
}

// SetRole handles PUT /roles/:memberId
func (h *RoleHandler) SetRole(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	memberID, err := uuid.Parse(c.Param("memberId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member ID"})
		return
	}

	var req service.SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.roleService.SetRole(actor, memberID, &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Role updated"})
}
