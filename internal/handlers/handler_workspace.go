package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/workspace_finance_app/internal/core/ports/services"
	"github.com/SscSPs/workspace_finance_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type workspaceHandler struct {
	workspaceService portssvc.WorkspaceSvcFacade
}

func registerWorkspaceRoutes(rg *gin.RouterGroup, workspaceService portssvc.WorkspaceSvcFacade) {
	h := &workspaceHandler{workspaceService: workspaceService}

	workspace := rg.Group("/workspace")
	{
		workspace.GET("", h.getWorkspace)
		workspace.PATCH("", h.updateWorkspace)
		workspace.GET("/members", h.listMembers)
		workspace.POST("/members", h.addMember)
		workspace.DELETE("/members/:userId", h.removeMember)
	}
}

// getWorkspace godoc
// @Summary Get the caller's workspace
// @Tags workspace
// @Produce  json
// @Success 200 {object} dto.WorkspaceResponse
// @Failure 404 {object} map[string]string "Caller has no workspace"
// @Security BearerAuth
// @Router /workspace [get]
func (h *workspaceHandler) getWorkspace(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	ws, err := h.workspaceService.GetWorkspace(c.Request.Context(), scope)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve workspace")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(ws, scope.Role))
}

// updateWorkspace godoc
// @Summary Update the workspace
// @Description Owner only
// @Tags workspace
// @Accept  json
// @Produce  json
// @Param   workspace body dto.UpdateWorkspaceRequest true "Fields to change"
// @Success 200 {object} dto.WorkspaceResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 403 {object} map[string]string "Caller is not an owner"
// @Security BearerAuth
// @Router /workspace [patch]
func (h *workspaceHandler) updateWorkspace(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	var req dto.UpdateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ws, err := h.workspaceService.UpdateWorkspace(c.Request.Context(), scope, req)
	if err != nil {
		respondWithError(c, err, "Failed to update workspace")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(ws, scope.Role))
}

// listMembers godoc
// @Summary List workspace members
// @Tags workspace
// @Produce  json
// @Success 200 {array} dto.WorkspaceMemberResponse
// @Security BearerAuth
// @Router /workspace/members [get]
func (h *workspaceHandler) listMembers(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	members, err := h.workspaceService.ListMembers(c.Request.Context(), scope)
	if err != nil {
		respondWithError(c, err, "Failed to list members")
		return
	}
	c.JSON(http.StatusOK, dto.ToListWorkspaceMemberResponse(members))
}

// addMember godoc
// @Summary Add a registered user to the workspace
// @Description Owner only. The user is looked up by email.
// @Tags workspace
// @Accept  json
// @Produce  json
// @Param   member body dto.AddMemberRequest true "Member email and role"
// @Success 201 {object} dto.WorkspaceMemberResponse
// @Failure 403 {object} map[string]string "Caller is not an owner"
// @Failure 404 {object} map[string]string "No user with that email"
// @Failure 409 {object} map[string]string "User already belongs to a workspace"
// @Security BearerAuth
// @Router /workspace/members [post]
func (h *workspaceHandler) addMember(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	member, err := h.workspaceService.AddMember(c.Request.Context(), scope, req)
	if err != nil {
		respondWithError(c, err, "Failed to add member")
		return
	}
	c.JSON(http.StatusCreated, dto.ToWorkspaceMemberResponse(member))
}

// removeMember godoc
// @Summary Remove a member from the workspace
// @Description Owner only. Owners cannot remove themselves.
// @Tags workspace
// @Param   userId path string true "User ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Caller is not an owner"
// @Failure 404 {object} map[string]string "Not a member"
// @Security BearerAuth
// @Router /workspace/members/{userId} [delete]
func (h *workspaceHandler) removeMember(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	if err := h.workspaceService.RemoveMember(c.Request.Context(), scope, userID); err != nil {
		respondWithError(c, err, "Failed to remove member")
		return
	}
	c.Status(http.StatusNoContent)
}
