package handlers

import (
	"net/http"

	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/workspace_finance_app/internal/core/ports/services"
	"github.com/SscSPs/workspace_finance_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type onboardingHandler struct {
	onboardingService portssvc.OnboardingSvc
}

// registerOnboardingRoutes wires the first-run endpoints. They only need an
// authenticated user, not an existing workspace.
func registerOnboardingRoutes(rg *gin.RouterGroup, onboardingService portssvc.OnboardingSvc) {
	h := &onboardingHandler{onboardingService: onboardingService}

	onboarding := rg.Group("/onboarding")
	{
		onboarding.POST("/workspace", h.createWorkspace)
		onboarding.POST("/account", h.createFirstAccount)
	}
}

// createWorkspace godoc
// @Summary Create the caller's workspace
// @Description Creates the workspace, makes the caller its owner and seeds the default categories
// @Tags onboarding
// @Accept  json
// @Produce  json
// @Param   workspace body dto.CreateWorkspaceRequest true "Workspace details"
// @Success 201 {object} dto.WorkspaceResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 409 {object} map[string]string "Caller already has a workspace"
// @Security BearerAuth
// @Router /onboarding/workspace [post]
func (h *onboardingHandler) createWorkspace(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ws, err := h.onboardingService.CreateWorkspace(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create workspace")
		return
	}
	c.JSON(http.StatusCreated, dto.ToWorkspaceResponse(ws, domain.RoleOwner))
}

// createFirstAccount godoc
// @Summary Create the first account of the caller's workspace
// @Tags onboarding
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Caller has no workspace yet"
// @Security BearerAuth
// @Router /onboarding/account [post]
func (h *onboardingHandler) createFirstAccount(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	account, err := h.onboardingService.CreateFirstAccount(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create account")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}
