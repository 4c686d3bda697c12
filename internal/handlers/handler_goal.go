package handlers

import (
	"net/http"

	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/workspace_finance_app/internal/core/ports/services"
	"github.com/SscSPs/workspace_finance_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type goalHandler struct {
	goalService portssvc.GoalSvcFacade
}

func registerGoalRoutes(rg *gin.RouterGroup, goalService portssvc.GoalSvcFacade) {
	h := &goalHandler{goalService: goalService}

	goals := rg.Group("/goals")
	{
		goals.GET("", h.listGoals)
		goals.POST("", h.createGoal)
		goals.GET("/:id", h.getGoal)
		goals.PATCH("/:id", h.updateGoal)
		goals.DELETE("/:id", h.deleteGoal)
	}
}

// listGoals godoc
// @Summary List savings goals
// @Tags goals
// @Produce  json
// @Param   status query string false "active, completed or paused"
// @Success 200 {array} dto.GoalResponse
// @Security BearerAuth
// @Router /goals [get]
func (h *goalHandler) listGoals(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	var params dto.ListGoalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	var status *domain.GoalStatus
	if params.Status != "" {
		s := domain.GoalStatus(params.Status)
		status = &s
	}

	goals, err := h.goalService.ListGoals(c.Request.Context(), scope, status)
	if err != nil {
		respondWithError(c, err, "Failed to list goals")
		return
	}
	c.JSON(http.StatusOK, dto.ToListGoalResponse(goals))
}

// createGoal godoc
// @Summary Create a savings goal
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   goal body dto.CreateGoalRequest true "Goal details"
// @Success 201 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Security BearerAuth
// @Router /goals [post]
func (h *goalHandler) createGoal(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), scope, req)
	if err != nil {
		respondWithError(c, err, "Failed to create goal")
		return
	}
	c.JSON(http.StatusCreated, dto.ToGoalResponse(goal))
}

// getGoal godoc
// @Summary Get a savings goal
// @Tags goals
// @Produce  json
// @Param   id path string true "Goal ID"
// @Success 200 {object} dto.GoalResponse
// @Failure 404 {object} map[string]string "Goal not found"
// @Security BearerAuth
// @Router /goals/{id} [get]
func (h *goalHandler) getGoal(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	goalID, ok := pathID(c, "id")
	if !ok {
		return
	}
	goal, err := h.goalService.GetGoalByID(c.Request.Context(), scope, goalID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve goal")
		return
	}
	c.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}

// updateGoal godoc
// @Summary Update a goal or deposit into it
// @Description With "deposit" the amount is added to the current amount and the goal completes once it reaches the target. Otherwise the given fields are edited.
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   id path string true "Goal ID"
// @Param   goal body dto.UpdateGoalRequest true "Deposit or fields to change"
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Goal not found"
// @Security BearerAuth
// @Router /goals/{id} [patch]
func (h *goalHandler) updateGoal(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	goalID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	goal, err := h.goalService.UpdateGoal(c.Request.Context(), scope, goalID, req)
	if err != nil {
		respondWithError(c, err, "Failed to update goal")
		return
	}
	c.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}

// deleteGoal godoc
// @Summary Delete a savings goal
// @Tags goals
// @Param   id path string true "Goal ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Goal not found"
// @Security BearerAuth
// @Router /goals/{id} [delete]
func (h *goalHandler) deleteGoal(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	goalID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.goalService.DeleteGoal(c.Request.Context(), scope, goalID); err != nil {
		respondWithError(c, err, "Failed to delete goal")
		return
	}
	c.Status(http.StatusNoContent)
}
