package handlers

import (
	"net/http"

	"cloud.google.com/go/civil"
	portssvc "github.com/SscSPs/workspace_finance_app/internal/core/ports/services"
	"github.com/SscSPs/workspace_finance_app/internal/dto"
	"github.com/SscSPs/workspace_finance_app/internal/utils/accounting"
	"github.com/gin-gonic/gin"
)

type dashboardHandler struct {
	dashboardService portssvc.DashboardSvc
}

func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvc) {
	h := &dashboardHandler{dashboardService: dashboardService}
	rg.GET("/dashboard", h.getDashboard)
}

// getDashboard godoc
// @Summary Monthly dashboard
// @Description Totals, month-over-month expense variation, top expense categories, card invoices, active goals and recent transactions
// @Tags dashboard
// @Produce  json
// @Param   month query string false "Calendar month (YYYY-MM), defaults to the current month"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} map[string]string "Invalid month"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	var params dto.DashboardParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	var month civil.Date
	if params.Month != "" {
		parsed, err := accounting.ParseMonth(params.Month)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month must be in YYYY-MM format"})
			return
		}
		month = parsed
	}

	dashboard, err := h.dashboardService.GetDashboard(c.Request.Context(), scope, month)
	if err != nil {
		respondWithError(c, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardResponse(dashboard))
}
