package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore/internal/services"
	"bookstore/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetDashboard godoc
// @Summary Get admin dashboard stats
// @Description Catalog size, order count, sales total, books ordered in the last 30 days and orders per month for the last 12 months
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response_models.DashboardResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/admin/dashboard [get]
func (p *DashboardController) GetDashboard(c *gin.Context) {
	report, err := p.dashboardService.BuildDashboard(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, report)
}
