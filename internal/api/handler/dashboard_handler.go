package handler

import (
	"NovaAff/internal/api/dto"
	"NovaAff/internal/pkg/response"
	"NovaAff/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

func (s *DashboardHandler) GetStats(c *gin.Context) {
	var query dto.DashboardQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}
	stats, err := s.dashboardSvc.GetStats(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}

func (s *DashboardHandler) SaveStats(c *gin.Context) {
	var in dto.DashboardStatsDTO
	if err := bindBody(c, &in); err != nil {
		response.Error(c, err)
		return
	}
	stats, err := s.dashboardSvc.SaveStats(c.Request.Context(), &in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}
