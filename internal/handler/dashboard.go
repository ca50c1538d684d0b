package handler

import (
	"hrms/internal/pkg/response"
	"hrms/internal/service"
	"hrms/internal/telemetry"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	trace            *telemetry.Trace
	dashboardService *service.DashboardService
}

func NewDashboardHandler(trace *telemetry.Trace, dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{trace: trace, dashboardService: dashboardService}
}

// Summary 人資儀表板
// @Summary 統計數字、最近加入員工與待審假單
// @Tags HR-Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.DashboardDto
// @Router /hr/dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	summary, err := h.dashboardService.Summary(ctx)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, summary)
}
