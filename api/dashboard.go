package api

import (
	"expensetracker/middleware"
	"expensetracker/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler 仪表盘
type DashboardHandler struct {
	dashboard *service.DashboardService
}

// NewDashboardHandler 创建仪表盘处理器
func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Show 仪表盘页面
// @Summary 仪表盘
// @Description 统计区间内的总支出、各类别小计与预算余额。未提供完整区间时统计当前自然月（UTC）
// @Tags 统计
// @Produce html
// @Security SessionCookie
// @Param start_date query string false "开始日期 (YYYY-MM-DD)"
// @Param end_date query string false "结束日期 (YYYY-MM-DD)"
// @Success 200 {string} string "仪表盘页面"
// @Router /dashboard [get]
func (h *DashboardHandler) Show(c *gin.Context) {
	query := service.ListQuery{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
	filter, err := service.ParseListQuery(query)
	if err != nil {
		// 区间非法时回到默认月份
		failWith(c, err, "/dashboard", nil)
		return
	}

	summary, err := h.dashboard.Summarize(c.Request.Context(), middleware.GetCurrentUserID(c), filter)
	if err != nil {
		failWith(c, err, "/profile", nil)
		return
	}
	render(c, "dashboard.html", "Dashboard", gin.H{"Summary": summary})
}
