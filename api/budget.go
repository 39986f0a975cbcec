package api

import (
	"expensetracker/middleware"
	"expensetracker/service"

	"github.com/gin-gonic/gin"
)

// BudgetHandler 预算设置
type BudgetHandler struct {
	budgets *service.BudgetService
}

// NewBudgetHandler 创建预算处理器
func NewBudgetHandler(budgets *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgets: budgets}
}

// BudgetRequest 预算表单
type BudgetRequest struct {
	TotalBudget string `form:"total_budget" example:"1500.00"`
}

// Page 预算页面
// @Summary 预算页面
// @Tags 预算
// @Produce html
// @Security SessionCookie
// @Success 200 {string} string "预算页面"
// @Router /budget [get]
func (h *BudgetHandler) Page(c *gin.Context) {
	budget, err := h.budgets.Get(c.Request.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		failWith(c, err, "/dashboard", nil)
		return
	}
	render(c, "budget.html", "Budget", gin.H{"Budget": budget})
}

// Set 设置预算
// @Summary 设置预算
// @Description 已有预算时覆盖金额，否则按当前月份新建
// @Tags 预算
// @Accept x-www-form-urlencoded
// @Security SessionCookie
// @Param total_budget formData number true "预算金额，不小于 0"
// @Success 302 "成功跳转到 /dashboard，校验失败跳转回 /budget"
// @Router /budget [post]
func (h *BudgetHandler) Set(c *gin.Context) {
	var req BudgetRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectError(c, "/budget", "Invalid budget form")
		return
	}
	total, err := service.ParseBudgetAmount(req.TotalBudget)
	if err != nil {
		failWith(c, err, "/budget", nil)
		return
	}

	if _, err := h.budgets.Set(c.Request.Context(), middleware.GetCurrentUserID(c), total); err != nil {
		failWith(c, err, "/budget", nil)
		return
	}
	redirectSuccess(c, "/dashboard", "Budget updated!")
}
