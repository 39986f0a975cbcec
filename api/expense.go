package api

import (
	"fmt"
	"html/template"
	"net/url"
	"strconv"
	"time"

	"expensetracker/middleware"
	"expensetracker/models"
	"expensetracker/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ExpenseHandler 消费记录页面
type ExpenseHandler struct {
	expenses *service.ExpenseService
}

// NewExpenseHandler 创建消费记录处理器
func NewExpenseHandler(expenses *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

// expenseFormView 新增/编辑表单的回填数据
type expenseFormView struct {
	Amount      string
	Category    string
	Merchant    string
	Description string
	Date        string
	ReceiptURL  string
	Categories  []string
}

type monthOption struct {
	Number int
	Name   string
}

func monthOptions() []monthOption {
	months := make([]monthOption, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, monthOption{Number: int(m), Name: m.String()})
	}
	return months
}

// AddPage 新增消费页面
// @Summary 新增消费页面
// @Tags 消费记录
// @Produce html
// @Security SessionCookie
// @Success 200 {string} string "表单页面"
// @Router /add-expense [get]
func (h *ExpenseHandler) AddPage(c *gin.Context) {
	render(c, "add_expense.html", "Add expense", gin.H{
		"Form": expenseFormView{
			Date:       time.Now().UTC().Format(models.DateLayout),
			Categories: models.GetCategories(),
		},
	})
}

// Add 新增消费记录
// @Summary 新增消费记录
// @Tags 消费记录
// @Accept x-www-form-urlencoded
// @Security SessionCookie
// @Param amount formData number true "金额，大于 0"
// @Param category formData string true "类别"
// @Param merchant formData string false "商户"
// @Param description formData string false "备注"
// @Param date formData string true "日期 (YYYY-MM-DD)"
// @Param receipt_url formData string false "小票文件名"
// @Success 302 "成功跳转到 /dashboard，校验失败跳转回 /add-expense"
// @Router /add-expense [post]
func (h *ExpenseHandler) Add(c *gin.Context) {
	var form service.ExpenseForm
	if err := c.ShouldBind(&form); err != nil {
		redirectError(c, "/add-expense", "Invalid expense form")
		return
	}
	in, err := service.ParseExpenseForm(form)
	if err != nil {
		failWith(c, err, "/add-expense", nil)
		return
	}

	if _, err := h.expenses.Create(c.Request.Context(), middleware.GetCurrentUserID(c), in); err != nil {
		failWith(c, err, "/add-expense", nil)
		return
	}
	redirectSuccess(c, "/dashboard", "Expense added successfully!")
}

// EditPage 编辑消费页面
// @Summary 编辑消费页面
// @Tags 消费记录
// @Produce html
// @Security SessionCookie
// @Param id path int true "消费记录 ID"
// @Success 200 {string} string "表单页面"
// @Success 302 "记录不存在或不属于当前用户时跳转到 /dashboard"
// @Router /expense/{id}/edit [get]
func (h *ExpenseHandler) EditPage(c *gin.Context) {
	id, ok := expenseID(c)
	if !ok {
		return
	}
	expense, err := h.expenses.LoadOwned(c.Request.Context(), middleware.GetCurrentUserID(c), id)
	if err != nil {
		failWith(c, err, "/dashboard", ownershipMessages("edit"))
		return
	}

	render(c, "edit_expense.html", "Edit expense", gin.H{
		"ExpenseID": expense.ID,
		"Form": expenseFormView{
			Amount:      decimal.NewFromFloat(expense.Amount).StringFixed(2),
			Category:    expense.Category,
			Merchant:    expense.Merchant,
			Description: expense.Description,
			Date:        expense.DateString(),
			ReceiptURL:  expense.ReceiptURL,
			Categories:  models.GetCategories(),
		},
	})
}

// Edit 更新消费记录
// @Summary 更新消费记录
// @Description 整体覆盖金额、类别、商户、备注与日期，只能修改自己的记录
// @Tags 消费记录
// @Accept x-www-form-urlencoded
// @Security SessionCookie
// @Param id path int true "消费记录 ID"
// @Param amount formData number true "金额，大于 0"
// @Param category formData string true "类别"
// @Param merchant formData string false "商户"
// @Param description formData string false "备注"
// @Param date formData string true "日期 (YYYY-MM-DD)"
// @Success 302 "成功跳转到 /dashboard"
// @Router /expense/{id}/edit [post]
func (h *ExpenseHandler) Edit(c *gin.Context) {
	id, ok := expenseID(c)
	if !ok {
		return
	}
	back := fmt.Sprintf("/expense/%d/edit", id)

	var form service.ExpenseForm
	if err := c.ShouldBind(&form); err != nil {
		redirectError(c, back, "Invalid expense form")
		return
	}
	in, err := service.ParseExpenseForm(form)
	if err != nil {
		failWith(c, err, back, nil)
		return
	}

	if _, err := h.expenses.Update(c.Request.Context(), middleware.GetCurrentUserID(c), id, in); err != nil {
		failWith(c, err, "/dashboard", ownershipMessages("edit"))
		return
	}
	redirectSuccess(c, "/dashboard", "Expense updated successfully!")
}

// Delete 删除消费记录
// @Summary 删除消费记录
// @Tags 消费记录
// @Security SessionCookie
// @Param id path int true "消费记录 ID"
// @Success 302 "跳转到 /dashboard"
// @Router /expense/{id}/delete [post]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := expenseID(c)
	if !ok {
		return
	}
	if err := h.expenses.Delete(c.Request.Context(), middleware.GetCurrentUserID(c), id); err != nil {
		failWith(c, err, "/dashboard", ownershipMessages("delete"))
		return
	}
	redirectSuccess(c, "/dashboard", "Expense deleted successfully!")
}

// List 消费记录列表
// @Summary 消费记录列表
// @Description 同时提供 start_date 与 end_date 时按日期区间筛选并忽略 year/month
// @Tags 消费记录
// @Produce html
// @Security SessionCookie
// @Param year query int false "年份"
// @Param month query int false "月份 (1-12)"
// @Param start_date query string false "开始日期 (YYYY-MM-DD)"
// @Param end_date query string false "结束日期 (YYYY-MM-DD)"
// @Success 200 {string} string "列表页面"
// @Router /expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	var query service.ListQuery
	_ = c.ShouldBindQuery(&query)
	filter, err := service.ParseListQuery(query)
	if err != nil {
		failWith(c, err, "/expenses", nil)
		return
	}

	ctx := c.Request.Context()
	userID := middleware.GetCurrentUserID(c)
	expenses, err := h.expenses.List(ctx, userID, filter)
	if err != nil {
		failWith(c, err, "/dashboard", nil)
		return
	}
	years, err := h.expenses.Years(ctx, userID)
	if err != nil {
		failWith(c, err, "/dashboard", nil)
		return
	}

	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(decimal.NewFromFloat(e.Amount))
	}

	render(c, "view_expenses.html", "Expenses", gin.H{
		"Expenses":    expenses,
		"Years":       years,
		"Months":      monthOptions(),
		"Filter":      filter,
		"Query":       query,
		"ExportQuery": exportQuery(query),
		"Total":       total.InexactFloat64(),
	})
}

// exportQuery 将当前筛选条件带到导出链接
func exportQuery(q service.ListQuery) template.URL {
	v := url.Values{}
	for key, value := range map[string]string{
		"year":       q.Year,
		"month":      q.Month,
		"start_date": q.StartDate,
		"end_date":   q.EndDate,
	} {
		if value != "" {
			v.Set(key, value)
		}
	}
	return template.URL(v.Encode())
}

func ownershipMessages(action string) map[error]string {
	return map[error]string{
		service.ErrNotFound:  "Expense not found.",
		service.ErrForbidden: "You are not allowed to " + action + " this expense.",
	}
}

// expenseID 解析路径中的记录 ID，非法时提示并跳转
func expenseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		redirectError(c, "/dashboard", "Expense not found.")
		return 0, false
	}
	return uint(id), true
}
