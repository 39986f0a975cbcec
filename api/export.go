package api

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"expensetracker/middleware"
	"expensetracker/service"

	"github.com/gin-gonic/gin"
)

// ExportHandler 导出处理器
type ExportHandler struct {
	expenses *service.ExpenseService
}

// NewExportHandler 创建导出处理器
func NewExportHandler(expenses *service.ExpenseService) *ExportHandler {
	return &ExportHandler{expenses: expenses}
}

// Export 导出消费记录
// @Summary 导出消费记录
// @Description 使用与列表页相同的筛选条件导出 CSV 或 Excel 文件
// @Tags 导出
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security SessionCookie
// @Param format query string false "导出格式" Enums(csv, xlsx) default(csv)
// @Param year query int false "年份"
// @Param month query int false "月份 (1-12)"
// @Param start_date query string false "开始日期 (YYYY-MM-DD)"
// @Param end_date query string false "结束日期 (YYYY-MM-DD)"
// @Success 200 {file} file "导出文件"
// @Success 302 "参数错误时跳转到 /expenses"
// @Router /expenses/export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	format, err := service.ParseExportFormat(c.Query("format"))
	if err != nil {
		failWith(c, err, "/expenses", nil)
		return
	}

	var query service.ListQuery
	_ = c.ShouldBindQuery(&query)
	filter, err := service.ParseListQuery(query)
	if err != nil {
		failWith(c, err, "/expenses", nil)
		return
	}

	expenses, err := h.expenses.List(c.Request.Context(), middleware.GetCurrentUserID(c), filter)
	if err != nil {
		failWith(c, err, "/expenses", nil)
		return
	}

	buf := new(bytes.Buffer)
	contentType := "text/csv; charset=utf-8"
	if format == service.FormatExcel {
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		err = service.WriteExcel(buf, expenses)
	} else {
		err = service.WriteCSV(buf, expenses)
	}
	if err != nil {
		failWith(c, err, "/expenses", nil)
		return
	}

	filename := fmt.Sprintf("expenses_%s.%s", time.Now().UTC().Format("20060102"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
