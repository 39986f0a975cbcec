package api

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"expensetracker/models"
	"expensetracker/service"

	"github.com/gin-gonic/gin"
)

// ReceiptHandler 小票扫描（占位识别）
type ReceiptHandler struct {
	receipts *service.ReceiptService
	maxBytes int64
}

// NewReceiptHandler 创建小票处理器
func NewReceiptHandler(receipts *service.ReceiptService, maxBytes int64) *ReceiptHandler {
	return &ReceiptHandler{receipts: receipts, maxBytes: maxBytes}
}

// Page 小票上传页面
// @Summary 小票上传页面
// @Tags 小票
// @Produce html
// @Security SessionCookie
// @Success 200 {string} string "上传页面"
// @Router /scan-receipt [get]
func (h *ReceiptHandler) Page(c *gin.Context) {
	render(c, "scan_receipt.html", "Scan receipt", nil)
}

// Scan 上传小票
// @Summary 上传小票
// @Description 保存图片并返回占位识别结果，页面附带预填的新增消费表单
// @Tags 小票
// @Accept multipart/form-data
// @Produce html
// @Security SessionCookie
// @Param receipt formData file true "小票图片"
// @Success 200 {string} string "识别结果页面"
// @Success 302 "未选择文件或文件不合法时跳转回 /scan-receipt"
// @Router /scan-receipt [post]
func (h *ReceiptHandler) Scan(c *gin.Context) {
	if h.maxBytes > 0 {
		// 额外 1MB 留给表单其他部分
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+1<<20)
	}

	fh, err := c.FormFile("receipt")
	if err != nil {
		if stderrors.Is(err, http.ErrMissingFile) || stderrors.Is(err, http.ErrNotMultipart) {
			fh = nil
		} else {
			redirectError(c, "/scan-receipt", "Receipt upload failed or file is too large.")
			return
		}
	}

	scan, err := h.receipts.Scan(c.Request.Context(), fh)
	if err != nil {
		failWith(c, err, "/scan-receipt", map[error]string{
			service.ErrMissingFile: "Please select a receipt image.",
		})
		return
	}

	render(c, "scan_receipt.html", "Scan receipt", gin.H{
		"Scan": scan,
		"Form": expenseFormView{
			Amount:     strconv.FormatFloat(scan.Suggested.Amount, 'f', 2, 64),
			Merchant:   scan.Suggested.Merchant,
			Date:       scan.Suggested.Date,
			ReceiptURL: scan.File,
			Categories: models.GetCategories(),
		},
	})
}
