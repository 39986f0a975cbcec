package service

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"expensetracker/models"

	"github.com/shopspring/decimal"
)

// ExpenseForm 原始的消费表单字段
type ExpenseForm struct {
	Amount      string `form:"amount"`
	Category    string `form:"category"`
	Merchant    string `form:"merchant"`
	Description string `form:"description"`
	Date        string `form:"date"`
	ReceiptURL  string `form:"receipt_url"`
}

// ExpenseInput 校验通过的消费数据
type ExpenseInput struct {
	Amount      float64
	Category    string
	Merchant    string
	Description string
	Date        time.Time
	ReceiptURL  string
}

// ListQuery 原始的列表查询参数
type ListQuery struct {
	Month     string `form:"month"`
	Year      string `form:"year"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// ListFilter 校验后的列表筛选条件
// Start/End 同时存在时优先生效，Year/Month 为 0 表示不筛选
type ListFilter struct {
	Start *time.Time
	End   *time.Time
	Year  int
	Month int
}

// HasRange 是否指定了完整的日期区间
func (f ListFilter) HasRange() bool {
	return f.Start != nil && f.End != nil
}

var receiptNamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// ParseExpenseForm 校验消费表单
func ParseExpenseForm(f ExpenseForm) (ExpenseInput, error) {
	amount, err := parseAmount("amount", f.Amount, false)
	if err != nil {
		return ExpenseInput{}, err
	}

	category := strings.TrimSpace(f.Category)
	if category == "" {
		return ExpenseInput{}, invalid("category", "Category is required")
	}
	if len(category) > 50 {
		return ExpenseInput{}, invalid("category", "Category must be at most 50 characters")
	}

	merchant := strings.TrimSpace(f.Merchant)
	if len(merchant) > 100 {
		return ExpenseInput{}, invalid("merchant", "Merchant must be at most 100 characters")
	}

	if strings.TrimSpace(f.Date) == "" {
		return ExpenseInput{}, invalid("date", "Date is required")
	}
	date, err := ParseDate("date", f.Date)
	if err != nil {
		return ExpenseInput{}, err
	}

	receipt := strings.TrimSpace(f.ReceiptURL)
	if receipt != "" && (!receiptNamePattern.MatchString(receipt) || strings.HasPrefix(receipt, ".")) {
		return ExpenseInput{}, invalid("receipt_url", "Invalid receipt reference")
	}

	return ExpenseInput{
		Amount:      amount,
		Category:    category,
		Merchant:    merchant,
		Description: strings.TrimSpace(f.Description),
		Date:        date,
		ReceiptURL:  receipt,
	}, nil
}

// ParseBudgetAmount 校验预算金额，允许为 0
func ParseBudgetAmount(s string) (float64, error) {
	return parseAmount("total_budget", s, true)
}

// ParseListQuery 校验列表/仪表盘查询参数
// 日期区间只有起止同时提供时才生效
func ParseListQuery(q ListQuery) (ListFilter, error) {
	var f ListFilter

	start := strings.TrimSpace(q.StartDate)
	end := strings.TrimSpace(q.EndDate)
	if start != "" && end != "" {
		s, err := ParseDate("start_date", start)
		if err != nil {
			return ListFilter{}, err
		}
		e, err := ParseDate("end_date", end)
		if err != nil {
			return ListFilter{}, err
		}
		if e.Before(s) {
			return ListFilter{}, invalid("end_date", "End date must not be before start date")
		}
		f.Start, f.End = &s, &e
	}

	if y := strings.TrimSpace(q.Year); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil || year < 1 || year > 9999 {
			return ListFilter{}, invalid("year", "Invalid year")
		}
		f.Year = year
	}
	if m := strings.TrimSpace(q.Month); m != "" {
		month, err := strconv.Atoi(m)
		if err != nil || month < 1 || month > 12 {
			return ListFilter{}, invalid("month", "Invalid month")
		}
		f.Month = month
	}
	return f, nil
}

// ParseDate 解析 YYYY-MM-DD，返回 UTC 零点
func ParseDate(field, s string) (time.Time, error) {
	t, err := time.ParseInLocation(models.DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, invalid(field, "Date must be in YYYY-MM-DD format")
	}
	return t, nil
}

// parseAmount 解析金额并四舍五入到分
func parseAmount(field, s string, allowZero bool) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, invalid(field, "Amount is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, invalid(field, "Amount must be a number")
	}
	d = d.Round(2)
	if d.IsNegative() || (!allowZero && d.IsZero()) {
		if allowZero {
			return 0, invalid(field, "Amount must not be negative")
		}
		return 0, invalid(field, "Amount must be greater than zero")
	}
	if d.GreaterThan(decimal.New(1, 12)) {
		return 0, invalid(field, "Amount is too large")
	}
	return d.InexactFloat64(), nil
}
