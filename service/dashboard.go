package service

import (
	"context"
	"sort"
	"time"

	"expensetracker/models"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryTotal 单个类别的消费小计
type CategoryTotal struct {
	Category string
	Total    float64
}

// Summary 仪表盘汇总
// TotalSpent 与 Categories 由同一批记录计算，二者之和恒等
type Summary struct {
	Start        time.Time
	End          time.Time
	TotalSpent   float64
	BudgetAmount float64
	Remaining    float64
	Expenses     []models.Expense
	Categories   []CategoryTotal
}

// DashboardService 仪表盘汇总计算
type DashboardService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewDashboardService 创建仪表盘服务
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db, now: time.Now}
}

// Summarize 汇总区间内的消费与预算
// 未给出完整区间时使用当前自然月（UTC）
func (s *DashboardService) Summarize(ctx context.Context, userID uint, f ListFilter) (*Summary, error) {
	start, end := s.period(f)

	var (
		expenses []models.Expense
		budget   *models.Budget
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
			Order("date DESC").Order("id DESC").
			Find(&expenses).Error
		if err != nil {
			return errors.Wrap(err, "load expenses")
		}
		budget, err = latestBudget(tx, userID)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "summarize dashboard")
	}

	total := decimal.Zero
	subtotals := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		amount := decimal.NewFromFloat(e.Amount)
		total = total.Add(amount)
		subtotals[e.Category] = subtotals[e.Category].Add(amount)
	}

	categories := make([]CategoryTotal, 0, len(subtotals))
	for name, sum := range subtotals {
		categories = append(categories, CategoryTotal{Category: name, Total: sum.InexactFloat64()})
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Total != categories[j].Total {
			return categories[i].Total > categories[j].Total
		}
		return categories[i].Category < categories[j].Category
	})

	budgetAmount := decimal.NewFromFloat(budget.Amount())
	return &Summary{
		Start:        start,
		End:          end,
		TotalSpent:   total.InexactFloat64(),
		BudgetAmount: budgetAmount.InexactFloat64(),
		Remaining:    budgetAmount.Sub(total).InexactFloat64(),
		Expenses:     expenses,
		Categories:   categories,
	}, nil
}

// period 返回闭区间的起止日期
func (s *DashboardService) period(f ListFilter) (time.Time, time.Time) {
	if f.HasRange() {
		return models.DateOnly(*f.Start), models.DateOnly(*f.End)
	}
	month := now.With(s.now().UTC())
	return month.BeginningOfMonth(), models.DateOnly(month.EndOfMonth())
}
