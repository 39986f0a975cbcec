package service

import (
	"context"
	stderrors "errors"
	"time"

	"expensetracker/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// BudgetService 用户预算读写
type BudgetService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewBudgetService 创建预算服务
func NewBudgetService(db *gorm.DB) *BudgetService {
	return &BudgetService{db: db, now: time.Now}
}

// Get 返回用户最近一条预算，未设置时返回 nil
func (s *BudgetService) Get(ctx context.Context, userID uint) (*models.Budget, error) {
	return latestBudget(s.db.WithContext(ctx), userID)
}

// Set 查找或创建用户预算
// 查询不区分月份；已有记录只覆盖金额，新建时写入当月标签
func (s *BudgetService) Set(ctx context.Context, userID uint, total float64) (*models.Budget, error) {
	if total < 0 {
		return nil, invalid("total_budget", "Amount must not be negative")
	}

	var budget *models.Budget
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := latestBudget(tx, userID)
		if err != nil {
			return err
		}
		if existing != nil {
			existing.TotalBudget = total
			budget = existing
			return tx.Model(existing).Update("total_budget", total).Error
		}

		budget = &models.Budget{
			UserID:      userID,
			TotalBudget: total,
			Month:       models.MonthLabel(s.now()),
		}
		return tx.Create(budget).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "set budget")
	}
	return budget, nil
}

func latestBudget(tx *gorm.DB, userID uint) (*models.Budget, error) {
	var budget models.Budget
	err := tx.Where("user_id = ?", userID).Order("id DESC").First(&budget).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "load budget")
	}
	return &budget, nil
}
