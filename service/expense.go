package service

import (
	"context"
	stderrors "errors"
	"sort"

	"expensetracker/database"
	"expensetracker/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ExpenseService 消费记录的增删改查
type ExpenseService struct {
	db *gorm.DB
}

// NewExpenseService 创建消费记录服务
func NewExpenseService(db *gorm.DB) *ExpenseService {
	return &ExpenseService{db: db}
}

// Create 为用户新增一条消费记录
func (s *ExpenseService) Create(ctx context.Context, userID uint, in ExpenseInput) (*models.Expense, error) {
	expense := models.Expense{
		UserID:      userID,
		Amount:      in.Amount,
		Category:    in.Category,
		Merchant:    in.Merchant,
		Description: in.Description,
		Date:        models.DateOnly(in.Date),
		ReceiptURL:  in.ReceiptURL,
	}
	if err := s.db.WithContext(ctx).Create(&expense).Error; err != nil {
		return nil, errors.Wrap(err, "create expense")
	}
	return &expense, nil
}

// LoadOwned 读取记录并校验归属
// 记录不存在返回 ErrNotFound，不属于 userID 返回 ErrForbidden
func (s *ExpenseService) LoadOwned(ctx context.Context, userID, id uint) (*models.Expense, error) {
	return loadOwned(s.db.WithContext(ctx), userID, id)
}

func loadOwned(tx *gorm.DB, userID, id uint) (*models.Expense, error) {
	var expense models.Expense
	if err := tx.First(&expense, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "load expense")
	}
	if expense.UserID != userID {
		return nil, ErrForbidden
	}
	return &expense, nil
}

// Update 整体覆盖可编辑字段；表单未携带小票引用时保留原值
func (s *ExpenseService) Update(ctx context.Context, userID, id uint, in ExpenseInput) (*models.Expense, error) {
	var expense *models.Expense
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		expense, err = loadOwned(tx, userID, id)
		if err != nil {
			return err
		}

		expense.Amount = in.Amount
		expense.Category = in.Category
		expense.Merchant = in.Merchant
		expense.Description = in.Description
		expense.Date = models.DateOnly(in.Date)
		if in.ReceiptURL != "" {
			expense.ReceiptURL = in.ReceiptURL
		}
		return tx.Omit(clause.Associations).Save(expense).Error
	})
	if err != nil {
		if isBusinessError(err) {
			return nil, err
		}
		return nil, errors.Wrap(err, "update expense")
	}
	return expense, nil
}

// Delete 校验归属后立即删除
func (s *ExpenseService) Delete(ctx context.Context, userID, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		expense, err := loadOwned(tx, userID, id)
		if err != nil {
			return err
		}
		return tx.Delete(expense).Error
	})
	if err != nil {
		if isBusinessError(err) {
			return err
		}
		return errors.Wrap(err, "delete expense")
	}
	return nil
}

// List 按筛选条件列出用户的消费记录，日期倒序
// 同时给出起止日期时只按区间筛选，忽略年/月
func (s *ExpenseService) List(ctx context.Context, userID uint, f ListFilter) ([]models.Expense, error) {
	db := s.db.WithContext(ctx)
	q := db.Where("user_id = ?", userID)

	if f.HasRange() {
		q = q.Where("date BETWEEN ? AND ?", *f.Start, *f.End)
	} else {
		if f.Year != 0 {
			q = q.Where(database.YearExpr(db, "date")+" = ?", f.Year)
		}
		if f.Month != 0 {
			q = q.Where(database.MonthExpr(db, "date")+" = ?", f.Month)
		}
	}

	var expenses []models.Expense
	if err := q.Order("date DESC").Order("id DESC").Find(&expenses).Error; err != nil {
		return nil, errors.Wrap(err, "list expenses")
	}
	return expenses, nil
}

// Years 返回用户消费记录中出现过的年份，倒序
func (s *ExpenseService) Years(ctx context.Context, userID uint) ([]int, error) {
	db := s.db.WithContext(ctx)
	var years []int
	err := db.Model(&models.Expense{}).
		Where("user_id = ?", userID).
		Distinct(database.YearExpr(db, "date")).
		Pluck(database.YearExpr(db, "date"), &years).Error
	if err != nil {
		return nil, errors.Wrap(err, "list expense years")
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years, nil
}

func isBusinessError(err error) bool {
	return stderrors.Is(err, ErrNotFound) || stderrors.Is(err, ErrForbidden) || stderrors.Is(err, ErrValidation)
}
