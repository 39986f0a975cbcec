package models

import (
	"time"
)

// MonthLayout 预算月份标签格式
const MonthLayout = "2006-01"

// Budget 预算模型
// 每个用户逻辑上只有一条预算记录，查询时不区分月份
type Budget struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	UserID      uint    `json:"user_id" gorm:"index;not null"`
	TotalBudget float64 `json:"total_budget" gorm:"not null"`
	Month       string  `json:"month" gorm:"size:7"`
	User        User    `json:"-" gorm:"foreignKey:UserID"`
}

// TableName 设置表名
func (Budget) TableName() string {
	return "budgets"
}

// Amount 返回预算金额，未设置预算时为 0
func (b *Budget) Amount() float64 {
	if b == nil {
		return 0
	}
	return b.TotalBudget
}

// MonthLabel 生成 YYYY-MM 月份标签
func MonthLabel(t time.Time) string {
	return t.UTC().Format(MonthLayout)
}
