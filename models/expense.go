package models

import (
	"time"
)

// DateLayout 表单与查询参数中的日期格式
const DateLayout = "2006-01-02"

// Expense 消费记录模型
type Expense struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index;not null"`
	Amount      float64   `json:"amount" gorm:"not null"`
	Category    string    `json:"category" gorm:"size:50;not null"`
	Merchant    string    `json:"merchant" gorm:"size:100"`
	Description string    `json:"description" gorm:"type:text"`
	Date        time.Time `json:"date" gorm:"type:date;index;not null"`
	ReceiptURL  string    `json:"receipt_url" gorm:"size:500"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	User        User      `json:"-" gorm:"foreignKey:UserID"`
}

// TableName 设置表名
func (Expense) TableName() string {
	return "expenses"
}

// DateString 以 YYYY-MM-DD 输出消费日期
func (e Expense) DateString() string {
	return e.Date.Format(DateLayout)
}

// Category 常用消费类别，仅作为表单建议，不做强制校验
const (
	CategoryFood          = "Food"
	CategoryTransport     = "Transport"
	CategoryShopping      = "Shopping"
	CategoryBills         = "Bills"
	CategoryEntertainment = "Entertainment"
	CategoryHealth        = "Health"
	CategoryOther         = "Other"
)

// GetCategories 获取建议的消费类别
func GetCategories() []string {
	return []string{
		CategoryFood,
		CategoryTransport,
		CategoryShopping,
		CategoryBills,
		CategoryEntertainment,
		CategoryHealth,
		CategoryOther,
	}
}

// DateOnly 截断为 UTC 零点，所有存储的日期都使用这一形式
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
