package database

import (
	"gorm.io/gorm"
)

// YearExpr 返回提取日期列年份的 SQL 表达式
// SQLite 中日期以文本存储，前 4 位为年份
func YearExpr(db *gorm.DB, column string) string {
	if db.Dialector.Name() == "mysql" {
		return "YEAR(" + column + ")"
	}
	return "CAST(substr(" + column + ", 1, 4) AS INTEGER)"
}

// MonthExpr 返回提取日期列月份的 SQL 表达式
func MonthExpr(db *gorm.DB, column string) string {
	if db.Dialector.Name() == "mysql" {
		return "MONTH(" + column + ")"
	}
	return "CAST(substr(" + column + ", 6, 2) AS INTEGER)"
}
