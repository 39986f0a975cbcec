package api

import (
	"expensetracker/config"
)

// SafeErrorMessage release 模式下不向用户暴露内部错误详情
func SafeErrorMessage(err error, fallback string) string {
	return config.SafeErrorMessage(err, fallback)
}
