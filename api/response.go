package api

import (
	stderrors "errors"
	"net/http"

	"expensetracker/logger"
	"expensetracker/middleware"
	"expensetracker/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// genericErrorMessage 非业务错误展示给用户的提示
const genericErrorMessage = "Something went wrong, please try again."

// Response 通用 JSON 响应结构，仅用于健康检查等非页面接口
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    200,
		Message: "success",
		Data:    data,
	})
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

// render 渲染页面，附带当前用户与待展示的提示消息
func render(c *gin.Context, name, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	if s, ok := middleware.CurrentSession(c); ok {
		data["Session"] = &s
	}
	data["Flashes"] = middleware.PopFlashes(c)
	c.HTML(http.StatusOK, name, data)
}

// redirectSuccess 成功提示并重定向
func redirectSuccess(c *gin.Context, location, message string) {
	middleware.SetFlash(c, middleware.FlashSuccess, message)
	c.Redirect(http.StatusFound, location)
}

// redirectError 错误提示并重定向
func redirectError(c *gin.Context, location, message string) {
	middleware.SetFlash(c, middleware.FlashError, message)
	c.Redirect(http.StatusFound, location)
}

// failWith 将错误转换为提示消息并重定向
// 校验错误展示字段提示；已知业务错误使用 messages 中的文案；其他错误记录日志后给出通用提示
func failWith(c *gin.Context, err error, location string, messages map[error]string) {
	var verr *service.ValidationError
	if stderrors.As(err, &verr) {
		redirectError(c, location, verr.Message)
		return
	}
	for target, message := range messages {
		if stderrors.Is(err, target) {
			redirectError(c, location, message)
			return
		}
	}

	logger.Error("请求处理失败",
		zap.String("path", c.Request.URL.Path),
		zap.Uint("user_id", middleware.GetCurrentUserID(c)),
		zap.Error(err),
	)
	_ = c.Error(err)
	redirectError(c, location, SafeErrorMessage(err, genericErrorMessage))
}
