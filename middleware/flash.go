package middleware

import (
	"encoding/base64"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

// 提示消息级别
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

const (
	flashCookie = "flash"
	flashKey    = "flash.pending"
)

// Flash 一次性提示消息，重定向后展示一次
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// SetFlash 追加一条提示消息，随响应写入 Cookie
func SetFlash(c *gin.Context, category, message string) {
	var pending []Flash
	if v, ok := c.Get(flashKey); ok {
		pending, _ = v.([]Flash)
	}
	pending = append(pending, Flash{Category: category, Message: message})
	c.Set(flashKey, pending)

	data, err := json.Marshal(pending)
	if err != nil {
		return
	}
	setCookie(c, flashCookie, base64.RawURLEncoding.EncodeToString(data), 300)
}

// PopFlashes 读取并清除上一个请求留下的提示消息
func PopFlashes(c *gin.Context) []Flash {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	setCookie(c, flashCookie, "", -1)

	data, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var flashes []Flash
	if err := json.Unmarshal(data, &flashes); err != nil {
		return nil
	}
	return flashes
}
