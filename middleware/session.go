package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"expensetracker/config"
	"expensetracker/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const sessionKey = "session"

var (
	jwtSecret   []byte
	cookieName  = "session"
	sessionTTL  = 24 * time.Hour
	errBadToken = errors.New("invalid session token")
)

// Claims 会话令牌中的声明
type Claims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

// Session 当前请求的登录用户快照，只读
type Session struct {
	UserID uint
	Name   string
	Email  string
}

// UserLoader 按 ID 读取用户，AuthService 实现该接口
type UserLoader interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
}

// InitSession 初始化会话签名密钥与 Cookie 参数
func InitSession(cfg *config.Config) {
	jwtSecret = []byte(cfg.Session.Secret)
	if cfg.Session.CookieName != "" {
		cookieName = cfg.Session.CookieName
	}
	if cfg.Session.ExpireTime > 0 {
		sessionTTL = cfg.Session.ExpireTime
	}
}

// GenerateToken 生成会话令牌
func GenerateToken(userID uint, expire time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken 解析并校验会话令牌
func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return nil, errBadToken
	}
	return claims, nil
}

// LoadSession 解析会话 Cookie 并从数据库读取当前用户
// 令牌无效或用户已不存在时按匿名请求处理并清除 Cookie
func LoadSession(users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(cookieName)
		if err != nil || raw == "" {
			c.Next()
			return
		}

		claims, err := ParseToken(raw)
		if err != nil {
			ClearSessionCookie(c)
			c.Next()
			return
		}

		user, err := users.GetUser(c.Request.Context(), claims.UserID)
		if err != nil {
			ClearSessionCookie(c)
			c.Next()
			return
		}

		c.Set(sessionKey, Session{UserID: user.ID, Name: user.Name, Email: user.Email})
		c.Next()
	}
}

// RequireLogin 未登录时带提示重定向到登录页
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentSession(c); !ok {
			SetFlash(c, FlashError, "Please log in to access this page.")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentSession 获取当前登录用户
func CurrentSession(c *gin.Context) (Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return Session{}, false
	}
	s, ok := v.(Session)
	return s, ok
}

// GetCurrentUserID 获取当前用户 ID，未登录时为 0
func GetCurrentUserID(c *gin.Context) uint {
	s, _ := CurrentSession(c)
	return s.UserID
}

// SetSessionCookie 签发令牌并写入会话 Cookie
func SetSessionCookie(c *gin.Context, userID uint) error {
	token, err := GenerateToken(userID, sessionTTL)
	if err != nil {
		return err
	}
	setCookie(c, cookieName, token, int(sessionTTL.Seconds()))
	return nil
}

// ClearSessionCookie 清除会话 Cookie
func ClearSessionCookie(c *gin.Context) {
	setCookie(c, cookieName, "", -1)
}

func setCookie(c *gin.Context, name, value string, maxAge int) {
	secure, sameSite := getCookieOptions()
	c.SetSameSite(sameSite)
	c.SetCookie(name, value, maxAge, "/", "", secure, true)
}

// getCookieOptions 根据运行模式返回 Cookie 的安全选项
// release 模式下启用 Secure（仅 HTTPS 传输）
func getCookieOptions() (secure bool, sameSite http.SameSite) {
	secure = config.IsRelease()
	// SameSite=Lax: 跨站 POST 不携带 Cookie，同站导航正常
	sameSite = http.SameSiteLaxMode
	return
}
