package api

import (
	"net/http"

	"expensetracker/middleware"
	"expensetracker/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler 登录、注册与退出
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// LoginRequest 登录表单
type LoginRequest struct {
	Email    string `form:"email" example:"ada@example.com"`
	Password string `form:"password" example:"secret123"`
}

// Index 首页按登录状态跳转
// @Summary 首页
// @Description 已登录跳转到仪表盘，否则跳转到登录页
// @Tags 页面
// @Success 302 "重定向"
// @Router / [get]
func (h *AuthHandler) Index(c *gin.Context) {
	if _, ok := middleware.CurrentSession(c); ok {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

// LoginPage 登录页
// @Summary 登录页
// @Tags 认证
// @Produce html
// @Success 200 {string} string "登录页面"
// @Router /login [get]
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if _, ok := middleware.CurrentSession(c); ok {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	render(c, "login.html", "Log in", nil)
}

// Login 用户登录
// @Summary 用户登录
// @Description 校验邮箱与密码，成功后写入会话 Cookie。邮箱不存在与密码错误返回相同提示
// @Tags 认证
// @Accept x-www-form-urlencoded
// @Param email formData string true "邮箱"
// @Param password formData string true "密码"
// @Success 302 "成功跳转到 /dashboard，失败跳转回 /login"
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectError(c, "/login", service.ErrInvalidCredentials.Error())
		return
	}

	user, err := h.auth.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		failWith(c, err, "/login", map[error]string{
			service.ErrInvalidCredentials: "Invalid email or password",
		})
		return
	}

	if err := middleware.SetSessionCookie(c, user.ID); err != nil {
		failWith(c, err, "/login", nil)
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

// RegisterPage 注册页
// @Summary 注册页
// @Tags 认证
// @Produce html
// @Success 200 {string} string "注册页面"
// @Router /register [get]
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	render(c, "register.html", "Register", nil)
}

// Register 用户注册
// @Summary 用户注册
// @Description 创建账号，密码以 bcrypt 哈希保存。邮箱已被注册时提示并返回注册页
// @Tags 认证
// @Accept x-www-form-urlencoded
// @Param name formData string true "姓名"
// @Param email formData string true "邮箱"
// @Param password formData string true "密码（6-72 位）"
// @Success 302 "成功跳转到 /login，失败跳转回 /register"
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var form service.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		redirectError(c, "/register", "Invalid registration form")
		return
	}

	if _, err := h.auth.Register(c.Request.Context(), form); err != nil {
		failWith(c, err, "/register", map[error]string{
			service.ErrDuplicateEmail: "Email already exists",
		})
		return
	}
	redirectSuccess(c, "/login", "Registration successful! Please login.")
}

// Logout 退出登录
// @Summary 退出登录
// @Tags 认证
// @Security SessionCookie
// @Success 302 "跳转到 /login"
// @Router /logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c)
	redirectSuccess(c, "/login", "You have been logged out.")
}
