package api

import (
	"expensetracker/middleware"
	"expensetracker/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler 个人资料与密码
type ProfileHandler struct {
	auth *service.AuthService
}

// NewProfileHandler 创建个人资料处理器
func NewProfileHandler(auth *service.AuthService) *ProfileHandler {
	return &ProfileHandler{auth: auth}
}

// Page 个人资料页面
// @Summary 个人资料页面
// @Tags 个人资料
// @Produce html
// @Security SessionCookie
// @Success 200 {string} string "个人资料页面"
// @Router /profile [get]
func (h *ProfileHandler) Page(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)
	render(c, "profile.html", "Profile", gin.H{"User": s})
}

// Update 修改姓名与邮箱
// @Summary 修改个人资料
// @Tags 个人资料
// @Accept x-www-form-urlencoded
// @Security SessionCookie
// @Param name formData string true "姓名"
// @Param email formData string true "邮箱"
// @Success 302 "跳转到 /profile"
// @Router /update-profile [post]
func (h *ProfileHandler) Update(c *gin.Context) {
	var form service.ProfileForm
	if err := c.ShouldBind(&form); err != nil {
		redirectError(c, "/profile", "Invalid profile form")
		return
	}

	if _, err := h.auth.UpdateProfile(c.Request.Context(), middleware.GetCurrentUserID(c), form); err != nil {
		failWith(c, err, "/profile", map[error]string{
			service.ErrDuplicateEmail: "Email already taken by another user",
		})
		return
	}
	redirectSuccess(c, "/profile", "Profile updated successfully!")
}

// ChangePassword 修改密码
// @Summary 修改密码
// @Tags 个人资料
// @Accept x-www-form-urlencoded
// @Security SessionCookie
// @Param current_password formData string true "当前密码"
// @Param new_password formData string true "新密码（6-72 位）"
// @Param confirm_password formData string true "确认新密码"
// @Success 302 "跳转到 /profile"
// @Router /change-password [post]
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	var form service.PasswordForm
	if err := c.ShouldBind(&form); err != nil {
		redirectError(c, "/profile", "Invalid password form")
		return
	}

	if err := h.auth.ChangePassword(c.Request.Context(), middleware.GetCurrentUserID(c), form); err != nil {
		failWith(c, err, "/profile", map[error]string{
			service.ErrInvalidCredentials: "Current password is incorrect",
		})
		return
	}
	redirectSuccess(c, "/profile", "Password changed successfully!")
}
