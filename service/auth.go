package service

import (
	"context"
	stderrors "errors"
	"net/mail"
	"strings"

	"expensetracker/models"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	minPasswordLen = 6
	// bcrypt 只使用前 72 字节
	maxPasswordLen = 72
)

// Notifier 账户事件通知，EmailService 实现该接口
type Notifier interface {
	SendWelcomeEmail(toEmail, name string) error
	SendPasswordChangedEmail(toEmail, name string) error
}

// AuthService 注册、登录与账户维护
type AuthService struct {
	db       *gorm.DB
	notifier Notifier
	log      *zap.Logger
}

// NewAuthService 创建认证服务，notifier 可为 nil
func NewAuthService(db *gorm.DB, notifier Notifier, log *zap.Logger) *AuthService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthService{db: db, notifier: notifier, log: log}
}

// RegisterForm 注册表单
type RegisterForm struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

// Register 创建用户；邮箱重复返回 ErrDuplicateEmail
func (s *AuthService) Register(ctx context.Context, form RegisterForm) (*models.User, error) {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return nil, invalid("name", "Name is required")
	}
	if len(name) > 100 {
		return nil, invalid("name", "Name must be at most 100 characters")
	}
	email, err := validateEmail(form.Email)
	if err != nil {
		return nil, err
	}
	if err := validatePassword("password", form.Password); err != nil {
		return nil, err
	}

	hashed, err := hashPassword(form.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{Name: name, Email: email, Password: hashed}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, errors.Wrap(err, "create user")
	}

	s.notify(func(n Notifier) error { return n.SendWelcomeEmail(user.Email, user.Name) }, user.ID)
	return &user, nil
}

// Authenticate 校验邮箱与密码
// 用户不存在与密码错误返回同一个 ErrInvalidCredentials，避免枚举用户
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", strings.TrimSpace(email)).First(&user).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errors.Wrap(err, "find user by email")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// GetUser 按 ID 读取用户，每个请求都重新读取
func (s *AuthService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "get user")
	}
	return &user, nil
}

// ProfileForm 资料修改表单
type ProfileForm struct {
	Name  string `form:"name"`
	Email string `form:"email"`
}

// UpdateProfile 修改姓名与邮箱；邮箱被其他用户占用返回 ErrDuplicateEmail
func (s *AuthService) UpdateProfile(ctx context.Context, userID uint, form ProfileForm) (*models.User, error) {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return nil, invalid("name", "Name is required")
	}
	if len(name) > 100 {
		return nil, invalid("name", "Name must be at most 100 characters")
	}
	email, err := validateEmail(form.Email)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Model(&models.User{ID: userID}).
		Updates(map[string]interface{}{"name": name, "email": email}).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, errors.Wrap(err, "update profile")
	}
	return s.GetUser(ctx, userID)
}

// PasswordForm 修改密码表单
type PasswordForm struct {
	CurrentPassword string `form:"current_password"`
	NewPassword     string `form:"new_password"`
	ConfirmPassword string `form:"confirm_password"`
}

// ChangePassword 校验当前密码后更新为新密码
func (s *AuthService) ChangePassword(ctx context.Context, userID uint, form PasswordForm) error {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(form.CurrentPassword)) != nil {
		return ErrInvalidCredentials
	}
	if form.NewPassword != form.ConfirmPassword {
		return invalid("confirm_password", "New passwords do not match")
	}
	if err := validatePassword("new_password", form.NewPassword); err != nil {
		return err
	}

	hashed, err := hashPassword(form.NewPassword)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Model(user).Update("password", hashed).Error; err != nil {
		return errors.Wrap(err, "update password")
	}

	s.notify(func(n Notifier) error { return n.SendPasswordChangedEmail(user.Email, user.Name) }, user.ID)
	return nil
}

// notify 发送通知邮件，失败只记录日志
func (s *AuthService) notify(send func(Notifier) error, userID uint) {
	if s.notifier == nil {
		return
	}
	if err := send(s.notifier); err != nil {
		s.log.Warn("发送通知邮件失败", zap.Uint("user_id", userID), zap.Error(err))
	}
}

func validateEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if email == "" {
		return "", invalid("email", "Email is required")
	}
	if len(email) > 100 {
		return "", invalid("email", "Email must be at most 100 characters")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", invalid("email", "Please enter a valid email address")
	}
	return email, nil
}

func validatePassword(field, password string) error {
	if len(password) < minPasswordLen {
		return invalid(field, "Password must be at least 6 characters")
	}
	if len(password) > maxPasswordLen {
		return invalid(field, "Password must be at most 72 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "hash password")
	}
	return string(hashed), nil
}
