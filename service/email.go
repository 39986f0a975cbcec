package service

import (
	"fmt"
	"html"

	"expensetracker/config"

	"gopkg.in/gomail.v2"
)

// EmailService 邮件服务
type EmailService struct {
	cfg     *config.EmailConfig
	baseURL string
	send    func(m *gomail.Message) error
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig, baseURL string) *EmailService {
	s := &EmailService{cfg: cfg, baseURL: baseURL}
	s.send = s.dialAndSend
	return s
}

// SendWelcomeEmail 发送注册欢迎邮件
func (s *EmailService) SendWelcomeEmail(toEmail, name string) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("邮件服务未启用，请配置 EXPENSES_EMAIL_ENABLED=true")
	}
	return s.sendEmail(toEmail, "Welcome to Expense Tracker", s.generateWelcomeEmailBody(name))
}

// SendPasswordChangedEmail 发送密码修改提醒邮件
func (s *EmailService) SendPasswordChangedEmail(toEmail, name string) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("邮件服务未启用，请配置 EXPENSES_EMAIL_ENABLED=true")
	}
	return s.sendEmail(toEmail, "Your password was changed", s.generatePasswordChangedEmailBody(name))
}

// generateWelcomeEmailBody 生成欢迎邮件内容
func (s *EmailService) generateWelcomeEmailBody(name string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; }
        .header { background: #2563eb; color: white; padding: 30px; text-align: center; }
        .content { padding: 40px 30px; color: #333; line-height: 1.8; }
        .btn { display: inline-block; background: #2563eb; color: white !important; text-decoration: none; padding: 14px 40px; border-radius: 8px; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header"><h1>Expense Tracker</h1></div>
        <div class="content">
            <p>Hi <strong>%s</strong>,</p>
            <p>Your account is ready. Log in to record expenses and set a monthly budget.</p>
            <p style="text-align: center;"><a href="%s/login" class="btn">Log in</a></p>
        </div>
        <div class="footer"><p>This message was sent automatically, please do not reply.</p></div>
    </div>
</body>
</html>
`, html.EscapeString(name), s.baseURL)
}

// generatePasswordChangedEmailBody 生成密码修改提醒内容
func (s *EmailService) generatePasswordChangedEmailBody(name string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; padding: 20px;">
    <h2>Password changed</h2>
    <p>Hi <strong>%s</strong>, the password of your Expense Tracker account was just changed.</p>
    <p style="background: #fff3cd; border-left: 4px solid #ffc107; padding: 15px;">
        If you did not do this, log in at <a href="%s/login">%s</a> and change it immediately.
    </p>
</body>
</html>
`, html.EscapeString(name), s.baseURL, s.baseURL)
}

// sendEmail 发送邮件
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.send(m); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}
	return nil
}

func (s *EmailService) dialAndSend(m *gomail.Message) error {
	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	return d.DialAndSend(m)
}
