package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type stubNotifier struct {
	welcome []string
	changed []string
	sendErr error
}

func (n *stubNotifier) SendWelcomeEmail(toEmail, name string) error {
	n.welcome = append(n.welcome, toEmail)
	return n.sendErr
}

func (n *stubNotifier) SendPasswordChangedEmail(toEmail, name string) error {
	n.changed = append(n.changed, toEmail)
	return n.sendErr
}

type authSuite struct {
	storeSuite
	notifier *stubNotifier
	logs     *observer.ObservedLogs
	svc      *AuthService
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupTest() {
	s.storeSuite.SetupTest()
	core, logs := observer.New(zap.WarnLevel)
	s.logs = logs
	s.notifier = &stubNotifier{}
	s.svc = NewAuthService(s.db, s.notifier, zap.New(core))
}

func (s *authSuite) register(email string) {
	_, err := s.svc.Register(s.ctx, RegisterForm{Name: "Alice", Email: email, Password: "secret123"})
	s.Require().NoError(err)
}

func (s *authSuite) TestRegisterThenLogin() {
	user, err := s.svc.Register(s.ctx, RegisterForm{Name: " Alice ", Email: "alice@example.com", Password: "secret123"})
	s.Require().NoError(err)
	s.Equal("Alice", user.Name)
	s.NotEqual("secret123", user.Password)
	s.Equal([]string{"alice@example.com"}, s.notifier.welcome)

	got, err := s.svc.Authenticate(s.ctx, "alice@example.com", "secret123")
	s.Require().NoError(err)
	s.Equal(user.ID, got.ID)
}

func (s *authSuite) TestWrongPasswordAndUnknownEmailLookAlike() {
	s.register("alice@example.com")

	_, wrongPassword := s.svc.Authenticate(s.ctx, "alice@example.com", "nope-nope")
	_, unknownEmail := s.svc.Authenticate(s.ctx, "ghost@example.com", "secret123")

	s.ErrorIs(wrongPassword, ErrInvalidCredentials)
	s.ErrorIs(unknownEmail, ErrInvalidCredentials)
	s.Equal(wrongPassword.Error(), unknownEmail.Error())
}

func (s *authSuite) TestDuplicateEmail() {
	s.register("alice@example.com")

	_, err := s.svc.Register(s.ctx, RegisterForm{Name: "Other", Email: "alice@example.com", Password: "another1"})
	s.ErrorIs(err, ErrDuplicateEmail)
}

func (s *authSuite) TestRegisterValidation() {
	cases := []RegisterForm{
		{Name: "", Email: "a@example.com", Password: "secret123"},
		{Name: "A", Email: "not-an-email", Password: "secret123"},
		{Name: "A", Email: "a@example.com", Password: "short"},
	}
	for _, form := range cases {
		_, err := s.svc.Register(s.ctx, form)
		s.ErrorIs(err, ErrValidation, "form %+v", form)
	}
	s.Empty(s.notifier.welcome)
}

func (s *authSuite) TestNotifierFailureIsOnlyLogged() {
	s.notifier.sendErr = errors.New("smtp down")

	_, err := s.svc.Register(s.ctx, RegisterForm{Name: "A", Email: "a@example.com", Password: "secret123"})
	s.Require().NoError(err)
	s.Equal(1, s.logs.Len())
}

func (s *authSuite) TestUpdateProfile() {
	s.register("alice@example.com")
	s.register("bob@example.com")
	alice, err := s.svc.Authenticate(s.ctx, "alice@example.com", "secret123")
	s.Require().NoError(err)

	_, err = s.svc.UpdateProfile(s.ctx, alice.ID, ProfileForm{Name: "Alice", Email: "bob@example.com"})
	s.ErrorIs(err, ErrDuplicateEmail)

	updated, err := s.svc.UpdateProfile(s.ctx, alice.ID, ProfileForm{Name: "Alice B", Email: "alice.b@example.com"})
	s.Require().NoError(err)
	s.Equal("Alice B", updated.Name)
	s.Equal("alice.b@example.com", updated.Email)

	// 保留自己的邮箱不算冲突
	_, err = s.svc.UpdateProfile(s.ctx, alice.ID, ProfileForm{Name: "Alice C", Email: "alice.b@example.com"})
	s.NoError(err)
}

func (s *authSuite) TestChangePassword() {
	s.register("alice@example.com")
	alice, err := s.svc.Authenticate(s.ctx, "alice@example.com", "secret123")
	s.Require().NoError(err)

	err = s.svc.ChangePassword(s.ctx, alice.ID, PasswordForm{CurrentPassword: "wrong", NewPassword: "newpass1", ConfirmPassword: "newpass1"})
	s.ErrorIs(err, ErrInvalidCredentials)

	err = s.svc.ChangePassword(s.ctx, alice.ID, PasswordForm{CurrentPassword: "secret123", NewPassword: "newpass1", ConfirmPassword: "newpass2"})
	var verr *ValidationError
	s.Require().True(errors.As(err, &verr))
	s.Equal("New passwords do not match", verr.Message)

	err = s.svc.ChangePassword(s.ctx, alice.ID, PasswordForm{CurrentPassword: "secret123", NewPassword: "newpass1", ConfirmPassword: "newpass1"})
	s.Require().NoError(err)
	s.Equal([]string{"alice@example.com"}, s.notifier.changed)

	_, err = s.svc.Authenticate(s.ctx, "alice@example.com", "secret123")
	s.ErrorIs(err, ErrInvalidCredentials)
	_, err = s.svc.Authenticate(s.ctx, "alice@example.com", "newpass1")
	s.NoError(err)
}

func (s *authSuite) TestGetUserMissing() {
	_, err := s.svc.GetUser(s.ctx, 12345)
	s.ErrorIs(err, ErrNotFound)
}
