package service

import (
	"context"
	"testing"
	"time"

	"expensetracker/config"
	"expensetracker/database"
	"expensetracker/models"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// storeSuite 每个用例使用独立的内存 SQLite
type storeSuite struct {
	suite.Suite
	db  *gorm.DB
	ctx context.Context
}

func (s *storeSuite) SetupTest() {
	db, err := database.Open(config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"}, nil)
	s.Require().NoError(err)
	s.db = db
	s.ctx = context.Background()
}

func (s *storeSuite) TearDownTest() {
	if sqlDB, err := s.db.DB(); err == nil {
		sqlDB.Close()
	}
}

func (s *storeSuite) createUser(email string) *models.User {
	user := models.User{Name: "Test", Email: email, Password: "x"}
	s.Require().NoError(s.db.Create(&user).Error)
	return &user
}

func (s *storeSuite) createExpense(userID uint, amount float64, category, date string) *models.Expense {
	d, err := time.Parse(models.DateLayout, date)
	s.Require().NoError(err)
	expense := models.Expense{UserID: userID, Amount: amount, Category: category, Date: d}
	s.Require().NoError(s.db.Create(&expense).Error)
	return &expense
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(models.DateLayout, s)
	require.NoError(t, err)
	return d
}

func fixedClock(s string) func() time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}
