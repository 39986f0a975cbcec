package service

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type expenseSuite struct {
	storeSuite
	svc *ExpenseService
}

func TestExpenseService(t *testing.T) {
	suite.Run(t, new(expenseSuite))
}

func (s *expenseSuite) SetupTest() {
	s.storeSuite.SetupTest()
	s.svc = NewExpenseService(s.db)
}

func (s *expenseSuite) TestCreateThenList() {
	user := s.createUser("a@example.com")
	in, err := ParseExpenseForm(ExpenseForm{
		Amount:      "12.50",
		Category:    "Food",
		Merchant:    "Cafe",
		Description: "lunch",
		Date:        "2024-03-05",
	})
	s.Require().NoError(err)

	created, err := s.svc.Create(s.ctx, user.ID, in)
	s.Require().NoError(err)
	s.NotZero(created.ID)

	list, err := s.svc.List(s.ctx, user.ID, ListFilter{})
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(12.5, list[0].Amount)
	s.Equal("Food", list[0].Category)
	s.Equal("Cafe", list[0].Merchant)
	s.Equal("lunch", list[0].Description)
	s.Equal("2024-03-05", list[0].DateString())
}

func (s *expenseSuite) TestListOnlyOwnRowsNewestFirst() {
	alice := s.createUser("alice@example.com")
	bob := s.createUser("bob@example.com")
	s.createExpense(alice.ID, 10, "Food", "2024-01-01")
	s.createExpense(alice.ID, 20, "Bills", "2024-02-01")
	s.createExpense(bob.ID, 30, "Food", "2024-01-15")

	list, err := s.svc.List(s.ctx, alice.ID, ListFilter{})
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("2024-02-01", list[0].DateString())
	s.Equal("2024-01-01", list[1].DateString())
}

func (s *expenseSuite) TestListYearAndMonthAreIndependent() {
	user := s.createUser("a@example.com")
	s.createExpense(user.ID, 1, "Food", "2023-03-10")
	s.createExpense(user.ID, 2, "Food", "2024-03-10")
	s.createExpense(user.ID, 3, "Food", "2024-04-10")

	byYear, err := s.svc.List(s.ctx, user.ID, ListFilter{Year: 2024})
	s.Require().NoError(err)
	s.Len(byYear, 2)

	byMonth, err := s.svc.List(s.ctx, user.ID, ListFilter{Month: 3})
	s.Require().NoError(err)
	s.Len(byMonth, 2)

	both, err := s.svc.List(s.ctx, user.ID, ListFilter{Year: 2024, Month: 3})
	s.Require().NoError(err)
	s.Require().Len(both, 1)
	s.Equal(2.0, both[0].Amount)
}

func (s *expenseSuite) TestListRangeTakesPrecedence() {
	user := s.createUser("a@example.com")
	s.createExpense(user.ID, 1, "Food", "2024-01-01")
	s.createExpense(user.ID, 2, "Food", "2024-01-31")
	s.createExpense(user.ID, 3, "Food", "2024-02-01")
	s.createExpense(user.ID, 4, "Food", "2023-01-15")

	filter, err := ParseListQuery(ListQuery{StartDate: "2024-01-01", EndDate: "2024-01-31", Year: "2023", Month: "1"})
	s.Require().NoError(err)

	list, err := s.svc.List(s.ctx, user.ID, filter)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(2.0, list[0].Amount)
	s.Equal(1.0, list[1].Amount)
}

func (s *expenseSuite) TestUpdateOverwritesFields() {
	user := s.createUser("a@example.com")
	expense := s.createExpense(user.ID, 5, "Food", "2024-01-01")
	s.Require().NoError(s.db.Model(expense).Update("receipt_url", "abc_receipt.png").Error)

	in, err := ParseExpenseForm(ExpenseForm{Amount: "7.25", Category: "Transport", Date: "2024-01-02"})
	s.Require().NoError(err)

	updated, err := s.svc.Update(s.ctx, user.ID, expense.ID, in)
	s.Require().NoError(err)
	s.Equal(7.25, updated.Amount)

	got, err := s.svc.LoadOwned(s.ctx, user.ID, expense.ID)
	s.Require().NoError(err)
	s.Equal("Transport", got.Category)
	s.Equal("", got.Merchant)
	s.Equal("2024-01-02", got.DateString())
	s.Equal("abc_receipt.png", got.ReceiptURL)
}

func (s *expenseSuite) TestCrossUserUpdateAndDeleteForbidden() {
	owner := s.createUser("owner@example.com")
	other := s.createUser("other@example.com")
	expense := s.createExpense(owner.ID, 42, "Food", "2024-01-01")

	in, err := ParseExpenseForm(ExpenseForm{Amount: "1", Category: "Hacked", Date: "2020-01-01"})
	s.Require().NoError(err)

	_, err = s.svc.Update(s.ctx, other.ID, expense.ID, in)
	s.ErrorIs(err, ErrForbidden)
	s.ErrorIs(s.svc.Delete(s.ctx, other.ID, expense.ID), ErrForbidden)

	got, err := s.svc.LoadOwned(s.ctx, owner.ID, expense.ID)
	s.Require().NoError(err)
	s.Equal(42.0, got.Amount)
	s.Equal("Food", got.Category)
	s.Equal("2024-01-01", got.DateString())
}

func (s *expenseSuite) TestMissingExpense() {
	user := s.createUser("a@example.com")
	_, err := s.svc.LoadOwned(s.ctx, user.ID, 999)
	s.ErrorIs(err, ErrNotFound)
	s.ErrorIs(s.svc.Delete(s.ctx, user.ID, 999), ErrNotFound)
}

func (s *expenseSuite) TestDeleteRemovesRow() {
	user := s.createUser("a@example.com")
	expense := s.createExpense(user.ID, 5, "Food", "2024-01-01")

	s.Require().NoError(s.svc.Delete(s.ctx, user.ID, expense.ID))

	_, err := s.svc.LoadOwned(s.ctx, user.ID, expense.ID)
	s.ErrorIs(err, ErrNotFound)
}

func (s *expenseSuite) TestYearsDistinctDescending() {
	user := s.createUser("a@example.com")
	other := s.createUser("b@example.com")
	s.createExpense(user.ID, 1, "Food", "2022-05-01")
	s.createExpense(user.ID, 1, "Food", "2024-05-01")
	s.createExpense(user.ID, 1, "Food", "2024-06-01")
	s.createExpense(other.ID, 1, "Food", "2019-06-01")

	years, err := s.svc.Years(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal([]int{2024, 2022}, years)
}
