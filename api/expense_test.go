package api

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"expensetracker/middleware"
	"expensetracker/models"
	"expensetracker/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var expenseColumns = []string{"id", "user_id", "amount", "category", "merchant", "description", "date", "receipt_url", "created_at", "updated_at"}

func expenseRoutes(r *gin.Engine, h *ExpenseHandler) {
	r.GET("/add-expense", h.AddPage)
	r.POST("/add-expense", h.Add)
	r.GET("/expense/:id/edit", h.EditPage)
	r.POST("/expense/:id/edit", h.Edit)
	r.POST("/expense/:id/delete", h.Delete)
	r.GET("/expenses", h.List)
}

func TestExpenseHandler_EditPage_Forbidden(t *testing.T) {
	initTestConfig(t)
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 记录属于用户 2
	mock.ExpectQuery("SELECT \\* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows(expenseColumns).
			AddRow(5, 2, 42.0, "Food", "", "", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "", time.Now(), time.Now()))

	r := newTestEngine(t, staticUsers{1: &models.User{ID: 1}})
	expenseRoutes(r, NewExpenseHandler(service.NewExpenseService(db)))

	w := get(r, "/expense/5/edit", sessionCookie(t, 1))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	assert.Equal(t, []middleware.Flash{{Category: "error", Message: "You are not allowed to edit this expense."}}, flashes(t, w))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Delete_Forbidden(t *testing.T) {
	initTestConfig(t)
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows(expenseColumns).
			AddRow(5, 2, 42.0, "Food", "", "", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "", time.Now(), time.Now()))
	// 不执行 DELETE，事务回滚
	mock.ExpectRollback()

	r := newTestEngine(t, staticUsers{1: &models.User{ID: 1}})
	expenseRoutes(r, NewExpenseHandler(service.NewExpenseService(db)))

	w := postForm(r, "/expense/5/delete", url.Values{}, sessionCookie(t, 1))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "You are not allowed to delete this expense.", flashes(t, w)[0].Message)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_NotFound(t *testing.T) {
	initTestConfig(t)
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows(expenseColumns))

	r := newTestEngine(t, staticUsers{1: &models.User{ID: 1}})
	expenseRoutes(r, NewExpenseHandler(service.NewExpenseService(db)))

	w := get(r, "/expense/99/edit", sessionCookie(t, 1))
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	assert.Equal(t, "Expense not found.", flashes(t, w)[0].Message)

	// 非法 ID 不访问数据库
	w = get(r, "/expense/abc/edit", sessionCookie(t, 1))
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Add_Invalid(t *testing.T) {
	initTestConfig(t)
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	r := newTestEngine(t, staticUsers{1: &models.User{ID: 1}})
	expenseRoutes(r, NewExpenseHandler(service.NewExpenseService(db)))

	w := postForm(r, "/add-expense", url.Values{"amount": {"abc"}, "category": {"Food"}, "date": {"2024-01-01"}}, sessionCookie(t, 1))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/add-expense", w.Header().Get("Location"))
	assert.Equal(t, []middleware.Flash{{Category: "error", Message: "Amount must be a number"}}, flashes(t, w))

	w = postForm(r, "/add-expense", url.Values{"amount": {"5"}, "category": {"Food"}, "date": {"2024/01/01"}}, sessionCookie(t, 1))
	assert.Equal(t, "Date must be in YYYY-MM-DD format", flashes(t, w)[0].Message)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_AddEditList(t *testing.T) {
	initTestConfig(t)
	db := setupSQLite(t)
	ctx := context.Background()
	user := &models.User{Name: "Ada", Email: "ada@example.com", Password: "x"}
	require.NoError(t, db.Create(user).Error)
	cookie := sessionCookie(t, user.ID)

	svc := service.NewExpenseService(db)
	r := newTestEngine(t, staticUsers{user.ID: user})
	expenseRoutes(r, NewExpenseHandler(svc))

	page := get(r, "/add-expense", cookie)
	assert.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), `name="amount"`)

	w := postForm(r, "/add-expense", url.Values{
		"amount": {"12.5"}, "category": {"Food"}, "merchant": {"Cafe"}, "description": {"lunch"}, "date": {"2024-03-05"},
	}, cookie)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	assert.Equal(t, "Expense added successfully!", flashes(t, w)[0].Message)

	list, err := svc.List(ctx, user.ID, service.ListFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	id := list[0].ID

	edit := get(r, "/expense/"+itoa(id)+"/edit", cookie)
	assert.Equal(t, http.StatusOK, edit.Code)
	assert.Contains(t, edit.Body.String(), `value="12.50"`)
	assert.Contains(t, edit.Body.String(), `value="2024-03-05"`)

	w = postForm(r, "/expense/"+itoa(id)+"/edit", url.Values{
		"amount": {"20"}, "category": {"Bills"}, "date": {"2024-04-01"},
	}, cookie)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	got, err := svc.LoadOwned(ctx, user.ID, id)
	require.NoError(t, err)
	assert.Equal(t, 20.0, got.Amount)
	assert.Equal(t, "Bills", got.Category)
	assert.Equal(t, "", got.Merchant)

	// 区间优先于年份
	body := get(r, "/expenses?start_date=2024-04-01&end_date=2024-04-30&year=1999", cookie).Body.String()
	assert.Contains(t, body, "Bills")
	body = get(r, "/expenses?year=1999", cookie).Body.String()
	assert.NotContains(t, body, "<td>Bills</td>")

	w = get(r, "/expenses?month=13", cookie)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "Invalid month", flashes(t, w)[0].Message)

	w = postForm(r, "/expense/"+itoa(id)+"/delete", url.Values{}, cookie)
	assert.Equal(t, "Expense deleted successfully!", flashes(t, w)[0].Message)
	_, err = svc.LoadOwned(ctx, user.ID, id)
	assert.ErrorIs(t, err, service.ErrNotFound)
}
