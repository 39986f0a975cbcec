package api

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"expensetracker/config"
	"expensetracker/database"
	"expensetracker/middleware"
	"expensetracker/models"
	"expensetracker/web"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB 使用 sqlmock 驱动的 MySQL 方言，用于校验具体 SQL
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	return gormDB, mock, func() {
		sqlDB.Close()
	}
}

// setupSQLite 内存 SQLite，每个测试独立
func setupSQLite(t *testing.T) *gorm.DB {
	db, err := database.Open(config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"}, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func initTestConfig(t *testing.T) {
	cfg := &config.Config{
		Server:  config.ServerConfig{Mode: "debug"},
		Session: config.SessionConfig{Secret: "test-secret", CookieName: "session", ExpireTime: time.Hour},
	}
	config.GlobalConfig = cfg
	middleware.InitSession(cfg)
	t.Cleanup(func() { config.GlobalConfig = nil })
}

// staticUsers 会话中间件使用的固定用户表，避免额外的 SQL
type staticUsers map[uint]*models.User

func (s staticUsers) GetUser(_ context.Context, id uint) (*models.User, error) {
	if u, ok := s[id]; ok {
		return u, nil
	}
	return nil, errors.New("not found")
}

func newTestEngine(t *testing.T, users middleware.UserLoader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	tmpl, err := web.Templates()
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(middleware.LoadSession(users))
	return r
}

func sessionCookie(t *testing.T, userID uint) *http.Cookie {
	token, err := middleware.GenerateToken(userID, time.Hour)
	require.NoError(t, err)
	return &http.Cookie{Name: "session", Value: token}
}

func postForm(r http.Handler, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// flashes 解析响应写入的最后一个提示 Cookie
func flashes(t *testing.T, w *httptest.ResponseRecorder) []middleware.Flash {
	t.Helper()
	var raw string
	for _, c := range w.Result().Cookies() {
		if c.Name == "flash" {
			raw = c.Value
		}
	}
	if raw == "" {
		return nil
	}
	data, err := base64.RawURLEncoding.DecodeString(raw)
	require.NoError(t, err)
	var out []middleware.Flash
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
