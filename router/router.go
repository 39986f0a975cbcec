package router

import (
	"net/http"

	"expensetracker/api"
	"expensetracker/config"
	_ "expensetracker/docs"
	"expensetracker/middleware"
	"expensetracker/service"
	"expensetracker/web"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, db *gorm.DB, log *zap.Logger) (*gin.Engine, error) {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics())

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)
	// multipart 表单超过该大小的部分写入临时文件
	r.MaxMultipartMemory = 8 << 20

	// 邮件未启用时不发送通知
	var notifier service.Notifier
	if cfg.Email.Enabled {
		notifier = service.NewEmailService(&cfg.Email, cfg.Server.BaseURL)
	}

	authService := service.NewAuthService(db, notifier, log)
	expenseService := service.NewExpenseService(db)
	budgetService := service.NewBudgetService(db)
	dashboardService := service.NewDashboardService(db)
	receiptService := service.NewReceiptService(cfg.Upload.Dir, cfg.Upload.MaxUploadBytes())

	authHandler := api.NewAuthHandler(authService)
	expenseHandler := api.NewExpenseHandler(expenseService)
	exportHandler := api.NewExportHandler(expenseService)
	budgetHandler := api.NewBudgetHandler(budgetService)
	dashboardHandler := api.NewDashboardHandler(dashboardService)
	profileHandler := api.NewProfileHandler(authService)
	receiptHandler := api.NewReceiptHandler(receiptService, cfg.Upload.MaxUploadBytes())

	// 健康检查与指标
	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			api.Error(c, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		api.Success(c, gin.H{"status": "ok"})
	})
	r.GET("/metrics", middleware.MetricsHandler())

	// Swagger 文档仅在 debug 模式开放
	if cfg.Server.Mode == gin.DebugMode {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	pages := r.Group("")
	pages.Use(middleware.LoadSession(authService))
	{
		pages.GET("/", authHandler.Index)
		pages.GET("/login", authHandler.LoginPage)
		pages.POST("/login", middleware.LoginRateLimit(cfg.Session.LoginMaxAttempts, cfg.Session.LoginWindow), authHandler.Login)
		pages.GET("/register", authHandler.RegisterPage)
		pages.POST("/register", authHandler.Register)

		// 需要登录的页面
		authorized := pages.Group("")
		authorized.Use(middleware.RequireLogin())
		{
			authorized.GET("/logout", authHandler.Logout)
			authorized.GET("/dashboard", dashboardHandler.Show)

			authorized.GET("/add-expense", expenseHandler.AddPage)
			authorized.POST("/add-expense", expenseHandler.Add)
			authorized.GET("/expense/:id/edit", expenseHandler.EditPage)
			authorized.POST("/expense/:id/edit", expenseHandler.Edit)
			authorized.POST("/expense/:id/delete", expenseHandler.Delete)
			authorized.GET("/expenses", expenseHandler.List)
			authorized.GET("/expenses/export", exportHandler.Export)

			authorized.GET("/budget", budgetHandler.Page)
			authorized.POST("/budget", budgetHandler.Set)

			authorized.GET("/profile", profileHandler.Page)
			authorized.POST("/update-profile", profileHandler.Update)
			authorized.POST("/change-password", profileHandler.ChangePassword)

			authorized.GET("/scan-receipt", receiptHandler.Page)
			authorized.POST("/scan-receipt", receiptHandler.Scan)
		}
	}

	return r, nil
}
