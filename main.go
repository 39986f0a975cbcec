package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"expensetracker/config"
	"expensetracker/database"
	"expensetracker/logger"
	"expensetracker/middleware"
	"expensetracker/router"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// @title 个人记账系统
// @version 1.0
// @description 服务端渲染的个人记账应用：注册登录、消费记录、月度预算、仪表盘统计与导出
// @host localhost:5000
// @BasePath /
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name session

const version = "1.0.0"

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 5000 或 :5000")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("记账系统 v" + version)
		return
	}

	// .env 不存在时忽略
	_ = godotenv.Load()

	// 加载配置（内置配置 + 可选的外部配置覆盖）
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 命令行参数覆盖端口配置
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
	}

	zl, err := logger.Init(cfg.Log)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer logger.Sync()

	if cfg.Server.Mode == "release" && cfg.Session.Secret == "your-secret-key-change-later" {
		logger.Warn("session.secret 仍为默认值，请通过 EXPENSES_SESSION_SECRET 设置")
	}

	// 初始化数据库
	if err := database.Init(cfg, zl); err != nil {
		logger.Fatal("数据库初始化失败", zap.Error(err))
	}

	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		logger.Fatal("创建上传目录失败", zap.String("dir", cfg.Upload.Dir), zap.Error(err))
	}

	middleware.InitSession(cfg)

	r, err := router.SetupRouter(cfg, database.GetDB(), zl)
	if err != nil {
		logger.Fatal("初始化路由失败", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("记账系统已启动",
			zap.String("addr", cfg.Server.Port),
			zap.String("mode", cfg.Server.Mode),
			zap.String("base_url", cfg.Server.BaseURL),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("正在关闭服务器")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("服务器异常退出", zap.Error(err))
	}
	logger.Info("服务器已停止")
}
