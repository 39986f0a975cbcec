package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"expensetracker/config"
	"expensetracker/models"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init 初始化数据库连接并保存到全局 DB
func Init(cfg *config.Config, log *zap.Logger) error {
	db, err := Open(cfg.Database, gormLogger(cfg.Server.Mode, log))
	if err != nil {
		return err
	}
	DB = db
	log.Info("数据库初始化成功", zap.String("database", cfg.Database.DSNSummary()))
	return nil
}

// Open 按驱动打开数据库并自动迁移表结构
func Open(cfg config.DatabaseConfig, gl logger.Interface) (*gorm.DB, error) {
	dialector, err := newDialector(cfg)
	if err != nil {
		return nil, err
	}
	if gl == nil {
		gl = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gl,
		// 唯一索引冲突翻译为 gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.Driver == "mysql" {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	} else {
		// SQLite 单写者；内存库每个连接都是独立的库
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("迁移数据表失败: %w", err)
	}
	return db, nil
}

// Migrate 自动迁移数据库表
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Expense{},
		&models.Budget{},
	)
}

func newDialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "", "sqlite":
		path := cfg.Path
		if path == "" {
			path = "expenses.db"
		}
		if path != ":memory:" {
			if dir := filepath.Dir(path); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return nil, fmt.Errorf("创建数据库目录失败: %w", err)
				}
			}
		}
		return sqlite.Open(path), nil
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=UTC",
			cfg.Username,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
			cfg.Charset,
		)
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", cfg.Driver)
	}
}

// gormLogger 将 gorm 的 SQL 日志写入 zap；debug 模式输出全部 SQL
func gormLogger(mode string, log *zap.Logger) logger.Interface {
	level := logger.Warn
	if mode == "debug" {
		level = logger.Info
	}
	return logger.New(zap.NewStdLog(log.Named("gorm")), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}

// GetDB 获取数据库连接
func GetDB() *gorm.DB {
	return DB
}
