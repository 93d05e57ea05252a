package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/talkincode/selectshop/config"
)

func getDatabase(dbcfg config.DBConfig, workdir string) *gorm.DB {
	loglevel := logger.Silent
	if dbcfg.Debug {
		loglevel = logger.Info
	}
	gormConfig := &gorm.Config{Logger: logger.Default.LogMode(loglevel)}

	var db *gorm.DB
	var err error
	switch dbcfg.Type {
	case "sqlite":
		dbdir := filepath.Join(workdir, "data")
		if err := os.MkdirAll(dbdir, 0o755); err != nil {
			zap.S().Panicf("failed to create data dir: %v", err)
		}
		dsn := filepath.Join(dbdir, "selectshop.db")
		db, err = gorm.Open(sqlite.Open(dsn), gormConfig)
	default:
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=%s",
			dbcfg.Host, dbcfg.User, dbcfg.Passwd, dbcfg.Name, dbcfg.Port, time.Local.String())
		db, err = gorm.Open(postgres.Open(dsn), gormConfig)
	}
	if err != nil {
		zap.S().Panicf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		zap.S().Panicf("failed to get sql.DB: %v", err)
	}
	if dbcfg.MaxConn > 0 {
		sqlDB.SetMaxOpenConns(dbcfg.MaxConn)
	}
	if dbcfg.IdleConn > 0 {
		sqlDB.SetMaxIdleConns(dbcfg.IdleConn)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)
	return db
}
