package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/talkincode/selectshop/internal/domain"
	"github.com/talkincode/selectshop/internal/store"
	"github.com/talkincode/selectshop/pkg/common"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(domain.Tables...))
	return db
}

func newTestServices(t *testing.T) (*ProductService, *FolderService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	products := store.NewGormProductStore(db)
	folders := store.NewGormFolderStore(db)
	links := store.NewGormProductFolderStore(db)
	return NewProductService(products, folders, links), NewFolderService(folders), db
}

func testUser(level string) *domain.SysUser {
	return &domain.SysUser{
		ID:       common.UUIDint64(),
		Username: common.UUID(),
		Level:    level,
		Status:   common.ENABLED,
	}
}

func seedProduct(t *testing.T, db *gorm.DB, userID int64, title string, lprice, myprice int) *domain.Product {
	t.Helper()
	p := &domain.Product{
		ID:          common.UUIDint64(),
		UserID:      userID,
		Title:       title,
		Link:        "https://shop.example.com/" + title,
		LowestPrice: lprice,
		MyPrice:     myprice,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedFolder(t *testing.T, db *gorm.DB, userID int64, name string) *domain.Folder {
	t.Helper()
	f := &domain.Folder{
		ID:     common.UUIDint64(),
		UserID: userID,
		Name:   name,
	}
	require.NoError(t, db.Create(f).Error)
	return f
}

func linkProductFolder(t *testing.T, db *gorm.DB, productID, folderID int64) {
	t.Helper()
	require.NoError(t, db.Create(&domain.ProductFolder{
		ID:        common.UUIDint64(),
		ProductID: productID,
		FolderID:  folderID,
	}).Error)
}

var testCtx = context.Background()
