package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/talkincode/selectshop/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(domain.Tables...))
	return db
}

func TestProductSortColumnWhitelist(t *testing.T) {
	assert.Equal(t, "lowest_price", productSortColumn("lprice"))
	assert.Equal(t, "my_price", productSortColumn("myprice"))
	assert.Equal(t, "title", productSortColumn("title"))
	// anything outside the whitelist falls back to id
	assert.Equal(t, "id", productSortColumn("id; drop table shop_product"))
	assert.Equal(t, "id", productSortColumn(""))
}

func TestListSortedByPrice(t *testing.T) {
	db := newTestDB(t)
	r := NewGormProductStore(db)
	ctx := context.Background()

	for i, price := range []int{300, 100, 200} {
		require.NoError(t, r.Create(ctx, &domain.Product{
			ID:          int64(i + 1),
			UserID:      7,
			Title:       "item",
			LowestPrice: price,
		}))
	}

	rows, total, err := r.List(ctx, OwnedBy(7), PageQuery{SortBy: "lprice", Asc: true})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, rows, 3)
	assert.Equal(t, 100, rows[0].LowestPrice)
	assert.Equal(t, 300, rows[2].LowestPrice)
}

func TestListInFolderJoin(t *testing.T) {
	db := newTestDB(t)
	r := NewGormProductStore(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &domain.Product{ID: 1, UserID: 7, Title: "inside"}))
	require.NoError(t, r.Create(ctx, &domain.Product{ID: 2, UserID: 7, Title: "outside"}))
	require.NoError(t, db.Create(&domain.ProductFolder{ID: 1, ProductID: 1, FolderID: 42}).Error)

	rows, total, err := r.ListInFolder(ctx, 7, 42, PageQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "inside", rows[0].Title)
}

func TestVisibilityScope(t *testing.T) {
	db := newTestDB(t)
	r := NewGormProductStore(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &domain.Product{ID: 1, UserID: 1, Title: "a"}))
	require.NoError(t, r.Create(ctx, &domain.Product{ID: 2, UserID: 2, Title: "b"}))

	admin := &domain.SysUser{ID: 9, Level: domain.RoleAdmin}
	plain := &domain.SysUser{ID: 1, Level: domain.RoleUser}

	_, total, err := r.List(ctx, VisibilityFor(admin), PageQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	_, total, err = r.List(ctx, VisibilityFor(plain), PageQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}
