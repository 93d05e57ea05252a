package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/talkincode/selectshop/internal/domain"
)

// ProductFolderStore handles the product/folder join records
type ProductFolderStore interface {
	// Create inserts a new association
	Create(ctx context.Context, link *domain.ProductFolder) error

	// Exists reports whether an association already exists for the pair
	Exists(ctx context.Context, productID, folderID int64) (bool, error)
}

// GormProductFolderStore is the GORM implementation of ProductFolderStore
type GormProductFolderStore struct {
	db *gorm.DB
}

func NewGormProductFolderStore(db *gorm.DB) *GormProductFolderStore {
	return &GormProductFolderStore{db: db}
}

func (r *GormProductFolderStore) Create(ctx context.Context, link *domain.ProductFolder) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *GormProductFolderStore) Exists(ctx context.Context, productID, folderID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.ProductFolder{}).
		Where("product_id = ? AND folder_id = ?", productID, folderID).
		Count(&count).Error
	return count > 0, err
}
