package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/talkincode/selectshop/internal/domain"
)

// FolderStore handles database operations for folders
type FolderStore interface {
	// CreateAll inserts folders in one batch
	CreateAll(ctx context.Context, folders []*domain.Folder) error

	// GetByID retrieves a folder by ID
	GetByID(ctx context.Context, id int64) (*domain.Folder, error)

	// ListByUser retrieves all folders owned by userID
	ListByUser(ctx context.Context, userID int64) ([]domain.Folder, error)

	// ListByUserAndNames retrieves the user's folders whose name is in names
	ListByUserAndNames(ctx context.Context, userID int64, names []string) ([]domain.Folder, error)
}

// GormFolderStore is the GORM implementation of FolderStore
type GormFolderStore struct {
	db *gorm.DB
}

func NewGormFolderStore(db *gorm.DB) *GormFolderStore {
	return &GormFolderStore{db: db}
}

func (r *GormFolderStore) CreateAll(ctx context.Context, folders []*domain.Folder) error {
	if len(folders) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(folders).Error
}

func (r *GormFolderStore) GetByID(ctx context.Context, id int64) (*domain.Folder, error) {
	var folder domain.Folder
	err := r.db.WithContext(ctx).First(&folder, id).Error
	if err != nil {
		return nil, err
	}
	return &folder, nil
}

func (r *GormFolderStore) ListByUser(ctx context.Context, userID int64) ([]domain.Folder, error) {
	var rows []domain.Folder
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *GormFolderStore) ListByUserAndNames(ctx context.Context, userID int64, names []string) ([]domain.Folder, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var rows []domain.Folder
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND name IN ?", userID, names).
		Find(&rows).Error
	return rows, err
}
