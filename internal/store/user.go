package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/talkincode/selectshop/internal/domain"
)

// UserStore handles database operations for accounts
type UserStore interface {
	Create(ctx context.Context, user *domain.SysUser) error
	GetByID(ctx context.Context, id int64) (*domain.SysUser, error)
	GetByUsername(ctx context.Context, username string) (*domain.SysUser, error)
}

// GormUserStore is the GORM implementation of UserStore
type GormUserStore struct {
	db *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

func (r *GormUserStore) Create(ctx context.Context, user *domain.SysUser) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *GormUserStore) GetByID(ctx context.Context, id int64) (*domain.SysUser, error) {
	var user domain.SysUser
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserStore) GetByUsername(ctx context.Context, username string) (*domain.SysUser, error) {
	var user domain.SysUser
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
