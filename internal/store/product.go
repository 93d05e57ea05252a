package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/talkincode/selectshop/internal/domain"
)

// whitelist of sortable columns to avoid SQL injection; request keys map
// to real column names
var productSortColumns = map[string]string{
	"id":         "id",
	"title":      "title",
	"lprice":     "lowest_price",
	"myprice":    "my_price",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

func productSortColumn(sortBy string) string {
	if col, ok := productSortColumns[sortBy]; ok {
		return col
	}
	return "id"
}

// ProductStore handles database operations for tracked products
type ProductStore interface {
	// Create inserts a new product
	Create(ctx context.Context, product *domain.Product) error

	// GetByID retrieves a product by ID
	GetByID(ctx context.Context, id int64) (*domain.Product, error)

	// UpdateMyPrice updates only the owner's target price
	UpdateMyPrice(ctx context.Context, id int64, myPrice int) error

	// UpdateSearchResult overwrites title, link, image and lowest price
	// from an external search item
	UpdateSearchResult(ctx context.Context, id int64, title, link, image string, lowestPrice int) error

	// List retrieves a page of products visible through scope
	List(ctx context.Context, scope Scope, q PageQuery) ([]domain.Product, int64, error)

	// ListInFolder retrieves a page of the user's products associated with folderID
	ListInFolder(ctx context.Context, userID, folderID int64, q PageQuery) ([]domain.Product, int64, error)

	// ListAll retrieves every product row, used by the price refresh job
	ListAll(ctx context.Context) ([]domain.Product, error)

	// PricesInFolder returns the lowest prices of the user's products in folderID
	PricesInFolder(ctx context.Context, userID, folderID int64) ([]float64, error)
}

// GormProductStore is the GORM implementation of ProductStore
type GormProductStore struct {
	db *gorm.DB
}

func NewGormProductStore(db *gorm.DB) *GormProductStore {
	return &GormProductStore{db: db}
}

func (r *GormProductStore) Create(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *GormProductStore) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductStore) UpdateMyPrice(ctx context.Context, id int64, myPrice int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&domain.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
			"my_price":   myPrice,
			"updated_at": time.Now(),
		}).Error
	})
}

func (r *GormProductStore) UpdateSearchResult(ctx context.Context, id int64, title, link, image string, lowestPrice int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&domain.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
			"title":        title,
			"link":         link,
			"image":        image,
			"lowest_price": lowestPrice,
			"updated_at":   time.Now(),
		}).Error
	})
}

func (r *GormProductStore) List(ctx context.Context, scope Scope, q PageQuery) ([]domain.Product, int64, error) {
	base := scope(r.db.WithContext(ctx).Model(&domain.Product{}))

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []domain.Product
	order := fmt.Sprintf("%s %s", productSortColumn(q.SortBy), q.Direction())
	err := base.Order(order).Offset(q.Offset()).Limit(q.Limit()).Find(&rows).Error
	return rows, total, err
}

func (r *GormProductStore) ListInFolder(ctx context.Context, userID, folderID int64, q PageQuery) ([]domain.Product, int64, error) {
	base := r.db.WithContext(ctx).Model(&domain.Product{}).
		Joins("JOIN shop_product_folder pf ON pf.product_id = shop_product.id").
		Where("shop_product.user_id = ? AND pf.folder_id = ?", userID, folderID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []domain.Product
	order := fmt.Sprintf("shop_product.%s %s", productSortColumn(q.SortBy), q.Direction())
	err := base.Order(order).Offset(q.Offset()).Limit(q.Limit()).Find(&rows).Error
	return rows, total, err
}

func (r *GormProductStore) ListAll(ctx context.Context) ([]domain.Product, error) {
	var rows []domain.Product
	err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *GormProductStore) PricesInFolder(ctx context.Context, userID, folderID int64) ([]float64, error) {
	var prices []float64
	err := r.db.WithContext(ctx).Model(&domain.Product{}).
		Joins("JOIN shop_product_folder pf ON pf.product_id = shop_product.id").
		Where("shop_product.user_id = ? AND pf.folder_id = ?", userID, folderID).
		Pluck("shop_product.lowest_price", &prices).Error
	return prices, err
}
