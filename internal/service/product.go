package service

import (
	"context"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/talkincode/selectshop/internal/domain"
	"github.com/talkincode/selectshop/internal/search"
	"github.com/talkincode/selectshop/internal/store"
	"github.com/talkincode/selectshop/pkg/common"
)

// ProductService implements tracked-product operations: creation, target
// price updates, role-scoped listing and folder association.
type ProductService struct {
	products store.ProductStore
	folders  store.FolderStore
	links    store.ProductFolderStore
}

func NewProductService(products store.ProductStore, folders store.FolderStore, links store.ProductFolderStore) *ProductService {
	return &ProductService{products: products, folders: folders, links: links}
}

// CreateProduct registers a tracked product for the user. MyPrice stays
// at its zero default until the owner sets a target.
func (s *ProductService) CreateProduct(ctx context.Context, req ProductRequest, user *domain.SysUser) (*ProductResponse, error) {
	p := &domain.Product{
		ID:          common.UUIDint64(),
		UserID:      user.ID,
		Title:       req.Title,
		Image:       req.Image,
		Link:        req.Link,
		LowestPrice: req.Lprice,
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := NewProductResponse(p)
	return &resp, nil
}

// UpdateProduct sets the owner's target price. The threshold is checked
// before the lookup so an invalid price never touches the store.
func (s *ProductService) UpdateProduct(ctx context.Context, id int64, req MyPriceRequest) (*ProductResponse, error) {
	if req.MyPrice < MinMyPrice {
		return nil, ErrInvalidTargetPrice
	}

	p, err := s.products.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	} else if err != nil {
		return nil, err
	}

	if err := s.products.UpdateMyPrice(ctx, id, req.MyPrice); err != nil {
		return nil, err
	}

	p.MyPrice = req.MyPrice
	resp := NewProductResponse(p)
	return &resp, nil
}

// GetProducts returns one page of products. Plain users only see their
// own rows; admins see every owner's rows.
func (s *ProductService) GetProducts(ctx context.Context, user *domain.SysUser, q store.PageQuery) (*ProductPage, error) {
	rows, total, err := s.products.List(ctx, store.VisibilityFor(user), q)
	if err != nil {
		return nil, err
	}
	return newProductPage(rows, total, q), nil
}

// UpdateBySearch overwrites price, title, link and image from the given
// search item. Used only by the price refresh job.
func (s *ProductService) UpdateBySearch(ctx context.Context, id int64, item search.Item) error {
	_, err := s.products.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrProductNotFound
	} else if err != nil {
		return err
	}
	return s.products.UpdateSearchResult(ctx, id, item.Title, item.Link, item.Image, item.LowestPrice)
}

// AddFolder associates a product with a folder. Both must exist and both
// must be owned by the acting user; the pair must not already be linked.
func (s *ProductService) AddFolder(ctx context.Context, productID, folderID int64, user *domain.SysUser) error {
	p, err := s.products.GetByID(ctx, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrProductNotFound
	} else if err != nil {
		return err
	}

	f, err := s.folders.GetByID(ctx, folderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrFolderNotFound
	} else if err != nil {
		return err
	}

	if err := requireOwner(user, p.UserID); err != nil {
		return err
	}
	if err := requireOwner(user, f.UserID); err != nil {
		return err
	}

	exists, err := s.links.Exists(ctx, productID, folderID)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateAssociation
	}

	return s.links.Create(ctx, &domain.ProductFolder{
		ID:        common.UUIDint64(),
		ProductID: productID,
		FolderID:  folderID,
	})
}

// GetProductsInFolder returns one page of the user's products inside the
// folder. Folder listing is always owner-scoped, admins included.
func (s *ProductService) GetProductsInFolder(ctx context.Context, folderID int64, q store.PageQuery, user *domain.SysUser) (*ProductPage, error) {
	rows, total, err := s.products.ListInFolder(ctx, user.ID, folderID, q)
	if err != nil {
		return nil, err
	}
	return newProductPage(rows, total, q), nil
}

// FolderStats summarizes the current lowest prices of the user's
// products in the folder.
func (s *ProductService) FolderStats(ctx context.Context, folderID int64, user *domain.SysUser) (*FolderStats, error) {
	f, err := s.folders.GetByID(ctx, folderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFolderNotFound
	} else if err != nil {
		return nil, err
	}
	if err := requireOwner(user, f.UserID); err != nil {
		return nil, err
	}

	prices, err := s.products.PricesInFolder(ctx, user.ID, folderID)
	if err != nil {
		return nil, err
	}
	result := &FolderStats{Count: len(prices)}
	if len(prices) == 0 {
		return result, nil
	}
	result.Mean, _ = stats.Mean(prices)
	result.Min, _ = stats.Min(prices)
	result.Max, _ = stats.Max(prices)
	return result, nil
}
