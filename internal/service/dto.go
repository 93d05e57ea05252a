package service

import (
	"github.com/talkincode/selectshop/internal/domain"
	"github.com/talkincode/selectshop/internal/store"
)

type ProductRequest struct {
	Title  string `json:"title" validate:"required,max=200"`
	Image  string `json:"image"`
	Link   string `json:"link"`
	Lprice int    `json:"lprice"`
}

type MyPriceRequest struct {
	MyPrice int `json:"myprice"`
}

type ProductResponse struct {
	ID          int64  `json:"id,string"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	Link        string `json:"link"`
	LowestPrice int    `json:"lprice"`
	MyPrice     int    `json:"myprice"`
}

func NewProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Image:       p.Image,
		Link:        p.Link,
		LowestPrice: p.LowestPrice,
		MyPrice:     p.MyPrice,
	}
}

type FolderRequest struct {
	FolderNames []string `json:"folderNames" validate:"required,min=1,dive,required"`
}

type FolderResponse struct {
	ID   int64  `json:"id,string"`
	Name string `json:"name"`
}

func NewFolderResponse(f *domain.Folder) FolderResponse {
	return FolderResponse{ID: f.ID, Name: f.Name}
}

// ProductPage mirrors the store page metadata one to one.
type ProductPage struct {
	Items      []ProductResponse `json:"items"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"` // zero-based
	Size       int               `json:"size"`
	TotalPages int               `json:"total_pages"`
}

func newProductPage(rows []domain.Product, total int64, q store.PageQuery) *ProductPage {
	items := make([]ProductResponse, 0, len(rows))
	for i := range rows {
		items = append(items, NewProductResponse(&rows[i]))
	}
	size := q.Limit()
	pages := int(total) / size
	if int(total)%size > 0 {
		pages++
	}
	page := q.Page
	if page < 0 {
		page = 0
	}
	return &ProductPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: pages,
	}
}

// FolderStats summarizes the current prices inside one folder.
type FolderStats struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}
