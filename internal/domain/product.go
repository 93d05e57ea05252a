package domain

import "time"

// Product is a user's tracked item of interest. LowestPrice mirrors the
// latest external search result; MyPrice is the owner's target price and
// stays 0 until the owner sets it.
type Product struct {
	ID          int64     `json:"id,string" form:"id"`
	UserID      int64     `gorm:"index" json:"user_id,string" form:"user_id"`
	Title       string    `gorm:"index" json:"title" form:"title"`
	Image       string    `gorm:"size:1024" json:"image" form:"image"` // URL to product image
	Link        string    `gorm:"size:1024" json:"link" form:"link"`   // URL to the shop page
	LowestPrice int       `json:"lowest_price" form:"lowest_price"`
	MyPrice     int       `json:"my_price" form:"my_price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "shop_product"
}
