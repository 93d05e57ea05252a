package domain

import "time"

// Folder is a user-defined named grouping of tracked products.
// Name is unique per owner, case-sensitive.
type Folder struct {
	ID        int64     `json:"id,string" form:"id"`
	UserID    int64     `gorm:"index;uniqueIndex:idx_folder_owner_name" json:"user_id,string" form:"user_id"`
	Name      string    `gorm:"uniqueIndex:idx_folder_owner_name" json:"name" form:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName Specify table name
func (Folder) TableName() string {
	return "shop_folder"
}

// ProductFolder joins a product to a folder. At most one row may exist
// per (product, folder) pair.
type ProductFolder struct {
	ID        int64     `json:"id,string" form:"id"`
	ProductID int64     `gorm:"index;uniqueIndex:idx_product_folder" json:"product_id,string" form:"product_id"`
	FolderID  int64     `gorm:"index;uniqueIndex:idx_product_folder" json:"folder_id,string" form:"folder_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName Specify table name
func (ProductFolder) TableName() string {
	return "shop_product_folder"
}
