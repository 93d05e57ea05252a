package store

import (
	"gorm.io/gorm"

	"github.com/talkincode/selectshop/internal/domain"
)

// Scope narrows a listing query to the rows the caller is allowed to see.
// It is passed into the store layer so authorization stays out of the SQL
// built by individual store methods.
type Scope func(tx *gorm.DB) *gorm.DB

// OwnedBy restricts a query to rows belonging to the given user.
func OwnedBy(userID int64) Scope {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("user_id = ?", userID)
	}
}

// Unrestricted applies no owner filter.
func Unrestricted() Scope {
	return func(tx *gorm.DB) *gorm.DB {
		return tx
	}
}

// VisibilityFor returns the listing scope for an account: admins see all
// rows, everyone else only their own.
func VisibilityFor(user *domain.SysUser) Scope {
	if user.IsAdmin() {
		return Unrestricted()
	}
	return OwnedBy(user.ID)
}
