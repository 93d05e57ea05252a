package service

import (
	"github.com/pkg/errors"

	"github.com/talkincode/selectshop/internal/domain"
)

// MinMyPrice is the smallest target price an owner may set.
const MinMyPrice = 100

var (
	ErrInvalidTargetPrice   = errors.Errorf("target price must be at least %d", MinMyPrice)
	ErrProductNotFound      = errors.New("product not found")
	ErrFolderNotFound       = errors.New("folder not found")
	ErrNotOwner             = errors.New("not owned by the current user")
	ErrDuplicateFolderName  = errors.New("duplicate folder name")
	ErrDuplicateAssociation = errors.New("product is already in the folder")
)

// requireOwner is the single ownership predicate shared by product and
// folder checks.
func requireOwner(user *domain.SysUser, ownerID int64) error {
	if user.ID != ownerID {
		return ErrNotOwner
	}
	return nil
}
