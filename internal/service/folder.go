package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/talkincode/selectshop/internal/domain"
	"github.com/talkincode/selectshop/internal/store"
	"github.com/talkincode/selectshop/pkg/common"
)

// FolderService creates and lists a user's folders.
type FolderService struct {
	folders store.FolderStore
}

func NewFolderService(folders store.FolderStore) *FolderService {
	return &FolderService{folders: folders}
}

// AddFolders creates all named folders for the user in one batch. If any
// candidate name collides with an existing folder of the same user the
// whole call fails before anything is persisted.
func (s *FolderService) AddFolders(ctx context.Context, names []string, user *domain.SysUser) ([]FolderResponse, error) {
	exist, err := s.folders.ListByUserAndNames(ctx, user.ID, names)
	if err != nil {
		return nil, err
	}

	newFolders := make([]*domain.Folder, 0, len(names))
	for _, name := range names {
		if containsFolderName(exist, name) {
			return nil, errors.Wrap(ErrDuplicateFolderName, name)
		}
		newFolders = append(newFolders, &domain.Folder{
			ID:     common.UUIDint64(),
			UserID: user.ID,
			Name:   name,
		})
	}

	if err := s.folders.CreateAll(ctx, newFolders); err != nil {
		return nil, err
	}

	resp := make([]FolderResponse, 0, len(newFolders))
	for _, f := range newFolders {
		resp = append(resp, NewFolderResponse(f))
	}
	return resp, nil
}

// GetFolders returns all folders owned by the user in store order.
func (s *FolderService) GetFolders(ctx context.Context, user *domain.SysUser) ([]FolderResponse, error) {
	rows, err := s.folders.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	resp := make([]FolderResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, NewFolderResponse(&rows[i]))
	}
	return resp, nil
}

// case-sensitive exact match
func containsFolderName(folders []domain.Folder, name string) bool {
	for i := range folders {
		if folders[i].Name == name {
			return true
		}
	}
	return false
}
