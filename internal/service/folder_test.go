package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkincode/selectshop/internal/domain"
)

func TestAddFolders(t *testing.T) {
	_, svc, db := newTestServices(t)
	user := testUser(domain.RoleUser)

	resp, err := svc.AddFolders(testCtx, []string{"electronics", "fashion"}, user)
	require.NoError(t, err)
	require.Len(t, resp, 2)

	var count int64
	db.Model(&domain.Folder{}).Where("user_id = ?", user.ID).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestAddFoldersDuplicateAbortsWholeBatch(t *testing.T) {
	_, svc, db := newTestServices(t)
	user := testUser(domain.RoleUser)
	seedFolder(t, db, user.ID, "books")

	_, err := svc.AddFolders(testCtx, []string{"games", "books", "music"}, user)
	assert.ErrorIs(t, err, ErrDuplicateFolderName)

	// nothing from the failed batch may be persisted
	var count int64
	db.Model(&domain.Folder{}).Where("user_id = ?", user.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestAddFoldersSameNameDifferentUsers(t *testing.T) {
	_, svc, db := newTestServices(t)
	alice := testUser(domain.RoleUser)
	bob := testUser(domain.RoleUser)
	seedFolder(t, db, alice.ID, "shared name")

	_, err := svc.AddFolders(testCtx, []string{"shared name"}, bob)
	assert.NoError(t, err)
}

func TestGetFolders(t *testing.T) {
	_, svc, db := newTestServices(t)
	user := testUser(domain.RoleUser)
	other := testUser(domain.RoleUser)
	seedFolder(t, db, user.ID, "first")
	seedFolder(t, db, user.ID, "second")
	seedFolder(t, db, other.ID, "not yours")

	rows, err := svc.GetFolders(testCtx, user)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "first", rows[0].Name)
	assert.Equal(t, "second", rows[1].Name)
}
