package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkincode/selectshop/internal/domain"
	"github.com/talkincode/selectshop/internal/search"
	"github.com/talkincode/selectshop/internal/store"
)

func TestCreateProduct(t *testing.T) {
	svc, _, db := newTestServices(t)
	user := testUser(domain.RoleUser)

	resp, err := svc.CreateProduct(testCtx, ProductRequest{
		Title:  "mechanical keyboard",
		Link:   "https://shop.example.com/kbd",
		Lprice: 45000,
	}, user)
	require.NoError(t, err)
	assert.Equal(t, "mechanical keyboard", resp.Title)
	assert.Equal(t, 45000, resp.LowestPrice)
	assert.Zero(t, resp.MyPrice)

	var saved domain.Product
	require.NoError(t, db.First(&saved, resp.ID).Error)
	assert.Equal(t, user.ID, saved.UserID)
}

func TestUpdateProductTargetPriceThreshold(t *testing.T) {
	svc, _, db := newTestServices(t)
	user := testUser(domain.RoleUser)
	p := seedProduct(t, db, user.ID, "monitor", 250000, 0)

	_, err := svc.UpdateProduct(testCtx, p.ID, MyPriceRequest{MyPrice: MinMyPrice - 1})
	assert.ErrorIs(t, err, ErrInvalidTargetPrice)

	resp, err := svc.UpdateProduct(testCtx, p.ID, MyPriceRequest{MyPrice: MinMyPrice})
	require.NoError(t, err)
	assert.Equal(t, MinMyPrice, resp.MyPrice)

	var saved domain.Product
	require.NoError(t, db.First(&saved, p.ID).Error)
	assert.Equal(t, MinMyPrice, saved.MyPrice)
}

func TestUpdateProductNotFound(t *testing.T) {
	svc, _, _ := newTestServices(t)

	_, err := svc.UpdateProduct(testCtx, 12345, MyPriceRequest{MyPrice: 50000})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestGetProductsRoleVisibility(t *testing.T) {
	svc, _, db := newTestServices(t)
	alice := testUser(domain.RoleUser)
	bob := testUser(domain.RoleUser)
	admin := testUser(domain.RoleAdmin)
	seedProduct(t, db, alice.ID, "camera", 800000, 0)
	seedProduct(t, db, bob.ID, "tripod", 30000, 0)

	page, err := svc.GetProducts(testCtx, alice, store.PageQuery{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "camera", page.Items[0].Title)

	page, err = svc.GetProducts(testCtx, admin, store.PageQuery{})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.EqualValues(t, 2, page.Total)
}

func TestGetProductsPagination(t *testing.T) {
	svc, _, db := newTestServices(t)
	user := testUser(domain.RoleUser)
	for i := 0; i < 12; i++ {
		seedProduct(t, db, user.ID, "bulk item", 1000+i, 0)
	}

	page, err := svc.GetProducts(testCtx, user, store.PageQuery{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.EqualValues(t, 12, page.Total)
	assert.Equal(t, 2, page.TotalPages)
}

func TestUpdateBySearch(t *testing.T) {
	svc, _, db := newTestServices(t)
	user := testUser(domain.RoleUser)
	p := seedProduct(t, db, user.ID, "ssd 1tb", 150000, 0)

	err := svc.UpdateBySearch(testCtx, p.ID, search.Item{
		Title:       "ssd 1tb nvme",
		Link:        "https://shop.example.com/ssd-new",
		LowestPrice: 129000,
	})
	require.NoError(t, err)

	var saved domain.Product
	require.NoError(t, db.First(&saved, p.ID).Error)
	assert.Equal(t, 129000, saved.LowestPrice)
	assert.Equal(t, "ssd 1tb nvme", saved.Title)
	assert.Equal(t, "https://shop.example.com/ssd-new", saved.Link)
}

func TestUpdateBySearchNotFound(t *testing.T) {
	svc, _, _ := newTestServices(t)

	err := svc.UpdateBySearch(testCtx, 999, search.Item{Title: "ghost", LowestPrice: 1})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestAddFolder(t *testing.T) {
	svc, _, db := newTestServices(t)
	user := testUser(domain.RoleUser)
	stranger := testUser(domain.RoleUser)
	p := seedProduct(t, db, user.ID, "speaker", 90000, 0)
	f := seedFolder(t, db, user.ID, "audio")
	foreign := seedFolder(t, db, stranger.ID, "their audio")

	require.NoError(t, svc.AddFolder(testCtx, p.ID, f.ID, user))

	assert.ErrorIs(t, svc.AddFolder(testCtx, 404, f.ID, user), ErrProductNotFound)
	assert.ErrorIs(t, svc.AddFolder(testCtx, p.ID, 404, user), ErrFolderNotFound)
	assert.ErrorIs(t, svc.AddFolder(testCtx, p.ID, f.ID, stranger), ErrNotOwner)
	assert.ErrorIs(t, svc.AddFolder(testCtx, p.ID, foreign.ID, user), ErrNotOwner)
	assert.ErrorIs(t, svc.AddFolder(testCtx, p.ID, f.ID, user), ErrDuplicateAssociation)
}

func TestGetProductsInFolderOwnerScoped(t *testing.T) {
	svc, _, db := newTestServices(t)
	user := testUser(domain.RoleUser)
	admin := testUser(domain.RoleAdmin)
	f := seedFolder(t, db, user.ID, "wishlist")
	mine := seedProduct(t, db, user.ID, "mine", 1000, 0)
	theirs := seedProduct(t, db, admin.ID, "theirs", 2000, 0)
	linkProductFolder(t, db, mine.ID, f.ID)
	linkProductFolder(t, db, theirs.ID, f.ID)

	page, err := svc.GetProductsInFolder(testCtx, f.ID, store.PageQuery{}, user)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "mine", page.Items[0].Title)

	// folder listing stays owner-scoped even for admins
	page, err = svc.GetProductsInFolder(testCtx, f.ID, store.PageQuery{}, admin)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "theirs", page.Items[0].Title)
}

func TestFolderStats(t *testing.T) {
	svc, _, db := newTestServices(t)
	user := testUser(domain.RoleUser)
	stranger := testUser(domain.RoleUser)
	f := seedFolder(t, db, user.ID, "deals")
	for _, price := range []int{1000, 2000, 3000} {
		p := seedProduct(t, db, user.ID, "deal", price, 0)
		linkProductFolder(t, db, p.ID, f.ID)
	}

	result, err := svc.FolderStats(testCtx, f.ID, user)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Count)
	assert.InDelta(t, 2000, result.Mean, 0.01)
	assert.InDelta(t, 1000, result.Min, 0.01)
	assert.InDelta(t, 3000, result.Max, 0.01)

	_, err = svc.FolderStats(testCtx, f.ID, stranger)
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = svc.FolderStats(testCtx, 404, user)
	assert.ErrorIs(t, err, ErrFolderNotFound)
}

func TestFolderStatsEmptyFolder(t *testing.T) {
	svc, _, db := newTestServices(t)
	user := testUser(domain.RoleUser)
	f := seedFolder(t, db, user.ID, "empty")

	result, err := svc.FolderStats(testCtx, f.ID, user)
	require.NoError(t, err)
	assert.Zero(t, result.Count)
	assert.Zero(t, result.Mean)
}
