package repositories

import (
	"context"
	"testing"
	"time"

	"gin-catalog/apperrors"
	"gin-catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestItemCreateAndFetchRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewItemRepository(db)

	owner := createOwner(t, db, "a@example.com", "A")
	category := createCategory(t, db, "tools", owner.ID)
	image := createImage(t, db, "hammer.png", owner.ID)

	created, err := repo.Create(context.Background(), models.Item{
		Name:        "hammer",
		Description: "claw hammer",
		CategoryID:  category.ID,
		OwnerID:     owner.ID,
		ImageID:     &image.ID,
	})
	require.NoError(t, err)
	assert.False(t, created.CreatedOn.IsZero())

	fetched, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "hammer", fetched.Name)
	assert.Equal(t, "claw hammer", fetched.Description)
	assert.Equal(t, category.ID, fetched.CategoryID)
	assert.Equal(t, owner.ID, fetched.OwnerID)
	require.NotNil(t, fetched.ImageID)
	assert.Equal(t, image.ID, *fetched.ImageID)
}

func TestItemCreateRejectsCrossOwnerCategory(t *testing.T) {
	db := setupTestDB(t)
	repo := NewItemRepository(db)

	ownerA := createOwner(t, db, "a@example.com", "A")
	ownerB := createOwner(t, db, "b@example.com", "B")
	categoryB := createCategory(t, db, "books", ownerB.ID)

	_, err := repo.Create(context.Background(), models.Item{
		Name:       "novel",
		CategoryID: categoryB.ID,
		OwnerID:    ownerA.ID,
	})
	require.Error(t, err)
	appErr := err.(*apperrors.AppError)
	assert.Equal(t, apperrors.PermissionDenied, appErr.Kind)
	assert.Equal(t, "category_id", appErr.Field)

	var count int64
	require.NoError(t, db.Model(&models.Item{}).Count(&count).Error)
	assert.Equal(t, int64(0), count, "rejected create must not write anything")
}

func TestItemCreateRejectsCrossOwnerImage(t *testing.T) {
	db := setupTestDB(t)
	repo := NewItemRepository(db)

	ownerA := createOwner(t, db, "a@example.com", "A")
	ownerB := createOwner(t, db, "b@example.com", "B")
	categoryA := createCategory(t, db, "tools", ownerA.ID)
	imageB := createImage(t, db, "b.png", ownerB.ID)

	_, err := repo.Create(context.Background(), models.Item{
		Name:       "hammer",
		CategoryID: categoryA.ID,
		OwnerID:    ownerA.ID,
		ImageID:    &imageB.ID,
	})
	require.Error(t, err)
	appErr := err.(*apperrors.AppError)
	assert.Equal(t, apperrors.PermissionDenied, appErr.Kind)
	assert.Equal(t, "image_id", appErr.Field)
}

func TestItemCreateRejectsDanglingCategory(t *testing.T) {
	db := setupTestDB(t)
	repo := NewItemRepository(db)
	owner := createOwner(t, db, "a@example.com", "A")

	_, err := repo.Create(context.Background(), models.Item{
		Name:       "hammer",
		CategoryID: 999,
		OwnerID:    owner.ID,
	})
	require.Error(t, err)
	appErr := err.(*apperrors.AppError)
	assert.Equal(t, apperrors.InvalidArgument, appErr.Kind)
	assert.Equal(t, "category_id", appErr.Field)
}

func TestItemCreateRejectsEmptyName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewItemRepository(db)
	owner := createOwner(t, db, "a@example.com", "A")
	category := createCategory(t, db, "tools", owner.ID)

	_, err := repo.Create(context.Background(), models.Item{
		Name:       "",
		CategoryID: category.ID,
		OwnerID:    owner.ID,
	})
	require.Error(t, err)
	appErr := err.(*apperrors.AppError)
	assert.Equal(t, apperrors.InvalidArgument, appErr.Kind)
	assert.Equal(t, "name", appErr.Field)
}

func TestItemUpdateWithNoChangesIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	repo := NewItemRepository(db)

	owner := createOwner(t, db, "a@example.com", "A")
	category := createCategory(t, db, "tools", owner.ID)
	item := createItem(t, db, "hammer", category.ID, owner.ID)
	originalCreatedOn := item.CreatedOn

	unchanged, err := repo.Update(context.Background(), item.ID, owner.ID, ItemChanges{
		Name:       ptr("hammer"),
		CategoryID: ptr(category.ID),
	})
	assert.Equal(t, apperrors.Unchanged, apperrors.KindOf(err))
	require.NotNil(t, unchanged)
	assert.Equal(t, "hammer", unchanged.Name)

	fetched, err := repo.FindByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.True(t, fetched.CreatedOn.Equal(originalCreatedOn), "no-op update must not refresh created_on")
}

func TestItemUpdateAppliesChangedFieldsAndRefreshesCreatedOn(t *testing.T) {
	db := setupTestDB(t)
	repo := NewItemRepository(db)

	owner := createOwner(t, db, "a@example.com", "A")
	category := createCategory(t, db, "tools", owner.ID)
	item := createItem(t, db, "hammer", category.ID, owner.ID)
	originalCreatedOn := item.CreatedOn

	time.Sleep(10 * time.Millisecond)

	updated, err := repo.Update(context.Background(), item.ID, owner.ID, ItemChanges{
		Name:        ptr("sledgehammer"),
		Description: ptr("heavy"),
	})
	require.NoError(t, err)
	assert.Equal(t, "sledgehammer", updated.Name)
	assert.Equal(t, "heavy", updated.Description)
	assert.True(t, updated.CreatedOn.After(originalCreatedOn))
}

func TestItemUpdateRejectsCrossOwnerReferences(t *testing.T) {
	db := setupTestDB(t)
	repo := NewItemRepository(db)

	ownerA := createOwner(t, db, "a@example.com", "A")
	ownerB := createOwner(t, db, "b@example.com", "B")
	categoryA := createCategory(t, db, "tools", ownerA.ID)
	categoryB := createCategory(t, db, "books", ownerB.ID)
	item := createItem(t, db, "hammer", categoryA.ID, ownerA.ID)

	_, err := repo.Update(context.Background(), item.ID, ownerA.ID, ItemChanges{
		CategoryID: ptr(categoryB.ID),
	})
	require.Error(t, err)
	appErr := err.(*apperrors.AppError)
	assert.Equal(t, apperrors.PermissionDenied, appErr.Kind)
	assert.Equal(t, "category_id", appErr.Field)

	// The rejected update left the item as it was.
	fetched, err := repo.FindByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, categoryA.ID, fetched.CategoryID)
}

func TestItemUpdateByNonOwnerDenied(t *testing.T) {
	db := setupTestDB(t)
	repo := NewItemRepository(db)

	ownerA := createOwner(t, db, "a@example.com", "A")
	ownerB := createOwner(t, db, "b@example.com", "B")
	category := createCategory(t, db, "tools", ownerA.ID)
	item := createItem(t, db, "hammer", category.ID, ownerA.ID)

	_, err := repo.Update(context.Background(), item.ID, ownerB.ID, ItemChanges{Name: ptr("stolen")})
	assert.Equal(t, apperrors.PermissionDenied, apperrors.KindOf(err))

	fetched, err := repo.FindByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, "hammer", fetched.Name)
}

func TestItemDetachImageFreesReference(t *testing.T) {
	db := setupTestDB(t)
	repo := NewItemRepository(db)

	owner := createOwner(t, db, "a@example.com", "A")
	category := createCategory(t, db, "tools", owner.ID)
	image := createImage(t, db, "hammer.png", owner.ID)

	created, err := repo.Create(context.Background(), models.Item{
		Name:       "hammer",
		CategoryID: category.ID,
		OwnerID:    owner.ID,
		ImageID:    &image.ID,
	})
	require.NoError(t, err)

	// While attached, the image cannot be deleted.
	imageRepo := NewImageRepository(db)
	_, err = imageRepo.Delete(context.Background(), image.ID, owner.ID)
	assert.Equal(t, apperrors.Conflict, apperrors.KindOf(err))

	detached, err := repo.DetachImage(context.Background(), created.ID, owner.ID)
	require.NoError(t, err)
	assert.Nil(t, detached.ImageID)

	fetched, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.ImageID)

	// With the reference freed, the image delete goes through.
	path, err := imageRepo.Delete(context.Background(), image.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "hammer.png", path)
}

func TestItemDetachImageWithoutImageIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	repo := NewItemRepository(db)

	owner := createOwner(t, db, "a@example.com", "A")
	category := createCategory(t, db, "tools", owner.ID)
	item := createItem(t, db, "hammer", category.ID, owner.ID)
	originalCreatedOn := item.CreatedOn

	unchanged, err := repo.DetachImage(context.Background(), item.ID, owner.ID)
	assert.Equal(t, apperrors.Unchanged, apperrors.KindOf(err))
	require.NotNil(t, unchanged)

	fetched, err := repo.FindByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.True(t, fetched.CreatedOn.Equal(originalCreatedOn), "no-op detach must not refresh created_on")
}

func TestItemDetachImageByNonOwnerDenied(t *testing.T) {
	db := setupTestDB(t)
	repo := NewItemRepository(db)

	ownerA := createOwner(t, db, "a@example.com", "A")
	ownerB := createOwner(t, db, "b@example.com", "B")
	category := createCategory(t, db, "tools", ownerA.ID)
	image := createImage(t, db, "hammer.png", ownerA.ID)

	created, err := repo.Create(context.Background(), models.Item{
		Name:       "hammer",
		CategoryID: category.ID,
		OwnerID:    ownerA.ID,
		ImageID:    &image.ID,
	})
	require.NoError(t, err)

	_, err = repo.DetachImage(context.Background(), created.ID, ownerB.ID)
	assert.Equal(t, apperrors.PermissionDenied, apperrors.KindOf(err))

	fetched, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.ImageID)
}

func TestItemDeleteByNonOwnerDenied(t *testing.T) {
	db := setupTestDB(t)
	repo := NewItemRepository(db)

	ownerA := createOwner(t, db, "a@example.com", "A")
	ownerB := createOwner(t, db, "b@example.com", "B")
	category := createCategory(t, db, "tools", ownerA.ID)
	item := createItem(t, db, "hammer", category.ID, ownerA.ID)

	err := repo.Delete(context.Background(), item.ID, ownerB.ID)
	assert.Equal(t, apperrors.PermissionDenied, apperrors.KindOf(err))

	// The item still exists.
	_, err = repo.FindByID(context.Background(), item.ID)
	require.NoError(t, err)
}

func TestItemDeleteByOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewItemRepository(db)

	owner := createOwner(t, db, "a@example.com", "A")
	category := createCategory(t, db, "tools", owner.ID)
	item := createItem(t, db, "hammer", category.ID, owner.ID)

	require.NoError(t, repo.Delete(context.Background(), item.ID, owner.ID))

	_, err := repo.FindByID(context.Background(), item.ID)
	assert.Equal(t, apperrors.NotFound, apperrors.KindOf(err))
}
