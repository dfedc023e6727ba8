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

func TestCategoryDeleteCascadesOwnItemsOnly(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)

	ownerA := createOwner(t, db, "a@example.com", "A")
	ownerB := createOwner(t, db, "b@example.com", "B")

	categoryA := createCategory(t, db, "tools", ownerA.ID)
	categoryB := createCategory(t, db, "books", ownerB.ID)

	for _, name := range []string{"hammer", "saw", "drill"} {
		createItem(t, db, name, categoryA.ID, ownerA.ID)
	}
	itemB := createItem(t, db, "novel", categoryB.ID, ownerB.ID)

	require.NoError(t, repo.Delete(context.Background(), categoryA.ID, ownerA.ID))

	var count int64
	require.NoError(t, db.Model(&models.Item{}).Where("category_id = ?", categoryA.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count, "cascade should remove every item in the category")

	_, err := repo.FindByID(context.Background(), categoryA.ID)
	assert.Equal(t, apperrors.NotFound, apperrors.KindOf(err))

	// The other owner's data is untouched.
	itemRepo := NewItemRepository(db)
	survivor, err := itemRepo.FindByID(context.Background(), itemB.ID)
	require.NoError(t, err)
	assert.Equal(t, "novel", survivor.Name)
	_, err = repo.FindByID(context.Background(), categoryB.ID)
	require.NoError(t, err)
}

func TestCategoryDeleteByNonOwnerDenied(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)

	ownerA := createOwner(t, db, "a@example.com", "A")
	ownerB := createOwner(t, db, "b@example.com", "B")
	category := createCategory(t, db, "tools", ownerA.ID)
	item := createItem(t, db, "hammer", category.ID, ownerA.ID)

	err := repo.Delete(context.Background(), category.ID, ownerB.ID)
	assert.Equal(t, apperrors.PermissionDenied, apperrors.KindOf(err))

	// Nothing was deleted.
	_, err = repo.FindByID(context.Background(), category.ID)
	require.NoError(t, err)
	_, err = NewItemRepository(db).FindByID(context.Background(), item.ID)
	require.NoError(t, err)
}

func TestCategoryDeleteMissingIsNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	owner := createOwner(t, db, "a@example.com", "A")

	err := repo.Delete(context.Background(), 999, owner.ID)
	assert.Equal(t, apperrors.NotFound, apperrors.KindOf(err))
}

func TestCategoryWriteExpiredContextIsUnavailable(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	owner := createOwner(t, db, "a@example.com", "A")

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	_, err := repo.Create(ctx, models.Category{Name: "tools", OwnerID: owner.ID})
	assert.Equal(t, apperrors.Unavailable, apperrors.KindOf(err))

	err = repo.Delete(ctx, 1, owner.ID)
	assert.Equal(t, apperrors.Unavailable, apperrors.KindOf(err))
}

func TestCategoryCreateRejectsEmptyName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	owner := createOwner(t, db, "a@example.com", "A")

	_, err := repo.Create(context.Background(), models.Category{Name: "", OwnerID: owner.ID})
	assert.Equal(t, apperrors.InvalidArgument, apperrors.KindOf(err))
}
