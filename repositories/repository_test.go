package repositories

import (
	"context"
	"testing"

	"gin-catalog/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Owner{}, &models.Category{}, &models.Image{}, &models.Item{}, &models.RevokedSession{}))
	return db
}

func createOwner(t *testing.T, db *gorm.DB, email string, name string) *models.Owner {
	t.Helper()
	owner := models.Owner{Email: email, Name: name}
	require.NoError(t, db.Create(&owner).Error)
	return &owner
}

func createCategory(t *testing.T, db *gorm.DB, name string, ownerID uint) *models.Category {
	t.Helper()
	category := models.Category{Name: name, OwnerID: ownerID}
	require.NoError(t, db.Create(&category).Error)
	return &category
}

func createImage(t *testing.T, db *gorm.DB, path string, ownerID uint) *models.Image {
	t.Helper()
	image := models.Image{Path: path, OwnerID: ownerID}
	require.NoError(t, db.Create(&image).Error)
	return &image
}

func createItem(t *testing.T, db *gorm.DB, name string, categoryID uint, ownerID uint) *models.Item {
	t.Helper()
	repo := NewItemRepository(db)
	item, err := repo.Create(context.Background(), models.Item{
		Name:       name,
		CategoryID: categoryID,
		OwnerID:    ownerID,
	})
	require.NoError(t, err)
	return item
}
