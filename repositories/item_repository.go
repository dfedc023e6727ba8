package repositories

import (
	"context"
	"time"

	"gin-catalog/apperrors"
	"gin-catalog/constants"
	"gin-catalog/models"

	"gorm.io/gorm"
)

// ItemChanges carries an update request. A nil field was not supplied; a
// supplied field is only applied when it differs from the stored value.
type ItemChanges struct {
	Name        *string
	Description *string
	CategoryID  *uint
	ImageID     *uint
}

type IItemRepository interface {
	FindAll(ctx context.Context) (*[]models.Item, error)
	FindByID(ctx context.Context, itemID uint) (*models.Item, error)
	Create(ctx context.Context, newItem models.Item) (*models.Item, error)
	Update(ctx context.Context, itemID uint, ownerID uint, changes ItemChanges) (*models.Item, error)
	DetachImage(ctx context.Context, itemID uint, ownerID uint) (*models.Item, error)
	Delete(ctx context.Context, itemID uint, ownerID uint) error
}

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) IItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) FindAll(ctx context.Context) (*[]models.Item, error) {
	var items []models.Item
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, translateError(err)
	}
	return &items, nil
}

func (r *ItemRepository) FindByID(ctx context.Context, itemID uint) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).First(&item, "id = ?", itemID).Error; err != nil {
		return nil, apperrors.New(apperrors.NotFound, constants.ErrItemNotFound)
	}
	return &item, nil
}

func (r *ItemRepository) Create(ctx context.Context, newItem models.Item) (*models.Item, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := validateItemWrite(tx, &newItem); err != nil {
			return err
		}
		newItem.CreatedOn = time.Now()
		return tx.Create(&newItem).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	return &newItem, nil
}

// Update reloads the item inside the transaction so ownership and reference
// checks hold against the same state the write commits on. Zero effective
// changes short-circuit with Unchanged and leave CreatedOn untouched.
func (r *ItemRepository) Update(ctx context.Context, itemID uint, ownerID uint, changes ItemChanges) (*models.Item, error) {
	var item models.Item
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, "id = ?", itemID).Error; err != nil {
			return apperrors.New(apperrors.NotFound, constants.ErrItemNotFound)
		}
		if item.OwnerID != ownerID {
			return apperrors.NewField(apperrors.PermissionDenied, "item belongs to another owner", "id")
		}

		changed := false
		if changes.Name != nil && *changes.Name != item.Name {
			item.Name = *changes.Name
			changed = true
		}
		if changes.Description != nil && *changes.Description != item.Description {
			item.Description = *changes.Description
			changed = true
		}
		if changes.CategoryID != nil && *changes.CategoryID != item.CategoryID {
			item.CategoryID = *changes.CategoryID
			changed = true
		}
		if changes.ImageID != nil && (item.ImageID == nil || *changes.ImageID != *item.ImageID) {
			imageID := *changes.ImageID
			item.ImageID = &imageID
			changed = true
		}
		if !changed {
			return apperrors.New(apperrors.Unchanged, "no fields changed")
		}

		if err := validateItemWrite(tx, &item); err != nil {
			return err
		}
		item.CreatedOn = time.Now()
		return tx.Save(&item).Error
	})
	if err != nil {
		if apperrors.KindOf(err) == apperrors.Unchanged {
			return &item, err
		}
		return nil, translateError(err)
	}
	return &item, nil
}

// DetachImage clears an item's image reference. A JSON update cannot express
// "remove the image" (absent and null look the same), so detaching is its own
// operation. Freeing the reference is what lets the image itself be deleted.
func (r *ItemRepository) DetachImage(ctx context.Context, itemID uint, ownerID uint) (*models.Item, error) {
	var item models.Item
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, "id = ?", itemID).Error; err != nil {
			return apperrors.New(apperrors.NotFound, constants.ErrItemNotFound)
		}
		if item.OwnerID != ownerID {
			return apperrors.NewField(apperrors.PermissionDenied, "item belongs to another owner", "id")
		}
		if item.ImageID == nil {
			return apperrors.New(apperrors.Unchanged, "item has no image")
		}
		item.ImageID = nil
		item.CreatedOn = time.Now()
		return tx.Save(&item).Error
	})
	if err != nil {
		if apperrors.KindOf(err) == apperrors.Unchanged {
			return &item, err
		}
		return nil, translateError(err)
	}
	return &item, nil
}

func (r *ItemRepository) Delete(ctx context.Context, itemID uint, ownerID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := tx.First(&item, "id = ?", itemID).Error; err != nil {
			return apperrors.New(apperrors.NotFound, constants.ErrItemNotFound)
		}
		if item.OwnerID != ownerID {
			return apperrors.NewField(apperrors.PermissionDenied, "item belongs to another owner", "id")
		}
		return tx.Delete(&item).Error
	})
	return translateError(err)
}

// validateItemWrite enforces the write-time invariants: non-empty name, and
// category/image references that resolve to records owned by the item's owner.
// Every reference is checked before anything is written.
func validateItemWrite(tx *gorm.DB, item *models.Item) error {
	if item.Name == "" {
		return apperrors.NewField(apperrors.InvalidArgument, "name must not be empty", "name")
	}

	var category models.Category
	if err := tx.First(&category, "id = ?", item.CategoryID).Error; err != nil {
		return apperrors.NewField(apperrors.InvalidArgument, "category does not exist", "category_id")
	}
	if category.OwnerID != item.OwnerID {
		return apperrors.NewField(apperrors.PermissionDenied, "category belongs to another owner", "category_id")
	}

	if item.ImageID != nil {
		var image models.Image
		if err := tx.First(&image, "id = ?", *item.ImageID).Error; err != nil {
			return apperrors.NewField(apperrors.InvalidArgument, "image does not exist", "image_id")
		}
		if image.OwnerID != item.OwnerID {
			return apperrors.NewField(apperrors.PermissionDenied, "image belongs to another owner", "image_id")
		}
	}
	return nil
}
