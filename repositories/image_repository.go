package repositories

import (
	"context"

	"gin-catalog/apperrors"
	"gin-catalog/constants"
	"gin-catalog/models"

	"gorm.io/gorm"
)

type IImageRepository interface {
	FindAll(ctx context.Context) (*[]models.Image, error)
	FindByID(ctx context.Context, imageID uint) (*models.Image, error)
	Create(ctx context.Context, newImage models.Image) (*models.Image, error)
	Delete(ctx context.Context, imageID uint, ownerID uint) (string, error)
}

type ImageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) IImageRepository {
	return &ImageRepository{db: db}
}

func (r *ImageRepository) FindAll(ctx context.Context) (*[]models.Image, error) {
	var images []models.Image
	if err := r.db.WithContext(ctx).Find(&images).Error; err != nil {
		return nil, translateError(err)
	}
	return &images, nil
}

func (r *ImageRepository) FindByID(ctx context.Context, imageID uint) (*models.Image, error) {
	var image models.Image
	if err := r.db.WithContext(ctx).First(&image, "id = ?", imageID).Error; err != nil {
		return nil, apperrors.New(apperrors.NotFound, constants.ErrImageNotFound)
	}
	return &image, nil
}

func (r *ImageRepository) Create(ctx context.Context, newImage models.Image) (*models.Image, error) {
	if newImage.Path == "" {
		return nil, apperrors.NewField(apperrors.InvalidArgument, "path must not be empty", "path")
	}
	if err := r.db.WithContext(ctx).Create(&newImage).Error; err != nil {
		return nil, translateError(err)
	}
	return &newImage, nil
}

// Delete refuses to remove an image any item still references, so an item can
// never be left pointing at a missing image. Returns the blob path so the
// caller can reclaim the stored bytes after the row is gone.
func (r *ImageRepository) Delete(ctx context.Context, imageID uint, ownerID uint) (string, error) {
	var path string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var image models.Image
		if err := tx.First(&image, "id = ?", imageID).Error; err != nil {
			return apperrors.New(apperrors.NotFound, constants.ErrImageNotFound)
		}
		if image.OwnerID != ownerID {
			return apperrors.NewField(apperrors.PermissionDenied, "image belongs to another owner", "id")
		}

		var references int64
		if err := tx.Model(&models.Item{}).Where("image_id = ?", imageID).Count(&references).Error; err != nil {
			return err
		}
		if references > 0 {
			return apperrors.NewField(apperrors.Conflict, "image is still referenced by items", "id")
		}

		path = image.Path
		return tx.Delete(&image).Error
	})
	if err != nil {
		return "", translateError(err)
	}
	return path, nil
}
