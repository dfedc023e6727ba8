package repositories

import (
	"context"

	"gin-catalog/apperrors"
	"gin-catalog/constants"
	"gin-catalog/models"

	"gorm.io/gorm"
)

type ICategoryRepository interface {
	FindAll(ctx context.Context) (*[]models.Category, error)
	FindByID(ctx context.Context, categoryID uint) (*models.Category, error)
	Create(ctx context.Context, newCategory models.Category) (*models.Category, error)
	Delete(ctx context.Context, categoryID uint, ownerID uint) error
}

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) ICategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) FindAll(ctx context.Context) (*[]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, translateError(err)
	}
	return &categories, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, categoryID uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", categoryID).Error; err != nil {
		return nil, apperrors.New(apperrors.NotFound, constants.ErrCategoryNotFound)
	}
	return &category, nil
}

func (r *CategoryRepository) Create(ctx context.Context, newCategory models.Category) (*models.Category, error) {
	if newCategory.Name == "" {
		return nil, apperrors.NewField(apperrors.InvalidArgument, "name must not be empty", "name")
	}
	if err := r.db.WithContext(ctx).Create(&newCategory).Error; err != nil {
		return nil, translateError(err)
	}
	return &newCategory, nil
}

// Delete removes a category and every item referencing it in one transaction,
// so a cascade can never be half applied.
func (r *CategoryRepository) Delete(ctx context.Context, categoryID uint, ownerID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, "id = ?", categoryID).Error; err != nil {
			return apperrors.New(apperrors.NotFound, constants.ErrCategoryNotFound)
		}
		if category.OwnerID != ownerID {
			return apperrors.NewField(apperrors.PermissionDenied, "category belongs to another owner", "id")
		}
		if err := tx.Delete(&models.Item{}, "category_id = ?", categoryID).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
	return translateError(err)
}
