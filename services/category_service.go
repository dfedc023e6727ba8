package services

import (
	"context"
	"time"

	"gin-catalog/dto"
	"gin-catalog/models"
	"gin-catalog/repositories"
)

// storageTimeout bounds every storage transaction; a blown deadline surfaces
// as a retryable Unavailable error instead of hanging the request.
const storageTimeout = 5 * time.Second

type ICategoryService interface {
	FindAll(ctx context.Context) (*[]models.Category, error)
	FindByID(ctx context.Context, categoryID uint) (*models.Category, error)
	Create(ctx context.Context, input dto.CreateCategoryInput, ownerID uint) (*models.Category, error)
	Delete(ctx context.Context, categoryID uint, ownerID uint) error
}

type CategoryService struct {
	repository repositories.ICategoryRepository
}

func NewCategoryService(repository repositories.ICategoryRepository) ICategoryService {
	return &CategoryService{repository: repository}
}

func (s *CategoryService) FindAll(ctx context.Context) (*[]models.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()
	return s.repository.FindAll(ctx)
}

func (s *CategoryService) FindByID(ctx context.Context, categoryID uint) (*models.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()
	return s.repository.FindByID(ctx, categoryID)
}

func (s *CategoryService) Create(ctx context.Context, input dto.CreateCategoryInput, ownerID uint) (*models.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	newCategory := models.Category{
		Name:    input.Name,
		OwnerID: ownerID,
	}
	return s.repository.Create(ctx, newCategory)
}

func (s *CategoryService) Delete(ctx context.Context, categoryID uint, ownerID uint) error {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()
	return s.repository.Delete(ctx, categoryID, ownerID)
}
