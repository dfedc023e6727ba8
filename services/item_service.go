package services

import (
	"context"

	"gin-catalog/dto"
	"gin-catalog/models"
	"gin-catalog/repositories"
)

type IItemService interface {
	FindAll(ctx context.Context) (*[]models.Item, error)
	FindByID(ctx context.Context, itemID uint) (*models.Item, error)
	Create(ctx context.Context, input dto.CreateItemInput, ownerID uint) (*models.Item, error)
	Update(ctx context.Context, itemID uint, ownerID uint, input dto.UpdateItemInput) (*models.Item, error)
	DetachImage(ctx context.Context, itemID uint, ownerID uint) (*models.Item, error)
	Delete(ctx context.Context, itemID uint, ownerID uint) error
}

type ItemService struct {
	repository repositories.IItemRepository
}

func NewItemService(repository repositories.IItemRepository) IItemService {
	return &ItemService{repository: repository}
}

func (s *ItemService) FindAll(ctx context.Context) (*[]models.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()
	return s.repository.FindAll(ctx)
}

func (s *ItemService) FindByID(ctx context.Context, itemID uint) (*models.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()
	return s.repository.FindByID(ctx, itemID)
}

func (s *ItemService) Create(ctx context.Context, input dto.CreateItemInput, ownerID uint) (*models.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	newItem := models.Item{
		Name:        input.Name,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		OwnerID:     ownerID,
		ImageID:     input.ImageID,
	}
	return s.repository.Create(ctx, newItem)
}

// Update may return the current item together with an Unchanged error when no
// supplied field differed; callers treat that as a successful no-op.
func (s *ItemService) Update(ctx context.Context, itemID uint, ownerID uint, input dto.UpdateItemInput) (*models.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	changes := repositories.ItemChanges{
		Name:        input.Name,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		ImageID:     input.ImageID,
	}
	return s.repository.Update(ctx, itemID, ownerID, changes)
}

func (s *ItemService) DetachImage(ctx context.Context, itemID uint, ownerID uint) (*models.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()
	return s.repository.DetachImage(ctx, itemID, ownerID)
}

func (s *ItemService) Delete(ctx context.Context, itemID uint, ownerID uint) error {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()
	return s.repository.Delete(ctx, itemID, ownerID)
}
