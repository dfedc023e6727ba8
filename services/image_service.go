package services

import (
	"context"
	"log"

	"gin-catalog/models"
	"gin-catalog/repositories"
	"gin-catalog/storage"
)

type IImageService interface {
	FindAll(ctx context.Context) (*[]models.Image, error)
	FindByID(ctx context.Context, imageID uint) (*models.Image, error)
	Create(ctx context.Context, data []byte, ext string, ownerID uint) (*models.Image, error)
	Delete(ctx context.Context, imageID uint, ownerID uint) error
}

type ImageService struct {
	repository repositories.IImageRepository
	blobs      storage.BlobStore
}

func NewImageService(repository repositories.IImageRepository, blobs storage.BlobStore) IImageService {
	return &ImageService{repository: repository, blobs: blobs}
}

func (s *ImageService) FindAll(ctx context.Context) (*[]models.Image, error) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()
	return s.repository.FindAll(ctx)
}

func (s *ImageService) FindByID(ctx context.Context, imageID uint) (*models.Image, error) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()
	return s.repository.FindByID(ctx, imageID)
}

// Create stores the bytes first, then the row. If the row fails the blob is
// removed again so a failed create leaves no orphan file behind.
func (s *ImageService) Create(ctx context.Context, data []byte, ext string, ownerID uint) (*models.Image, error) {
	path, err := s.blobs.Save(data, ext)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	image, err := s.repository.Create(ctx, models.Image{Path: path, OwnerID: ownerID})
	if err != nil {
		if cleanupErr := s.blobs.Delete(path); cleanupErr != nil {
			log.Printf("Failed to clean up blob %s: %v", path, cleanupErr)
		}
		return nil, err
	}
	return image, nil
}

func (s *ImageService) Delete(ctx context.Context, imageID uint, ownerID uint) error {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	path, err := s.repository.Delete(ctx, imageID, ownerID)
	if err != nil {
		return err
	}
	// The row is gone; losing the blob delete only leaks a file, so it is
	// logged rather than failing the request.
	if err := s.blobs.Delete(path); err != nil {
		log.Printf("Failed to delete blob %s: %v", path, err)
	}
	return nil
}
