package dto

import (
	"time"

	"gin-catalog/models"
)

type CreateCategoryInput struct {
	Name string `json:"name" binding:"required"`
}

type CreateItemInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	CategoryID  uint   `json:"category_id" binding:"required"`
	ImageID     *uint  `json:"image_id"`
}

type UpdateItemInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	CategoryID  *uint   `json:"category_id"`
	ImageID     *uint   `json:"image_id"`
}

// Responses expose only the declared fields of each resource, never gorm
// bookkeeping columns.

type CategoryResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	OwnerID uint   `json:"owner_id"`
}

type ItemResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CategoryID  uint      `json:"category_id"`
	OwnerID     uint      `json:"owner_id"`
	ImageID     *uint     `json:"image_id,omitempty"`
	CreatedOn   time.Time `json:"created_on"`
}

type ImageResponse struct {
	ID      uint   `json:"id"`
	Path    string `json:"path"`
	OwnerID uint   `json:"owner_id"`
}

func NewCategoryResponse(category models.Category) CategoryResponse {
	return CategoryResponse{ID: category.ID, Name: category.Name, OwnerID: category.OwnerID}
}

func NewCategoryResponses(categories []models.Category) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, NewCategoryResponse(category))
	}
	return responses
}

func NewItemResponse(item models.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		CategoryID:  item.CategoryID,
		OwnerID:     item.OwnerID,
		ImageID:     item.ImageID,
		CreatedOn:   item.CreatedOn,
	}
}

func NewItemResponses(items []models.Item) []ItemResponse {
	responses := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, NewItemResponse(item))
	}
	return responses
}

func NewImageResponse(image models.Image) ImageResponse {
	return ImageResponse{ID: image.ID, Path: image.Path, OwnerID: image.OwnerID}
}

func NewImageResponses(images []models.Image) []ImageResponse {
	responses := make([]ImageResponse, 0, len(images))
	for _, image := range images {
		responses = append(responses, NewImageResponse(image))
	}
	return responses
}
