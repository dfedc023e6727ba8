package controllers

import (
	"io"
	"net/http"
	"path/filepath"

	"gin-catalog/constants"
	"gin-catalog/dto"
	"gin-catalog/services"

	"github.com/gin-gonic/gin"
)

type IImageController interface {
	FindAll(ctx *gin.Context)
	FindById(ctx *gin.Context)
	Create(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type ImageController struct {
	service services.IImageService
}

func NewImageController(service services.IImageService) IImageController {
	return &ImageController{service: service}
}

func (c *ImageController) FindAll(ctx *gin.Context) {
	images, err := c.service.FindAll(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": dto.NewImageResponses(*images)})
}

func (c *ImageController) FindById(ctx *gin.Context) {
	imageID, ok := parseID(ctx)
	if !ok {
		return
	}

	image, err := c.service.FindByID(ctx.Request.Context(), imageID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": dto.NewImageResponse(*image)})
}

// Create accepts a multipart upload in the "image" form field.
func (c *ImageController) Create(ctx *gin.Context) {
	owner, ok := currentOwner(ctx)
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	newImage, err := c.service.Create(ctx.Request.Context(), data, filepath.Ext(fileHeader.Filename), owner.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"data": dto.NewImageResponse(*newImage)})
}

func (c *ImageController) Delete(ctx *gin.Context) {
	owner, ok := currentOwner(ctx)
	if !ok {
		return
	}

	imageID, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), imageID, owner.ID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusOK)
}
