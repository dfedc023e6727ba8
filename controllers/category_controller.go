package controllers

import (
	"net/http"

	"gin-catalog/constants"
	"gin-catalog/dto"
	"gin-catalog/services"

	"github.com/gin-gonic/gin"
)

type ICategoryController interface {
	FindAll(ctx *gin.Context)
	FindById(ctx *gin.Context)
	Create(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type CategoryController struct {
	service services.ICategoryService
}

func NewCategoryController(service services.ICategoryService) ICategoryController {
	return &CategoryController{service: service}
}

func (c *CategoryController) FindAll(ctx *gin.Context) {
	categories, err := c.service.FindAll(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": dto.NewCategoryResponses(*categories)})
}

func (c *CategoryController) FindById(ctx *gin.Context) {
	categoryID, ok := parseID(ctx)
	if !ok {
		return
	}

	category, err := c.service.FindByID(ctx.Request.Context(), categoryID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": dto.NewCategoryResponse(*category)})
}

func (c *CategoryController) Create(ctx *gin.Context) {
	owner, ok := currentOwner(ctx)
	if !ok {
		return
	}

	var input dto.CreateCategoryInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	newCategory, err := c.service.Create(ctx.Request.Context(), input, owner.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"data": dto.NewCategoryResponse(*newCategory)})
}

func (c *CategoryController) Delete(ctx *gin.Context) {
	owner, ok := currentOwner(ctx)
	if !ok {
		return
	}

	categoryID, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), categoryID, owner.ID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusOK)
}
