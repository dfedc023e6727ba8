package controllers

import (
	"net/http"

	"gin-catalog/apperrors"
	"gin-catalog/constants"
	"gin-catalog/dto"
	"gin-catalog/services"

	"github.com/gin-gonic/gin"
)

type IItemController interface {
	FindAll(ctx *gin.Context)
	FindById(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DetachImage(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type ItemController struct {
	service services.IItemService
}

func NewItemController(service services.IItemService) IItemController {
	return &ItemController{service: service}
}

func (c *ItemController) FindAll(ctx *gin.Context) {
	items, err := c.service.FindAll(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": dto.NewItemResponses(*items)})
}

func (c *ItemController) FindById(ctx *gin.Context) {
	itemID, ok := parseID(ctx)
	if !ok {
		return
	}

	item, err := c.service.FindByID(ctx.Request.Context(), itemID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": dto.NewItemResponse(*item)})
}

func (c *ItemController) Create(ctx *gin.Context) {
	owner, ok := currentOwner(ctx)
	if !ok {
		return
	}

	var input dto.CreateItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	newItem, err := c.service.Create(ctx.Request.Context(), input, owner.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"data": dto.NewItemResponse(*newItem)})
}

func (c *ItemController) Update(ctx *gin.Context) {
	owner, ok := currentOwner(ctx)
	if !ok {
		return
	}

	itemID, ok := parseID(ctx)
	if !ok {
		return
	}

	var input dto.UpdateItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	updatedItem, err := c.service.Update(ctx.Request.Context(), itemID, owner.ID, input)
	if err != nil {
		// A no-op update is a success: respond with the unchanged item.
		if apperrors.KindOf(err) == apperrors.Unchanged {
			ctx.JSON(http.StatusOK, gin.H{"data": dto.NewItemResponse(*updatedItem)})
			return
		}
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": dto.NewItemResponse(*updatedItem)})
}

func (c *ItemController) DetachImage(ctx *gin.Context) {
	owner, ok := currentOwner(ctx)
	if !ok {
		return
	}

	itemID, ok := parseID(ctx)
	if !ok {
		return
	}

	item, err := c.service.DetachImage(ctx.Request.Context(), itemID, owner.ID)
	if err != nil {
		// Detaching from an imageless item is a success: nothing to remove.
		if apperrors.KindOf(err) == apperrors.Unchanged {
			ctx.JSON(http.StatusOK, gin.H{"data": dto.NewItemResponse(*item)})
			return
		}
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": dto.NewItemResponse(*item)})
}

func (c *ItemController) Delete(ctx *gin.Context) {
	owner, ok := currentOwner(ctx)
	if !ok {
		return
	}

	itemID, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), itemID, owner.ID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusOK)
}
