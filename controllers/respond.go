package controllers

import (
	"log"
	"net/http"
	"strconv"

	"gin-catalog/apperrors"
	"gin-catalog/constants"
	"gin-catalog/middlewares"
	"gin-catalog/models"

	"github.com/gin-gonic/gin"
)

// respondError maps a typed pipeline error onto an HTTP response. Untyped
// errors become a generic 500 so storage details never leak to the caller.
func respondError(ctx *gin.Context, err error) {
	if appErr, ok := err.(*apperrors.AppError); ok {
		body := gin.H{"error": appErr.Message}
		if appErr.Field != "" {
			body["field"] = appErr.Field
		}
		ctx.JSON(apperrors.HTTPStatus(appErr.Kind), body)
		return
	}
	log.Printf("Unexpected error: %v", err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
}

func currentOwner(ctx *gin.Context) (*models.Owner, bool) {
	value, exists := ctx.Get(middlewares.ContextOwner)
	if !exists {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return nil, false
	}
	owner, ok := value.(*models.Owner)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return nil, false
	}
	return owner, true
}

func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return 0, false
	}
	return uint(id), true
}
