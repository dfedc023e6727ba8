package middlewares

import (
	"net/http"
	"strings"

	"gin-catalog/services"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware for downstream stages and handlers.
const (
	ContextOwner      = "owner"
	ContextStateToken = "stateToken"
)

func AuthMiddleware(authService services.IAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		owner, state, err := authService.GetOwnerFromToken(ctx.Request.Context(), tokenString)
		if err != nil {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		ctx.Set(ContextOwner, owner)
		ctx.Set(ContextStateToken, state)

		ctx.Next()
	}
}
