package middlewares

import (
	"crypto/subtle"
	"net/http"

	"gin-catalog/constants"

	"github.com/gin-gonic/gin"
)

// StateTokenMiddleware guards mutating requests against cross-site replay:
// the caller must echo the session's anti-forgery state token in
// X-State-Token. Must run after AuthMiddleware.
func StateTokenMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		minted, exists := ctx.Get(ContextStateToken)
		state, ok := minted.(string)
		if !exists || !ok || state == "" {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Missing session state"})
			return
		}

		presented := ctx.GetHeader(constants.HeaderStateToken)
		if presented == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(state)) != 1 {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid state token"})
			return
		}

		ctx.Next()
	}
}
