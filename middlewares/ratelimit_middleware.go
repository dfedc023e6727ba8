package middlewares

import (
	"net/http"
	"strconv"

	"gin-catalog/apperrors"
	"gin-catalog/constants"
	"gin-catalog/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware counts the request against its (endpoint, caller)
// window and attaches the X-RateLimit-* metadata to every response, throttled
// or not.
func RateLimitMiddleware(limiter *ratelimit.Limiter) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		endpoint := ctx.Request.Method + " " + ctx.FullPath()
		result, err := limiter.Check(ctx.Request.Context(), endpoint, ctx.ClientIP())
		if err != nil {
			appErr := apperrors.New(apperrors.Unavailable, constants.ErrCounterDown)
			ctx.AbortWithStatusJSON(apperrors.HTTPStatus(appErr.Kind), gin.H{"error": appErr.Message})
			return
		}

		header := ctx.Writer.Header()
		header.Set(constants.HeaderRateLimitRemaining, strconv.FormatInt(result.Remaining, 10))
		header.Set(constants.HeaderRateLimitLimit, strconv.FormatInt(result.Limit, 10))
		header.Set(constants.HeaderRateLimitReset, strconv.FormatInt(result.Reset, 10))

		if !result.Allowed {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": constants.ErrRateLimited})
			return
		}

		ctx.Next()
	}
}
