package middleware

import (
	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-gonic/gin"

	httpdto "github.com/mikiasgoitom/Vendora/internal/handler/http/dto"
)

// RateLimiter enforces the tollbooth limiter on every request.
func RateLimiter(lmt *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if httpError := tollbooth.LimitByRequest(lmt, c.Writer, c.Request); httpError != nil {
			c.AbortWithStatusJSON(httpError.StatusCode, httpdto.ErrorResponse{Error: httpError.Message})
			return
		}
		c.Next()
	}
}
