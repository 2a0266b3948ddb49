package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Vendora/internal/domain/entity"
	httpdto "github.com/mikiasgoitom/Vendora/internal/handler/http/dto"
	"github.com/mikiasgoitom/Vendora/internal/infrastructure/jwt"
)

const actorContextKey = "actor"

// RequireActor rejects requests without a valid bearer token and stores the
// authenticated actor on the gin context.
func RequireActor(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := actorFromHeader(c, manager)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpdto.ErrorResponse{Error: "missing or invalid access token"})
			return
		}
		c.Set(actorContextKey, actor)
		c.Next()
	}
}

// OptionalActor stores the actor on the context when a valid bearer token is
// present and lets anonymous requests through. A malformed token is still
// rejected rather than silently downgraded to anonymous.
func OptionalActor(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		actor, ok := actorFromHeader(c, manager)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpdto.ErrorResponse{Error: "invalid access token"})
			return
		}
		c.Set(actorContextKey, actor)
		c.Next()
	}
}

// ActorFrom returns the authenticated actor stored by the middleware, or
// nil for anonymous requests.
func ActorFrom(c *gin.Context) *entity.Actor {
	value, exists := c.Get(actorContextKey)
	if !exists {
		return nil
	}
	actor, ok := value.(*entity.Actor)
	if !ok {
		return nil
	}
	return actor
}

func actorFromHeader(c *gin.Context, manager *jwt.Manager) (*entity.Actor, bool) {
	header := c.GetHeader("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return nil, false
	}
	actor, err := manager.VerifyActorToken(token)
	if err != nil {
		return nil, false
	}
	return actor, true
}
