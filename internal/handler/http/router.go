package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mikiasgoitom/Vendora/internal/handler/http/middleware"
	"github.com/mikiasgoitom/Vendora/internal/infrastructure/jwt"
	usecasecontract "github.com/mikiasgoitom/Vendora/internal/usecase/contract"
)

type Router struct {
	interactionHandler *InteractionHandler
	commentHandler     *CommentHandler
	shareHandler       *ShareHandler
	jwtManager         *jwt.Manager
}

func NewRouter(
	likeUsecase usecasecontract.ILikeUseCase,
	commentUsecase usecasecontract.ICommentUseCase,
	shareUsecase usecasecontract.IShareUseCase,
	jwtManager *jwt.Manager,
) *Router {
	return &Router{
		interactionHandler: NewInteractionHandler(likeUsecase),
		commentHandler:     NewCommentHandler(commentUsecase),
		shareHandler:       NewShareHandler(shareUsecase),
		jwtManager:         jwtManager,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	// Read routes; the viewer is optional and only affects is_liked flags.
	public := v1.Group("/")
	public.Use(middleware.OptionalActor(r.jwtManager))
	{
		public.GET("/posts/:postID/comments", r.commentHandler.GetCommentTreeHandler)
		public.GET("/posts/:postID/likes", r.interactionHandler.ListPostLikersHandler)
		public.GET("/posts/:postID/shares", r.shareHandler.ListSharesHandler)
		public.GET("/comments/:commentID/likes", r.interactionHandler.ListCommentLikersHandler)
	}

	// Write routes require an authenticated actor.
	protected := v1.Group("/")
	protected.Use(middleware.RequireActor(r.jwtManager))
	{
		protected.POST("/posts/:postID/like", r.interactionHandler.TogglePostLikeHandler)
		protected.POST("/posts/:postID/comments", r.commentHandler.CreateCommentHandler)
		protected.POST("/posts/:postID/share", r.shareHandler.SharePostHandler)
		protected.POST("/comments/:commentID/like", r.interactionHandler.ToggleCommentLikeHandler)
	}
}
