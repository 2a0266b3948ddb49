package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Vendora/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/Vendora/internal/usecase/contract"
)

type InteractionHandler struct {
	likeUsecase usecasecontract.ILikeUseCase
}

func NewInteractionHandler(likeUsecase usecasecontract.ILikeUseCase) *InteractionHandler {
	return &InteractionHandler{
		likeUsecase: likeUsecase,
	}
}

// TogglePostLikeHandler flips the caller's like on a post and reports the
// resulting state and count.
func (h *InteractionHandler) TogglePostLikeHandler(c *gin.Context) {
	postID := c.Param("postID")
	actor := middleware.ActorFrom(c)
	if actor == nil {
		ErrorHandler(c, http.StatusUnauthorized, "actor not authenticated")
		return
	}

	result, err := h.likeUsecase.TogglePostLike(c.Request.Context(), *actor, postID)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, result)
}

// ToggleCommentLikeHandler flips the caller's like on a comment.
func (h *InteractionHandler) ToggleCommentLikeHandler(c *gin.Context) {
	commentID := c.Param("commentID")
	actor := middleware.ActorFrom(c)
	if actor == nil {
		ErrorHandler(c, http.StatusUnauthorized, "actor not authenticated")
		return
	}

	result, err := h.likeUsecase.ToggleCommentLike(c.Request.Context(), *actor, commentID)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, result)
}

// ListPostLikersHandler returns the resolved profiles of every actor
// currently liking the post.
func (h *InteractionHandler) ListPostLikersHandler(c *gin.Context) {
	postID := c.Param("postID")

	result, err := h.likeUsecase.ListPostLikers(c.Request.Context(), postID)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, result)
}

// ListCommentLikersHandler pages through the comment's likers.
func (h *InteractionHandler) ListCommentLikersHandler(c *gin.Context) {
	commentID := c.Param("commentID")
	page, pageSize := pageParams(c)

	result, err := h.likeUsecase.ListCommentLikers(c.Request.Context(), commentID, page, pageSize)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, result)
}

// pageParams reads page/page_size query parameters. Unparseable values fall
// back to zero and are normalized downstream.
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))
	return page, pageSize
}
