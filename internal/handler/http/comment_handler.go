package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appdto "github.com/mikiasgoitom/Vendora/internal/dto"
	"github.com/mikiasgoitom/Vendora/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/Vendora/internal/usecase/contract"
)

type CommentHandler struct {
	commentUsecase usecasecontract.ICommentUseCase
}

func NewCommentHandler(commentUsecase usecasecontract.ICommentUseCase) *CommentHandler {
	return &CommentHandler{
		commentUsecase: commentUsecase,
	}
}

// CreateCommentHandler creates a root comment or, when parent_id is set, a
// reply under the given post.
func (h *CommentHandler) CreateCommentHandler(c *gin.Context) {
	postID := c.Param("postID")
	actor := middleware.ActorFrom(c)
	if actor == nil {
		ErrorHandler(c, http.StatusUnauthorized, "actor not authenticated")
		return
	}

	var req appdto.CreateCommentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	result, err := h.commentUsecase.CreateComment(c.Request.Context(), *actor, postID, req)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, result)
}

// GetCommentTreeHandler returns one page of the post's comment tree. The
// viewer is optional; anonymous reads get every is_liked flag as false.
func (h *CommentHandler) GetCommentTreeHandler(c *gin.Context) {
	postID := c.Param("postID")
	viewer := middleware.ActorFrom(c)
	sortBy := c.DefaultQuery("sort", usecasecontract.SortNewest)
	page, pageSize := pageParams(c)

	result, err := h.commentUsecase.GetCommentTree(c.Request.Context(), postID, viewer, sortBy, page, pageSize)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, result)
}
