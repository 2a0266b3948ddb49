package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appdto "github.com/mikiasgoitom/Vendora/internal/dto"
	"github.com/mikiasgoitom/Vendora/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/Vendora/internal/usecase/contract"
)

type ShareHandler struct {
	shareUsecase usecasecontract.IShareUseCase
}

func NewShareHandler(shareUsecase usecasecontract.IShareUseCase) *ShareHandler {
	return &ShareHandler{
		shareUsecase: shareUsecase,
	}
}

// SharePostHandler creates a share-post referencing the source post.
func (h *ShareHandler) SharePostHandler(c *gin.Context) {
	postID := c.Param("postID")
	actor := middleware.ActorFrom(c)
	if actor == nil {
		ErrorHandler(c, http.StatusUnauthorized, "actor not authenticated")
		return
	}

	var req appdto.SharePostRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	result, err := h.shareUsecase.SharePost(c.Request.Context(), *actor, postID, req)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, result)
}

// ListSharesHandler pages through the share-posts of a post.
func (h *ShareHandler) ListSharesHandler(c *gin.Context) {
	postID := c.Param("postID")
	page, pageSize := pageParams(c)

	result, err := h.shareUsecase.ListShares(c.Request.Context(), postID, page, pageSize)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, result)
}
