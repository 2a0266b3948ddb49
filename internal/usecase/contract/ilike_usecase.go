package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Vendora/internal/domain/entity"
	"github.com/mikiasgoitom/Vendora/internal/dto"
)

// ILikeUseCase is the like-toggle state machine for posts and comments.
// Toggles are idempotent under pairs: two calls by the same actor on the
// same target return the state and count to their original values.
type ILikeUseCase interface {
	TogglePostLike(ctx context.Context, actor entity.Actor, postID string) (*dto.ToggleLikeResponse, error)
	ToggleCommentLike(ctx context.Context, actor entity.Actor, commentID string) (*dto.ToggleLikeResponse, error)

	ListPostLikers(ctx context.Context, postID string) (*dto.LikersResponse, error)
	ListCommentLikers(ctx context.Context, commentID string, page, pageSize int) (*dto.LikersResponse, error)
}
