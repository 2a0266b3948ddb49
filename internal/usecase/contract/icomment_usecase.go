package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Vendora/internal/domain/entity"
	"github.com/mikiasgoitom/Vendora/internal/dto"
)

// Comment tree sort policies.
const (
	SortNewest = "newest"
	SortOldest = "oldest"
	SortTop    = "top"
)

type ICommentUseCase interface {
	// CreateComment creates a root comment (nil ParentID) or a reply and
	// records the matching interaction event.
	CreateComment(ctx context.Context, actor entity.Actor, postID string, req dto.CreateCommentRequest) (*dto.CreateCommentResponse, error)

	// GetCommentTree reconstructs one page of the post's comment tree,
	// merged with the viewer's like state. A nil viewer is an anonymous
	// read: every is_liked flag is false.
	GetCommentTree(ctx context.Context, postID string, viewer *entity.Actor, sortBy string, page, pageSize int) (*dto.CommentTreeResponse, error)
}
