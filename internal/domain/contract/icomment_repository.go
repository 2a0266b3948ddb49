package contract

import (
	"context"

	"github.com/mikiasgoitom/Vendora/internal/domain/entity"
)

type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// ICommentRepository is the flat storage of comment nodes. The tree
// assembler relies on the three fetch shapes below (roots, children of a
// parent set, everything deeper) plus live reply counts.
type ICommentRepository interface {
	// CreateWithEvent inserts the comment node, records its comment-action
	// interaction event and, for root comments, increments the parent
	// post's comments_count, as one atomic unit. For root comments the
	// returned count is the post's new comment total; for replies it is
	// zero and the caller derives the reply count with CountReplies.
	CreateWithEvent(ctx context.Context, comment *entity.Comment, event *entity.InteractionEvent) (int64, error)

	GetByID(ctx context.Context, id string) (*entity.Comment, error)

	// GetRoots returns every root comment of the post, newest first.
	GetRoots(ctx context.Context, postID string) ([]*entity.Comment, error)

	// GetByParentIDs returns all direct children of the given parents in
	// ascending creation order.
	GetByParentIDs(ctx context.Context, parentIDs []string) ([]*entity.Comment, error)

	// GetDeepReplies returns every comment of the post whose parent is not
	// in rootIDs (tier 3 and deeper), in ascending creation order so a
	// parent always precedes its children.
	GetDeepReplies(ctx context.Context, postID string, rootIDs []string) ([]*entity.Comment, error)

	// CountReplies returns the live number of direct children of a comment.
	CountReplies(ctx context.Context, parentID string) (int64, error)

	// ToggleLike flips the actor's membership in the comment's like ledger
	// and returns the new state plus the resulting like total. Each branch
	// of the toggle is a single atomic document operation.
	ToggleLike(ctx context.Context, commentID, actorID string) (liked bool, total int, err error)
}
