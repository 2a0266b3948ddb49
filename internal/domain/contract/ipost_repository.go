package contract

import (
	"context"

	"github.com/mikiasgoitom/Vendora/internal/domain/entity"
)

// IPostRepository stores posts and their denormalized interaction counters.
type IPostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)

	// CreateShare inserts the share-post, records the share interaction
	// event and increments the source post's shares_count as one atomic
	// unit. The event's metadata carries the new post's id.
	CreateShare(ctx context.Context, share *entity.Post, event *entity.InteractionEvent) error

	// ListShares returns the share-posts referencing the given post,
	// newest first.
	ListShares(ctx context.Context, postID string, pagination Pagination) ([]*entity.Post, int64, error)
}
