package contract

import (
	"context"

	"github.com/mikiasgoitom/Vendora/internal/domain/entity"
)

// IInteractionRepository is the append-only interaction event store plus
// the post-like toggle that keeps event membership and the post's
// likes_count in step.
type IInteractionRepository interface {
	// TogglePostLike flips the presence of the actor's like event on the
	// post and adjusts the post's likes_count by the matching delta inside
	// one transaction. It returns the new state and the updated count.
	TogglePostLike(ctx context.Context, actor entity.Actor, postID string) (liked bool, newCount int64, err error)

	// HasLiked reports whether a live like event exists for the tuple.
	HasLiked(ctx context.Context, actor entity.Actor, targetType entity.TargetType, targetID string) (bool, error)

	// ListLikers returns the authors of the live like events on a target,
	// newest first.
	ListLikers(ctx context.Context, targetType entity.TargetType, targetID string) ([]entity.Actor, error)
}
