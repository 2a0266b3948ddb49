package contract

import (
	"context"

	"github.com/mikiasgoitom/Vendora/internal/domain/entity"
)

// IProfileCache caches resolved actor profiles so liker lists and comment
// trees do not hit the users/shops collections on every request. A miss is
// (nil, false, nil).
type IProfileCache interface {
	GetProfile(ctx context.Context, actor entity.Actor) (*entity.ActorProfile, bool, error)
	SetProfile(ctx context.Context, profile *entity.ActorProfile) error
	InvalidateProfile(ctx context.Context, actor entity.Actor) error
}
