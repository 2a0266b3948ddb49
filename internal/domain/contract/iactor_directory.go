package contract

import (
	"context"

	"github.com/mikiasgoitom/Vendora/internal/domain/entity"
)

// IActorDirectory resolves actors into human-readable profiles (full name
// for users, shop name for shops). It is a projection concern consumed by
// response shaping, not part of the aggregation core.
type IActorDirectory interface {
	GetUserProfile(ctx context.Context, id string) (*entity.ActorProfile, error)
	GetShopProfile(ctx context.Context, id string) (*entity.ActorProfile, error)

	// Resolve returns the profile for a single actor, dispatching on kind.
	Resolve(ctx context.Context, actor entity.Actor) (*entity.ActorProfile, error)

	// ResolveMany resolves a batch of actors, keyed by Actor.Key(). Actors
	// that cannot be resolved are simply absent from the result.
	ResolveMany(ctx context.Context, actors []entity.Actor) (map[string]*entity.ActorProfile, error)
}
