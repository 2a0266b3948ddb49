package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mikiasgoitom/Vendora/internal/domain/contract"
	"github.com/mikiasgoitom/Vendora/internal/domain/entity"
)

// ActorDirectory resolves actors into display profiles from the users and
// shops collections, with an optional Redis-backed profile cache in front.
type ActorDirectory struct {
	users *mongo.Collection
	shops *mongo.Collection
	cache contract.IProfileCache
}

func NewActorDirectory(db *mongo.Database) *ActorDirectory {
	return &ActorDirectory{
		users: db.Collection("users"),
		shops: db.Collection("shops"),
	}
}

// SetProfileCache enables the read-through profile cache.
func (d *ActorDirectory) SetProfileCache(cache contract.IProfileCache) {
	d.cache = cache
}

func (d *ActorDirectory) GetUserProfile(ctx context.Context, id string) (*entity.ActorProfile, error) {
	actor := entity.Actor{ID: id, Kind: entity.ActorKindUser}
	if profile := d.cached(ctx, actor); profile != nil {
		return profile, nil
	}

	var user entity.User
	err := d.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	profile := user.Profile()
	d.remember(ctx, profile)
	return profile, nil
}

func (d *ActorDirectory) GetShopProfile(ctx context.Context, id string) (*entity.ActorProfile, error) {
	actor := entity.Actor{ID: id, Kind: entity.ActorKindShop}
	if profile := d.cached(ctx, actor); profile != nil {
		return profile, nil
	}

	var shop entity.Shop
	err := d.shops.FindOne(ctx, bson.M{"_id": id}).Decode(&shop)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrShopNotFound
		}
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}

	profile := shop.Profile()
	d.remember(ctx, profile)
	return profile, nil
}

func (d *ActorDirectory) Resolve(ctx context.Context, actor entity.Actor) (*entity.ActorProfile, error) {
	switch actor.Kind {
	case entity.ActorKindUser:
		return d.GetUserProfile(ctx, actor.ID)
	case entity.ActorKindShop:
		return d.GetShopProfile(ctx, actor.ID)
	default:
		return nil, fmt.Errorf("unknown actor kind %q", actor.Kind)
	}
}

// ResolveMany resolves a batch of actors. Actors that cannot be resolved
// are absent from the result rather than failing the whole batch.
func (d *ActorDirectory) ResolveMany(ctx context.Context, actors []entity.Actor) (map[string]*entity.ActorProfile, error) {
	profiles := make(map[string]*entity.ActorProfile, len(actors))
	for _, actor := range actors {
		if _, ok := profiles[actor.Key()]; ok {
			continue
		}
		profile, err := d.Resolve(ctx, actor)
		if err != nil {
			continue
		}
		profiles[actor.Key()] = profile
	}
	return profiles, nil
}

// cache helpers; both are best-effort.
func (d *ActorDirectory) cached(ctx context.Context, actor entity.Actor) *entity.ActorProfile {
	if d.cache == nil {
		return nil
	}
	profile, ok, err := d.cache.GetProfile(ctx, actor)
	if err != nil || !ok {
		return nil
	}
	return profile
}

func (d *ActorDirectory) remember(ctx context.Context, profile *entity.ActorProfile) {
	if d.cache == nil {
		return
	}
	_ = d.cache.SetProfile(ctx, profile)
}

var _ contract.IActorDirectory = (*ActorDirectory)(nil)
