package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/Vendora/internal/domain/contract"
	"github.com/mikiasgoitom/Vendora/internal/domain/entity"
)

// ProfileCacheStore caches resolved actor profiles in Redis so liker lists
// and comment trees do not hit the users/shops collections on every read.
type ProfileCacheStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewProfileCacheStore(rdb *redis.Client) *ProfileCacheStore {
	return &ProfileCacheStore{
		rdb: rdb,
		ttl: 30 * time.Minute,
	}
}

func profileKey(kind entity.ActorKind, id string) string {
	return fmt.Sprintf("profile:%s:%s", kind, id)
}

func (c *ProfileCacheStore) GetProfile(ctx context.Context, actor entity.Actor) (*entity.ActorProfile, bool, error) {
	b, err := c.rdb.Get(ctx, profileKey(actor.Kind, actor.ID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var profile entity.ActorProfile
	if err := json.Unmarshal(b, &profile); err != nil {
		return nil, false, nil
	}
	return &profile, true, nil
}

func (c *ProfileCacheStore) SetProfile(ctx context.Context, profile *entity.ActorProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, profileKey(profile.Kind, profile.ID), data, c.ttl).Err()
}

func (c *ProfileCacheStore) InvalidateProfile(ctx context.Context, actor entity.Actor) error {
	return c.rdb.Del(ctx, profileKey(actor.Kind, actor.ID)).Err()
}

var _ contract.IProfileCache = (*ProfileCacheStore)(nil)
