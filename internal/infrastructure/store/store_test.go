package store_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Vendora/internal/domain/entity"
	"github.com/mikiasgoitom/Vendora/internal/infrastructure/store"
)

func TestGetProfileMiss(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cache := store.NewProfileCacheStore(rdb)

	mock.ExpectGet("profile:user:u1").RedisNil()

	profile, ok, err := cache.GetProfile(context.Background(), entity.Actor{ID: "u1", Kind: entity.ActorKindUser})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, profile)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProfileHit(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cache := store.NewProfileCacheStore(rdb)

	want := &entity.ActorProfile{ID: "s1", Kind: entity.ActorKindShop, Name: "Addis Leather"}
	data, err := json.Marshal(want)
	require.NoError(t, err)
	mock.ExpectGet("profile:shop:s1").SetVal(string(data))

	got, ok, err := cache.GetProfile(context.Background(), entity.Actor{ID: "s1", Kind: entity.ActorKindShop})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetProfile(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cache := store.NewProfileCacheStore(rdb)

	profile := &entity.ActorProfile{ID: "u2", Kind: entity.ActorKindUser, Name: "Hana Bekele"}
	data, err := json.Marshal(profile)
	require.NoError(t, err)
	mock.ExpectSet("profile:user:u2", data, 30*time.Minute).SetVal("OK")

	require.NoError(t, cache.SetProfile(context.Background(), profile))
	assert.NoError(t, mock.ExpectationsWereMet())
}
