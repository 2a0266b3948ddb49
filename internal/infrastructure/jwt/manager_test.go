package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Vendora/internal/domain/entity"
	"github.com/mikiasgoitom/Vendora/internal/infrastructure/jwt"
)

func TestActorTokenRoundTrip(t *testing.T) {
	mgr := jwt.NewManager("test-secret", time.Hour)

	token, err := mgr.GenerateActorToken(entity.Actor{ID: "shop-7", Kind: entity.ActorKindShop})
	require.NoError(t, err)

	actor, err := mgr.VerifyActorToken(token)
	require.NoError(t, err)
	assert.Equal(t, "shop-7", actor.ID)
	assert.Equal(t, entity.ActorKindShop, actor.Kind)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := jwt.NewManager("secret-a", time.Hour).
		GenerateActorToken(entity.Actor{ID: "u1", Kind: entity.ActorKindUser})
	require.NoError(t, err)

	_, err = jwt.NewManager("secret-b", time.Hour).VerifyActorToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestVerifyRejectsUnknownKind(t *testing.T) {
	mgr := jwt.NewManager("test-secret", time.Hour)
	token, err := mgr.GenerateActorToken(entity.Actor{ID: "x", Kind: entity.ActorKind("bot")})
	require.NoError(t, err)

	_, err = mgr.VerifyActorToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
