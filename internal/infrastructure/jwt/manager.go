package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mikiasgoitom/Vendora/internal/domain/entity"
)

var ErrInvalidToken = errors.New("invalid token")

// ActorClaims are the claims this backend consumes from the identity
// service's access tokens: the subject is the actor id and "kind"
// distinguishes users from shops.
type ActorClaims struct {
	Kind string `json:"kind"`
	jwt.RegisteredClaims
}

// Manager signs and verifies actor tokens. Issuing lives with the identity
// service; the generate path here exists for tests and local tooling.
type Manager struct {
	secret []byte
	expiry time.Duration
}

// NewManager creates a Manager with the shared HMAC secret.
func NewManager(secret string, expiry time.Duration) *Manager {
	return &Manager{secret: []byte(secret), expiry: expiry}
}

// GenerateActorToken issues a signed token for the given actor.
func (m *Manager) GenerateActorToken(actor entity.Actor) (string, error) {
	now := time.Now()
	claims := ActorClaims{
		Kind: string(actor.Kind),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// VerifyActorToken validates a token and resolves it into an Actor.
func (m *Manager) VerifyActorToken(tokenStr string) (*entity.Actor, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &ActorClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %v", ErrInvalidToken, t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*ActorClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	kind := entity.ActorKind(claims.Kind)
	if kind != entity.ActorKindUser && kind != entity.ActorKindShop {
		return nil, fmt.Errorf("%w: unknown actor kind %q", ErrInvalidToken, claims.Kind)
	}
	return &entity.Actor{ID: claims.Subject, Kind: kind}, nil
}
