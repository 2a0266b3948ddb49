package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mikiasgoitom/Vendora/internal/domain/contract"
	"github.com/mikiasgoitom/Vendora/internal/domain/entity"
	"github.com/mikiasgoitom/Vendora/internal/dto"
	"github.com/mikiasgoitom/Vendora/internal/infrastructure/validator"
	usecasecontract "github.com/mikiasgoitom/Vendora/internal/usecase/contract"
)

func newShareFixture() (*memWorld, usecasecontract.IShareUseCase) {
	world := newMemWorld()
	cfg := newTestConfig()
	uc := NewShareUseCase(world, world, validator.NewValidator(cfg.GetMaxCommentLength()), &seqUUID{}, cfg, nopLogger{})
	return world, uc
}

func TestSharePost_LinksSourceAndBumpsCounter(t *testing.T) {
	world, uc := newShareFixture()
	alice := world.addUser("u1", "Alice")
	bob := world.addUser("u2", "Bob")
	world.addPost("p1", alice)

	share, err := uc.SharePost(context.Background(), bob, "p1", dto.SharePostRequest{Content: "look at this"})
	assert.NoError(t, err)
	assert.NotEmpty(t, share.ID)
	assert.Equal(t, "share", share.Type)
	assert.Equal(t, "public", share.Privacy)
	assert.Equal(t, "Bob", share.Author.Name)
	if assert.NotNil(t, share.SharedPost) {
		assert.Equal(t, "p1", *share.SharedPost)
	}

	source, _ := world.GetByID(context.Background(), "p1")
	assert.Equal(t, int64(1), source.SharesCount)

	// The share event is recorded against the source post and references
	// the new share-post.
	world.mu.Lock()
	defer world.mu.Unlock()
	var found *entity.InteractionEvent
	for _, ev := range world.events {
		if ev.Action == entity.ActionShare && ev.TargetID == "p1" {
			found = ev
		}
	}
	if assert.NotNil(t, found) {
		assert.Equal(t, share.ID, found.Metadata["shared_post_id"])
	}
}

func TestSharePost_RejectsUnknownPrivacy(t *testing.T) {
	world, uc := newShareFixture()
	alice := world.addUser("u1", "Alice")
	world.addPost("p1", alice)

	_, err := uc.SharePost(context.Background(), alice, "p1", dto.SharePostRequest{Privacy: "everyone"})
	assert.ErrorIs(t, err, contract.ErrValidation)
}

func TestSharePost_SourceNotFound(t *testing.T) {
	world, uc := newShareFixture()
	alice := world.addUser("u1", "Alice")

	_, err := uc.SharePost(context.Background(), alice, "missing", dto.SharePostRequest{})
	assert.ErrorIs(t, err, contract.ErrPostNotFound)
}

func TestListShares_NewestFirstWithResolvedAuthors(t *testing.T) {
	world, uc := newShareFixture()
	alice := world.addUser("u1", "Alice")
	shop := world.addShop("s1", "Gadget Shop")
	world.addPost("p1", alice)

	_, err := uc.SharePost(context.Background(), alice, "p1", dto.SharePostRequest{Content: "mine"})
	assert.NoError(t, err)
	_, err = uc.SharePost(context.Background(), shop, "p1", dto.SharePostRequest{Content: "ours", Privacy: "followers"})
	assert.NoError(t, err)

	result, err := uc.ListShares(context.Background(), "p1", 1, 10)
	assert.NoError(t, err)
	assert.Len(t, result.Shares, 2)
	assert.Equal(t, "Gadget Shop", result.Shares[0].Author.Name)
	assert.Equal(t, "followers", result.Shares[0].Privacy)
	assert.Equal(t, "Alice", result.Shares[1].Author.Name)
	assert.Equal(t, int64(2), result.Pagination.TotalItems)
}

func TestListShares_PostNotFound(t *testing.T) {
	_, uc := newShareFixture()

	_, err := uc.ListShares(context.Background(), "missing", 1, 10)
	assert.ErrorIs(t, err, contract.ErrPostNotFound)
}
