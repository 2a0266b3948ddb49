package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/Vendora/internal/domain/entity"
	"github.com/mikiasgoitom/Vendora/internal/dto"
	usecasecontract "github.com/mikiasgoitom/Vendora/internal/usecase/contract"
)

// MockLikeUsecase is a mock implementation of the ILikeUseCase interface
type MockLikeUsecase struct {
	// Control mock behavior
	ShouldFailTogglePostLike    bool
	ShouldFailToggleCommentLike bool
	ShouldFailListPostLikers    bool
	ShouldFailListCommentLikers bool

	// FailWith overrides the error returned by failing calls so tests can
	// exercise the status mapping.
	FailWith error

	// Return values
	MockToggle *dto.ToggleLikeResponse
	MockLikers *dto.LikersResponse

	// Captured arguments
	LastActor    entity.Actor
	LastTargetID string
}

var _ usecasecontract.ILikeUseCase = (*MockLikeUsecase)(nil)

func NewMockLikeUsecase() *MockLikeUsecase {
	return &MockLikeUsecase{
		MockToggle: &dto.ToggleLikeResponse{Liked: true, LikeCount: 1},
		MockLikers: &dto.LikersResponse{Likers: []*dto.ActorResponse{
			{ID: "mock-user-id", Kind: "user", Name: "Test User"},
		}},
	}
}

func (m *MockLikeUsecase) fail() error {
	if m.FailWith != nil {
		return m.FailWith
	}
	return errors.New("like usecase failed")
}

func (m *MockLikeUsecase) TogglePostLike(ctx context.Context, actor entity.Actor, postID string) (*dto.ToggleLikeResponse, error) {
	m.LastActor, m.LastTargetID = actor, postID
	if m.ShouldFailTogglePostLike {
		return nil, m.fail()
	}
	return m.MockToggle, nil
}

func (m *MockLikeUsecase) ToggleCommentLike(ctx context.Context, actor entity.Actor, commentID string) (*dto.ToggleLikeResponse, error) {
	m.LastActor, m.LastTargetID = actor, commentID
	if m.ShouldFailToggleCommentLike {
		return nil, m.fail()
	}
	return m.MockToggle, nil
}

func (m *MockLikeUsecase) ListPostLikers(ctx context.Context, postID string) (*dto.LikersResponse, error) {
	m.LastTargetID = postID
	if m.ShouldFailListPostLikers {
		return nil, m.fail()
	}
	return m.MockLikers, nil
}

func (m *MockLikeUsecase) ListCommentLikers(ctx context.Context, commentID string, page, pageSize int) (*dto.LikersResponse, error) {
	m.LastTargetID = commentID
	if m.ShouldFailListCommentLikers {
		return nil, m.fail()
	}
	return m.MockLikers, nil
}
