package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/mikiasgoitom/Vendora/internal/domain/entity"
	"github.com/mikiasgoitom/Vendora/internal/dto"
	usecasecontract "github.com/mikiasgoitom/Vendora/internal/usecase/contract"
)

// MockShareUsecase is a mock implementation of the IShareUseCase interface
type MockShareUsecase struct {
	// Control mock behavior
	ShouldFailSharePost  bool
	ShouldFailListShares bool

	FailWith error

	// Return values
	MockShare  *dto.PostResponse
	MockShares *dto.SharesResponse

	// Captured arguments
	LastActor  entity.Actor
	LastPostID string
}

var _ usecasecontract.IShareUseCase = (*MockShareUsecase)(nil)

func NewMockShareUsecase() *MockShareUsecase {
	source := "mock-post-id"
	share := &dto.PostResponse{
		ID:         "mock-share-id",
		Author:     dto.ActorResponse{ID: "mock-user-id", Kind: "user", Name: "Test User"},
		Content:    "look at this",
		Privacy:    "public",
		Type:       "share",
		SharedPost: &source,
		CreatedAt:  time.Now(),
	}
	return &MockShareUsecase{
		MockShare: share,
		MockShares: &dto.SharesResponse{
			Shares: []*dto.PostResponse{share},
			Pagination: dto.PaginationMeta{
				CurrentPage: 1, PageSize: 20, TotalItems: 1, TotalPages: 1,
			},
		},
	}
}

func (m *MockShareUsecase) fail() error {
	if m.FailWith != nil {
		return m.FailWith
	}
	return errors.New("share usecase failed")
}

func (m *MockShareUsecase) SharePost(ctx context.Context, actor entity.Actor, postID string, req dto.SharePostRequest) (*dto.PostResponse, error) {
	m.LastActor, m.LastPostID = actor, postID
	if m.ShouldFailSharePost {
		return nil, m.fail()
	}
	return m.MockShare, nil
}

func (m *MockShareUsecase) ListShares(ctx context.Context, postID string, page, pageSize int) (*dto.SharesResponse, error) {
	m.LastPostID = postID
	if m.ShouldFailListShares {
		return nil, m.fail()
	}
	return m.MockShares, nil
}
