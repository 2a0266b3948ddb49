package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/mikiasgoitom/Vendora/internal/domain/entity"
	"github.com/mikiasgoitom/Vendora/internal/dto"
	usecasecontract "github.com/mikiasgoitom/Vendora/internal/usecase/contract"
)

// MockCommentUsecase is a mock implementation of the ICommentUseCase interface
type MockCommentUsecase struct {
	// Control mock behavior
	ShouldFailCreateComment  bool
	ShouldFailGetCommentTree bool

	FailWith error

	// Return values
	MockCreated *dto.CreateCommentResponse
	MockTree    *dto.CommentTreeResponse

	// Captured arguments
	LastActor  entity.Actor
	LastViewer *entity.Actor
	LastPostID string
	LastSortBy string
}

var _ usecasecontract.ICommentUseCase = (*MockCommentUsecase)(nil)

func NewMockCommentUsecase() *MockCommentUsecase {
	comment := &dto.CommentResponse{
		ID:     "mock-comment-id",
		PostID: "mock-post-id",
		Author: dto.ActorResponse{ID: "mock-user-id", Kind: "user", Name: "Test User"},
		Text:   "a comment",
		Replies: []*dto.CommentResponse{
			{
				ID:        "mock-reply-id",
				PostID:    "mock-post-id",
				Author:    dto.ActorResponse{ID: "mock-shop-id", Kind: "shop", Name: "Test Shop"},
				Text:      "a reply",
				Replies:   []*dto.CommentResponse{},
				CreatedAt: time.Now(),
			},
		},
		CreatedAt: time.Now(),
	}
	return &MockCommentUsecase{
		MockCreated: &dto.CreateCommentResponse{Comment: comment, CommentCount: 1},
		MockTree: &dto.CommentTreeResponse{
			Comments: []*dto.CommentResponse{comment},
			Pagination: dto.PaginationMeta{
				CurrentPage: 1, PageSize: 20, TotalItems: 1, TotalPages: 1,
			},
		},
	}
}

func (m *MockCommentUsecase) fail() error {
	if m.FailWith != nil {
		return m.FailWith
	}
	return errors.New("comment usecase failed")
}

func (m *MockCommentUsecase) CreateComment(ctx context.Context, actor entity.Actor, postID string, req dto.CreateCommentRequest) (*dto.CreateCommentResponse, error) {
	m.LastActor, m.LastPostID = actor, postID
	if m.ShouldFailCreateComment {
		return nil, m.fail()
	}
	return m.MockCreated, nil
}

func (m *MockCommentUsecase) GetCommentTree(ctx context.Context, postID string, viewer *entity.Actor, sortBy string, page, pageSize int) (*dto.CommentTreeResponse, error) {
	m.LastPostID, m.LastViewer, m.LastSortBy = postID, viewer, sortBy
	if m.ShouldFailGetCommentTree {
		return nil, m.fail()
	}
	return m.MockTree, nil
}
