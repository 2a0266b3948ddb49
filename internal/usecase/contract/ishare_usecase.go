package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Vendora/internal/domain/entity"
	"github.com/mikiasgoitom/Vendora/internal/dto"
)

type IShareUseCase interface {
	// SharePost creates a share-post referencing the source post, records
	// the share event and bumps the source's shares_count.
	SharePost(ctx context.Context, actor entity.Actor, postID string, req dto.SharePostRequest) (*dto.PostResponse, error)

	// ListShares returns the share-posts of a post with resolved authors.
	ListShares(ctx context.Context, postID string, page, pageSize int) (*dto.SharesResponse, error)
}
