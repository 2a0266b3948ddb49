package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/mikiasgoitom/Vendora/internal/domain/contract"
	"github.com/mikiasgoitom/Vendora/internal/domain/entity"
	"github.com/mikiasgoitom/Vendora/internal/dto"
	"github.com/mikiasgoitom/Vendora/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/Vendora/internal/usecase/contract"
)

type shareUseCase struct {
	postRepo  contract.IPostRepository
	directory contract.IActorDirectory
	validator usecasecontract.IValidator
	uuidGen   contract.IUUIDGenerator
	config    usecasecontract.IConfigProvider
	logger    usecasecontract.IAppLogger
}

func NewShareUseCase(
	postRepo contract.IPostRepository,
	directory contract.IActorDirectory,
	validator usecasecontract.IValidator,
	uuidGen contract.IUUIDGenerator,
	config usecasecontract.IConfigProvider,
	logger usecasecontract.IAppLogger,
) usecasecontract.IShareUseCase {
	return &shareUseCase{
		postRepo:  postRepo,
		directory: directory,
		validator: validator,
		uuidGen:   uuidGen,
		config:    config,
		logger:    logger,
	}
}

// SharePost creates a share-post referencing the source post. The share id
// is assigned up front so the interaction event recorded in the same
// transaction can reference the new post.
func (uc *shareUseCase) SharePost(ctx context.Context, actor entity.Actor, postID string, req dto.SharePostRequest) (*dto.PostResponse, error) {
	if _, err := uc.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	privacy := req.Privacy
	if privacy == "" {
		privacy = string(entity.PrivacyPublic)
	}
	if err := uc.validator.ValidatePrivacy(privacy); err != nil {
		return nil, err
	}

	share := &entity.Post{
		ID:         uc.uuidGen.NewUUID(),
		Author:     actor,
		Content:    strings.TrimSpace(req.Content),
		Privacy:    entity.PostPrivacy(privacy),
		Type:       entity.PostTypeShare,
		SharedPost: &postID,
	}
	event := &entity.InteractionEvent{
		Author:     actor,
		TargetType: entity.TargetTypePost,
		TargetID:   postID,
		Action:     entity.ActionShare,
		Metadata:   map[string]interface{}{"shared_post_id": share.ID},
	}

	if err := uc.postRepo.CreateShare(ctx, share, event); err != nil {
		return nil, fmt.Errorf("failed to share post: %w", err)
	}

	metrics.InteractionsTotal.WithLabelValues(string(entity.ActionShare), string(entity.TargetTypePost)).Inc()
	uc.logger.Debugf("actor %s shared post %s as %s", actor.Key(), postID, share.ID)

	authorName := ""
	var avatarURL *string
	if profile, err := uc.directory.Resolve(ctx, actor); err == nil {
		authorName = profile.Name
		avatarURL = profile.AvatarURL
	} else {
		uc.logger.Warnf("share author %s could not be resolved: %v", actor.Key(), err)
	}

	resp := toPostResponse(share)
	resp.Author.Name = authorName
	resp.Author.AvatarURL = avatarURL
	return resp, nil
}

// ListShares pages through the share-posts of a post, newest first, with
// resolved author profiles.
func (uc *shareUseCase) ListShares(ctx context.Context, postID string, page, pageSize int) (*dto.SharesResponse, error) {
	if _, err := uc.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	page, pageSize = normalizePagination(page, pageSize, uc.config)
	shares, total, err := uc.postRepo.ListShares(ctx, postID, contract.Pagination{Page: page, PageSize: pageSize})
	if err != nil {
		return nil, fmt.Errorf("failed to list shares: %w", err)
	}

	authors := lo.UniqBy(
		lo.Map(shares, func(p *entity.Post, _ int) entity.Actor { return p.Author }),
		func(a entity.Actor) string { return a.Key() },
	)
	profiles, err := uc.directory.ResolveMany(ctx, authors)
	if err != nil {
		uc.logger.Warnf("failed to resolve share authors: %v", err)
		profiles = map[string]*entity.ActorProfile{}
	}

	out := make([]*dto.PostResponse, 0, len(shares))
	for _, share := range shares {
		resp := toPostResponse(share)
		if profile, ok := profiles[share.Author.Key()]; ok {
			resp.Author.Name = profile.Name
			resp.Author.AvatarURL = profile.AvatarURL
		}
		out = append(out, resp)
	}

	return &dto.SharesResponse{
		Shares:     out,
		Pagination: paginationMeta(page, pageSize, total),
	}, nil
}

func toPostResponse(post *entity.Post) *dto.PostResponse {
	return &dto.PostResponse{
		ID:            post.ID,
		Author:        dto.ActorResponse{ID: post.Author.ID, Kind: string(post.Author.Kind)},
		Content:       post.Content,
		Privacy:       string(post.Privacy),
		Type:          string(post.Type),
		SharedPost:    post.SharedPost,
		LikesCount:    post.LikesCount,
		CommentsCount: post.CommentsCount,
		SharesCount:   post.SharesCount,
		CreatedAt:     post.CreatedAt,
	}
}
