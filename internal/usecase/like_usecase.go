package usecase

import (
	"context"
	"fmt"

	"github.com/mikiasgoitom/Vendora/internal/domain/contract"
	"github.com/mikiasgoitom/Vendora/internal/domain/entity"
	"github.com/mikiasgoitom/Vendora/internal/dto"
	"github.com/mikiasgoitom/Vendora/internal/infrastructure/keylock"
	"github.com/mikiasgoitom/Vendora/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/Vendora/internal/usecase/contract"
)

// LikeUsecase is the like-toggle state machine for posts and comments.
// Post likes live in the interaction event store; comment likes live in
// each comment's like ledger. Same-key toggles are serialized through a
// per-(actor, target) lock so concurrent check-then-write toggles cannot
// double-count.
type LikeUsecase struct {
	interactionRepo contract.IInteractionRepository
	commentRepo     contract.ICommentRepository
	postRepo        contract.IPostRepository
	directory       contract.IActorDirectory
	config          usecasecontract.IConfigProvider
	logger          usecasecontract.IAppLogger
	keys            *keylock.KeyLock
}

// NewLikeUsecase creates and returns a new LikeUsecase instance.
func NewLikeUsecase(
	interactionRepo contract.IInteractionRepository,
	commentRepo contract.ICommentRepository,
	postRepo contract.IPostRepository,
	directory contract.IActorDirectory,
	config usecasecontract.IConfigProvider,
	logger usecasecontract.IAppLogger,
) *LikeUsecase {
	return &LikeUsecase{
		interactionRepo: interactionRepo,
		commentRepo:     commentRepo,
		postRepo:        postRepo,
		directory:       directory,
		config:          config,
		logger:          logger,
		keys:            keylock.New(),
	}
}

// TogglePostLike flips the actor's like on a post. The presence of a like
// event is the state; the operation inverts it and adjusts likes_count in
// the same transaction.
func (u *LikeUsecase) TogglePostLike(ctx context.Context, actor entity.Actor, postID string) (*dto.ToggleLikeResponse, error) {
	if _, err := u.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	key := "post:" + postID + ":" + actor.Key()
	u.keys.Lock(key)
	defer u.keys.Unlock(key)

	liked, newCount, err := u.interactionRepo.TogglePostLike(ctx, actor, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle post like: %w", err)
	}

	metrics.InteractionsTotal.WithLabelValues(string(entity.ActionLike), string(entity.TargetTypePost)).Inc()
	u.logger.Debugf("actor %s toggled post %s like to %v", actor.Key(), postID, liked)

	return &dto.ToggleLikeResponse{Liked: liked, LikeCount: newCount}, nil
}

// ToggleCommentLike flips the actor's membership in the comment's like
// ledger and returns the new total.
func (u *LikeUsecase) ToggleCommentLike(ctx context.Context, actor entity.Actor, commentID string) (*dto.ToggleLikeResponse, error) {
	key := "comment:" + commentID + ":" + actor.Key()
	u.keys.Lock(key)
	defer u.keys.Unlock(key)

	liked, total, err := u.commentRepo.ToggleLike(ctx, commentID, actor.ID)
	if err != nil {
		return nil, err
	}

	metrics.InteractionsTotal.WithLabelValues(string(entity.ActionLike), string(entity.TargetTypeComment)).Inc()
	u.logger.Debugf("actor %s toggled comment %s like to %v", actor.Key(), commentID, liked)

	return &dto.ToggleLikeResponse{Liked: liked, LikeCount: int64(total)}, nil
}

// ListPostLikers returns the resolved profiles of every actor currently
// liking the post, newest like first.
func (u *LikeUsecase) ListPostLikers(ctx context.Context, postID string) (*dto.LikersResponse, error) {
	if _, err := u.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	likers, err := u.interactionRepo.ListLikers(ctx, entity.TargetTypePost, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list post likers: %w", err)
	}

	profiles, err := u.directory.ResolveMany(ctx, likers)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve likers: %w", err)
	}

	resolved := make([]*dto.ActorResponse, 0, len(likers))
	for _, actor := range likers {
		profile, ok := profiles[actor.Key()]
		if !ok {
			u.logger.Warnf("liker %s of post %s could not be resolved", actor.Key(), postID)
			continue
		}
		resolved = append(resolved, toActorResponse(profile))
	}
	return &dto.LikersResponse{Likers: resolved}, nil
}

// ListCommentLikers pages through the comment's like ledger. The ledger
// stores raw actor ids, so each id is resolved against both directories
// with the user record preferred when a user and a shop share an id.
func (u *LikeUsecase) ListCommentLikers(ctx context.Context, commentID string, page, pageSize int) (*dto.LikersResponse, error) {
	comment, err := u.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	page, pageSize = normalizePagination(page, pageSize, u.config)
	total := int64(len(comment.Likes))

	start := (page - 1) * pageSize
	if start > len(comment.Likes) {
		start = len(comment.Likes)
	}
	end := start + pageSize
	if end > len(comment.Likes) {
		end = len(comment.Likes)
	}

	resolved := make([]*dto.ActorResponse, 0, end-start)
	for _, id := range comment.Likes[start:end] {
		profile, err := u.directory.GetUserProfile(ctx, id)
		if err != nil {
			profile, err = u.directory.GetShopProfile(ctx, id)
		}
		if err != nil {
			u.logger.Warnf("liker %s of comment %s could not be resolved", id, commentID)
			continue
		}
		resolved = append(resolved, toActorResponse(profile))
	}

	meta := paginationMeta(page, pageSize, total)
	return &dto.LikersResponse{Likers: resolved, Pagination: &meta}, nil
}

func toActorResponse(profile *entity.ActorProfile) *dto.ActorResponse {
	return &dto.ActorResponse{
		ID:        profile.ID,
		Kind:      string(profile.Kind),
		Name:      profile.Name,
		AvatarURL: profile.AvatarURL,
	}
}

var _ usecasecontract.ILikeUseCase = (*LikeUsecase)(nil)
