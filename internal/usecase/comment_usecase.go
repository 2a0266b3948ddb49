package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/mikiasgoitom/Vendora/internal/domain/contract"
	"github.com/mikiasgoitom/Vendora/internal/domain/entity"
	"github.com/mikiasgoitom/Vendora/internal/dto"
	"github.com/mikiasgoitom/Vendora/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/Vendora/internal/usecase/contract"
)

type commentUseCase struct {
	commentRepo contract.ICommentRepository
	postRepo    contract.IPostRepository
	directory   contract.IActorDirectory
	validator   usecasecontract.IValidator
	config      usecasecontract.IConfigProvider
	logger      usecasecontract.IAppLogger
}

func NewCommentUseCase(
	commentRepo contract.ICommentRepository,
	postRepo contract.IPostRepository,
	directory contract.IActorDirectory,
	validator usecasecontract.IValidator,
	config usecasecontract.IConfigProvider,
	logger usecasecontract.IAppLogger,
) usecasecontract.ICommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		directory:   directory,
		validator:   validator,
		config:      config,
		logger:      logger,
	}
}

// CreateComment creates a root comment or a reply plus its audit event.
// Root comments increment the post's comments_count and report the new
// total; replies report the live count of the parent's children, which is
// recomputed rather than cached.
func (uc *commentUseCase) CreateComment(ctx context.Context, actor entity.Actor, postID string, req dto.CreateCommentRequest) (*dto.CreateCommentResponse, error) {
	if _, err := uc.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	if err := uc.validator.ValidateCommentText(req.Text); err != nil {
		return nil, err
	}

	parentID := req.ParentID
	if parentID != nil && *parentID == "" {
		parentID = nil
	}
	if parentID != nil {
		parent, err := uc.commentRepo.GetByID(ctx, *parentID)
		if err != nil {
			return nil, fmt.Errorf("parent comment: %w", err)
		}
		if parent.PostID != postID {
			return nil, fmt.Errorf("%w: parent comment belongs to another post", contract.ErrValidation)
		}
	}

	comment := &entity.Comment{
		PostID:   postID,
		Author:   actor,
		Text:     strings.TrimSpace(req.Text),
		ParentID: parentID,
		Likes:    []string{},
	}

	// The audit event targets the post for roots and the parent comment
	// for replies; metadata carries a denormalized copy of the text.
	event := &entity.InteractionEvent{
		Author:     actor,
		TargetType: entity.TargetTypePost,
		TargetID:   postID,
		Action:     entity.ActionComment,
		Metadata:   map[string]interface{}{"text": comment.Text},
	}
	if parentID != nil {
		event.TargetType = entity.TargetTypeComment
		event.TargetID = *parentID
	}

	total, err := uc.commentRepo.CreateWithEvent(ctx, comment, event)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	if parentID != nil {
		total, err = uc.commentRepo.CountReplies(ctx, *parentID)
		if err != nil {
			return nil, fmt.Errorf("failed to count replies: %w", err)
		}
	}

	metrics.InteractionsTotal.WithLabelValues(string(entity.ActionComment), string(event.TargetType)).Inc()

	authorName := ""
	var avatarURL *string
	if profile, err := uc.directory.Resolve(ctx, actor); err == nil {
		authorName = profile.Name
		avatarURL = profile.AvatarURL
	} else {
		uc.logger.Warnf("comment author %s could not be resolved: %v", actor.Key(), err)
	}

	return &dto.CreateCommentResponse{
		Comment: &dto.CommentResponse{
			ID:     comment.ID,
			PostID: comment.PostID,
			Author: dto.ActorResponse{
				ID:        actor.ID,
				Kind:      string(actor.Kind),
				Name:      authorName,
				AvatarURL: avatarURL,
			},
			Text:      comment.Text,
			ParentID:  comment.ParentID,
			Replies:   []*dto.CommentResponse{},
			CreatedAt: comment.CreatedAt,
		},
		CommentCount: total,
	}, nil
}
