package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/Vendora/internal/domain/contract"
	"github.com/mikiasgoitom/Vendora/internal/domain/entity"
	"github.com/mikiasgoitom/Vendora/internal/infrastructure/uuidgen"
)

var (
	ErrCommentCreation   = errors.New("failed to create comment")
	ErrInvalidPagination = errors.New("invalid pagination parameters")
)

// CommentRepository is the flat comment-node store. It also holds the
// interactions and posts collections so comment creation can write the
// node, its audit event and the root-comment counter bump in one
// transaction.
type CommentRepository struct {
	collection *mongo.Collection
	events     *mongo.Collection
	posts      *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{
		collection: db.Collection("comments"),
		events:     db.Collection("interactions"),
		posts:      db.Collection("posts"),
	}
}

// CreateWithEvent inserts the comment and its interaction event, bumping
// the post's comments_count for root comments. Returns the post's new
// comment total for roots, zero for replies.
func (r *CommentRepository) CreateWithEvent(ctx context.Context, comment *entity.Comment, event *entity.InteractionEvent) (int64, error) {
	comment.ID = uuidgen.NewGenerator().NewUUID()
	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	if comment.Likes == nil {
		comment.Likes = []string{}
	}
	if event.ID == "" {
		event.ID = uuidgen.NewGenerator().NewUUID()
	}
	event.CreatedAt = now

	session, err := r.collection.Database().Client().StartSession()
	if err != nil {
		return 0, fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	var newTotal int64
	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := r.collection.InsertOne(sc, comment); err != nil {
			return nil, err
		}
		if _, err := r.events.InsertOne(sc, event); err != nil {
			return nil, err
		}
		if comment.IsRoot() {
			var updated entity.Post
			err := r.posts.FindOneAndUpdate(sc,
				bson.M{"_id": comment.PostID},
				bson.M{"$inc": bson.M{"comments_count": 1}, "$set": bson.M{"updated_at": now}},
				options.FindOneAndUpdate().SetReturnDocument(options.After),
			).Decode(&updated)
			if err != nil {
				if errors.Is(err, mongo.ErrNoDocuments) {
					return nil, contract.ErrPostNotFound
				}
				return nil, err
			}
			newTotal = updated.CommentsCount
		}
		return nil, nil
	})
	if err != nil {
		if errors.Is(err, contract.ErrPostNotFound) {
			return 0, contract.ErrPostNotFound
		}
		return 0, fmt.Errorf("%w: %v", ErrCommentCreation, err)
	}
	return newTotal, nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	var comment entity.Comment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return &comment, nil
}

// GetRoots returns every root comment of the post, newest first. Sort
// policies beyond recency (like-count "top") are applied in memory by the
// assembler because like counts are not independently indexed.
func (r *CommentRepository) GetRoots(ctx context.Context, postID string) ([]*entity.Comment, error) {
	filter := bson.M{"post_id": postID, "parent_id": nil}
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to find root comments: %w", err)
	}
	defer cursor.Close(ctx)

	var comments []*entity.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("failed to decode root comments: %w", err)
	}
	return comments, nil
}

func (r *CommentRepository) GetByParentIDs(ctx context.Context, parentIDs []string) ([]*entity.Comment, error) {
	if len(parentIDs) == 0 {
		return []*entity.Comment{}, nil
	}

	filter := bson.M{"parent_id": bson.M{"$in": parentIDs}}
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to find replies: %w", err)
	}
	defer cursor.Close(ctx)

	var comments []*entity.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("failed to decode replies: %w", err)
	}
	return comments, nil
}

// GetDeepReplies returns every comment of the post below tier 2: replies
// whose parent is itself a reply. Ascending creation order guarantees a
// parent is always returned before its children, which the assembler's
// single linking pass depends on.
func (r *CommentRepository) GetDeepReplies(ctx context.Context, postID string, rootIDs []string) ([]*entity.Comment, error) {
	filter := bson.M{
		"post_id":   postID,
		"parent_id": bson.M{"$ne": nil, "$nin": rootIDs},
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to find deep replies: %w", err)
	}
	defer cursor.Close(ctx)

	var comments []*entity.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("failed to decode deep replies: %w", err)
	}
	return comments, nil
}

func (r *CommentRepository) CountReplies(ctx context.Context, parentID string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"parent_id": parentID})
	if err != nil {
		return 0, fmt.Errorf("failed to count replies: %w", err)
	}
	return count, nil
}

// ToggleLike flips the actor's membership in the comment's like ledger.
// The add branch is a single $addToSet read back before the update, so a
// repeated add never double-counts; the remove branch is a single $pull.
func (r *CommentRepository) ToggleLike(ctx context.Context, commentID, actorID string) (bool, int, error) {
	filter := bson.M{"_id": commentID}

	var before entity.Comment
	err := r.collection.FindOneAndUpdate(ctx,
		filter,
		bson.M{"$addToSet": bson.M{"likes": actorID}, "$set": bson.M{"updated_at": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.Before),
	).Decode(&before)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, 0, contract.ErrCommentNotFound
		}
		return false, 0, fmt.Errorf("failed to like comment: %w", err)
	}

	if !before.LikedBy(actorID) {
		return true, len(before.Likes) + 1, nil
	}

	// Already liked: the $addToSet was a no-op, withdraw the like instead.
	var after entity.Comment
	err = r.collection.FindOneAndUpdate(ctx,
		filter,
		bson.M{"$pull": bson.M{"likes": actorID}, "$set": bson.M{"updated_at": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&after)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, 0, contract.ErrCommentNotFound
		}
		return false, 0, fmt.Errorf("failed to unlike comment: %w", err)
	}
	return false, len(after.Likes), nil
}

var _ contract.ICommentRepository = (*CommentRepository)(nil)
