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

// InteractionRepository is the append-only interaction event store. It
// also holds the posts collection so the post-like toggle can commit the
// event write and the likes_count adjustment as one transaction.
type InteractionRepository struct {
	collection *mongo.Collection
	posts      *mongo.Collection
}

func NewInteractionRepository(db *mongo.Database) *InteractionRepository {
	return &InteractionRepository{
		collection: db.Collection("interactions"),
		posts:      db.Collection("posts"),
	}
}

func likeFilter(actor entity.Actor, targetType entity.TargetType, targetID string) bson.M {
	return bson.M{
		"author.id":   actor.ID,
		"author.kind": actor.Kind,
		"target_type": targetType,
		"target_id":   targetID,
		"action":      entity.ActionLike,
	}
}

// TogglePostLike flips the actor's like event on the post and adjusts the
// post's likes_count by the matching delta inside one transaction, so the
// cached counter can never drift from event membership.
func (r *InteractionRepository) TogglePostLike(ctx context.Context, actor entity.Actor, postID string) (bool, int64, error) {
	session, err := r.collection.Database().Client().StartSession()
	if err != nil {
		return false, 0, fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	var liked bool
	var newCount int64
	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		delta := -1
		res := r.collection.FindOneAndDelete(sc, likeFilter(actor, entity.TargetTypePost, postID))
		if err := res.Err(); err != nil {
			if !errors.Is(err, mongo.ErrNoDocuments) {
				return nil, err
			}
			event := &entity.InteractionEvent{
				ID:         uuidgen.NewGenerator().NewUUID(),
				Author:     actor,
				TargetType: entity.TargetTypePost,
				TargetID:   postID,
				Action:     entity.ActionLike,
				CreatedAt:  time.Now(),
			}
			if _, err := r.collection.InsertOne(sc, event); err != nil {
				return nil, err
			}
			delta = 1
		}
		liked = delta == 1

		var updated entity.Post
		err := r.posts.FindOneAndUpdate(sc,
			bson.M{"_id": postID},
			bson.M{"$inc": bson.M{"likes_count": delta}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&updated)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, contract.ErrPostNotFound
			}
			return nil, err
		}
		newCount = updated.LikesCount
		return nil, nil
	})
	if err != nil {
		if errors.Is(err, contract.ErrPostNotFound) {
			return false, 0, contract.ErrPostNotFound
		}
		return false, 0, fmt.Errorf("failed to toggle post like: %w", err)
	}
	return liked, newCount, nil
}

func (r *InteractionRepository) HasLiked(ctx context.Context, actor entity.Actor, targetType entity.TargetType, targetID string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, likeFilter(actor, targetType, targetID))
	if err != nil {
		return false, fmt.Errorf("failed to check like status: %w", err)
	}
	return count > 0, nil
}

func (r *InteractionRepository) ListLikers(ctx context.Context, targetType entity.TargetType, targetID string) ([]entity.Actor, error) {
	filter := bson.M{
		"target_type": targetType,
		"target_id":   targetID,
		"action":      entity.ActionLike,
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to find likers: %w", err)
	}
	defer cursor.Close(ctx)

	var events []*entity.InteractionEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode likers: %w", err)
	}

	likers := make([]entity.Actor, len(events))
	for i, e := range events {
		likers[i] = e.Author
	}
	return likers, nil
}

var _ contract.IInteractionRepository = (*InteractionRepository)(nil)
