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
	ErrPostCreation  = errors.New("failed to create post")
	ErrShareCreation = errors.New("failed to create share")
)

// PostRepository stores posts and their denormalized counters. It also
// holds the interactions collection so share creation can write the
// share-post, its event and the source counter bump in one transaction.
type PostRepository struct {
	collection *mongo.Collection
	events     *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{
		collection: db.Collection("posts"),
		events:     db.Collection("interactions"),
	}
}

func (r *PostRepository) Create(ctx context.Context, post *entity.Post) error {
	if post.ID == "" {
		post.ID = uuidgen.NewGenerator().NewUUID()
	}
	if post.Type == "" {
		post.Type = entity.PostTypeOriginal
	}
	if post.Privacy == "" {
		post.Privacy = entity.PrivacyPublic
	}
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt

	if _, err := r.collection.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("%w: %v", ErrPostCreation, err)
	}
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	var post entity.Post
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return &post, nil
}

// CreateShare inserts the share-post, records the share event and
// increments the source post's shares_count inside one transaction. The
// counter update doubles as the source existence check.
func (r *PostRepository) CreateShare(ctx context.Context, share *entity.Post, event *entity.InteractionEvent) error {
	if share.ID == "" {
		share.ID = uuidgen.NewGenerator().NewUUID()
	}
	now := time.Now()
	share.Type = entity.PostTypeShare
	share.CreatedAt = now
	share.UpdatedAt = now
	if event.ID == "" {
		event.ID = uuidgen.NewGenerator().NewUUID()
	}
	event.CreatedAt = now

	session, err := r.collection.Database().Client().StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res := r.collection.FindOneAndUpdate(sc,
			bson.M{"_id": event.TargetID},
			bson.M{"$inc": bson.M{"shares_count": 1}, "$set": bson.M{"updated_at": now}},
		)
		if err := res.Err(); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, contract.ErrPostNotFound
			}
			return nil, err
		}
		if _, err := r.collection.InsertOne(sc, share); err != nil {
			return nil, err
		}
		if _, err := r.events.InsertOne(sc, event); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		if errors.Is(err, contract.ErrPostNotFound) {
			return contract.ErrPostNotFound
		}
		return fmt.Errorf("%w: %v", ErrShareCreation, err)
	}
	return nil
}

func (r *PostRepository) ListShares(ctx context.Context, postID string, pagination contract.Pagination) ([]*entity.Post, int64, error) {
	if pagination.Page < 1 || pagination.PageSize < 1 {
		return nil, 0, ErrInvalidPagination
	}

	filter := bson.M{"type": entity.PostTypeShare, "shared_post": postID}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count shares: %w", err)
	}

	skip := int64((pagination.Page - 1) * pagination.PageSize)
	findOptions := options.Find().
		SetSkip(skip).
		SetLimit(int64(pagination.PageSize)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find shares: %w", err)
	}
	defer cursor.Close(ctx)

	var shares []*entity.Post
	if err := cursor.All(ctx, &shares); err != nil {
		return nil, 0, fmt.Errorf("failed to decode shares: %w", err)
	}
	return shares, total, nil
}

var _ contract.IPostRepository = (*PostRepository)(nil)
