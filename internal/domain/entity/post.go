package entity

import (
	"time"
)

// PostType distinguishes original posts from share-posts.
type PostType string

const (
	PostTypeOriginal PostType = "post"
	PostTypeShare    PostType = "share"
)

// PostPrivacy is the audience a post is visible to.
type PostPrivacy string

const (
	PrivacyPublic    PostPrivacy = "public"
	PrivacyFollowers PostPrivacy = "followers"
	PrivacyPrivate   PostPrivacy = "private"
)

// Post is the parent entity interactions attach to. LikesCount,
// CommentsCount and SharesCount are denormalized caches of the underlying
// interaction events and comment rows; they are only ever mutated inside
// the same transaction as the write they mirror.
type Post struct {
	ID            string      `bson:"_id,omitempty" json:"id"`
	Author        Actor       `bson:"author" json:"author"`
	Content       string      `bson:"content" json:"content"`
	Privacy       PostPrivacy `bson:"privacy" json:"privacy"`
	Type          PostType    `bson:"type" json:"type"`
	SharedPost    *string     `bson:"shared_post,omitempty" json:"shared_post,omitempty"`
	LikesCount    int64       `bson:"likes_count" json:"likes_count"`
	CommentsCount int64       `bson:"comments_count" json:"comments_count"`
	SharesCount   int64       `bson:"shares_count" json:"shares_count"`
	CreatedAt     time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time   `bson:"updated_at" json:"updated_at"`
}
