package dto

import (
	"time"
)

// SharePostRequest creates a share-post referencing an existing post.
type SharePostRequest struct {
	Content string `json:"content" binding:"max=5000"`
	Privacy string `json:"privacy" binding:"omitempty,oneof=public followers private"`
}

// PostResponse is the outward shape of a post or share-post.
type PostResponse struct {
	ID            string        `json:"id"`
	Author        ActorResponse `json:"author"`
	Content       string        `json:"content"`
	Privacy       string        `json:"privacy"`
	Type          string        `json:"type"`
	SharedPost    *string       `json:"shared_post,omitempty"`
	LikesCount    int64         `json:"likes_count"`
	CommentsCount int64         `json:"comments_count"`
	SharesCount   int64         `json:"shares_count"`
	CreatedAt     time.Time     `json:"created_at"`
}

// SharesResponse is a page of share-posts of a source post.
type SharesResponse struct {
	Shares     []*PostResponse `json:"shares"`
	Pagination PaginationMeta  `json:"pagination"`
}
