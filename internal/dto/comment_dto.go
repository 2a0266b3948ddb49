package dto

import (
	"time"
)

// CreateCommentRequest creates a root comment (nil parent) or a reply.
type CreateCommentRequest struct {
	Text     string  `json:"text" binding:"required,max=1000"`
	ParentID *string `json:"parent_id,omitempty"`
}

// CommentResponse is a node of the assembled comment tree: the stored
// comment merged with viewer-relative like state, live reply counts and,
// for nodes attached below tier 2, the display name of the parent author
// the node is replying to.
type CommentResponse struct {
	ID             string             `json:"id"`
	PostID         string             `json:"post_id"`
	Author         ActorResponse      `json:"author"`
	Text           string             `json:"text"`
	ParentID       *string            `json:"parent_id,omitempty"`
	LikeCount      int                `json:"like_count"`
	IsLiked        bool               `json:"is_liked"`
	ReplyCount     int64              `json:"reply_count"`
	ReplyingToName string             `json:"replying_to_name,omitempty"`
	Replies        []*CommentResponse `json:"replies"`
	CreatedAt      time.Time          `json:"created_at"`
}

// CreateCommentResponse wraps a freshly created comment. CommentCount is
// the post's new comment total for root comments and the live count of the
// parent's children for replies.
type CreateCommentResponse struct {
	Comment      *CommentResponse `json:"comment"`
	CommentCount int64            `json:"comment_count"`
}

// CommentTreeResponse is one page of root comments with their subtrees
// fully expanded.
type CommentTreeResponse struct {
	Comments   []*CommentResponse `json:"comments"`
	Pagination PaginationMeta     `json:"pagination"`
}
