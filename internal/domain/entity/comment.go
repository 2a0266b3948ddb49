package entity

import (
	"time"
)

// Comment is a node in a post's comment tree, stored flat with a parent
// pointer. A nil ParentID marks a root (tier 1) comment; non-nil marks a
// reply at tier 2 or deeper. The parent chain must be acyclic and terminate
// at a root of the same post.
//
// Likes holds the raw ids of actors who currently like this comment. It is
// the per-comment like ledger, distinct from the InteractionEvent trail
// used for posts, and is mutated only by the like toggle.
type Comment struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	PostID    string    `bson:"post_id" json:"post_id"`
	Author    Actor     `bson:"author" json:"author"`
	Text      string    `bson:"text" json:"text"`
	ParentID  *string   `bson:"parent_id" json:"parent_id,omitempty"`
	Likes     []string  `bson:"likes" json:"likes"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// IsRoot reports whether the comment sits at tier 1 of its post's tree.
func (c *Comment) IsRoot() bool {
	return c.ParentID == nil
}

// LikedBy reports whether the given actor id is in the like ledger.
func (c *Comment) LikedBy(actorID string) bool {
	for _, id := range c.Likes {
		if id == actorID {
			return true
		}
	}
	return false
}
