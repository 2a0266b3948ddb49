package entity

import (
	"time"
)

// TargetType identifies what an interaction is attached to.
type TargetType string

const (
	TargetTypePost    TargetType = "post"
	TargetTypeComment TargetType = "comment"
)

// ActionType is the kind of interaction recorded.
type ActionType string

const (
	ActionLike    ActionType = "like"
	ActionComment ActionType = "comment"
	ActionShare   ActionType = "share"
)

// InteractionEvent is an immutable record of a like/comment/share action.
// Invariant: at most one live "like" event exists per
// (author, target_type, target_id) tuple; its presence means "currently
// liked". Comment and share events form an append-only audit trail and are
// never deduplicated. Events are deleted only when a like is withdrawn.
type InteractionEvent struct {
	ID         string                 `bson:"_id,omitempty" json:"id"`
	Author     Actor                  `bson:"author" json:"author"`
	TargetType TargetType             `bson:"target_type" json:"target_type"`
	TargetID   string                 `bson:"target_id" json:"target_id"`
	Action     ActionType             `bson:"action" json:"action"`
	Metadata   map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt  time.Time              `bson:"created_at" json:"created_at"`
}
