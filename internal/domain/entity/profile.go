package entity

import (
	"time"
)

// User is the account record backing actors of kind "user". Account and
// session management live in a separate service; this backend only reads
// users for display-name resolution.
type User struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	FullName  string    `bson:"full_name" json:"full_name"`
	Email     string    `bson:"email" json:"email"`
	AvatarURL *string   `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	IsActive  bool      `bson:"is_active" json:"is_active"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Shop is the merchant record backing actors of kind "shop".
type Shop struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	OwnerID   string    `bson:"owner_id" json:"owner_id"`
	LogoURL   *string   `bson:"logo_url,omitempty" json:"logo_url,omitempty"`
	IsActive  bool      `bson:"is_active" json:"is_active"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Profile converts a user into its actor projection.
func (u *User) Profile() *ActorProfile {
	return &ActorProfile{
		ID:        u.ID,
		Kind:      ActorKindUser,
		Name:      u.FullName,
		AvatarURL: u.AvatarURL,
	}
}

// Profile converts a shop into its actor projection.
func (s *Shop) Profile() *ActorProfile {
	return &ActorProfile{
		ID:        s.ID,
		Kind:      ActorKindShop,
		Name:      s.Name,
		AvatarURL: s.LogoURL,
	}
}
