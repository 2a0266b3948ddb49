package entity

// ActorKind distinguishes the two principal types that can author
// interactions. A user id and a shop id may theoretically collide, so an
// actor is only ever identified by the (id, kind) pair.
type ActorKind string

const (
	ActorKindUser ActorKind = "user"
	ActorKindShop ActorKind = "shop"
)

// Actor is a principal (user or shop) performing an action. It is a value
// type embedded wherever authorship is recorded, never persisted standalone.
type Actor struct {
	ID   string    `bson:"id" json:"id"`
	Kind ActorKind `bson:"kind" json:"kind"`
}

// Equal reports whether two actors denote the same principal. Both id and
// kind must match.
func (a Actor) Equal(b Actor) bool {
	return a.ID == b.ID && a.Kind == b.Kind
}

// Key returns a stable string form of the actor identity, usable as a map
// or lock key.
func (a Actor) Key() string {
	return string(a.Kind) + ":" + a.ID
}

// ActorProfile is the resolved, human-readable projection of an actor:
// full name for users, shop name for shops.
type ActorProfile struct {
	ID        string    `json:"id"`
	Kind      ActorKind `json:"kind"`
	Name      string    `json:"name"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
}
