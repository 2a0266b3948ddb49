package dto

// ActorResponse is the resolved author projection attached to responses.
type ActorResponse struct {
	ID        string  `json:"id"`
	Kind      string  `json:"kind"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// ToggleLikeResponse reports the state a like toggle left behind.
type ToggleLikeResponse struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

// PaginationMeta describes the page window of a listing response.
type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// LikersResponse is a page of resolved likers.
type LikersResponse struct {
	Likers     []*ActorResponse `json:"likers"`
	Pagination *PaginationMeta  `json:"pagination,omitempty"`
}
