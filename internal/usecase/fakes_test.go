package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/mikiasgoitom/Vendora/internal/domain/contract"
	"github.com/mikiasgoitom/Vendora/internal/domain/entity"
)

// memWorld is an in-memory backing store implementing every repository
// contract the usecases depend on. All mutations run under one mutex so
// concurrent toggle tests observe the same atomicity the real store gives.
type memWorld struct {
	mu       sync.Mutex
	posts    map[string]*entity.Post
	comments map[string]*entity.Comment
	events   []*entity.InteractionEvent
	users    map[string]*entity.ActorProfile
	shops    map[string]*entity.ActorProfile
	seq      int
}

var memEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newMemWorld() *memWorld {
	return &memWorld{
		posts:    map[string]*entity.Post{},
		comments: map[string]*entity.Comment{},
		users:    map[string]*entity.ActorProfile{},
		shops:    map[string]*entity.ActorProfile{},
	}
}

// tick hands out a strictly increasing timestamp. Callers must hold mu.
func (w *memWorld) tick() time.Time {
	w.seq++
	return memEpoch.Add(time.Duration(w.seq) * time.Second)
}

func (w *memWorld) nextID(prefix string) string {
	w.seq++
	return fmt.Sprintf("%s-%d", prefix, w.seq)
}

func (w *memWorld) addPost(id string, author entity.Actor) *entity.Post {
	w.mu.Lock()
	defer w.mu.Unlock()
	post := &entity.Post{
		ID:        id,
		Author:    author,
		Content:   "post " + id,
		Privacy:   entity.PrivacyPublic,
		Type:      entity.PostTypeOriginal,
		CreatedAt: w.tick(),
	}
	w.posts[id] = post
	return post
}

func (w *memWorld) addUser(id, name string) entity.Actor {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.users[id] = &entity.ActorProfile{ID: id, Kind: entity.ActorKindUser, Name: name}
	return entity.Actor{ID: id, Kind: entity.ActorKindUser}
}

func (w *memWorld) addShop(id, name string) entity.Actor {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.shops[id] = &entity.ActorProfile{ID: id, Kind: entity.ActorKindShop, Name: name}
	return entity.Actor{ID: id, Kind: entity.ActorKindShop}
}

// addComment seeds a comment directly, bypassing the usecase, with an
// explicit timestamp offset for sort tests.
func (w *memWorld) addComment(postID string, author entity.Actor, parentID *string, likes ...string) *entity.Comment {
	w.mu.Lock()
	defer w.mu.Unlock()
	if likes == nil {
		likes = []string{}
	}
	comment := &entity.Comment{
		ID:        w.nextID("c"),
		PostID:    postID,
		Author:    author,
		Text:      "seeded",
		ParentID:  parentID,
		Likes:     likes,
		CreatedAt: w.tick(),
	}
	w.comments[comment.ID] = comment
	if parentID == nil {
		if post, ok := w.posts[postID]; ok {
			post.CommentsCount++
		}
	}
	return comment
}

// IPostRepository

func (w *memWorld) Create(ctx context.Context, post *entity.Post) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if post.ID == "" {
		post.ID = w.nextID("p")
	}
	post.CreatedAt = w.tick()
	w.posts[post.ID] = post
	return nil
}

func (w *memWorld) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	post, ok := w.posts[id]
	if !ok {
		return nil, contract.ErrPostNotFound
	}
	copied := *post
	return &copied, nil
}

func (w *memWorld) CreateShare(ctx context.Context, share *entity.Post, event *entity.InteractionEvent) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	source, ok := w.posts[*share.SharedPost]
	if !ok {
		return contract.ErrPostNotFound
	}
	source.SharesCount++
	if share.ID == "" {
		share.ID = w.nextID("p")
	}
	share.CreatedAt = w.tick()
	w.posts[share.ID] = share
	event.CreatedAt = share.CreatedAt
	w.events = append(w.events, event)
	return nil
}

func (w *memWorld) ListShares(ctx context.Context, postID string, pagination contract.Pagination) ([]*entity.Post, int64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var shares []*entity.Post
	for _, post := range w.posts {
		if post.Type == entity.PostTypeShare && post.SharedPost != nil && *post.SharedPost == postID {
			shares = append(shares, post)
		}
	}
	sort.Slice(shares, func(i, j int) bool { return shares[i].CreatedAt.After(shares[j].CreatedAt) })
	total := int64(len(shares))
	start := (pagination.Page - 1) * pagination.PageSize
	if start > len(shares) {
		start = len(shares)
	}
	end := start + pagination.PageSize
	if end > len(shares) {
		end = len(shares)
	}
	return shares[start:end], total, nil
}

// ICommentRepository

func (w *memWorld) CreateWithEvent(ctx context.Context, comment *entity.Comment, event *entity.InteractionEvent) (int64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	comment.ID = w.nextID("c")
	comment.CreatedAt = w.tick()
	w.comments[comment.ID] = comment
	event.CreatedAt = comment.CreatedAt
	w.events = append(w.events, event)
	if comment.ParentID == nil {
		post, ok := w.posts[comment.PostID]
		if !ok {
			return 0, contract.ErrPostNotFound
		}
		post.CommentsCount++
		return post.CommentsCount, nil
	}
	return 0, nil
}

func (w *memWorld) GetCommentByID(ctx context.Context, id string) (*entity.Comment, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	comment, ok := w.comments[id]
	if !ok {
		return nil, contract.ErrCommentNotFound
	}
	copied := *comment
	copied.Likes = append([]string{}, comment.Likes...)
	return &copied, nil
}

func (w *memWorld) GetRoots(ctx context.Context, postID string) ([]*entity.Comment, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var roots []*entity.Comment
	for _, c := range w.comments {
		if c.PostID == postID && c.ParentID == nil {
			roots = append(roots, c)
		}
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i].CreatedAt.After(roots[j].CreatedAt) })
	return roots, nil
}

func (w *memWorld) GetByParentIDs(ctx context.Context, parentIDs []string) ([]*entity.Comment, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	parents := map[string]bool{}
	for _, id := range parentIDs {
		parents[id] = true
	}
	var out []*entity.Comment
	for _, c := range w.comments {
		if c.ParentID != nil && parents[*c.ParentID] {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (w *memWorld) GetDeepReplies(ctx context.Context, postID string, rootIDs []string) ([]*entity.Comment, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	roots := map[string]bool{}
	for _, id := range rootIDs {
		roots[id] = true
	}
	var out []*entity.Comment
	for _, c := range w.comments {
		if c.PostID == postID && c.ParentID != nil && !roots[*c.ParentID] {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (w *memWorld) CountReplies(ctx context.Context, parentID string) (int64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var n int64
	for _, c := range w.comments {
		if c.ParentID != nil && *c.ParentID == parentID {
			n++
		}
	}
	return n, nil
}

func (w *memWorld) ToggleLike(ctx context.Context, commentID, actorID string) (bool, int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	comment, ok := w.comments[commentID]
	if !ok {
		return false, 0, contract.ErrCommentNotFound
	}
	for i, id := range comment.Likes {
		if id == actorID {
			comment.Likes = append(comment.Likes[:i], comment.Likes[i+1:]...)
			return false, len(comment.Likes), nil
		}
	}
	comment.Likes = append(comment.Likes, actorID)
	return true, len(comment.Likes), nil
}

// IInteractionRepository

func (w *memWorld) TogglePostLike(ctx context.Context, actor entity.Actor, postID string) (bool, int64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	post, ok := w.posts[postID]
	if !ok {
		return false, 0, contract.ErrPostNotFound
	}
	for i, ev := range w.events {
		if ev.Action == entity.ActionLike && ev.TargetType == entity.TargetTypePost &&
			ev.TargetID == postID && ev.Author.Equal(actor) {
			w.events = append(w.events[:i], w.events[i+1:]...)
			post.LikesCount--
			return false, post.LikesCount, nil
		}
	}
	w.events = append(w.events, &entity.InteractionEvent{
		ID:         w.nextID("e"),
		Author:     actor,
		TargetType: entity.TargetTypePost,
		TargetID:   postID,
		Action:     entity.ActionLike,
		CreatedAt:  w.tick(),
	})
	post.LikesCount++
	return true, post.LikesCount, nil
}

func (w *memWorld) HasLiked(ctx context.Context, actor entity.Actor, targetType entity.TargetType, targetID string) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, ev := range w.events {
		if ev.Action == entity.ActionLike && ev.TargetType == targetType &&
			ev.TargetID == targetID && ev.Author.Equal(actor) {
			return true, nil
		}
	}
	return false, nil
}

func (w *memWorld) ListLikers(ctx context.Context, targetType entity.TargetType, targetID string) ([]entity.Actor, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var likers []entity.Actor
	for i := len(w.events) - 1; i >= 0; i-- {
		ev := w.events[i]
		if ev.Action == entity.ActionLike && ev.TargetType == targetType && ev.TargetID == targetID {
			likers = append(likers, ev.Author)
		}
	}
	return likers, nil
}

// countLikeEvents reports the live like events for an (actor, post) pair.
func (w *memWorld) countLikeEvents(actor entity.Actor, postID string) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	n := 0
	for _, ev := range w.events {
		if ev.Action == entity.ActionLike && ev.TargetType == entity.TargetTypePost &&
			ev.TargetID == postID && ev.Author.Equal(actor) {
			n++
		}
	}
	return n
}

// IActorDirectory

func (w *memWorld) GetUserProfile(ctx context.Context, id string) (*entity.ActorProfile, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	profile, ok := w.users[id]
	if !ok {
		return nil, contract.ErrUserNotFound
	}
	return profile, nil
}

func (w *memWorld) GetShopProfile(ctx context.Context, id string) (*entity.ActorProfile, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	profile, ok := w.shops[id]
	if !ok {
		return nil, contract.ErrShopNotFound
	}
	return profile, nil
}

func (w *memWorld) Resolve(ctx context.Context, actor entity.Actor) (*entity.ActorProfile, error) {
	switch actor.Kind {
	case entity.ActorKindUser:
		return w.GetUserProfile(ctx, actor.ID)
	case entity.ActorKindShop:
		return w.GetShopProfile(ctx, actor.ID)
	default:
		return nil, fmt.Errorf("unknown actor kind %q", actor.Kind)
	}
}

func (w *memWorld) ResolveMany(ctx context.Context, actors []entity.Actor) (map[string]*entity.ActorProfile, error) {
	profiles := make(map[string]*entity.ActorProfile, len(actors))
	for _, actor := range actors {
		profile, err := w.Resolve(ctx, actor)
		if err != nil {
			continue
		}
		profiles[actor.Key()] = profile
	}
	return profiles, nil
}

// commentRepoAdapter renames GetCommentByID back to the contract's GetByID;
// memWorld cannot carry both the post and comment GetByID signatures itself.
type commentRepoAdapter struct {
	*memWorld
}

func (a commentRepoAdapter) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	return a.GetCommentByID(ctx, id)
}

var _ contract.ICommentRepository = commentRepoAdapter{}
var _ contract.IPostRepository = (*memWorld)(nil)
var _ contract.IInteractionRepository = (*memWorld)(nil)
var _ contract.IActorDirectory = (*memWorld)(nil)

// testConfig is a fixed-value IConfigProvider.
type testConfig struct {
	treeRequirePost bool
	defaultPageSize int
	maxPageSize     int
}

func newTestConfig() *testConfig {
	return &testConfig{treeRequirePost: true, defaultPageSize: 20, maxPageSize: 100}
}

func (c *testConfig) GetTreeRequirePost() bool { return c.treeRequirePost }
func (c *testConfig) GetMaxCommentLength() int { return 1000 }
func (c *testConfig) GetDefaultPageSize() int  { return c.defaultPageSize }
func (c *testConfig) GetMaxPageSize() int      { return c.maxPageSize }

// nopLogger discards everything.
type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}
func (nopLogger) Fatalf(string, ...interface{}) {}

// seqUUID hands out deterministic ids.
type seqUUID struct {
	mu sync.Mutex
	n  int
}

func (g *seqUUID) NewUUID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("uuid-%d", g.n)
}
