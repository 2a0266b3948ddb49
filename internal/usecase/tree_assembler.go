package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/mikiasgoitom/Vendora/internal/domain/entity"
	"github.com/mikiasgoitom/Vendora/internal/dto"
	"github.com/mikiasgoitom/Vendora/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/Vendora/internal/usecase/contract"
)

// replyCountConcurrency bounds the per-tier reply-count fan-out.
const replyCountConcurrency = 8

// GetCommentTree reconstructs one page of the post's comment tree from the
// flat parent-pointer relation in three bounded fetches:
//
//  1. every root comment of the post, sorted per policy, then paginated;
//  2. the direct children of the paged roots, in creation order;
//  3. everything deeper than tier 2 in one flat fetch, in creation order.
//
// A parent is always created before its children, so the ascending order of
// the third fetch guarantees each deep reply's parent is already attached
// (and indexed by id) when the reply is processed. Deep replies whose root
// ancestor falls outside the requested page find no parent in the index and
// are excluded with the rest of their subtree.
//
// Query count stays O(1) in the comment count; the linking pass is O(n).
func (uc *commentUseCase) GetCommentTree(ctx context.Context, postID string, viewer *entity.Actor, sortBy string, page, pageSize int) (*dto.CommentTreeResponse, error) {
	timer := prometheus.NewTimer(metrics.TreeAssemblyDuration)
	defer timer.ObserveDuration()

	if sortBy == "" {
		sortBy = usecasecontract.SortNewest
	}
	if err := uc.validator.ValidateSort(sortBy); err != nil {
		return nil, err
	}
	if uc.config.GetTreeRequirePost() {
		if _, err := uc.postRepo.GetByID(ctx, postID); err != nil {
			return nil, err
		}
	}
	page, pageSize = normalizePagination(page, pageSize, uc.config)

	roots, err := uc.commentRepo.GetRoots(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch root comments: %w", err)
	}
	sortRoots(roots, sortBy)
	total := int64(len(roots))
	paged := pageSlice(roots, page, pageSize)

	allRootIDs := lo.Map(roots, func(c *entity.Comment, _ int) string { return c.ID })
	pagedRootIDs := lo.Map(paged, func(c *entity.Comment, _ int) string { return c.ID })

	tier2, err := uc.commentRepo.GetByParentIDs(ctx, pagedRootIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch replies: %w", err)
	}

	var deep []*entity.Comment
	if len(allRootIDs) > 0 {
		deep, err = uc.commentRepo.GetDeepReplies(ctx, postID, allRootIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch deep replies: %w", err)
		}
	}

	profiles := uc.resolveAuthors(ctx, paged, tier2, deep)

	rootCounts, err := uc.replyCounts(ctx, paged)
	if err != nil {
		return nil, err
	}
	tier2Counts, err := uc.replyCounts(ctx, tier2)
	if err != nil {
		return nil, err
	}

	// Children of a deep reply are themselves in the deep fetch, so their
	// counts come from memory instead of another round of queries.
	deepChildren := make(map[string]int64, len(deep))
	for _, c := range deep {
		if c.ParentID != nil {
			deepChildren[*c.ParentID]++
		}
	}

	nodeIndex := make(map[string]*dto.CommentResponse, len(paged)+len(tier2)+len(deep))
	nodes := make([]*dto.CommentResponse, 0, len(paged))
	for i, c := range paged {
		node := uc.toTreeNode(c, viewer, profiles, rootCounts[i])
		nodeIndex[c.ID] = node
		nodes = append(nodes, node)
	}
	for i, c := range tier2 {
		parent := nodeIndex[*c.ParentID]
		if parent == nil {
			continue
		}
		node := uc.toTreeNode(c, viewer, profiles, tier2Counts[i])
		parent.Replies = append(parent.Replies, node)
		nodeIndex[c.ID] = node
	}
	for _, c := range deep {
		parent := nodeIndex[*c.ParentID]
		if parent == nil {
			// Root ancestor outside the requested page.
			continue
		}
		node := uc.toTreeNode(c, viewer, profiles, deepChildren[c.ID])
		node.ReplyingToName = parent.Author.Name
		parent.Replies = append(parent.Replies, node)
		nodeIndex[c.ID] = node
	}

	return &dto.CommentTreeResponse{
		Comments:   nodes,
		Pagination: paginationMeta(page, pageSize, total),
	}, nil
}

// sortRoots orders root comments per policy. "top" sorts by like count
// descending with recency as tiebreak; it runs in memory because like
// counts are not independently indexed.
func sortRoots(roots []*entity.Comment, sortBy string) {
	switch sortBy {
	case usecasecontract.SortOldest:
		sort.SliceStable(roots, func(i, j int) bool {
			return roots[i].CreatedAt.Before(roots[j].CreatedAt)
		})
	case usecasecontract.SortTop:
		sort.SliceStable(roots, func(i, j int) bool {
			li, lj := len(roots[i].Likes), len(roots[j].Likes)
			if li != lj {
				return li > lj
			}
			return roots[i].CreatedAt.After(roots[j].CreatedAt)
		})
	default:
		sort.SliceStable(roots, func(i, j int) bool {
			return roots[i].CreatedAt.After(roots[j].CreatedAt)
		})
	}
}

func pageSlice(roots []*entity.Comment, page, pageSize int) []*entity.Comment {
	start := (page - 1) * pageSize
	if start > len(roots) {
		start = len(roots)
	}
	end := start + pageSize
	if end > len(roots) {
		end = len(roots)
	}
	return roots[start:end]
}

// resolveAuthors batch-resolves the display profiles of every fetched
// comment's author. Resolution failures degrade to an empty name rather
// than failing the read.
func (uc *commentUseCase) resolveAuthors(ctx context.Context, tiers ...[]*entity.Comment) map[string]*entity.ActorProfile {
	var actors []entity.Actor
	for _, tier := range tiers {
		for _, c := range tier {
			actors = append(actors, c.Author)
		}
	}
	actors = lo.UniqBy(actors, func(a entity.Actor) string { return a.Key() })

	profiles, err := uc.directory.ResolveMany(ctx, actors)
	if err != nil {
		uc.logger.Warnf("failed to resolve comment authors: %v", err)
		return map[string]*entity.ActorProfile{}
	}
	return profiles
}

// replyCounts queries the live direct-child count of each comment. The
// counts are independent reads, so they fan out concurrently.
func (uc *commentUseCase) replyCounts(ctx context.Context, comments []*entity.Comment) ([]int64, error) {
	counts := make([]int64, len(comments))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(replyCountConcurrency)
	for i, c := range comments {
		i, c := i, c
		g.Go(func() error {
			n, err := uc.commentRepo.CountReplies(gctx, c.ID)
			if err != nil {
				return fmt.Errorf("failed to count replies: %w", err)
			}
			counts[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return counts, nil
}

func (uc *commentUseCase) toTreeNode(c *entity.Comment, viewer *entity.Actor, profiles map[string]*entity.ActorProfile, replyCount int64) *dto.CommentResponse {
	author := dto.ActorResponse{ID: c.Author.ID, Kind: string(c.Author.Kind)}
	if profile, ok := profiles[c.Author.Key()]; ok {
		author.Name = profile.Name
		author.AvatarURL = profile.AvatarURL
	}

	return &dto.CommentResponse{
		ID:         c.ID,
		PostID:     c.PostID,
		Author:     author,
		Text:       c.Text,
		ParentID:   c.ParentID,
		LikeCount:  len(c.Likes),
		IsLiked:    viewer != nil && c.LikedBy(viewer.ID),
		ReplyCount: replyCount,
		Replies:    []*dto.CommentResponse{},
		CreatedAt:  c.CreatedAt,
	}
}
