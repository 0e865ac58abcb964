// Package posts implements the post ledger: post creation with attachment
// materialization, retrieval, and like accounting.
package posts

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/dmitrijs2005/feedkeeper/internal/common"
	"github.com/dmitrijs2005/feedkeeper/internal/media"
	"github.com/dmitrijs2005/feedkeeper/internal/models"
	"github.com/dmitrijs2005/feedkeeper/internal/store"
)

// Ledger defines post operations for the presentation layer.
//
// The ledger is an ordered sequence: the newest post is always at index 0
// (creation prepends). Posts are never edited or deleted; only the like
// counter mutates.
type Ledger interface {
	// CreatePost materializes all attachment sources (concurrently, as an
	// all-or-nothing batch), builds the post with a timestamp-derived id,
	// prepends it and persists. Author fields are copied from the session
	// snapshot at creation time.
	CreatePost(ctx context.Context, content string, sources []media.Source, author *models.Account) (*models.Post, error)

	// GetAllPosts returns the full ordered sequence, newest-first.
	GetAllPosts(ctx context.Context) ([]models.Post, error)

	// GetPostsByAuthor returns posts by username, preserving newest-first order.
	GetPostsByAuthor(ctx context.Context, username string) ([]models.Post, error)

	// LikePost increments the like counter of the post with the given id and
	// persists. Unknown ids are reported as common.ErrorNotFound.
	LikePost(ctx context.Context, postID string) error

	// AuthorStats returns the post count and total likes for a username.
	AuthorStats(ctx context.Context, username string) (AuthorStats, error)
}

// AuthorStats is the profile summary for one author.
type AuthorStats struct {
	PostCount  int
	TotalLikes int
}

// timeNow is a test seam for the ledger clock.
var timeNow = time.Now

type ledger struct {
	store store.Store

	// serializes the read-modify-write cycle on the posts array, so two
	// in-flight submissions cannot both prepend onto the same snapshot
	mu sync.Mutex
}

// NewLedger constructs a Ledger over the given store handle.
func NewLedger(st store.Store) Ledger {
	return &ledger{store: st}
}

func (l *ledger) loadPosts(ctx context.Context) ([]models.Post, error) {
	raw, err := l.store.Get(ctx, common.KeyPosts)
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}
	if raw == nil {
		return []models.Post{}, nil
	}

	var posts []models.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}
	return posts, nil
}

func (l *ledger) savePosts(ctx context.Context, posts []models.Post) error {
	raw, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("failed to encode posts: %w", err)
	}
	if err := l.store.Set(ctx, common.KeyPosts, raw); err != nil {
		return fmt.Errorf("failed to save posts: %w", err)
	}
	return nil
}

func (l *ledger) CreatePost(ctx context.Context, content string, sources []media.Source, author *models.Account) (*models.Post, error) {
	// materialize attachments before taking the lock; the encoding is the
	// only slow part and needs no ledger state
	attachments, err := media.EncodeAll(ctx, sources)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	posts, err := l.loadPosts(ctx)
	if err != nil {
		return nil, err
	}

	now := timeNow().UnixMilli()
	post := models.Post{
		ID:           strconv.FormatInt(now, 10),
		Content:      content,
		Media:        attachments,
		Author:       author.Username,
		AuthorAvatar: author.AvatarURL,
		CreatedAt:    now,
	}

	posts = append([]models.Post{post}, posts...)
	if err := l.savePosts(ctx, posts); err != nil {
		return nil, err
	}

	return &post, nil
}

func (l *ledger) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	return l.loadPosts(ctx)
}

func (l *ledger) GetPostsByAuthor(ctx context.Context, username string) ([]models.Post, error) {
	posts, err := l.loadPosts(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if p.Author == username {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (l *ledger) LikePost(ctx context.Context, postID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	posts, err := l.loadPosts(ctx)
	if err != nil {
		return err
	}

	for i := range posts {
		if posts[i].ID == postID {
			posts[i].Likes++
			return l.savePosts(ctx, posts)
		}
	}

	return fmt.Errorf("failed to like post %s: %w", postID, common.ErrorNotFound)
}

func (l *ledger) AuthorStats(ctx context.Context, username string) (AuthorStats, error) {
	posts, err := l.GetPostsByAuthor(ctx, username)
	if err != nil {
		return AuthorStats{}, err
	}

	stats := AuthorStats{PostCount: len(posts)}
	for _, p := range posts {
		stats.TotalLikes += p.Likes
	}
	return stats, nil
}
