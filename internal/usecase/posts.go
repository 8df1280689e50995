package usecase

import (
	"context"
	"fmt"
	"sort"

	"portfolio-api/internal/domain"
)

type PostResolver struct {
	store PostStore
}

func NewPostResolver(store PostStore) *PostResolver {
	return &PostResolver{store: store}
}

func (r *PostResolver) List(ctx context.Context) (domain.PostListing, error) {
	posts, err := r.store.List(ctx)
	if err != nil {
		return domain.PostListing{Posts: []domain.PostSummary{}}, fmt.Errorf("list posts: %w", err)
	}
	return BuildPostListing(posts), nil
}

func (r *PostResolver) Get(ctx context.Context, id string) (*domain.Post, error) {
	post, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("post %q: %w", id, err)
	}
	return post, nil
}

// ListGenerated is List restricted to posts written by the Generator.
func (r *PostResolver) ListGenerated(ctx context.Context) (domain.PostListing, error) {
	posts, err := r.store.List(ctx)
	if err != nil {
		return domain.PostListing{Posts: []domain.PostSummary{}}, fmt.Errorf("list generated posts: %w", err)
	}
	generated := posts[:0:0]
	for _, p := range posts {
		if IsGenerated(p) {
			generated = append(generated, p)
		}
	}
	return BuildPostListing(generated), nil
}

func (r *PostResolver) GetGenerated(ctx context.Context, id string) (*domain.Post, error) {
	post, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !IsGenerated(*post) {
		return nil, fmt.Errorf("generated post %q: %w", id, domain.ErrNotFound)
	}
	return post, nil
}

// IsGenerated reports whether p carries the generator's tag.
func IsGenerated(p domain.Post) bool {
	for _, tag := range p.Tags {
		if tag == GeneratedTag {
			return true
		}
	}
	return false
}

// All returns every post, newest first.
func (r *PostResolver) All(ctx context.Context) ([]domain.Post, error) {
	posts, err := r.store.List(ctx)
	if err != nil {
		return nil, err
	}
	SortPosts(posts)
	return posts, nil
}

// BuildPostListing singles out the newest post and keeps the rest newest first.
func BuildPostListing(posts []domain.Post) domain.PostListing {
	sorted := make([]domain.Post, len(posts))
	copy(sorted, posts)
	SortPosts(sorted)

	out := domain.PostListing{Posts: []domain.PostSummary{}}
	if len(sorted) == 0 {
		return out
	}
	latest := sorted[0].Summary()
	out.LatestPost = &latest
	for _, p := range sorted[1:] {
		out.Posts = append(out.Posts, p.Summary())
	}
	return out
}

// SortPosts orders by date descending, then id ascending.
func SortPosts(posts []domain.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		if !posts[i].Date.Equal(posts[j].Date) {
			return posts[i].Date.After(posts[j].Date)
		}
		return posts[i].ID < posts[j].ID
	})
}
