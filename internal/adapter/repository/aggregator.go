package repository

import (
	"context"
	"errors"
	"fmt"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/usecase"
)

// AggregateStore overlays read-only seed posts on a writable store. The
// writable store wins when both hold the same id, and new posts may not
// reuse a seed id.
type AggregateStore struct {
	primary usecase.PostStore
	seeds   usecase.PostStore
}

func NewAggregateStore(primary usecase.PostStore, seeds usecase.PostStore) *AggregateStore {
	return &AggregateStore{primary: primary, seeds: seeds}
}

func (s *AggregateStore) List(ctx context.Context) ([]domain.Post, error) {
	posts, err := s.primary.List(ctx)
	if err != nil {
		return nil, err
	}
	seeds, err := s.seeds.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(posts)+len(seeds))
	out := make([]domain.Post, 0, len(posts)+len(seeds))
	for _, group := range [][]domain.Post{posts, seeds} {
		for _, p := range group {
			if seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *AggregateStore) Get(ctx context.Context, id string) (*domain.Post, error) {
	post, err := s.primary.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return s.seeds.Get(ctx, id)
	}
	return post, err
}

func (s *AggregateStore) Append(ctx context.Context, post domain.Post) error {
	if _, err := s.seeds.Get(ctx, post.ID); err == nil {
		return fmt.Errorf("post %q: %w", post.ID, domain.ErrDuplicateID)
	}
	return s.primary.Append(ctx, post)
}
