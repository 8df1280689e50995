package repository

import (
	"context"

	"portfolio-api/internal/domain"
)

// StaticStore serves a fixed post set and refuses writes.
type StaticStore struct {
	posts []domain.Post
}

func NewStaticStore(posts []domain.Post) *StaticStore {
	return &StaticStore{posts: posts}
}

func (s *StaticStore) List(_ context.Context) ([]domain.Post, error) {
	return append([]domain.Post(nil), s.posts...), nil
}

func (s *StaticStore) Get(_ context.Context, id string) (*domain.Post, error) {
	for i := range s.posts {
		if s.posts[i].ID == id {
			p := s.posts[i]
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *StaticStore) Append(_ context.Context, _ domain.Post) error {
	return domain.ErrReadOnly
}
