package usecase

import (
	"context"
	"errors"
	"sync"

	"portfolio-api/internal/domain"
	"portfolio-api/pkg/ai/formatters"
)

type memStore struct {
	mu       sync.Mutex
	posts    []domain.Post
	listErr  error
	getErr   error
	dupFirst int
	appended []domain.Post
}

func (s *memStore) List(_ context.Context) ([]domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	return append([]domain.Post(nil), s.posts...), nil
}

func (s *memStore) Get(_ context.Context, id string) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	for _, p := range s.posts {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *memStore) Append(_ context.Context, post domain.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dupFirst > 0 {
		s.dupFirst--
		return domain.ErrDuplicateID
	}
	for _, p := range s.posts {
		if p.ID == post.ID {
			return domain.ErrDuplicateID
		}
	}
	s.posts = append(s.posts, post)
	s.appended = append(s.appended, post)
	return nil
}

type fakeText struct {
	draft *formatters.PostDraft
	err   error
	calls int
	block bool
}

func (f *fakeText) GenerateBlogPost(ctx context.Context, _ string) (*formatters.PostDraft, error) {
	f.calls++
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.draft, f.err
}

type fakeCovers struct {
	path  string
	err   error
	calls int
	slugs []string
}

func (f *fakeCovers) GenerateCover(_ context.Context, slug string, _ string) (string, error) {
	f.calls++
	f.slugs = append(f.slugs, slug)
	if f.path == "" && f.err == nil {
		return "/images/blog/" + slug + "/hero.png", nil
	}
	return f.path, f.err
}

var errProvider = errors.New("provider down")
