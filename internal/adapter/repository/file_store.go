package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/model"
)

// FileStore keeps posts as a JSON array in a single file. Writes replace
// the file atomically and are serialized by a mutex.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) List(_ context.Context) ([]domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *FileStore) Get(ctx context.Context, id string) (*domain.Post, error) {
	posts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].ID == id {
			return &posts[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *FileStore) Append(_ context.Context, post domain.Post) error {
	if err := model.ValidatePost(post); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := s.read()
	if err != nil {
		return err
	}
	for _, p := range posts {
		if p.ID == post.ID {
			return fmt.Errorf("post %q: %w", post.ID, domain.ErrDuplicateID)
		}
	}
	return s.write(append(posts, post))
}

// read accepts either a plain array or the {latest_post, posts} listing
// shape older files were written in. A missing file is an empty store.
func (s *FileStore) read() ([]domain.Post, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.Post{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrStoreUnavailable, s.path, err)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return []domain.Post{}, nil
	}

	if raw[0] == '{' {
		var listing struct {
			LatestPost *domain.Post  `json:"latest_post"`
			Posts      []domain.Post `json:"posts"`
		}
		if err := json.Unmarshal(raw, &listing); err != nil {
			return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrStoreUnavailable, s.path, err)
		}
		posts := listing.Posts
		if listing.LatestPost != nil {
			posts = append([]domain.Post{*listing.LatestPost}, posts...)
		}
		return posts, nil
	}

	var posts []domain.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrStoreUnavailable, s.path, err)
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	return posts, nil
}

func (s *FileStore) write(posts []domain.Post) error {
	b, err := json.MarshalIndent(posts, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	tmp, err := os.CreateTemp(dir, ".posts-*.json")
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: write %s: %v", domain.ErrStoreUnavailable, tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%w: replace %s: %v", domain.ErrStoreUnavailable, s.path, err)
	}
	return nil
}
