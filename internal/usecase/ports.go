package usecase

import (
	"context"

	"portfolio-api/internal/domain"
	"portfolio-api/pkg/ai/formatters"
)

// PostStore is the persisted post collection. List returns posts newest
// first; Append fails with domain.ErrDuplicateID when the id is taken.
type PostStore interface {
	List(ctx context.Context) ([]domain.Post, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	Append(ctx context.Context, post domain.Post) error
}

type TextGenerator interface {
	GenerateBlogPost(ctx context.Context, prompt string) (*formatters.PostDraft, error)
}

// CoverGenerator produces a cover image for a post and returns its public path.
type CoverGenerator interface {
	GenerateCover(ctx context.Context, slug string, prompt string) (string, error)
}
