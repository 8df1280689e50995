package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/model"
)

// PostsRepo stores each post as a JSONB document keyed by id.
type PostsRepo struct {
	pool *pgxpool.Pool
}

func NewPostsRepo(pool *pgxpool.Pool) *PostsRepo {
	return &PostsRepo{pool: pool}
}

// queryJSON runs a SQL that returns a single json value and unmarshals it into out.
func queryJSON(ctx context.Context, pool *pgxpool.Pool, out interface{}, sql string, args ...interface{}) error {
	var raw []byte
	if err := pool.QueryRow(ctx, sql, args...).Scan(&raw); err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (r *PostsRepo) List(ctx context.Context) ([]domain.Post, error) {
	if r.pool == nil {
		return nil, domain.ErrStoreUnavailable
	}
	var posts []domain.Post
	err := queryJSON(ctx, r.pool, &posts,
		`SELECT coalesce(json_agg(doc ORDER BY date DESC, id ASC), '[]') FROM posts`)
	if err != nil {
		return nil, fmt.Errorf("%w: list posts: %v", domain.ErrStoreUnavailable, err)
	}
	return posts, nil
}

func (r *PostsRepo) Get(ctx context.Context, id string) (*domain.Post, error) {
	if r.pool == nil {
		return nil, domain.ErrStoreUnavailable
	}
	var post domain.Post
	err := queryJSON(ctx, r.pool, &post, `SELECT doc FROM posts WHERE id = $1`, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get post %q: %v", domain.ErrStoreUnavailable, id, err)
	}
	return &post, nil
}

// Append relies on the primary key: a conflicting id inserts nothing.
func (r *PostsRepo) Append(ctx context.Context, post domain.Post) error {
	if r.pool == nil {
		return domain.ErrStoreUnavailable
	}
	if err := model.ValidatePost(post); err != nil {
		return err
	}
	doc, err := json.Marshal(post)
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, `INSERT INTO posts (id, date, doc, created_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (id) DO NOTHING`,
		post.ID, post.Date, doc)
	if err != nil {
		return fmt.Errorf("%w: insert post %q: %v", domain.ErrStoreUnavailable, post.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("post %q: %w", post.ID, domain.ErrDuplicateID)
	}
	return nil
}
