package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-api/internal/domain"
)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildPostListing_PartitionsCollection(t *testing.T) {
	posts := []domain.Post{
		{ID: "b", Date: day(2), Content: domain.Body{{Type: domain.BlockParagraph, Content: "x"}}},
		{ID: "c", Date: day(5)},
		{ID: "a", Date: day(2)},
		{ID: "d", Date: day(1)},
	}

	listing := BuildPostListing(posts)

	require.NotNil(t, listing.LatestPost)
	assert.Equal(t, "c", listing.LatestPost.ID)

	ids := []string{}
	for _, p := range listing.Posts {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"a", "b", "d"}, ids)

	// input order untouched
	assert.Equal(t, "b", posts[0].ID)
}

func TestBuildPostListing_Empty(t *testing.T) {
	listing := BuildPostListing(nil)
	assert.Nil(t, listing.LatestPost)
	assert.NotNil(t, listing.Posts)
	assert.Empty(t, listing.Posts)
}

func TestPostResolver_ListStoreFailure(t *testing.T) {
	r := NewPostResolver(&memStore{listErr: domain.ErrStoreUnavailable})

	listing, err := r.List(context.Background())
	assert.True(t, errors.Is(err, domain.ErrStoreUnavailable))
	assert.Nil(t, listing.LatestPost)
	assert.NotNil(t, listing.Posts)
}

func TestPostResolver_Get(t *testing.T) {
	r := NewPostResolver(&memStore{posts: []domain.Post{{ID: "hello", Title: "Hello"}}})

	post, err := r.Get(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "Hello", post.Title)

	_, err = r.Get(context.Background(), "HELLO")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostResolver_Generated(t *testing.T) {
	store := &memStore{posts: []domain.Post{
		{ID: "seed", Date: day(1)},
		{ID: "gen-old", Date: day(2), Tags: []string{GeneratedTag}},
		{ID: "gen-new", Date: day(3), Tags: []string{"Go", GeneratedTag}},
	}}
	r := NewPostResolver(store)

	listing, err := r.ListGenerated(context.Background())
	require.NoError(t, err)
	require.NotNil(t, listing.LatestPost)
	assert.Equal(t, "gen-new", listing.LatestPost.ID)
	require.Len(t, listing.Posts, 1)
	assert.Equal(t, "gen-old", listing.Posts[0].ID)

	_, err = r.GetGenerated(context.Background(), "seed")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	post, err := r.GetGenerated(context.Background(), "gen-old")
	require.NoError(t, err)
	assert.Equal(t, "gen-old", post.ID)
}
