package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-api/internal/config"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func baseConfig(t *testing.T) config.Config {
	return config.Config{
		SiteAuthor:         "Jane Doe",
		StaticDir:          t.TempDir(),
		PostsBackend:       config.PostsBackendFile,
		PostsFile:          filepath.Join(t.TempDir(), "posts.json"),
		PostsIncludeStatic: true,
		GenerationEnabled:  true,
		GenerationFallback: true,
	}
}

func TestBuild_FileBackendWithSeeds(t *testing.T) {
	svc, err := Build(context.Background(), baseConfig(t), quietLogger())
	require.NoError(t, err)
	defer svc.Close()

	posts, err := svc.Posts.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.NotNil(t, svc.Generator)
	assert.False(t, svc.Images.Enabled())

	post, err := svc.Generator.Generate(context.Background(), "offline drafts")
	require.NoError(t, err)
	assert.Equal(t, "AI Draft: offline drafts", post.Title)
}

func TestBuild_StaticBackendWithoutGeneration(t *testing.T) {
	cfg := baseConfig(t)
	cfg.PostsBackend = config.PostsBackendStatic
	cfg.GenerationEnabled = false

	svc, err := Build(context.Background(), cfg, quietLogger())
	require.NoError(t, err)
	assert.Nil(t, svc.Generator)

	listing, err := svc.Posts.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, listing.LatestPost)
}

func TestBuild_UnknownBackend(t *testing.T) {
	cfg := baseConfig(t)
	cfg.PostsBackend = "mongo"

	_, err := Build(context.Background(), cfg, quietLogger())
	assert.ErrorContains(t, err, "unknown POSTS_BACKEND")
}
