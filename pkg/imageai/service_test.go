package imageai

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallest valid PNG header plus padding is enough for content sniffing
var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...)

type fakeRenderer struct {
	calls  int
	err    error
	colors []string
}

func (f *fakeRenderer) RenderCard(_ context.Context, _ string, background string) ([]byte, error) {
	f.calls++
	f.colors = append(f.colors, background)
	if f.err != nil {
		return nil, f.err
	}
	return pngBytes, nil
}

type failingProvider struct{}

func (failingProvider) Name() string { return "failing" }
func (failingProvider) Generate(context.Context, string) ([]byte, string, error) {
	return nil, "", errors.New("boom")
}

func TestOpenAI_Generate(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, _ = io.WriteString(w, `{"data":[{"b64_json":"`+base64.StdEncoding.EncodeToString(pngBytes)+`"}]}`)
	}))
	defer srv.Close()

	p := NewOpenAI("sk-test")
	p.BaseURL = srv.URL

	img, ext, err := p.Generate(context.Background(), "a cover")
	require.NoError(t, err)
	assert.Equal(t, pngBytes, img)
	assert.Equal(t, "png", ext)
	assert.Equal(t, "Bearer sk-test", auth)
}

func TestOpenAI_EmptyData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":[]}`)
	}))
	defer srv.Close()

	p := NewOpenAI("sk-test")
	p.BaseURL = srv.URL

	_, _, err := p.Generate(context.Background(), "a cover")
	assert.ErrorIs(t, err, ErrNoImage)
}

func TestStability_SendsMultipartForm(t *testing.T) {
	var prompt, format string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		prompt = r.FormValue("prompt")
		format = r.FormValue("output_format")
		_, _ = w.Write(pngBytes)
	}))
	defer srv.Close()

	p := NewStability("key")
	p.BaseURL = srv.URL

	_, ext, err := p.Generate(context.Background(), "mountains")
	require.NoError(t, err)
	assert.Equal(t, "mountains", prompt)
	assert.Equal(t, "webp", format)
	assert.Equal(t, "png", ext)
}

func TestReplicate_DownloadsOutput(t *testing.T) {
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/predictions", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Token r8", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"status":"succeeded","output":["`+srv.URL+`/out.png"]}`)
	})
	mux.HandleFunc("/out.png", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(pngBytes)
	})

	p := NewReplicate("r8")
	p.BaseURL = srv.URL + "/predictions"

	img, _, err := p.Generate(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, pngBytes, img)
}

func TestProviderFromKeys(t *testing.T) {
	assert.Nil(t, ProviderFromKeys("", "", ""))
	assert.Equal(t, "openai", ProviderFromKeys("a", "b", "c").Name())
	assert.Equal(t, "stability", ProviderFromKeys("", "b", "c").Name())
	assert.Equal(t, "replicate", ProviderFromKeys("", "", "c").Name())
}

func TestService_WritesProviderImage(t *testing.T) {
	dir := t.TempDir()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(pngBytes)
	}))
	defer srv.Close()
	p := NewStability("key")
	p.BaseURL = srv.URL

	svc := NewService(p, nil, dir, nil)
	public, err := svc.GenerateCover(context.Background(), "my-post", "prompt")
	require.NoError(t, err)
	assert.Equal(t, "/images/blog/my-post/hero.png", public)

	written, err := os.ReadFile(filepath.Join(dir, "images", "blog", "my-post", "hero.png"))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, written)
}

func TestService_FallsBackToRenderer(t *testing.T) {
	r := &fakeRenderer{}
	svc := NewService(failingProvider{}, r, t.TempDir(), nil)

	public, err := svc.GenerateCover(context.Background(), "my-post", "prompt")
	require.NoError(t, err)
	assert.Equal(t, 1, r.calls)
	assert.True(t, strings.HasSuffix(public, "/hero.png"))
}

func TestService_Errors(t *testing.T) {
	svc := NewService(nil, nil, t.TempDir(), nil)
	assert.False(t, svc.Enabled())

	_, err := svc.GenerateCover(context.Background(), "ok-slug", "p")
	assert.ErrorIs(t, err, ErrNoGenerators)

	_, err = NewService(nil, &fakeRenderer{}, t.TempDir(), nil).GenerateCover(context.Background(), "../etc", "p")
	assert.ErrorIs(t, err, ErrInvalidSlug)

	_, err = NewService(failingProvider{}, nil, t.TempDir(), nil).GenerateCover(context.Background(), "ok-slug", "p")
	assert.Error(t, err)
}

func TestService_GeneratePlaceholders(t *testing.T) {
	dir := t.TempDir()
	r := &fakeRenderer{}
	svc := NewService(nil, r, dir, nil)

	paths, err := svc.GeneratePlaceholders(context.Background(), "edge-caching", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"/images/blog/edge-caching/hero.png", "/images/blog/edge-caching/secondary.png"}, paths)
	assert.Equal(t, []string{"#0ea5e9", "#22c55e"}, r.colors)

	_, err = os.Stat(filepath.Join(dir, "images", "blog", "edge-caching", "secondary.png"))
	assert.NoError(t, err)
}

func TestService_GeneratePlaceholders_CustomNames(t *testing.T) {
	svc := NewService(nil, &fakeRenderer{}, t.TempDir(), nil)

	paths, err := svc.GeneratePlaceholders(context.Background(), "p", []Placeholder{{Name: "inline-1.webp", Color: "#111", Text: "One"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"/images/blog/p/inline-1.png"}, paths)

	_, err = svc.GeneratePlaceholders(context.Background(), "p", []Placeholder{{Name: "../x"}})
	assert.ErrorIs(t, err, ErrInvalidSlug)
}

func TestDefaultPlaceholders_TruncatesText(t *testing.T) {
	cards := DefaultPlaceholders("a-very-long-slug-that-keeps-going-on")
	assert.Equal(t, "a very long slug that ke", cards[0].Text)
}
