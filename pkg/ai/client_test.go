package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-api/pkg/ai/aitest"
	"portfolio-api/pkg/ai/formatters"
)

func newTestClient(url string) *Client {
	c := NewClient(url, "secret")
	c.Backoff = time.Millisecond
	return c
}

func TestGenerateBlogPost_ParsesDraft(t *testing.T) {
	h := &aitest.Handler{Echo: true}
	srv := aitest.NewServer(h)
	defer srv.Close()

	draft, err := newTestClient(srv.URL).GenerateBlogPost(context.Background(), "edge rendering")
	require.NoError(t, err)

	assert.Equal(t, "Getting Started with Edge Rendering", draft.Title)
	assert.NotContains(t, draft.Markdown, "senior tech blogger")
	require.NotEmpty(t, draft.Sections)
	assert.Equal(t, formatters.SectionParagraph, draft.Sections[0].Kind)
	assert.Equal(t, 1, h.Calls())
	assert.Contains(t, h.Prompts()[0], `"edge rendering"`)
}

func TestGenerateBlogPost_SendsBearerToken(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[{"generated_text":"Title: T\n\nBody"}]`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GenerateBlogPost(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret", auth)
}

func TestGenerateBlogPost_RetriesServerErrors(t *testing.T) {
	h := &aitest.Handler{Status: http.StatusServiceUnavailable}
	srv := aitest.NewServer(h)
	defer srv.Close()

	_, err := newTestClient(srv.URL).GenerateBlogPost(context.Background(), "x")
	require.Error(t, err)
	assert.Equal(t, defaultAttempts, h.Calls())
}

func TestGenerateBlogPost_ClientErrorNotRetried(t *testing.T) {
	h := &aitest.Handler{Status: http.StatusUnauthorized}
	srv := aitest.NewServer(h)
	defer srv.Close()

	_, err := newTestClient(srv.URL).GenerateBlogPost(context.Background(), "x")
	require.Error(t, err)
	assert.Equal(t, 1, h.Calls())
}

func TestParseGeneratedText(t *testing.T) {
	text, err := parseGeneratedText([]byte(`{"generated_text":"hello"}`))
	require.NoError(t, err)
	assert.Equal(t, "hello", text)

	_, err = parseGeneratedText([]byte(`[]`))
	assert.ErrorIs(t, err, formatters.ErrEmptyOutput)

	_, err = parseGeneratedText([]byte(`{"error":"model loading"}`))
	assert.ErrorContains(t, err, "model loading")
}
