package mcp

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-api/internal/adapter/repository"
	"portfolio-api/internal/content"
	"portfolio-api/internal/markdown"
	"portfolio-api/internal/usecase"
)

func request(name string, args interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Request: mcp.Request{Method: "tools/call"},
		Params:  mcp.CallToolParams{Name: name, Arguments: args},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func testDeps(t *testing.T) Deps {
	store := repository.NewAggregateStore(
		repository.NewFileStore(filepath.Join(t.TempDir(), "posts.json")),
		repository.NewStaticStore(content.Posts("Jane Doe")),
	)
	return Deps{
		Projects:  usecase.NewProjectResolver(content.Projects(), content.TechStack()),
		Skills:    usecase.NewSkillResolver(content.Skills(), markdown.Options{}),
		Posts:     usecase.NewPostResolver(store),
		Generator: usecase.NewGenerator(nil, nil, store, usecase.GeneratorConfig{Author: "Jane Doe", Fallback: true}),
	}
}

func TestNewServer(t *testing.T) {
	assert.NotNil(t, NewServer(testDeps(t)))
}

func TestGetProjectHandler(t *testing.T) {
	deps := testDeps(t)
	h := getProjectHandler(deps.Projects)
	ctx := context.Background()

	args := SlugRequest{Slug: "CeleroOne"}
	result, err := h(ctx, request("get_project", args), args)
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var project map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &project))
	assert.Equal(t, "celeroone", project["slug"])

	args = SlugRequest{Slug: "missing"}
	result, err = h(ctx, request("get_project", args), args)
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestGetSkillHandler_Unknown(t *testing.T) {
	h := getSkillHandler(testDeps(t).Skills)

	args := SlugRequest{Slug: "cobol"}
	result, err := h(context.Background(), request("get_skill", args), args)
	require.NoError(t, err)
	assert.JSONEq(t, `{"skill":null}`, resultText(t, result))
}

func TestListPostsHandler(t *testing.T) {
	h := listPostsHandler(testDeps(t).Posts)

	result, err := h(context.Background(), request("list_posts", EmptyRequest{}), EmptyRequest{})
	require.NoError(t, err)

	var listing map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &listing))
	assert.NotNil(t, listing["latest_post"])
}

func TestGeneratePostHandler(t *testing.T) {
	deps := testDeps(t)
	h := generatePostHandler(deps.Generator)
	ctx := context.Background()

	args := GenerateRequest{Prompt: "tracing in go"}
	result, err := h(ctx, request("generate_post", args), args)
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Contains(t, resultText(t, result), "AI Draft: tracing in go")

	post, err := deps.Posts.Get(ctx, "ai-draft-tracing-in-go")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", post.Author)

	args = GenerateRequest{Prompt: "  "}
	result, err = h(ctx, request("generate_post", args), args)
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestGetPostHandlerValidation(t *testing.T) {
	h := getPostHandler(testDeps(t).Posts)

	args := SlugRequest{}
	result, err := h(context.Background(), request("get_post", args), args)
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
