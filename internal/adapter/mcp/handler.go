// Package mcp exposes the portfolio content as MCP tools.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/usecase"
)

const Version = "0.1.0"

type PostGenerator interface {
	Generate(ctx context.Context, prompt string) (*domain.Post, error)
}

// Deps are the resolvers behind the tools. Generator may be nil, in which
// case the generate_post tool is not registered.
type Deps struct {
	Projects  *usecase.ProjectResolver
	Skills    *usecase.SkillResolver
	Posts     *usecase.PostResolver
	Generator PostGenerator
}

type SlugRequest struct {
	Slug string `json:"slug"` // project slug, skill id or post id
}

type EmptyRequest struct{}

type GenerateRequest struct {
	Prompt string `json:"prompt"` // what the post should be about
}

// NewServer creates an MCP server with read tools for every content type.
func NewServer(deps Deps) *server.MCPServer {
	s := server.NewMCPServer(
		"Portfolio Content MCP",
		Version,
		server.WithToolCapabilities(false),
	)

	s.AddTool(mcp.NewTool("list_projects",
		mcp.WithDescription("List featured and other portfolio projects with the tech stack lookup"),
	), mcp.NewTypedToolHandler(listProjectsHandler(deps.Projects)))

	s.AddTool(mcp.NewTool("get_project",
		mcp.WithDescription("Get the full record of a project by slug (case-insensitive)"),
		mcp.WithString("slug",
			mcp.Required(),
			mcp.Description("The project slug, e.g. 'gausscms'"),
		),
	), mcp.NewTypedToolHandler(getProjectHandler(deps.Projects)))

	s.AddTool(mcp.NewTool("list_skills",
		mcp.WithDescription("List preferred and experienced skills"),
	), mcp.NewTypedToolHandler(listSkillsHandler(deps.Skills)))

	s.AddTool(mcp.NewTool("get_skill",
		mcp.WithDescription("Get a skill with its rendered write-up by id"),
		mcp.WithString("slug",
			mcp.Required(),
			mcp.Description("The skill id, e.g. 'nuxtjs'"),
		),
	), mcp.NewTypedToolHandler(getSkillHandler(deps.Skills)))

	s.AddTool(mcp.NewTool("list_posts",
		mcp.WithDescription("List blog posts, newest first, with the latest post singled out"),
	), mcp.NewTypedToolHandler(listPostsHandler(deps.Posts)))

	s.AddTool(mcp.NewTool("get_post",
		mcp.WithDescription("Get a blog post with its content by id"),
		mcp.WithString("slug",
			mcp.Required(),
			mcp.Description("The post id"),
		),
	), mcp.NewTypedToolHandler(getPostHandler(deps.Posts)))

	if deps.Generator != nil {
		s.AddTool(mcp.NewTool("generate_post",
			mcp.WithDescription("Draft a new blog post from a prompt and publish it"),
			mcp.WithString("prompt",
				mcp.Required(),
				mcp.Description("What the post should be about"),
			),
		), mcp.NewTypedToolHandler(generatePostHandler(deps.Generator)))
	}

	return s
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func listProjectsHandler(r *usecase.ProjectResolver) func(context.Context, mcp.CallToolRequest, EmptyRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args EmptyRequest) (*mcp.CallToolResult, error) {
		return jsonResult(r.List())
	}
}

func getProjectHandler(r *usecase.ProjectResolver) func(context.Context, mcp.CallToolRequest, SlugRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args SlugRequest) (*mcp.CallToolResult, error) {
		if args.Slug == "" {
			return mcp.NewToolResultError("slug is required"), nil
		}
		p, err := r.Get(args.Slug)
		if err != nil {
			return mcp.NewToolResultError("Project not found"), nil
		}
		return jsonResult(p)
	}
}

func listSkillsHandler(r *usecase.SkillResolver) func(context.Context, mcp.CallToolRequest, EmptyRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args EmptyRequest) (*mcp.CallToolResult, error) {
		return jsonResult(r.List())
	}
}

func getSkillHandler(r *usecase.SkillResolver) func(context.Context, mcp.CallToolRequest, SlugRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args SlugRequest) (*mcp.CallToolResult, error) {
		if args.Slug == "" {
			return mcp.NewToolResultError("slug is required"), nil
		}
		s, err := r.Get(args.Slug)
		if err != nil {
			return jsonResult(map[string]interface{}{"skill": nil})
		}
		return jsonResult(map[string]interface{}{"skill": s})
	}
}

func listPostsHandler(r *usecase.PostResolver) func(context.Context, mcp.CallToolRequest, EmptyRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args EmptyRequest) (*mcp.CallToolResult, error) {
		listing, err := r.List(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to list posts: %v", err)), nil
		}
		return jsonResult(listing)
	}
}

func getPostHandler(r *usecase.PostResolver) func(context.Context, mcp.CallToolRequest, SlugRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args SlugRequest) (*mcp.CallToolResult, error) {
		if args.Slug == "" {
			return mcp.NewToolResultError("slug is required"), nil
		}
		p, err := r.Get(ctx, args.Slug)
		if errors.Is(err, domain.ErrNotFound) {
			return mcp.NewToolResultError("Post not found"), nil
		}
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to get post: %v", err)), nil
		}
		return jsonResult(map[string]interface{}{"post": p})
	}
}

func generatePostHandler(g PostGenerator) func(context.Context, mcp.CallToolRequest, GenerateRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args GenerateRequest) (*mcp.CallToolResult, error) {
		post, err := g.Generate(ctx, args.Prompt)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to generate post: %v", err)), nil
		}
		return jsonResult(map[string]interface{}{"success": true, "post": post})
	}
}
