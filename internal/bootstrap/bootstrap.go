// Package bootstrap assembles stores, resolvers and generators from config.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"

	"portfolio-api/internal/adapter/repository"
	"portfolio-api/internal/config"
	"portfolio-api/internal/content"
	"portfolio-api/internal/infrastructure/migration"
	"portfolio-api/internal/markdown"
	"portfolio-api/internal/usecase"
	"portfolio-api/pkg/ai"
	"portfolio-api/pkg/imageai"
	infra "portfolio-api/pkg/infrastructure"
)

type Services struct {
	Projects  *usecase.ProjectResolver
	Skills    *usecase.SkillResolver
	Posts     *usecase.PostResolver
	Generator *usecase.Generator
	Images    *imageai.Service

	pool *pgxpool.Pool
}

// Build validates the static datasets and wires everything cfg asks for.
// An unreachable posts database is logged, not fatal: post routes then
// answer 503 until the process is restarted.
func Build(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Services, error) {
	projects := content.Projects()
	skills := content.Skills()
	seeds := content.Posts(cfg.SiteAuthor)
	if err := content.Validate(projects, skills, seeds); err != nil {
		return nil, fmt.Errorf("static content: %w", err)
	}

	svc := &Services{}

	var store usecase.PostStore
	switch cfg.PostsBackend {
	case config.PostsBackendStatic:
		store = repository.NewStaticStore(seeds)
	case config.PostsBackendFile:
		store = repository.NewFileStore(cfg.PostsFile)
	case config.PostsBackendPostgres:
		pool, err := infra.NewPostsPool(ctx, cfg.PostsDatabaseURL)
		if err != nil {
			logger.Warn("posts DB not available", "error", err)
		} else if err := migration.RunMigrations(ctx, pool); err != nil {
			logger.Warn("posts migrations failed", "error", err)
		}
		svc.pool = pool
		store = repository.NewPostsRepo(pool)
	default:
		return nil, fmt.Errorf("unknown POSTS_BACKEND %q", cfg.PostsBackend)
	}
	if cfg.PostsIncludeStatic && cfg.PostsBackend != config.PostsBackendStatic {
		store = repository.NewAggregateStore(store, repository.NewStaticStore(seeds))
	}

	svc.Projects = usecase.NewProjectResolver(projects, content.TechStack())
	svc.Skills = usecase.NewSkillResolver(skills, markdown.Options{SiteURL: cfg.SiteURL})
	svc.Posts = usecase.NewPostResolver(store)

	var renderer imageai.CardRenderer
	if cfg.CoverPlaceholderRender {
		renderer = infra.NewChromedpCardRenderer(cfg.ChromePath)
	}
	provider := imageai.ProviderFromKeys(cfg.OpenAIAPIKey, cfg.StabilityAPIKey, cfg.ReplicateAPIToken)
	svc.Images = imageai.NewService(provider, renderer, cfg.StaticDir, logger)

	if cfg.GenerationEnabled {
		var text usecase.TextGenerator
		if cfg.AIServiceURL != "" {
			client := ai.NewClient(cfg.AIServiceURL, cfg.HuggingFaceToken)
			client.Logger = logger
			text = client
		}
		var covers usecase.CoverGenerator
		if svc.Images.Enabled() {
			covers = svc.Images
		}
		svc.Generator = usecase.NewGenerator(text, covers, store, usecase.GeneratorConfig{
			Author:       cfg.SiteAuthor,
			Fallback:     cfg.GenerationFallback,
			TextTimeout:  cfg.GenerationTextTimeout,
			ImageTimeout: cfg.GenerationImageTimeout,
			Logger:       logger,
		})
	}

	logger.Info("services ready",
		"posts_backend", cfg.PostsBackend,
		"include_static", cfg.PostsIncludeStatic,
		"generation", cfg.GenerationEnabled,
		"cover_provider", providerName(provider),
	)
	return svc, nil
}

func providerName(p imageai.Provider) string {
	if p == nil {
		return "none"
	}
	return p.Name()
}

func (s *Services) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
