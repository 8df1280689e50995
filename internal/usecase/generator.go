package usecase

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/markdown"
	"portfolio-api/pkg/ai/formatters"
)

const (
	GeneratedCategory = "AI"
	GeneratedTag      = "AI Generated"

	excerptLength = 160
	idAttempts    = 3
)

var placeholderCovers = []string{
	"https://placehold.co/1200x675/2563eb/ffffff?text=AI+Tech+Blog",
	"https://placehold.co/1200x675/7c3aed/ffffff?text=Future+Tech",
	"https://placehold.co/1200x675/2dd4bf/ffffff?text=Innovation",
}

// PlaceholderCover picks a cover URL for slug from a fixed list.
func PlaceholderCover(slug string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(slug))
	return placeholderCovers[h.Sum32()%uint32(len(placeholderCovers))]
}

type GeneratorConfig struct {
	Author       string
	Fallback     bool
	TextTimeout  time.Duration
	ImageTimeout time.Duration
	Now          func() time.Time
	Suffix       func() string
	Logger       *slog.Logger
}

// Generator drafts a post from a prompt, attaches a cover and appends the
// result to the store. text and covers may be nil.
type Generator struct {
	text   TextGenerator
	covers CoverGenerator
	store  PostStore
	cfg    GeneratorConfig
}

func NewGenerator(text TextGenerator, covers CoverGenerator, store PostStore, cfg GeneratorConfig) *Generator {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Suffix == nil {
		cfg.Suffix = randomSuffix
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Generator{text: text, covers: covers, store: store, cfg: cfg}
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
}

func (g *Generator) Generate(ctx context.Context, prompt string) (*domain.Post, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, fmt.Errorf("%w: prompt is required", domain.ErrValidation)
	}

	draft, err := g.draft(ctx, prompt)
	if err != nil {
		return nil, err
	}

	id, err := g.availableID(ctx, PostID(draft.Title))
	if err != nil {
		return nil, err
	}

	post := domain.Post{
		ID:         id,
		Title:      draft.Title,
		Author:     g.cfg.Author,
		Date:       g.cfg.Now().UTC(),
		Category:   GeneratedCategory,
		Tags:       []string{GeneratedTag},
		Excerpt:    markdown.Excerpt(draft.Markdown, excerptLength),
		Content:    SectionsToBlocks(draft.Sections),
		CoverImage: g.cover(ctx, id, prompt),
	}
	if len(post.Content) == 0 {
		post.Content = domain.Body{{Type: domain.BlockParagraph, Content: formatters.DefaultBody}}
	}

	base := post.ID
	for attempt := 1; ; attempt++ {
		err = g.store.Append(ctx, post)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrDuplicateID) || attempt >= idAttempts {
			return nil, fmt.Errorf("save post %q: %w", post.ID, err)
		}
		post.ID = base + "-" + g.cfg.Suffix()
		// covers are stored per post id
		post.CoverImage = g.cover(ctx, post.ID, prompt)
	}

	g.cfg.Logger.Info("post generated", "id", post.ID, "title", post.Title)
	return &post, nil
}

func (g *Generator) draft(ctx context.Context, prompt string) (*formatters.PostDraft, error) {
	if g.text == nil {
		if !g.cfg.Fallback {
			return nil, fmt.Errorf("%w: text generation is not configured", domain.ErrUpstream)
		}
		return LocalDraft(prompt), nil
	}

	tctx, cancel := withTimeout(ctx, g.cfg.TextTimeout)
	defer cancel()

	draft, err := g.text.GenerateBlogPost(tctx, prompt)
	if err == nil && draft != nil && strings.TrimSpace(draft.Title) != "" {
		return draft, nil
	}
	if err == nil {
		err = formatters.ErrEmptyOutput
	}
	if !g.cfg.Fallback {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	g.cfg.Logger.Warn("text generation failed, using local draft", "error", err)
	return LocalDraft(prompt), nil
}

// availableID returns base, or base with a random suffix when base is
// already taken. Append still enforces uniqueness.
func (g *Generator) availableID(ctx context.Context, base string) (string, error) {
	id := base
	for attempt := 1; attempt <= idAttempts; attempt++ {
		_, err := g.store.Get(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return id, nil
		}
		if err != nil {
			return "", fmt.Errorf("check post id %q: %w", id, err)
		}
		id = base + "-" + g.cfg.Suffix()
	}
	return id, nil
}

func (g *Generator) cover(ctx context.Context, slug string, prompt string) string {
	if g.covers == nil {
		return PlaceholderCover(slug)
	}

	ictx, cancel := withTimeout(ctx, g.cfg.ImageTimeout)
	defer cancel()

	path, err := g.covers.GenerateCover(ictx, slug, prompt)
	if err != nil || path == "" {
		g.cfg.Logger.Warn("cover generation failed, using placeholder", "slug", slug, "error", err)
		return PlaceholderCover(slug)
	}
	return path
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// SectionsToBlocks maps parsed draft sections onto post body blocks.
func SectionsToBlocks(sections []formatters.Section) domain.Body {
	body := make(domain.Body, 0, len(sections))
	for _, s := range sections {
		switch s.Kind {
		case formatters.SectionHeading:
			body = append(body, domain.Block{Type: domain.BlockHeading, Content: s.Text, Level: s.Level})
		case formatters.SectionCode:
			body = append(body, domain.Block{Type: domain.BlockCode, Content: s.Text, Language: s.Language})
		default:
			if strings.TrimSpace(s.Text) != "" {
				body = append(body, domain.Block{Type: domain.BlockParagraph, Content: s.Text})
			}
		}
	}
	return body
}
