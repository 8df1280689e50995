// Package imageai generates blog cover images and stores them under the
// static directory.
package imageai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	ErrInvalidSlug  = errors.New("invalid slug")
	ErrNoGenerators = errors.New("no cover generator configured")

	slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// CardRenderer draws a placeholder card for a title on a hex background.
type CardRenderer interface {
	RenderCard(ctx context.Context, title string, background string) ([]byte, error)
}

// Placeholder describes one card written by GeneratePlaceholders.
type Placeholder struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Text  string `json:"text"`
}

type Service struct {
	provider  Provider
	renderer  CardRenderer
	staticDir string
	logger    *slog.Logger
}

// NewService wires an optional provider and an optional placeholder
// renderer. Files are written below staticDir/images/blog.
func NewService(provider Provider, renderer CardRenderer, staticDir string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{provider: provider, renderer: renderer, staticDir: staticDir, logger: logger}
}

// Enabled reports whether any cover source is configured.
func (s *Service) Enabled() bool {
	return s.provider != nil || s.renderer != nil
}

// GenerateCover writes hero.<ext> for slug and returns its public path.
func (s *Service) GenerateCover(ctx context.Context, slug string, prompt string) (string, error) {
	if !slugPattern.MatchString(slug) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}
	if !s.Enabled() {
		return "", ErrNoGenerators
	}

	var (
		img []byte
		ext string
		err error
	)
	if s.provider != nil {
		img, ext, err = s.provider.Generate(ctx, prompt)
		if err != nil {
			s.logger.Warn("cover provider failed", "provider", s.provider.Name(), "slug", slug, "error", err)
		}
	}
	if img == nil && s.renderer != nil {
		img, err = s.renderer.RenderCard(ctx, prompt, "")
		ext = "png"
	}
	if err != nil {
		return "", fmt.Errorf("generate cover for %s: %w", slug, err)
	}
	if len(img) == 0 {
		return "", ErrNoImage
	}

	return s.save(slug, ext, img)
}

// DefaultPlaceholders is the hero and secondary card pair for slug.
func DefaultPlaceholders(slug string) []Placeholder {
	text := strings.ReplaceAll(slug, "-", " ")
	if r := []rune(text); len(r) > 24 {
		text = string(r[:24])
	}
	return []Placeholder{
		{Name: "hero", Color: "#0ea5e9", Text: text},
		{Name: "secondary", Color: "#22c55e", Text: "AI"},
	}
}

// GeneratePlaceholders renders each card as <name>.png under the slug's
// image directory and returns the public paths. An empty list renders
// DefaultPlaceholders.
func (s *Service) GeneratePlaceholders(ctx context.Context, slug string, cards []Placeholder) ([]string, error) {
	if !slugPattern.MatchString(slug) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}
	if s.renderer == nil {
		return nil, ErrNoGenerators
	}
	if len(cards) == 0 {
		cards = DefaultPlaceholders(slug)
	}

	created := make([]string, 0, len(cards))
	for _, c := range cards {
		name := strings.TrimSuffix(c.Name, path.Ext(c.Name))
		if !slugPattern.MatchString(name) {
			return created, fmt.Errorf("%w: file name %q", ErrInvalidSlug, c.Name)
		}
		img, err := s.renderer.RenderCard(ctx, c.Text, c.Color)
		if err != nil {
			return created, fmt.Errorf("render %s: %w", name, err)
		}
		public, err := s.write(slug, name+".png", img)
		if err != nil {
			return created, err
		}
		created = append(created, public)
	}
	return created, nil
}

func (s *Service) save(slug, ext string, img []byte) (string, error) {
	return s.write(slug, "hero."+ext, img)
}

func (s *Service) write(slug, file string, img []byte) (string, error) {
	public := path.Join("/images/blog", slug, file)
	dest := filepath.Join(s.staticDir, filepath.FromSlash(public))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(dest, img, 0o644); err != nil {
		return "", err
	}
	return public, nil
}
