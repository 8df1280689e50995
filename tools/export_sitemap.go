package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"portfolio-api/internal/bootstrap"
	"portfolio-api/internal/config"
	"portfolio-api/internal/usecase"
)

// Writes sitemap.xml and robots.txt into the static directory so the site
// can be served from a plain file host. SITE_URL must be set.
func main() {
	out := flag.String("out", "", "output directory (defaults to STATIC_DIR)")
	flag.Parse()

	cfg := config.Load()
	if cfg.SiteURL == "" {
		fmt.Fprintln(os.Stderr, "SITE_URL is required")
		os.Exit(2)
	}
	dir := *out
	if dir == "" {
		dir = cfg.StaticDir
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	svc, err := bootstrap.Build(context.Background(), cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build services: %v\n", err)
		os.Exit(2)
	}
	defer svc.Close()

	posts, err := svc.Posts.All(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "list posts: %v\n", err)
		os.Exit(2)
	}

	sitemap, err := usecase.RenderSitemap(usecase.BuildSitemap(cfg.SiteURL, posts, svc.Projects.Slugs()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "render sitemap: %v\n", err)
		os.Exit(2)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create out: %v\n", err)
		os.Exit(2)
	}
	files := map[string][]byte{
		"sitemap.xml": sitemap,
		"robots.txt":  []byte(usecase.RenderRobots(cfg.SiteURL)),
	}
	for name, body := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, body, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", path, err)
			os.Exit(2)
		}
		fmt.Printf("wrote %s\n", path)
	}
}
