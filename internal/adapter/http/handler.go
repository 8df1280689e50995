package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/usecase"
	"portfolio-api/pkg/cache"
	"portfolio-api/pkg/imageai"
)

const robotsTTL = 24 * time.Hour

type PostGenerator interface {
	Generate(ctx context.Context, prompt string) (*domain.Post, error)
}

type ImageService interface {
	GenerateCover(ctx context.Context, slug string, prompt string) (string, error)
	GeneratePlaceholders(ctx context.Context, slug string, cards []imageai.Placeholder) ([]string, error)
}

type Config struct {
	SiteURL           string
	StaticDir         string
	ContentTTL        time.Duration
	SEOTTL            time.Duration
	SWR               bool
	GenerationEnabled bool
}

// Deps are the collaborators a Handler serves. Generator and Images may be nil.
type Deps struct {
	Projects  *usecase.ProjectResolver
	Skills    *usecase.SkillResolver
	Posts     *usecase.PostResolver
	Generator PostGenerator
	Images    ImageService
	Logger    *slog.Logger
}

// response is what the route caches hold: a fully encoded body.
type response struct {
	status      int
	contentType string
	body        []byte
}

type Handler struct {
	deps   Deps
	cfg    Config
	logger *slog.Logger

	content *cache.Cache[response]
	seo     *cache.Cache[response]
	robots  *cache.Cache[response]
}

func NewHandler(deps Deps, cfg Config) *Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	newCache := func(ttl time.Duration) *cache.Cache[response] {
		return cache.New[response](cache.Options{TTL: ttl, StaleWhileRevalidate: cfg.SWR, Logger: logger})
	}
	return &Handler{
		deps:    deps,
		cfg:     cfg,
		logger:  logger,
		content: newCache(cfg.ContentTTL),
		seo:     newCache(cfg.SEOTTL),
		robots:  newCache(robotsTTL),
	}
}

// NewApp builds the fiber app with the shared error handler and middleware.
func NewApp(logger *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "portfolio-api",
		ErrorHandler:          ErrorHandler(logger),
		DisableStartupMessage: true,
		// cache loaders keep route params past the request
		Immutable:             true,
		ReadTimeout:           30 * time.Second,
	})
	app.Use(recover.New())
	app.Use(RequestLogger(logger))
	return app
}

func (h *Handler) Register(app *fiber.App) {
	app.Get("/healthz", h.Health)

	api := app.Group("/api")
	api.Get("/projects", h.Projects)
	api.Get("/projects/:slug", h.Project)
	api.Get("/skills", h.Skills)
	api.Get("/skills/:slug", h.Skill)

	blog := api.Group("/blog")
	blog.Get("/posts", h.Posts)
	blog.Get("/posts/:slug", h.Post)
	blog.Get("/ai/posts", h.GeneratedPosts)
	blog.Get("/ai/posts/:id", h.GeneratedPost)
	blog.Get("/ai/post/:id", h.GeneratedPost)
	blog.Post("/generate", h.GeneratePost)

	images := api.Group("/images")
	images.Post("/cover", h.Cover)
	images.Post("/placeholders", h.Placeholders)
	images.Get("/status", h.ImageStatus)

	app.Get("/robots.txt", h.Robots)
	app.Get("/sitemap.xml", h.Sitemap)
	app.Get("/apple-touch-icon.png", h.AppleTouchIcon)
	app.Get("/apple-touch-icon-precomposed.png", h.AppleTouchIcon)

	app.Static("/images", filepath.Join(h.cfg.StaticDir, "images"))
	app.Static("/", h.cfg.StaticDir)
}

// Wait blocks until background cache refreshes finish.
func (h *Handler) Wait() {
	h.content.Wait()
	h.seo.Wait()
	h.robots.Wait()
}

// InvalidatePosts drops every cached response derived from the post collection.
func (h *Handler) InvalidatePosts() {
	n := h.content.Invalidate("/api/blog/")
	n += h.seo.Invalidate("/sitemap.xml")
	h.logger.Debug("post caches invalidated", "entries", n)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// serveCached answers from store, loading on a miss. Load errors are not
// cached and are returned to the caller for mapping.
func (h *Handler) serveCached(c *fiber.Ctx, store *cache.Cache[response], key string, load cache.LoadFunc[response]) error {
	resp, err := store.Get(c.UserContext(), key, load)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderCacheControl, cacheControl(store.TTL(), store.StaleWhileRevalidate()))
	c.Set(fiber.HeaderContentType, resp.contentType)
	return c.Status(resp.status).Send(resp.body)
}

func cacheControl(ttl time.Duration, swr bool) string {
	secs := int(ttl / time.Second)
	if !swr {
		return fmt.Sprintf("public, max-age=%d", secs)
	}
	return fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d", secs, secs)
}

func jsonResponse(v interface{}) (response, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return response{}, err
	}
	return response{status: fiber.StatusOK, contentType: fiber.MIMEApplicationJSONCharsetUTF8, body: b}, nil
}

// baseURL prefers the configured site URL over forwarded request headers.
func (h *Handler) baseURL(c *fiber.Ctx) string {
	if h.cfg.SiteURL != "" {
		return h.cfg.SiteURL
	}
	proto := c.Get(fiber.HeaderXForwardedProto)
	if proto == "" {
		proto = "http"
	}
	host := c.Get(fiber.HeaderXForwardedHost)
	if host == "" {
		host = string(c.Request().Host())
	}
	if host == "" {
		host = "localhost:3000"
	}
	return proto + "://" + host
}

// validationMessage strips the sentinel prefix from a validation error.
func validationMessage(err error) string {
	return strings.TrimPrefix(err.Error(), domain.ErrValidation.Error()+": ")
}

func isUnavailable(err error) bool {
	return errors.Is(err, domain.ErrStoreUnavailable)
}
