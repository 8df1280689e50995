package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"portfolio-api/internal/usecase"
)

func (h *Handler) Robots(c *fiber.Ctx) error {
	base := h.baseURL(c)
	return h.serveCached(c, h.robots, "/robots.txt?base="+base, func(context.Context) (response, error) {
		return response{
			status:      fiber.StatusOK,
			contentType: fiber.MIMETextPlainCharsetUTF8,
			body:        []byte(usecase.RenderRobots(base)),
		}, nil
	})
}

// Sitemap is cached per base URL. Posts that cannot be loaded are left
// out rather than failing the whole document.
func (h *Handler) Sitemap(c *fiber.Ctx) error {
	base := h.baseURL(c)
	return h.serveCached(c, h.seo, "/sitemap.xml?base="+base, func(ctx context.Context) (response, error) {
		posts, err := h.deps.Posts.All(ctx)
		if err != nil {
			h.logger.Warn("sitemap without posts", "error", err)
			posts = nil
		}
		body, err := usecase.RenderSitemap(usecase.BuildSitemap(base, posts, h.deps.Projects.Slugs()))
		if err != nil {
			return response{}, err
		}
		return response{status: fiber.StatusOK, contentType: fiber.MIMEApplicationXMLCharsetUTF8, body: body}, nil
	})
}

func (h *Handler) AppleTouchIcon(c *fiber.Ctx) error {
	return c.Redirect("/favicon-180x180.png", fiber.StatusFound)
}
