package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"portfolio-api/internal/domain"
)

func (h *Handler) Projects(c *fiber.Ctx) error {
	if slug := c.Query("slug"); slug != "" {
		return h.project(c, slug)
	}
	return h.serveCached(c, h.content, "/api/projects", func(context.Context) (response, error) {
		return jsonResponse(h.deps.Projects.List())
	})
}

func (h *Handler) Project(c *fiber.Ctx) error {
	return h.project(c, c.Params("slug"))
}

func (h *Handler) project(c *fiber.Ctx, slug string) error {
	slug = utils.CopyString(slug)
	key := "/api/projects?slug=" + strings.ToLower(slug)
	err := h.serveCached(c, h.content, key, func(context.Context) (response, error) {
		p, err := h.deps.Projects.Get(slug)
		if err != nil {
			return response{}, err
		}
		return jsonResponse(p)
	})
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
	}
	return err
}

func (h *Handler) Skills(c *fiber.Ctx) error {
	if slug := c.Query("slug"); slug != "" {
		return h.skill(c, slug)
	}
	return h.serveCached(c, h.content, "/api/skills", func(context.Context) (response, error) {
		return jsonResponse(h.deps.Skills.List())
	})
}

func (h *Handler) Skill(c *fiber.Ctx) error {
	return h.skill(c, c.Params("slug"))
}

// skill answers 200 with {"skill": null} for unknown ids. Only known
// skills are cached.
func (h *Handler) skill(c *fiber.Ctx, id string) error {
	id = utils.CopyString(id)
	err := h.serveCached(c, h.content, "/api/skills?slug="+id, func(context.Context) (response, error) {
		s, err := h.deps.Skills.Get(id)
		if err != nil {
			return response{}, err
		}
		return jsonResponse(fiber.Map{"skill": s})
	})
	if errors.Is(err, domain.ErrNotFound) {
		return c.JSON(fiber.Map{"skill": nil})
	}
	return err
}

func (h *Handler) Posts(c *fiber.Ctx) error {
	if slug := c.Query("slug"); slug != "" {
		return h.post(c, slug, false)
	}
	return h.postListing(c, "/api/blog/posts", h.deps.Posts.List)
}

func (h *Handler) Post(c *fiber.Ctx) error {
	return h.post(c, c.Params("slug"), false)
}

func (h *Handler) GeneratedPosts(c *fiber.Ctx) error {
	return h.postListing(c, "/api/blog/ai/posts", h.deps.Posts.ListGenerated)
}

func (h *Handler) GeneratedPost(c *fiber.Ctx) error {
	return h.post(c, c.Params("id"), true)
}

// postListing serves 503 when the store is down and an empty listing for
// any other failure. Neither outcome is cached.
func (h *Handler) postListing(c *fiber.Ctx, key string, list func(context.Context) (domain.PostListing, error)) error {
	err := h.serveCached(c, h.content, key, func(ctx context.Context) (response, error) {
		listing, err := list(ctx)
		if err != nil {
			return response{}, err
		}
		return jsonResponse(listing)
	})
	if err == nil {
		return nil
	}
	if isUnavailable(err) {
		h.logger.Error("post store unavailable", "route", key, "error", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Post store unavailable"})
	}
	h.logger.Error("post listing failed", "route", key, "error", err)
	return c.JSON(domain.PostListing{Posts: []domain.PostSummary{}})
}

func (h *Handler) post(c *fiber.Ctx, id string, generatedOnly bool) error {
	id = utils.CopyString(id)
	prefix := "/api/blog/posts?slug="
	get := h.deps.Posts.Get
	if generatedOnly {
		prefix = "/api/blog/ai/posts?slug="
		get = h.deps.Posts.GetGenerated
	}

	err := h.serveCached(c, h.content, prefix+id, func(ctx context.Context) (response, error) {
		p, err := get(ctx, id)
		if err != nil {
			return response{}, err
		}
		return jsonResponse(fiber.Map{"post": p})
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Post not found"})
	case isUnavailable(err):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Post store unavailable"})
	}
	return err
}
