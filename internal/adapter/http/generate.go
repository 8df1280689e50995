package http

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/model"
	"portfolio-api/internal/usecase"
)

func (h *Handler) GeneratePost(c *fiber.Ctx) error {
	if !h.cfg.GenerationEnabled || h.deps.Generator == nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "error": "Post generation is disabled"})
	}

	if err := model.ValidateJSON(model.SchemaGenerateRequest, c.Body()); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": validationMessage(err)})
	}
	var req model.GenerateRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid payload"})
	}

	post, err := h.deps.Generator.Generate(c.UserContext(), req.Prompt)
	if err != nil {
		status := fiber.StatusInternalServerError
		msg := "Failed to generate blog post"
		switch {
		case errors.Is(err, domain.ErrValidation):
			status, msg = fiber.StatusBadRequest, validationMessage(err)
		case errors.Is(err, domain.ErrUpstream):
			status, msg = fiber.StatusBadGateway, "Failed to generate content"
		case isUnavailable(err):
			status, msg = fiber.StatusServiceUnavailable, "Post store unavailable"
		}
		h.logger.Error("post generation failed", "status", status, "error", err)
		return c.Status(status).JSON(fiber.Map{"success": false, "error": msg})
	}

	h.InvalidatePosts()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "post": post})
}

func (h *Handler) Cover(c *fiber.Ctx) error {
	if h.deps.Images == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"ok": false, "error": "Image generation is not configured"})
	}
	if err := model.ValidateJSON(model.SchemaCoverRequest, c.Body()); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": validationMessage(err)})
	}
	var req model.CoverRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": "invalid payload"})
	}

	path, err := h.deps.Images.GenerateCover(c.UserContext(), req.Slug, req.Prompt)
	if err != nil {
		h.logger.Warn("cover generation failed", "slug", req.Slug, "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"ok": false, "error": "Failed to generate cover"})
	}
	return c.JSON(fiber.Map{"ok": true, "path": path})
}

func (h *Handler) Placeholders(c *fiber.Ctx) error {
	if h.deps.Images == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"ok": false, "error": "Image generation is not configured"})
	}
	if err := model.ValidateJSON(model.SchemaPlaceholdersRequest, c.Body()); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": validationMessage(err)})
	}
	var req model.PlaceholdersRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": "invalid payload"})
	}

	files, err := h.deps.Images.GeneratePlaceholders(c.UserContext(), req.Slug, req.Files)
	if err != nil {
		h.logger.Warn("placeholder generation failed", "slug", req.Slug, "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"ok": false, "error": "Failed to generate placeholders", "files": files})
	}
	return c.JSON(fiber.Map{"ok": true, "files": files})
}

func (h *Handler) ImageStatus(c *fiber.Ctx) error {
	posts, err := h.deps.Posts.All(c.UserContext())
	if err != nil {
		h.logger.Error("images status failed", "error", err)
		return c.JSON(fiber.Map{"posts": []usecase.ImageStatus{}})
	}
	return c.JSON(fiber.Map{"posts": usecase.ImageReport(posts, h.cfg.StaticDir)})
}
