package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/shelftrack/shelftrack-server/internal/models"
	"github.com/shelftrack/shelftrack-server/internal/scope"
	"github.com/shelftrack/shelftrack-server/internal/services"
)

// CategoryHandler serves both categories and the items nested under a
// category slug.
type CategoryHandler struct {
	service *services.CategoryService
}

func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	owner, err := scope.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	categories, err := h.service.List(owner)
	if err != nil {
		return internalError(c, "Failed to fetch categories")
	}
	return c.JSON(categories)
}

func (h *CategoryHandler) GetBySlug(c *fiber.Ctx) error {
	owner, err := scope.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	category, err := h.service.GetBySlug(owner, c.Params("slug"))
	if err != nil {
		return h.mapError(c, err, "Failed to fetch category")
	}
	return c.JSON(category)
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	owner, err := scope.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return badRequest(c, "Invalid request body")
	}

	created, err := h.service.Create(owner, &category)
	if err != nil {
		if errors.Is(err, services.ErrSlugTaken) {
			return conflict(c, err.Error())
		}
		return h.mapError(c, err, "Failed to create category")
	}

	c.Location("/api/categories/" + created.Slug)
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	owner, err := scope.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	if err := h.service.Delete(owner, id); err != nil {
		return h.mapError(c, err, "Failed to delete category")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CategoryHandler) ListItems(c *fiber.Ctx) error {
	owner, err := scope.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	items, err := h.service.ListItems(owner, c.Params("slug"))
	if err != nil {
		return h.mapError(c, err, "Failed to fetch items")
	}
	return c.JSON(items)
}

func (h *CategoryHandler) CreateItem(c *fiber.Ctx) error {
	owner, err := scope.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var item models.Item
	if err := c.BodyParser(&item); err != nil {
		return badRequest(c, "Invalid request body")
	}

	slug := c.Params("slug")
	created, err := h.service.CreateItem(owner, slug, &item)
	if err != nil {
		return h.mapError(c, err, "Failed to create item")
	}

	c.Location(fmt.Sprintf("/api/categories/%s/items/%d", slug, created.ID))
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *CategoryHandler) UpdateItem(c *fiber.Ctx) error {
	owner, err := scope.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	var input models.Item
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.service.UpdateItem(owner, c.Params("slug"), id, &input); err != nil {
		return h.mapError(c, err, "Failed to update item")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CategoryHandler) DeleteItem(c *fiber.Ctx) error {
	owner, err := scope.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	if err := h.service.DeleteItem(owner, c.Params("slug"), id); err != nil {
		return h.mapError(c, err, "Failed to delete item")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CategoryHandler) mapError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, services.ErrNameRequired),
		errors.Is(err, services.ErrSlugRequired),
		errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrTitleTooLong):
		return badRequest(c, err.Error())
	}
	return internalError(c, fallback)
}
