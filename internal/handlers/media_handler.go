package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shelftrack/shelftrack-server/internal/dto"
	"github.com/shelftrack/shelftrack-server/internal/models"
	"github.com/shelftrack/shelftrack-server/internal/scope"
	"github.com/shelftrack/shelftrack-server/internal/services"
)

// MediaHandler serves one media collection (books, movies or songs)
// through the shared generic service.
type MediaHandler[T any, PT models.TrackedPtr[T]] struct {
	service  *services.MediaService[T, PT]
	basePath string
}

func NewMediaHandler[T any, PT models.TrackedPtr[T]](service *services.MediaService[T, PT], basePath string) *MediaHandler[T, PT] {
	return &MediaHandler[T, PT]{service: service, basePath: basePath}
}

func (h *MediaHandler[T, PT]) List(c *fiber.Ctx) error {
	owner, err := scope.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	records, err := h.service.List(owner, services.MediaFilter{
		Status: c.Query("status"),
		Genre:  c.Query("genre"),
	})
	if err != nil {
		return internalError(c, "Failed to fetch records")
	}
	return c.JSON(records)
}

func (h *MediaHandler[T, PT]) Get(c *fiber.Ctx) error {
	owner, err := scope.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	record, err := h.service.Get(owner, id)
	if err != nil {
		return h.mapError(c, err, "Failed to fetch record")
	}
	return c.JSON(record)
}

func (h *MediaHandler[T, PT]) Create(c *fiber.Ctx) error {
	owner, err := scope.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var record T
	if err := c.BodyParser(&record); err != nil {
		return badRequest(c, "Invalid request body")
	}

	created, err := h.service.Create(owner, &record)
	if err != nil {
		return h.mapError(c, err, "Failed to create record")
	}

	c.Location(fmt.Sprintf("%s/%d", h.basePath, PT(created).GetID()))
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *MediaHandler[T, PT]) Update(c *fiber.Ctx) error {
	owner, err := scope.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	var input T
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Invalid request body")
	}

	updated, err := h.service.Update(owner, id, &input)
	if err != nil {
		return h.mapError(c, err, "Failed to update record")
	}
	return c.JSON(updated)
}

func (h *MediaHandler[T, PT]) Delete(c *fiber.Ctx) error {
	owner, err := scope.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	if err := h.service.Delete(owner, id); err != nil {
		return h.mapError(c, err, "Failed to delete record")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *MediaHandler[T, PT]) mapError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, services.ErrTitleRequired), errors.Is(err, services.ErrTitleTooLong):
		return badRequest(c, err.Error())
	}
	return internalError(c, fallback)
}

// --- shared helpers for the entity handlers ---

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	return uint(id), err
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: msg,
	})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Error: true, Message: msg,
	})
}

func conflict(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
		Error: true, Message: msg,
	})
}

func internalError(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: msg,
	})
}
