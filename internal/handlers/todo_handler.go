package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shelftrack/shelftrack-server/internal/models"
	"github.com/shelftrack/shelftrack-server/internal/scope"
	"github.com/shelftrack/shelftrack-server/internal/services"
)

type TodoHandler struct {
	service *services.TodoService
}

func NewTodoHandler(service *services.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

func (h *TodoHandler) List(c *fiber.Ctx) error {
	owner, err := scope.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	filter := services.TodoFilter{
		Priority: c.Query("priority"),
		Category: c.Query("category"),
	}
	// Same policy as the status and priority filters: a value that does
	// not parse is ignored, never coerced.
	if raw := c.Query("completed"); raw != "" {
		if completed, err := strconv.ParseBool(raw); err == nil {
			filter.Completed = &completed
		}
	}

	todos, err := h.service.List(owner, filter)
	if err != nil {
		return internalError(c, "Failed to fetch todos")
	}
	return c.JSON(todos)
}

func (h *TodoHandler) Get(c *fiber.Ctx) error {
	owner, err := scope.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	todo, err := h.service.Get(owner, id)
	if err != nil {
		return h.mapError(c, err, "Failed to fetch todo")
	}
	return c.JSON(todo)
}

func (h *TodoHandler) Create(c *fiber.Ctx) error {
	owner, err := scope.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	// Priority defaults to Medium when the body omits it. The default is
	// applied before binding because an explicit "Low" and an absent field
	// are indistinguishable after unmarshaling.
	todo := models.TodoItem{Priority: models.PriorityMedium}
	if err := c.BodyParser(&todo); err != nil {
		return badRequest(c, "Invalid request body")
	}

	created, err := h.service.Create(owner, &todo)
	if err != nil {
		return h.mapError(c, err, "Failed to create todo")
	}

	c.Location(fmt.Sprintf("/api/todos/%d", created.ID))
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *TodoHandler) Update(c *fiber.Ctx) error {
	owner, err := scope.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	input := models.TodoItem{Priority: models.PriorityMedium}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Invalid request body")
	}

	updated, err := h.service.Update(owner, id, &input)
	if err != nil {
		return h.mapError(c, err, "Failed to update todo")
	}
	return c.JSON(updated)
}

func (h *TodoHandler) Toggle(c *fiber.Ctx) error {
	owner, err := scope.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	todo, err := h.service.Toggle(owner, id)
	if err != nil {
		return h.mapError(c, err, "Failed to toggle todo")
	}
	return c.JSON(todo)
}

func (h *TodoHandler) Delete(c *fiber.Ctx) error {
	owner, err := scope.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	if err := h.service.Delete(owner, id); err != nil {
		return h.mapError(c, err, "Failed to delete todo")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *TodoHandler) mapError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, services.ErrTitleRequired), errors.Is(err, services.ErrTitleTooLong):
		return badRequest(c, err.Error())
	}
	return internalError(c, fallback)
}
