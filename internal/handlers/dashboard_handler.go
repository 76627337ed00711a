package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shelftrack/shelftrack-server/internal/scope"
	"github.com/shelftrack/shelftrack-server/internal/services"
)

type DashboardHandler struct {
	service *services.DashboardService
}

func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	owner, err := scope.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	overview, err := h.service.Overview(owner)
	if err != nil {
		return internalError(c, "Failed to compose dashboard")
	}
	return c.JSON(overview)
}
