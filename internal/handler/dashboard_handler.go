package handler

import (
	"hotel-inspection-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler menampilkan status inspeksi terakhir tiap kamar dan area.
type DashboardHandler struct {
	repo repository.DashboardRepository
}

func NewDashboardHandler(repo repository.DashboardRepository) *DashboardHandler {
	return &DashboardHandler{repo: repo}
}

func (h *DashboardHandler) Rooms(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	rooms, err := h.repo.RoomStatuses(c.UserContext(), hotelScope(c, user))
	if err != nil {
		return err
	}
	return c.JSON(orEmpty(rooms))
}

func (h *DashboardHandler) Areas(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	areas, err := h.repo.AreaStatuses(c.UserContext(), hotelScope(c, user))
	if err != nil {
		return err
	}
	return c.JSON(orEmpty(areas))
}
