package handler

import (
	"hotel-inspection-backend/internal/apperror"
	"hotel-inspection-backend/internal/model"
	"hotel-inspection-backend/internal/repository"
	"hotel-inspection-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
)

var hotelDependencyMessages = map[repository.HotelDependency]string{
	repository.HotelHasInspections: "Hotel tidak dapat dihapus karena memiliki data inspeksi terkait.",
	repository.HotelHasRooms:       "Hotel tidak dapat dihapus karena memiliki data kamar terkait.",
	repository.HotelHasAreas:       "Hotel tidak dapat dihapus karena memiliki data area terkait.",
	repository.HotelHasUsers:       "Hotel tidak dapat dihapus karena masih ditugaskan ke pengguna.",
}

type HotelHandler struct {
	repo repository.HotelRepository
}

func NewHotelHandler(repo repository.HotelRepository) *HotelHandler {
	return &HotelHandler{repo: repo}
}

type hotelRequest struct {
	HotelName string `json:"hotel_name" validate:"required"`
	Address   string `json:"address"`
}

func (r *hotelRequest) parse(c *fiber.Ctx) error {
	if err := parseBody(c, r); err != nil {
		return err
	}
	return validation.Struct(r, validation.Messages{"hotel_name": "Nama hotel tidak boleh kosong."})
}

// GetAll: admin melihat semua hotel, user lain hanya hotel yang ditugaskan.
func (h *HotelHandler) GetAll(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	hotels, err := h.repo.List(c.UserContext(), repository.HotelScope{UserID: user.ID, Admin: user.Role == model.RoleAdmin})
	if err != nil {
		return err
	}
	return c.JSON(orEmpty(hotels))
}

func (h *HotelHandler) Create(c *fiber.Ctx) error {
	var input hotelRequest
	if err := input.parse(c); err != nil {
		return err
	}

	hotel := model.Hotel{HotelName: input.HotelName, Address: input.Address}
	if err := h.repo.Create(c.UserContext(), &hotel); err != nil {
		if apperror.IsUniqueViolation(err) {
			return apperror.Conflict("Nama hotel sudah ada.")
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(hotel)
}

func (h *HotelHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "ID hotel tidak valid.")
	if err != nil {
		return err
	}
	var input hotelRequest
	if err := input.parse(c); err != nil {
		return err
	}

	hotel := model.Hotel{HotelID: id, HotelName: input.HotelName, Address: input.Address}
	if err := h.repo.Update(c.UserContext(), &hotel); err != nil {
		switch {
		case apperror.IsNotFound(err):
			return apperror.NotFound("Hotel tidak ditemukan.")
		case apperror.IsUniqueViolation(err):
			return apperror.Conflict("Nama hotel sudah ada.")
		}
		return err
	}
	return c.JSON(hotel)
}

func (h *HotelHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "ID hotel tidak valid.")
	if err != nil {
		return err
	}

	// Pengecekan dependensi sebelum menghapus
	dep, err := h.repo.FindDependency(c.UserContext(), id)
	if err != nil {
		return err
	}
	if dep != "" {
		return apperror.Conflict(hotelDependencyMessages[dep])
	}

	if err := h.repo.Delete(c.UserContext(), id); err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NotFound("Hotel tidak ditemukan.")
		}
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
