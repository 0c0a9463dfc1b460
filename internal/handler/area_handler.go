package handler

import (
	"fmt"

	"hotel-inspection-backend/internal/apperror"
	"hotel-inspection-backend/internal/model"
	"hotel-inspection-backend/internal/repository"
	"hotel-inspection-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type AreaHandler struct {
	repo        repository.AreaRepository
	inspections repository.InspectionRepository
}

func NewAreaHandler(repo repository.AreaRepository, inspections repository.InspectionRepository) *AreaHandler {
	return &AreaHandler{repo: repo, inspections: inspections}
}

func (h *AreaHandler) GetAll(c *fiber.Ctx) error {
	hotelID := queryUint(c, "hotel_id")
	if hotelID == 0 {
		return c.JSON([]model.Area{})
	}
	areas, err := h.repo.ListByHotel(c.UserContext(), hotelID)
	if err != nil {
		return err
	}
	return c.JSON(orEmpty(areas))
}

func (h *AreaHandler) Create(c *fiber.Ctx) error {
	var input struct {
		AreaName string   `json:"area_name" validate:"required"`
		HotelID  flexUint `json:"hotel_id" validate:"required"`
	}
	if err := parseBody(c, &input); err != nil {
		return err
	}
	if err := validation.Struct(input, validation.Messages{
		"area_name": "Nama area tidak boleh kosong.",
		"hotel_id":  "Hotel ID tidak boleh kosong.",
	}); err != nil {
		return err
	}

	area := model.Area{AreaName: input.AreaName, HotelID: uint(input.HotelID)}
	if err := h.repo.Create(c.UserContext(), &area); err != nil {
		if apperror.IsUniqueViolation(err) {
			return apperror.Conflict("Nama area sudah ada.")
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(area)
}

func (h *AreaHandler) findUnused(c *fiber.Ctx, id uint, action string) (*model.Area, error) {
	area, err := h.repo.FindByID(c.UserContext(), id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NotFound("Area tidak ditemukan.")
		}
		return nil, err
	}

	inUse, err := h.inspections.TargetInUse(c.UserContext(), model.InspectionTypeArea, area.HotelID, area.AreaName)
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, apperror.Conflict(fmt.Sprintf("Area %q tidak dapat %s karena sudah memiliki riwayat inspeksi.", area.AreaName, action))
	}
	return area, nil
}

func (h *AreaHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "ID area tidak valid.")
	if err != nil {
		return err
	}
	var input struct {
		AreaName string `json:"area_name" validate:"required"`
	}
	if err := parseBody(c, &input); err != nil {
		return err
	}
	if err := validation.Struct(input, validation.Messages{"area_name": "Nama area tidak boleh kosong."}); err != nil {
		return err
	}

	area, err := h.findUnused(c, id, "diubah")
	if err != nil {
		return err
	}

	area.AreaName = input.AreaName
	if err := h.repo.Update(c.UserContext(), area); err != nil {
		switch {
		case apperror.IsNotFound(err):
			return apperror.NotFound("Area tidak ditemukan.")
		case apperror.IsUniqueViolation(err):
			return apperror.Conflict("Nama area sudah ada.")
		}
		return err
	}
	return c.JSON(area)
}

func (h *AreaHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "ID area tidak valid.")
	if err != nil {
		return err
	}
	if _, err := h.findUnused(c, id, "dihapus"); err != nil {
		return err
	}

	if err := h.repo.Delete(c.UserContext(), id); err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NotFound("Area tidak ditemukan.")
		}
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
