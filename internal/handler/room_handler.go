package handler

import (
	"fmt"

	"hotel-inspection-backend/internal/apperror"
	"hotel-inspection-backend/internal/model"
	"hotel-inspection-backend/internal/repository"
	"hotel-inspection-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const defaultRoomType = "Standard"

type RoomHandler struct {
	repo        repository.RoomRepository
	inspections repository.InspectionRepository
}

func NewRoomHandler(repo repository.RoomRepository, inspections repository.InspectionRepository) *RoomHandler {
	return &RoomHandler{repo: repo, inspections: inspections}
}

func (h *RoomHandler) GetAll(c *fiber.Ctx) error {
	hotelID := queryUint(c, "hotel_id")
	if hotelID == 0 {
		return c.JSON([]model.Room{})
	}
	rooms, err := h.repo.ListByHotel(c.UserContext(), hotelID)
	if err != nil {
		return err
	}
	return c.JSON(orEmpty(rooms))
}

func (h *RoomHandler) Create(c *fiber.Ctx) error {
	var input struct {
		RoomNumber string   `json:"room_number" validate:"required"`
		RoomType   string   `json:"room_type"`
		HotelID    flexUint `json:"hotel_id" validate:"required"`
	}
	if err := parseBody(c, &input); err != nil {
		return err
	}
	if err := validation.Struct(input, validation.Messages{
		"room_number": "Nomor kamar tidak boleh kosong.",
		"hotel_id":    "Hotel ID tidak boleh kosong.",
	}); err != nil {
		return err
	}

	room := model.Room{RoomNumber: input.RoomNumber, RoomType: input.RoomType, HotelID: uint(input.HotelID)}
	if room.RoomType == "" {
		room.RoomType = defaultRoomType
	}
	if err := h.repo.Create(c.UserContext(), &room); err != nil {
		if apperror.IsUniqueViolation(err) {
			return apperror.Conflict("Nomor kamar sudah ada.")
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(room)
}

// findUnused mengambil kamar dan memastikan belum punya riwayat inspeksi.
// action dipakai di pesan error: "diubah" atau "dihapus".
func (h *RoomHandler) findUnused(c *fiber.Ctx, id uint, action string) (*model.Room, error) {
	// 1. Dapatkan data kamar lama untuk pengecekan
	room, err := h.repo.FindByID(c.UserContext(), id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NotFound("Kamar tidak ditemukan.")
		}
		return nil, err
	}

	// 2. Periksa apakah kamar sudah digunakan dalam inspeksi
	inUse, err := h.inspections.TargetInUse(c.UserContext(), model.InspectionTypeRoom, room.HotelID, room.RoomNumber)
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, apperror.Conflict(fmt.Sprintf("Kamar %s tidak dapat %s karena sudah memiliki riwayat inspeksi.", room.RoomNumber, action))
	}
	return room, nil
}

func (h *RoomHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "ID kamar tidak valid.")
	if err != nil {
		return err
	}
	var input struct {
		RoomNumber string `json:"room_number" validate:"required"`
		RoomType   string `json:"room_type"`
	}
	if err := parseBody(c, &input); err != nil {
		return err
	}
	if err := validation.Struct(input, validation.Messages{"room_number": "Nomor kamar tidak boleh kosong."}); err != nil {
		return err
	}

	room, err := h.findUnused(c, id, "diubah")
	if err != nil {
		return err
	}

	// 3. Lanjutkan update jika tidak digunakan
	room.RoomNumber = input.RoomNumber
	if input.RoomType != "" {
		room.RoomType = input.RoomType
	}
	if err := h.repo.Update(c.UserContext(), room); err != nil {
		switch {
		case apperror.IsNotFound(err):
			return apperror.NotFound("Kamar tidak ditemukan.")
		case apperror.IsUniqueViolation(err):
			return apperror.Conflict("Nomor kamar sudah ada.")
		}
		return err
	}
	return c.JSON(room)
}

func (h *RoomHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "ID kamar tidak valid.")
	if err != nil {
		return err
	}
	if _, err := h.findUnused(c, id, "dihapus"); err != nil {
		return err
	}

	if err := h.repo.Delete(c.UserContext(), id); err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NotFound("Kamar tidak ditemukan.")
		}
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
