package handler

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"hotel-inspection-backend/internal/apperror"
	"hotel-inspection-backend/internal/model"
	"hotel-inspection-backend/internal/repository"
	"hotel-inspection-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const recentInspectionLimit = 10

type InspectionHandler struct {
	repo  repository.InspectionRepository
	rooms repository.RoomRepository
	areas repository.AreaRepository
	store storage.Storage
	log   *zap.Logger
	now   func() time.Time
}

func NewInspectionHandler(
	repo repository.InspectionRepository,
	rooms repository.RoomRepository,
	areas repository.AreaRepository,
	store storage.Storage,
	log *zap.Logger,
) *InspectionHandler {
	return &InspectionHandler{repo: repo, rooms: rooms, areas: areas, store: store, log: log, now: time.Now}
}

// GetAll: non-admin tanpa hotel_id hanya melihat hotel yang ditugaskan.
func (h *InspectionHandler) GetAll(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	start, err := queryDate(c, "startDate")
	if err != nil {
		return err
	}
	end, err := queryDate(c, "endDate")
	if err != nil {
		return err
	}

	inspections, err := h.repo.List(c.UserContext(), repository.InspectionFilter{
		Scope:      hotelScope(c, user),
		Status:     c.Query("status"),
		RoomStatus: c.Query("room_status"),
		StartDate:  start,
		EndDate:    end,
	})
	if err != nil {
		return err
	}
	return c.JSON(orEmpty(inspections))
}

func (h *InspectionHandler) Recent(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	events, err := h.repo.Recent(c.UserContext(), hotelScope(c, user), recentInspectionLimit)
	if err != nil {
		return err
	}
	return c.JSON(orEmpty(events))
}

// inspectionTarget membedakan inspeksi kamar dan area.
type inspectionTarget struct {
	kind       string
	field      string
	incomplete string
	label      string
	message    string
	exists     func(c *fiber.Ctx, hotelID uint, name string) (bool, error)
}

func (h *InspectionHandler) CreateRoom(c *fiber.Ctx) error {
	return h.create(c, inspectionTarget{
		kind:       model.InspectionTypeRoom,
		field:      "roomNumber",
		incomplete: "Data tidak lengkap. Nomor kamar, status, dan ID hotel diperlukan.",
		label:      "Kamar",
		message:    "Inspeksi kamar berhasil disimpan.",
		exists: func(c *fiber.Ctx, hotelID uint, name string) (bool, error) {
			return h.rooms.ExistsInHotel(c.UserContext(), hotelID, name)
		},
	})
}

func (h *InspectionHandler) CreateArea(c *fiber.Ctx) error {
	return h.create(c, inspectionTarget{
		kind:       model.InspectionTypeArea,
		field:      "areaName",
		incomplete: "Data tidak lengkap. Nama area, status, dan ID hotel diperlukan.",
		label:      "Area",
		message:    "Inspeksi area berhasil disimpan.",
		exists: func(c *fiber.Ctx, hotelID uint, name string) (bool, error) {
			return h.areas.ExistsInHotel(c.UserContext(), hotelID, name)
		},
	})
}

func (h *InspectionHandler) create(c *fiber.Ctx, target inspectionTarget) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	name := strings.TrimSpace(c.FormValue(target.field))
	status := c.FormValue("overallStatus")
	hotelID, convErr := strconv.ParseUint(c.FormValue("hotelId"), 10, 64)
	if name == "" || status == "" || convErr != nil || hotelID == 0 {
		return apperror.BadRequest(target.incomplete)
	}
	if !model.IsReportStatus(status) {
		return apperror.BadRequest("Status inspeksi harus Baik atau Kurang.")
	}

	// Validasi tambahan: pastikan kamar/area ada di hotel yang benar
	found, err := target.exists(c, uint(hotelID), name)
	if err != nil {
		return err
	}
	if !found {
		return apperror.NotFound(fmt.Sprintf("%s %q tidak ditemukan di hotel ini.", target.label, name))
	}

	files := formFiles(c)
	if err := storage.ValidateImages(files, storage.MaxFiles); err != nil {
		return err
	}

	// 1. Simpan file foto
	paths, err := storage.SaveAll(c.UserContext(), h.store, h.log, storage.FolderInspections, files)
	if err != nil {
		return err
	}

	// 2. Simpan data inspeksi dan path foto dalam satu transaksi
	inspectorID := user.ID
	inspection := model.Inspection{
		InspectionType: target.kind,
		TargetID:       name,
		InspectorID:    &inspectorID,
		Notes:          c.FormValue("notes"),
		OverallStatus:  status,
		HotelID:        uint(hotelID),
	}
	if err := h.repo.Create(c.UserContext(), &inspection, paths); err != nil {
		// Hapus file yang sudah terlanjur diupload
		storage.RemoveAll(c.UserContext(), h.store, h.log, paths)
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":       target.message,
		"inspection_id": inspection.InspectionID,
	})
}

func (h *InspectionHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "ID Inspeksi tidak valid.")
	if err != nil {
		return err
	}
	var input struct {
		NewStatus string `json:"newStatus"`
	}
	if err := parseBody(c, &input); err != nil {
		return err
	}
	if _, err := model.TransitionTo(input.NewStatus); err != nil {
		return apperror.BadRequest("Status baru tidak valid.")
	}

	inspection, err := h.repo.UpdateStatus(c.UserContext(), id, input.NewStatus, h.now())
	switch {
	case apperror.IsNotFound(err):
		return apperror.NotFound("Inspeksi tidak ditemukan.").WithCode(apperror.CodeInspectionNotFound)
	case errors.Is(err, model.ErrTransitionNotAllowed):
		return apperror.NotFound("Transisi status tidak diizinkan.").WithCode(apperror.CodeInvalidStatusTransition)
	case err != nil:
		return err
	}
	return c.JSON(inspection)
}

func (h *InspectionHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "ID Inspeksi tidak valid.")
	if err != nil {
		return err
	}

	paths, err := h.repo.Delete(c.UserContext(), id)
	if err != nil {
		switch {
		case apperror.IsNotFound(err):
			return apperror.NotFound("Laporan inspeksi tidak ditemukan.").WithCode(apperror.CodeInspectionNotFound)
		case apperror.IsForeignKeyViolation(err):
			h.log.Warn("hapus inspeksi ditolak foreign key", zap.Uint("inspection_id", id), zap.Error(err))
			return apperror.Conflict("Gagal menghapus laporan karena masih digunakan oleh data lain.").WithCode(apperror.CodeForeignKey)
		}
		return err
	}

	storage.RemoveAll(c.UserContext(), h.store, h.log, paths)
	return c.JSON(fiber.Map{"message": "Laporan inspeksi berhasil dihapus."})
}

// formFiles mengambil file "photos"; request tanpa multipart dianggap tanpa foto.
func formFiles(c *fiber.Ctx) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}
	return form.File["photos"]
}
