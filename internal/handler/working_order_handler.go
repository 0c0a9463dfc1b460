package handler

import (
	"fmt"
	"time"

	"hotel-inspection-backend/internal/apperror"
	"hotel-inspection-backend/internal/model"
	"hotel-inspection-backend/internal/rbac"
	"hotel-inspection-backend/internal/repository"
	"hotel-inspection-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const recentWorkingOrderLimit = 5

var errWorkingOrderNotFound = apperror.NotFound("Working Order tidak ditemukan.")

type WorkingOrderHandler struct {
	repo    repository.WorkingOrderRepository
	checker rbac.Checker
	store   storage.Storage
	log     *zap.Logger
	now     func() time.Time
}

func NewWorkingOrderHandler(repo repository.WorkingOrderRepository, checker rbac.Checker, store storage.Storage, log *zap.Logger) *WorkingOrderHandler {
	return &WorkingOrderHandler{repo: repo, checker: checker, store: store, log: log, now: time.Now}
}

type workingOrderRequest struct {
	InspectionID         flexUint  `json:"inspection_id"`
	Status               string    `json:"status"`
	Priority             string    `json:"priority"`
	AssigneeID           *flexUint `json:"assignee_id"`
	StartDate            flexDate  `json:"start_date"`
	TargetCompletionDate flexDate  `json:"target_completion_date"`
	Materials            string    `json:"materials"`
}

func validateWorkingOrder(status, priority string) error {
	if !model.IsWorkingOrderStatus(status) {
		return apperror.BadRequest("Status Working Order tidak valid.")
	}
	if !model.IsPriority(priority) {
		return apperror.BadRequest("Prioritas tidak valid.")
	}
	return nil
}

func (h *WorkingOrderHandler) GetAll(c *fiber.Ctx) error {
	orders, err := h.repo.List(c.UserContext(), repository.WorkingOrderFilter{
		Status:   c.Query("status"),
		Assignee: c.Query("assignee"),
	})
	if err != nil {
		return err
	}
	return c.JSON(orEmpty(orders))
}

func (h *WorkingOrderHandler) Recent(c *fiber.Ctx) error {
	events, err := h.repo.Recent(c.UserContext(), queryUint(c, "hotel_id"), recentWorkingOrderLimit)
	if err != nil {
		return err
	}
	return c.JSON(orEmpty(events))
}

func (h *WorkingOrderHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "ID Working Order tidak valid.")
	if err != nil {
		return err
	}
	detail, err := h.repo.FindDetail(c.UserContext(), id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return errWorkingOrderNotFound
		}
		return err
	}
	detail.Photos = orEmpty(detail.Photos)
	return c.JSON(detail)
}

// Create membuat WO dan memaksa inspeksi terkait menjadi In Progress.
func (h *WorkingOrderHandler) Create(c *fiber.Ctx) error {
	var input workingOrderRequest
	if err := parseBody(c, &input); err != nil {
		return err
	}
	if input.InspectionID == 0 {
		return apperror.BadRequest("ID inspeksi diperlukan.")
	}

	wo := model.WorkingOrder{
		InspectionID:         uint(input.InspectionID),
		Status:               input.Status,
		Priority:             input.Priority,
		AssigneeID:           input.AssigneeID.ptr(),
		StartDate:            input.StartDate.t,
		TargetCompletionDate: input.TargetCompletionDate.t,
		Materials:            input.Materials,
	}
	if wo.Status == "" {
		wo.Status = model.WOStatusOpen
	}
	if wo.Priority == "" {
		wo.Priority = model.PriorityMedium
	}
	if err := validateWorkingOrder(wo.Status, wo.Priority); err != nil {
		return err
	}

	if err := h.repo.Create(c.UserContext(), &wo, h.now()); err != nil {
		switch {
		case apperror.IsNotFound(err):
			return apperror.NotFound("Laporan inspeksi tidak ditemukan.").WithCode(apperror.CodeInspectionNotFound)
		case apperror.IsUniqueViolation(err):
			return apperror.Conflict("Sudah ada Working Order untuk inspeksi ini.")
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(wo)
}

// authorize: manage_wo boleh semua WO, update_own_wo hanya WO miliknya sendiri.
func (h *WorkingOrderHandler) authorize(c *fiber.Ctx, assigneeID *uint, denied string) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	ok, err := rbac.CanModifyWorkOrder(c.UserContext(), h.checker, user.Role, user.ID, assigneeID)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.Forbidden(denied)
	}
	return nil
}

func (h *WorkingOrderHandler) findForModify(c *fiber.Ctx, denied string) (*model.WorkingOrder, error) {
	id, err := paramID(c, "id", "ID Working Order tidak valid.")
	if err != nil {
		return nil, err
	}
	wo, err := h.repo.FindByID(c.UserContext(), id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, errWorkingOrderNotFound
		}
		return nil, err
	}
	if err := h.authorize(c, wo.AssigneeID, denied); err != nil {
		return nil, err
	}
	return wo, nil
}

func (h *WorkingOrderHandler) Update(c *fiber.Ctx) error {
	// 1. Cek WO dan izin
	current, err := h.findForModify(c, "Akses ditolak: Anda tidak memiliki izin untuk memperbarui Working Order ini.")
	if err != nil {
		return err
	}
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var input workingOrderRequest
	if err := parseBody(c, &input); err != nil {
		return err
	}

	// 2. Teknisi tidak bisa mengubah penugasan
	requested := input.AssigneeID.ptr()
	if rbac.ReassignForbidden(user.Role, current.AssigneeID, requested) {
		return apperror.Forbidden("Akses ditolak: Anda tidak dapat mengubah penugasan Working Order.")
	}
	if requested == nil && user.Role == model.RoleTeknisi {
		requested = current.AssigneeID
	}

	changes := model.WorkingOrderChanges{
		Status:               input.Status,
		Priority:             input.Priority,
		AssigneeID:           requested,
		StartDate:            input.StartDate.t,
		TargetCompletionDate: input.TargetCompletionDate.t,
		Materials:            input.Materials,
	}
	if changes.Status == "" {
		changes.Status = current.Status
	}
	if changes.Priority == "" {
		changes.Priority = current.Priority
	}
	if err := validateWorkingOrder(changes.Status, changes.Priority); err != nil {
		return err
	}

	// 3. Simpan; Completed ikut menutup inspeksi terkait
	updated, err := h.repo.Update(c.UserContext(), current.WOID, changes, h.now())
	if err != nil {
		if apperror.IsNotFound(err) {
			return errWorkingOrderNotFound
		}
		return err
	}
	return c.JSON(updated)
}

func (h *WorkingOrderHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "ID Working Order tidak valid.")
	if err != nil {
		return err
	}
	paths, err := h.repo.Delete(c.UserContext(), id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return errWorkingOrderNotFound
		}
		return err
	}

	storage.RemoveAll(c.UserContext(), h.store, h.log, paths)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *WorkingOrderHandler) UploadPhotos(c *fiber.Ctx) error {
	wo, err := h.findForModify(c, "Akses ditolak: Anda tidak memiliki izin untuk mengunggah foto ke WO ini.")
	if err != nil {
		return err
	}

	files := formFiles(c)
	if len(files) == 0 {
		return apperror.BadRequest("Tidak ada file yang diunggah.")
	}
	if err := storage.ValidateImages(files, storage.MaxFiles); err != nil {
		return err
	}

	paths, err := storage.SaveAll(c.UserContext(), h.store, h.log, storage.FolderWOPhotos, files)
	if err != nil {
		return err
	}
	if err := h.repo.AddPhotos(c.UserContext(), wo.WOID, paths); err != nil {
		storage.RemoveAll(c.UserContext(), h.store, h.log, paths)
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": fmt.Sprintf("%d foto berhasil diunggah.", len(paths))})
}

func (h *WorkingOrderHandler) DeletePhoto(c *fiber.Ctx) error {
	photoID, err := paramID(c, "photo_id", "ID foto tidak valid.")
	if err != nil {
		return err
	}

	photo, err := h.repo.FindPhoto(c.UserContext(), photoID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NotFound("Foto tidak ditemukan.")
		}
		return err
	}
	if err := h.authorize(c, photo.AssigneeID, "Akses ditolak: Anda tidak dapat menghapus foto ini."); err != nil {
		return err
	}

	// Hapus baris dulu, baru file fisiknya
	if err := h.repo.DeletePhoto(c.UserContext(), photoID); err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NotFound("Foto tidak ditemukan.")
		}
		return err
	}
	storage.RemoveAll(c.UserContext(), h.store, h.log, []string{photo.FilePath})
	return c.SendStatus(fiber.StatusNoContent)
}
