package handler

import (
	"hotel-inspection-backend/internal/apperror"
	"hotel-inspection-backend/internal/model"
	"hotel-inspection-backend/internal/repository"
	"hotel-inspection-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ChecklistHandler melayani item checklist kamar maupun area, tergantung repository-nya.
type ChecklistHandler struct {
	repo repository.ChecklistRepository
}

func NewChecklistHandler(repo repository.ChecklistRepository) *ChecklistHandler {
	return &ChecklistHandler{repo: repo}
}

type checklistRequest struct {
	ItemName string `json:"item_name" validate:"required"`
}

func (r *checklistRequest) parse(c *fiber.Ctx) error {
	if err := parseBody(c, r); err != nil {
		return err
	}
	return validation.Struct(r, validation.Messages{"item_name": "Nama item tidak boleh kosong."})
}

func (h *ChecklistHandler) GetAll(c *fiber.Ctx) error {
	items, err := h.repo.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(orEmpty(items))
}

func (h *ChecklistHandler) Create(c *fiber.Ctx) error {
	var input checklistRequest
	if err := input.parse(c); err != nil {
		return err
	}

	item := model.ChecklistItem{ItemName: input.ItemName}
	if err := h.repo.Create(c.UserContext(), &item); err != nil {
		if apperror.IsUniqueViolation(err) {
			return apperror.Conflict("Nama item sudah ada.")
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *ChecklistHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "ID item tidak valid.")
	if err != nil {
		return err
	}
	var input checklistRequest
	if err := input.parse(c); err != nil {
		return err
	}

	item := model.ChecklistItem{ItemID: id, ItemName: input.ItemName}
	if err := h.repo.Update(c.UserContext(), &item); err != nil {
		switch {
		case apperror.IsNotFound(err):
			return apperror.NotFound("Item tidak ditemukan.")
		case apperror.IsUniqueViolation(err):
			return apperror.Conflict("Nama item sudah ada.")
		}
		return err
	}
	return c.JSON(item)
}

func (h *ChecklistHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "ID item tidak valid.")
	if err != nil {
		return err
	}
	if err := h.repo.Delete(c.UserContext(), id); err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NotFound("Item tidak ditemukan.")
		}
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
