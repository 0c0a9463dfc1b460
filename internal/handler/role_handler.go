package handler

import (
	"fmt"

	"hotel-inspection-backend/internal/apperror"
	"hotel-inspection-backend/internal/model"
	"hotel-inspection-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type RoleHandler struct {
	repo repository.RoleRepository
}

func NewRoleHandler(repo repository.RoleRepository) *RoleHandler {
	return &RoleHandler{repo: repo}
}

func (h *RoleHandler) GetAll(c *fiber.Ctx) error {
	roles, err := h.repo.ListWithPermissions(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(orEmpty(roles))
}

func (h *RoleHandler) GetPermissions(c *fiber.Ctx) error {
	perms, err := h.repo.ListPermissions(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(orEmpty(perms))
}

func (h *RoleHandler) UpdatePermissions(c *fiber.Ctx) error {
	roleName := c.Params("role_name")
	if roleName == model.RoleAdmin {
		return apperror.BadRequest("Hak akses Administrator tidak dapat diubah.")
	}

	var input struct {
		Permissions []string `json:"permissions"`
	}
	if err := parseBody(c, &input); err != nil {
		return err
	}

	if err := h.repo.ReplacePermissions(c.UserContext(), roleName, input.Permissions); err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NotFound("Peran tidak ditemukan.")
		}
		return err
	}
	return c.JSON(fiber.Map{"message": fmt.Sprintf("Hak akses untuk peran %s berhasil diperbarui.", roleName)})
}
