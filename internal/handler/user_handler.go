package handler

import (
	"bytes"
	"encoding/json"

	"hotel-inspection-backend/internal/apperror"
	"hotel-inspection-backend/internal/auth"
	"hotel-inspection-backend/internal/model"
	"hotel-inspection-backend/internal/repository"
	"hotel-inspection-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	repo repository.UserRepository
}

func NewUserHandler(repo repository.UserRepository) *UserHandler {
	return &UserHandler{repo: repo}
}

func (h *UserHandler) GetAll(c *fiber.Ctx) error {
	users, err := h.repo.ListWithHotels(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(orEmpty(users))
}

// GetAssignable dipakai form WO, boleh diakses admin dan inspector.
func (h *UserHandler) GetAssignable(c *fiber.Ctx) error {
	users, err := h.repo.ListAssignable(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(orEmpty(users))
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var input struct {
		Username string `json:"username" validate:"required"`
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
		Role     string `json:"role" validate:"required"`
	}
	if err := parseBody(c, &input); err != nil {
		return err
	}
	msg := "Semua field (username, email, password, role) diperlukan."
	if err := validation.Struct(input, validation.Messages{"username": msg, "email": msg, "password": msg, "role": msg}); err != nil {
		return err
	}

	// 1. Hashing Password
	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return err
	}

	// 2. Simpan ke Database
	user := model.User{Username: input.Username, Email: input.Email, PasswordHash: hash, Role: input.Role}
	if err := h.repo.Create(c.UserContext(), &user); err != nil {
		if apperror.IsUniqueViolation(err) {
			return apperror.Conflict("Username atau email sudah ada.")
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "ID pengguna tidak valid.")
	if err != nil {
		return err
	}
	var input struct {
		Username string `json:"username" validate:"required"`
		Email    string `json:"email" validate:"required"`
		Role     string `json:"role" validate:"required"`
		Password string `json:"password"`
	}
	if err := parseBody(c, &input); err != nil {
		return err
	}
	msg := "Username, email, dan role diperlukan."
	if err := validation.Struct(input, validation.Messages{"username": msg, "email": msg, "role": msg}); err != nil {
		return err
	}

	user := model.User{UserID: id, Username: input.Username, Email: input.Email, Role: input.Role}
	// Password hanya diganti jika diisi
	if input.Password != "" {
		if user.PasswordHash, err = auth.HashPassword(input.Password); err != nil {
			return err
		}
	}

	if err := h.repo.Update(c.UserContext(), &user); err != nil {
		switch {
		case apperror.IsNotFound(err):
			return apperror.NotFound("Pengguna tidak ditemukan.")
		case apperror.IsUniqueViolation(err):
			return apperror.Conflict("Username atau email sudah ada.")
		}
		return err
	}
	return c.JSON(user)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "ID pengguna tidak valid.")
	if err != nil {
		return err
	}
	me, err := currentUser(c)
	if err != nil {
		return err
	}
	if me.ID == id {
		return apperror.Forbidden("Anda tidak dapat menghapus akun Anda sendiri.")
	}

	if err := h.repo.Delete(c.UserContext(), id); err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NotFound("Pengguna tidak ditemukan.")
		}
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *UserHandler) GetHotels(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "ID pengguna tidak valid.")
	if err != nil {
		return err
	}
	ids, err := h.repo.HotelIDs(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(orEmpty(ids))
}

// UpdateHotels mengganti seluruh penugasan hotel user dalam satu transaksi.
func (h *UserHandler) UpdateHotels(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "ID pengguna tidak valid.")
	if err != nil {
		return err
	}

	notArray := apperror.BadRequest("hotelIds harus berupa array.")
	var input struct {
		HotelIDs json.RawMessage `json:"hotelIds"`
	}
	if err := parseBody(c, &input); err != nil {
		return err
	}
	raw := bytes.TrimSpace(input.HotelIDs)
	if len(raw) == 0 || raw[0] != '[' {
		return notArray
	}
	var ids []flexUint
	if err := c.App().Config().JSONDecoder(raw, &ids); err != nil {
		return notArray
	}

	hotelIDs := make([]uint, 0, len(ids))
	for _, v := range ids {
		if v != 0 {
			hotelIDs = append(hotelIDs, uint(v))
		}
	}
	if err := h.repo.ReplaceHotels(c.UserContext(), id, hotelIDs); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Penugasan hotel berhasil diperbarui."})
}
