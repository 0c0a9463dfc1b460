package handler

import (
	"hotel-inspection-backend/internal/usecase"
	"hotel-inspection-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	usecase *usecase.AuthUsecase
}

func NewAuthHandler(u *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{usecase: u}
}

type credentialsRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input credentialsRequest
	if err := parseBody(c, &input); err != nil {
		return err
	}
	if err := validation.Struct(input, validation.Messages{
		"email":    "Email dan password diperlukan.",
		"password": "Email dan password diperlukan.",
	}); err != nil {
		return err
	}

	user, err := h.usecase.Register(c.UserContext(), input.Email, input.Password)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input credentialsRequest
	if err := parseBody(c, &input); err != nil {
		return err
	}

	token, err := h.usecase.Login(c.UserContext(), input.Email, input.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"token": token})
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var input struct {
		Email string `json:"email" validate:"required"`
	}
	if err := parseBody(c, &input); err != nil {
		return err
	}
	if err := validation.Struct(input, validation.Messages{"email": "Email diperlukan."}); err != nil {
		return err
	}

	if err := h.usecase.ForgotPassword(c.UserContext(), input.Email); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": usecase.MsgForgotPassword})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var input struct {
		Token       string `json:"token" validate:"required"`
		NewPassword string `json:"newPassword" validate:"required,min=6"`
	}
	if err := parseBody(c, &input); err != nil {
		return err
	}
	if err := validation.Struct(input, validation.Messages{
		"token":                "Token dan password baru diperlukan.",
		"newPassword.required": "Token dan password baru diperlukan.",
		"newPassword.min":      "Password baru minimal harus 6 karakter.",
	}); err != nil {
		return err
	}

	if err := h.usecase.ResetPassword(c.UserContext(), input.Token, input.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Password Anda telah berhasil direset. Silakan login kembali."})
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var input struct {
		CurrentPassword string `json:"currentPassword" validate:"required"`
		NewPassword     string `json:"newPassword" validate:"required,min=6"`
	}
	if err := parseBody(c, &input); err != nil {
		return err
	}
	if err := validation.Struct(input, validation.Messages{
		"currentPassword":      "Password saat ini dan password baru diperlukan.",
		"newPassword.required": "Password saat ini dan password baru diperlukan.",
		"newPassword.min":      "Password baru minimal harus 6 karakter.",
	}); err != nil {
		return err
	}

	if err := h.usecase.ChangePassword(c.UserContext(), user.ID, input.CurrentPassword, input.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Password berhasil diubah."})
}
