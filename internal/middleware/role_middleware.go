package middleware

import (
	"hotel-inspection-backend/internal/apperror"

	"github.com/gofiber/fiber/v2"
)

func Role(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Ambil role user dari context (diset di Auth middleware)
		user, ok := CurrentUser(c)
		if ok {
			for _, role := range allowedRoles {
				if role == user.Role {
					return c.Next()
				}
			}
		}
		return apperror.Forbidden("Akses ditolak: Anda tidak memiliki hak untuk mengakses sumber daya ini.")
	}
}
