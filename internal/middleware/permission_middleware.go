package middleware

import (
	"hotel-inspection-backend/internal/apperror"
	"hotel-inspection-backend/internal/rbac"

	"github.com/gofiber/fiber/v2"
)

// Permission mengecek tabel role_permissions di setiap request, admin selalu lolos.
func Permission(checker rbac.Checker, permissionID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return apperror.Forbidden("Akses ditolak: Anda tidak memiliki izin untuk melakukan tindakan ini.")
		}

		allowed, err := rbac.Allowed(c.UserContext(), checker, user.Role, permissionID)
		if err != nil {
			return err
		}
		if !allowed {
			return apperror.Forbidden("Akses ditolak: Anda tidak memiliki izin untuk melakukan tindakan ini.")
		}
		return c.Next()
	}
}
