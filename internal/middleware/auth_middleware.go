package middleware

import (
	"strings"

	"hotel-inspection-backend/internal/apperror"
	"hotel-inspection-backend/internal/auth"

	"github.com/gofiber/fiber/v2"
)

const userLocalKey = "user"

func Auth(tokens *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Ambil token dari Header Authorization, format: "Bearer <token>"
		authHeader := c.Get(fiber.HeaderAuthorization)
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		tokenString = strings.TrimSpace(tokenString)
		if !found || tokenString == "" {
			return apperror.Forbidden("Token tidak tersedia, otorisasi ditolak.")
		}

		// 2. Parse dan validasi token
		user, err := tokens.Parse(tokenString)
		if err != nil {
			return apperror.Unauthorized("Token tidak valid.")
		}

		// 3. Simpan data user ke context agar bisa dipakai di handler
		c.Locals(userLocalKey, user)
		return c.Next()
	}
}

// CurrentUser mengambil user yang diset oleh Auth.
func CurrentUser(c *fiber.Ctx) (*auth.UserClaims, bool) {
	user, ok := c.Locals(userLocalKey).(*auth.UserClaims)
	return user, ok && user != nil
}
