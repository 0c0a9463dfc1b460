package middleware

import (
	"errors"

	"hotel-inspection-backend/internal/apperror"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	msgDuplicate  = "Gagal karena data yang dimasukkan sudah ada (duplikat)."
	msgForeignKey = "Operasi gagal karena data ini terkait dengan data lain yang sudah ada."
)

type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ErrorHandler adalah satu-satunya tempat error diubah menjadi response JSON.
func ErrorHandler(log *zap.Logger, production bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		resp, status := classify(err)

		if status >= fiber.StatusInternalServerError {
			log.Error("request gagal",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
			if !production {
				resp.Message = err.Error()
			}
		}

		return c.Status(status).JSON(resp)
	}
}

func classify(err error) (ErrorResponse, int) {
	if appErr, ok := apperror.As(err); ok {
		return ErrorResponse{Message: appErr.Message, Code: appErr.Code}, appErr.Status
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ErrorResponse{Message: fiberErr.Message}, fiberErr.Code
	}

	switch {
	case apperror.IsUniqueViolation(err):
		return ErrorResponse{Message: msgDuplicate, Code: apperror.CodeDuplicate}, fiber.StatusConflict
	case apperror.IsForeignKeyViolation(err):
		return ErrorResponse{Message: msgForeignKey, Code: apperror.CodeForeignKey}, fiber.StatusConflict
	}

	return ErrorResponse{Message: apperror.Internal(err).Message}, fiber.StatusInternalServerError
}
