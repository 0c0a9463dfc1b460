package handler

import (
	"hotel-inspection-backend/internal/repository"
	"hotel-inspection-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SettingsHandler struct {
	repo  repository.SettingsRepository
	store storage.Storage
	log   *zap.Logger
}

func NewSettingsHandler(repo repository.SettingsRepository, store storage.Storage, log *zap.Logger) *SettingsHandler {
	return &SettingsHandler{repo: repo, store: store, log: log}
}

// ResetSequences menghapus semua inspeksi dan WO lalu mengembalikan penomoran ke 1.
func (h *SettingsHandler) ResetSequences(c *fiber.Ctx) error {
	paths, err := h.repo.ResetInspectionData(c.UserContext())
	if err != nil {
		return err
	}

	storage.RemoveAll(c.UserContext(), h.store, h.log, paths)
	h.log.Info("data inspeksi dan working order direset", zap.Int("photos_removed", len(paths)))
	return c.JSON(fiber.Map{"message": "Semua data inspeksi dan working order telah dihapus, dan penomoran berhasil direset ke 1."})
}
