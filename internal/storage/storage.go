package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"hotel-inspection-backend/internal/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	FolderInspections = "inspections"
	FolderWOPhotos    = "wo-photos"

	MaxFiles    = 5
	MaxFileSize = 5 * 1024 * 1024
)

// StoredFile adalah hasil upload. Path yang disimpan ke database dan dikirim ke frontend.
type StoredFile struct {
	Path string
}

type Storage interface {
	Save(ctx context.Context, folder string, file *multipart.FileHeader) (StoredFile, error)
	Remove(ctx context.Context, path string) error
}

// ValidateImages memeriksa jumlah, ukuran dan tipe file sebelum disimpan.
func ValidateImages(files []*multipart.FileHeader, limit int) error {
	if len(files) > limit {
		return apperror.BadRequest(fmt.Sprintf("Maksimal %d foto.", limit))
	}
	for _, f := range files {
		if f.Size > MaxFileSize {
			return apperror.BadRequest("Ukuran file maksimal 5MB.")
		}
		if !strings.HasPrefix(f.Header.Get("Content-Type"), "image/") {
			return apperror.BadRequest("Hanya file gambar yang diizinkan!")
		}
	}
	return nil
}

// SaveAll menyimpan semua file. Jika salah satu gagal, file yang sudah tersimpan dihapus lagi.
func SaveAll(ctx context.Context, s Storage, log *zap.Logger, folder string, files []*multipart.FileHeader) ([]string, error) {
	paths := make([]string, 0, len(files))
	for _, f := range files {
		stored, err := s.Save(ctx, folder, f)
		if err != nil {
			RemoveAll(ctx, s, log, paths)
			return nil, err
		}
		paths = append(paths, stored.Path)
	}
	return paths, nil
}

// RemoveAll menghapus file secara best-effort, error hanya di-log.
func RemoveAll(ctx context.Context, s Storage, log *zap.Logger, paths []string) {
	for _, p := range paths {
		if err := s.Remove(ctx, p); err != nil {
			log.Warn("gagal menghapus file orphan", zap.String("path", p), zap.Error(err))
		}
	}
}

func newFileName(original string) string {
	return uuid.NewString() + strings.ToLower(filepath.Ext(original))
}
