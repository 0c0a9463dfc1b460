package storage

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/valyala/fasthttp"
)

// PublicPrefix adalah prefix URL tempat folder upload disajikan sebagai static file.
const PublicPrefix = "/uploads"

type Local struct {
	root string
}

func NewLocal(root string) *Local {
	return &Local{root: root}
}

func (l *Local) Root() string { return l.root }

func (l *Local) Save(_ context.Context, folder string, file *multipart.FileHeader) (StoredFile, error) {
	dir := filepath.Join(l.root, folder)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return StoredFile{}, err
	}

	name := newFileName(file.Filename)
	if err := fasthttp.SaveMultipartFile(file, filepath.Join(dir, name)); err != nil {
		return StoredFile{}, fmt.Errorf("gagal menyimpan file: %w", err)
	}
	return StoredFile{Path: path.Join(PublicPrefix, folder, name)}, nil
}

func (l *Local) Remove(_ context.Context, publicPath string) error {
	rel := strings.TrimPrefix(path.Clean("/"+publicPath), PublicPrefix+"/")
	if rel == "" || strings.HasPrefix(rel, "/") || strings.Contains(rel, "..") {
		return fmt.Errorf("path di luar folder upload: %s", publicPath)
	}
	err := os.Remove(filepath.Join(l.root, filepath.FromSlash(rel)))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
