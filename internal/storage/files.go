package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileStore saves uploaded section content and returns the stored filename.
type FileStore interface {
	Save(file *multipart.FileHeader) (string, error)
}

// DiskStore writes uploads to a local directory, the same one the server
// exposes statically under /uploads.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the upload directory if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Save copies the uploaded file under a collision-free name and returns
// that name. The content itself is never read back by the application.
func (s *DiskStore) Save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.New().String() + "-" + filepath.Base(fh.Filename)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return name, nil
}
