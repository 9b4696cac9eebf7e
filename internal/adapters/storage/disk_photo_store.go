package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const (
	// Uploads above this size are rejected.
	maxPhotoBytes = 5 << 20
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
}

var (
	ErrPhotoTooLarge        = errors.New("photo exceeds the 5MB size limit")
	ErrUnsupportedPhotoMIME = errors.New("unsupported photo content type")
)

// Disk-backed implementation of the PhotoStore port. Files land under
// Root/<folder>/ with a timestamped, uuid-suffixed name so concurrent
// uploads cannot collide.
type DiskPhotoStore struct {
	Root string
}

func NewDiskPhotoStore(root string) (*DiskPhotoStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("photo store: create root %q: %w", root, err)
	}
	return &DiskPhotoStore{Root: root}, nil
}

// Save validates and writes an uploaded image, returning its path relative
// to the store root.
func (s *DiskPhotoStore) Save(folder, originalFilename, contentType string, r io.Reader) (string, error) {
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return "", fmt.Errorf("save photo %q: %w: %s", originalFilename, ErrUnsupportedPhotoMIME, contentType)
	}

	dir := filepath.Join(s.Root, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("save photo: create folder %q: %w", folder, err)
	}

	name := fmt.Sprintf("%s_%s%s", time.Now().UTC().Format("20060102_150405"), uuid.NewString(), ext)
	fullPath := filepath.Join(dir, name)

	f, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("save photo: create file: %w", err)
	}
	defer f.Close()

	// Read one byte past the limit to distinguish "exactly at" from "over".
	n, err := io.Copy(f, io.LimitReader(r, maxPhotoBytes+1))
	if err != nil {
		_ = os.Remove(fullPath)
		return "", fmt.Errorf("save photo: write: %w", err)
	}
	if n > maxPhotoBytes {
		_ = os.Remove(fullPath)
		return "", fmt.Errorf("save photo %q: %w", originalFilename, ErrPhotoTooLarge)
	}

	return filepath.Join(folder, name), nil
}

// Delete removes a stored file; a missing file is not an error.
func (s *DiskPhotoStore) Delete(relPath string) error {
	err := os.Remove(filepath.Join(s.Root, relPath))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete photo %q: %w", relPath, err)
	}
	return nil
}
