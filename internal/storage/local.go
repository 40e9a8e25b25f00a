package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalStorage implements BlobStorage on the local filesystem for
// development and tests. Files are served back by the HTTP API under
// /media/images/.
type LocalStorage struct {
	baseURL   string
	imagesDir string
}

func NewLocalStorage(baseURL, uploadDir string) (*LocalStorage, error) {
	imagesDir := filepath.Join(uploadDir, "images")
	if err := os.MkdirAll(imagesDir, 0o755); err != nil {
		return nil, fmt.Errorf("create images directory: %w", err)
	}
	return &LocalStorage{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		imagesDir: imagesDir,
	}, nil
}

func (s *LocalStorage) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	key := imageKey(contentType)
	name := path.Base(key)

	if err := os.WriteFile(filepath.Join(s.imagesDir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write image %s: %w", name, err)
	}
	return fmt.Sprintf("%s/media/images/%s", s.baseURL, name), nil
}

func (s *LocalStorage) Delete(ctx context.Context, rawURL string) error {
	name := path.Base(rawURL)
	if name == "." || name == "/" || name == "" {
		return fmt.Errorf("image url %q has no file name", rawURL)
	}
	if err := os.Remove(filepath.Join(s.imagesDir, name)); err != nil {
		return fmt.Errorf("delete image %s: %w", name, err)
	}
	return nil
}

// Open returns the stored file for the HTTP media handler.
func (s *LocalStorage) Open(name string) (io.ReadCloser, error) {
	clean := filepath.Base(name)
	f, err := os.Open(filepath.Join(s.imagesDir, clean))
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", clean, err)
	}
	return f, nil
}
