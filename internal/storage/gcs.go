package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// GCSStorage keeps item photos in a Cloud Storage bucket. Objects are
// made publicly readable so the stored URL stays valid for the life of
// the item.
type GCSStorage struct {
	bucket     *gcs.BucketHandle
	bucketName string
}

func NewGCSStorage(bucket *gcs.BucketHandle, bucketName string) *GCSStorage {
	return &GCSStorage{bucket: bucket, bucketName: bucketName}
}

func (s *GCSStorage) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	key := imageKey(contentType)

	obj := s.bucket.Object(key)
	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("upload image %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("upload image %s: %w", key, err)
	}

	if err := obj.ACL().Set(ctx, gcs.AllUsers, gcs.RoleReader); err != nil {
		return "", fmt.Errorf("publish image %s: %w", key, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, key), nil
}

func (s *GCSStorage) Delete(ctx context.Context, rawURL string) error {
	key, err := s.objectKey(rawURL)
	if err != nil {
		return err
	}
	if err := s.bucket.Object(key).Delete(ctx); err != nil {
		return fmt.Errorf("delete image %s: %w", key, err)
	}
	return nil
}

// objectKey recovers the bucket key from a stored public URL.
func (s *GCSStorage) objectKey(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse image url: %w", err)
	}
	path := strings.TrimPrefix(u.Path, "/")
	key, ok := strings.CutPrefix(path, s.bucketName+"/")
	if !ok || key == "" {
		return "", fmt.Errorf("image url %q does not reference bucket %s", rawURL, s.bucketName)
	}
	return key, nil
}

func imageKey(contentType string) string {
	ext := ".jpg"
	switch contentType {
	case "image/png":
		ext = ".png"
	case "image/jpeg":
		ext = ".jpg"
	}
	return "images/" + uuid.NewString() + ext
}
