package storage

import "context"

// BlobStorage stores item photographs. Upload returns a long-lived public
// URL that is written onto the item record; Delete takes that same URL
// back. Keys are generated internally (images/<uuid>.<ext>).
type BlobStorage interface {
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, url string) error
}

// Config holds blob storage settings.
type Config struct {
	Type      string `yaml:"type"`       // "gcs" or "local"
	Bucket    string `yaml:"bucket"`     // GCS bucket name
	UploadDir string `yaml:"upload_dir"` // local backend directory
	BaseURL   string `yaml:"base_url"`   // server base URL for local URLs
}
