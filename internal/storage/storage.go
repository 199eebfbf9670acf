package storage

import (
	"context"
	"time"
)

// FileStorage stores treatment attachments (X-rays, scans) and returns object
// keys that are persisted on the treatment record.
type FileStorage interface {
	UploadFile(ctx context.Context, data []byte, filename string) (string, error)

	DeleteFile(ctx context.Context, objectKey string) error

	GetFile(ctx context.Context, objectKey string) ([]byte, error)

	GetPresignedURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error)
}
