package port

import (
	"context"
	"time"
)

// Storage defines the operations this service needs from the object store:
// issuing short-lived signed write URLs, deriving stable public read URLs,
// and the existence/removal checks used by the orphan reclaim sweep.
type Storage interface {
	InitBucket(bucket string) error
	GeneratePresignedUploadURL(ctx context.Context, bucket, fileKey string, expiry time.Duration) (string, error)
	PublicURL(bucket, fileKey string) string
	FileExists(ctx context.Context, bucket, fileKey string) (bool, error)
	RemoveFile(ctx context.Context, bucket, fileKey string) error
}
