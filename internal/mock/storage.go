package mock

import (
	"context"
	"time"

	"github.com/reelkit/reels-ms-go/internal/port"
)

// Storage implements the storage interface for tests.
type Storage struct {
	// stored values
	ExistsOut bool

	// captured inputs
	Bucket    string
	ObjectKey string
	TTL       time.Duration

	// errors
	InitBucketErr         error
	GenerateUploadLinkErr error
	FileExistsErr         error
	RemoveErr             error

	// call flags
	InitBucketCalled         bool
	GenerateUploadLinkCalled bool
	FileExistsCalled         bool
	RemoveCalled             bool
}

var _ port.Storage = (*Storage)(nil)

func (m *Storage) InitBucket(bucket string) error {
	m.InitBucketCalled = true
	m.Bucket = bucket
	return m.InitBucketErr
}

func (m *Storage) GeneratePresignedUploadURL(ctx context.Context, bucket, fileKey string, expiry time.Duration) (string, error) {
	m.GenerateUploadLinkCalled = true
	m.Bucket = bucket
	m.ObjectKey = fileKey
	m.TTL = expiry
	if m.GenerateUploadLinkErr != nil {
		return "", m.GenerateUploadLinkErr
	}
	return "https://example.com/upload", nil
}

func (m *Storage) PublicURL(bucket, fileKey string) string {
	return "https://example.com/" + bucket + "/" + fileKey
}

func (m *Storage) FileExists(ctx context.Context, bucket, fileKey string) (bool, error) {
	m.FileExistsCalled = true
	m.Bucket = bucket
	m.ObjectKey = fileKey
	if m.FileExistsErr != nil {
		return false, m.FileExistsErr
	}
	return m.ExistsOut, nil
}

func (m *Storage) RemoveFile(ctx context.Context, bucket, fileKey string) error {
	m.RemoveCalled = true
	m.Bucket = bucket
	m.ObjectKey = fileKey
	return m.RemoveErr
}
