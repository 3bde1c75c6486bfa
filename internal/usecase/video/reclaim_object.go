package video

import (
	"context"
	"fmt"

	"github.com/reelkit/reels-ms-go/internal/logger"
	"github.com/reelkit/reels-ms-go/internal/port"
)

type objectReclaimerSrv struct {
	repo   port.VideoRepository
	strg   port.Storage
	bucket string
}

// compile-time check: *objectReclaimerSrv must satisfy port.ObjectReclaimer
var _ port.ObjectReclaimer = (*objectReclaimerSrv)(nil)

func NewObjectReclaimer(repo port.VideoRepository, strg port.Storage, bucket string) port.ObjectReclaimer {
	return &objectReclaimerSrv{repo: repo, strg: strg, bucket: bucket}
}

// ReclaimObject removes the object if, past the grace period, no video record
// references its public URL. Referenced and never-written objects are left
// alone.
func (s *objectReclaimerSrv) ReclaimObject(ctx context.Context, objectKey string) error {
	exists, err := s.strg.FileExists(ctx, s.bucket, objectKey)
	if err != nil {
		return fmt.Errorf("could not check object %q: %w", objectKey, err)
	}
	if !exists {
		// the slot was issued but never used
		return nil
	}

	referenced, err := s.repo.ExistsByVideoURL(ctx, s.strg.PublicURL(s.bucket, objectKey))
	if err != nil {
		return fmt.Errorf("could not look up record for object %q: %w", objectKey, err)
	}
	if referenced {
		return nil
	}

	logger.Infof(ctx, "removing orphaned object %q from bucket %q...", objectKey, s.bucket)
	if err := s.strg.RemoveFile(ctx, s.bucket, objectKey); err != nil {
		return fmt.Errorf("could not remove orphaned object %q: %w", objectKey, err)
	}
	return nil
}
