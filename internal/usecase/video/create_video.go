package video

import (
	"context"
	"fmt"

	"github.com/reelkit/reels-ms-go/internal/logger"
	"github.com/reelkit/reels-ms-go/internal/model"
	"github.com/reelkit/reels-ms-go/internal/port"
)

type videoCreatorSrv struct {
	repo    port.VideoRepository
	cache   port.Cache
	genUUID port.UUIDGen
}

// compile-time check: *videoCreatorSrv must satisfy port.VideoCreator
var _ port.VideoCreator = (*videoCreatorSrv)(nil)

func NewVideoCreator(repo port.VideoRepository, cache port.Cache, genUUID port.UUIDGen) port.VideoCreator {
	return &videoCreatorSrv{repo: repo, cache: cache, genUUID: genUUID}
}

// CreateVideo inserts exactly one record and returns it with the
// server-assigned sequence number and timestamp. The cached feed listing is
// invalidated so the next read reflects the new record.
func (s *videoCreatorSrv) CreateVideo(ctx context.Context, in port.CreateVideoInput) (*model.Video, error) {
	v := &model.Video{
		ID:           s.genUUID(),
		CreatorID:    in.CreatorID,
		VideoURL:     in.VideoURL,
		ThumbnailURL: in.ThumbnailURL,
		Description:  in.Description,
		AspectRatio:  in.AspectRatio,
		Duration:     in.Duration,
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, fmt.Errorf("failed creating video record: %w", err)
	}

	// re-read to pick up seq and created_at assigned by the store
	created, err := s.repo.GetByID(ctx, v.ID)
	if err != nil {
		return nil, fmt.Errorf("failed reading back video record #%s: %w", v.ID, err)
	}

	if err := s.cache.InvalidateFeedPage(ctx); err != nil {
		logger.Warnf(ctx, "⚠️  Could not invalidate feed cache after creating video #%s: %v", v.ID, err)
	}

	return created, nil
}
