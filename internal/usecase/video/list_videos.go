package video

import (
	"context"

	"github.com/reelkit/reels-ms-go/internal/model"
	"github.com/reelkit/reels-ms-go/internal/port"
)

type videosListerSrv struct {
	repo port.VideoRepository
}

// compile-time check: *videosListerSrv must satisfy port.VideosLister
var _ port.VideosLister = (*videosListerSrv)(nil)

func NewVideosLister(repo port.VideoRepository) port.VideosLister {
	return &videosListerSrv{repo: repo}
}

// ListVideos returns up to Limit records ordered by (created_at, seq)
// descending, restricted to rows strictly older than the cursor when one is
// supplied. A missing or non-positive limit falls back to DefaultLimit.
func (s *videosListerSrv) ListVideos(ctx context.Context, in port.ListVideosInput) ([]model.Video, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	return s.repo.ListNewest(ctx, port.ListVideosFilter{
		Limit:     limit,
		Cursor:    in.Cursor,
		CursorSeq: in.CursorSeq,
	})
}
