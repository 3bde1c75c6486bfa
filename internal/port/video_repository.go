package port

import (
	"context"
	"time"

	"github.com/reelkit/reels-ms-go/internal/db"
	"github.com/reelkit/reels-ms-go/internal/model"
)

// ListVideosFilter narrows a feed listing to records strictly older than the
// cursor position. CursorSeq disambiguates rows sharing the same timestamp;
// when nil the comparison falls back to the timestamp alone.
type ListVideosFilter struct {
	Limit     int
	Cursor    *time.Time
	CursorSeq *int64
}

// VideoRepository defines persistence operations for video records.
// The table is append-only: there is no update or delete.
type VideoRepository interface {
	Create(ctx context.Context, video *model.Video) error
	GetByID(ctx context.Context, ID db.UUID) (*model.Video, error)
	ListNewest(ctx context.Context, filter ListVideosFilter) ([]model.Video, error)
	ExistsByVideoURL(ctx context.Context, videoURL string) (bool, error)
}
