package port

import (
	"context"
	"time"

	"github.com/reelkit/reels-ms-go/internal/db"
	"github.com/reelkit/reels-ms-go/internal/model"
)

type UUIDGen func() db.UUID

// UploadSlotGenerator issues a signed upload slot: a short-lived presigned
// write URL plus the permanent public read URL for a freshly derived object
// path.
type UploadSlotGenerator interface {
	GenerateUploadSlot(ctx context.Context, in GenerateUploadSlotInput) (GenerateUploadSlotOutput, error)
}
type GenerateUploadSlotInput struct {
	Filename    string
	ContentType string
}
type GenerateUploadSlotOutput struct {
	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
	Path      string `json:"path"`
}

// VideoCreator persists one video record after a successful transfer.
type VideoCreator interface {
	CreateVideo(ctx context.Context, in CreateVideoInput) (*model.Video, error)
}
type CreateVideoInput struct {
	CreatorID    string
	VideoURL     string
	ThumbnailURL *string
	Description  *string
	AspectRatio  *string
	Duration     *int
}

// VideosLister returns a reverse-chronological, cursor-paginated page of
// video records.
type VideosLister interface {
	ListVideos(ctx context.Context, in ListVideosInput) ([]model.Video, error)
}
type ListVideosInput struct {
	Limit     int
	Cursor    *time.Time
	CursorSeq *int64
}

// ObjectReclaimer removes a storage object left behind by an upload that
// never produced a metadata record.
type ObjectReclaimer interface {
	ReclaimObject(ctx context.Context, objectKey string) error
}
