package mock

import (
	"context"

	"github.com/reelkit/reels-ms-go/internal/model"
	"github.com/reelkit/reels-ms-go/internal/port"
)

// UploadSlotGenerator implements port.UploadSlotGenerator for tests.
type UploadSlotGenerator struct {
	Out port.GenerateUploadSlotOutput
	Err error
	In  port.GenerateUploadSlotInput

	Called bool
}

var _ port.UploadSlotGenerator = (*UploadSlotGenerator)(nil)

func (m *UploadSlotGenerator) GenerateUploadSlot(ctx context.Context, in port.GenerateUploadSlotInput) (port.GenerateUploadSlotOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// VideoCreator implements port.VideoCreator for tests.
type VideoCreator struct {
	Out *model.Video
	Err error
	In  port.CreateVideoInput

	Called bool
}

var _ port.VideoCreator = (*VideoCreator)(nil)

func (m *VideoCreator) CreateVideo(ctx context.Context, in port.CreateVideoInput) (*model.Video, error) {
	m.Called = true
	m.In = in
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Out, nil
}

// VideosLister implements port.VideosLister for tests.
type VideosLister struct {
	Out []model.Video
	Err error
	In  port.ListVideosInput

	Called bool
}

var _ port.VideosLister = (*VideosLister)(nil)

func (m *VideosLister) ListVideos(ctx context.Context, in port.ListVideosInput) ([]model.Video, error) {
	m.Called = true
	m.In = in
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Out == nil {
		return []model.Video{}, nil
	}
	return m.Out, nil
}

// ObjectReclaimer implements port.ObjectReclaimer for tests.
type ObjectReclaimer struct {
	Err error

	Called       bool
	GotObjectKey string
}

var _ port.ObjectReclaimer = (*ObjectReclaimer)(nil)

func (m *ObjectReclaimer) ReclaimObject(ctx context.Context, objectKey string) error {
	m.Called = true
	m.GotObjectKey = objectKey
	return m.Err
}
