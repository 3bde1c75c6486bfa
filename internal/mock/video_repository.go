package mock

import (
	"context"

	"github.com/reelkit/reels-ms-go/internal/db"
	"github.com/reelkit/reels-ms-go/internal/model"
	"github.com/reelkit/reels-ms-go/internal/port"
)

// VideoRepo implements repository operations for tests.
type VideoRepo struct {
	VideoRecord *model.Video
	ListOut     []model.Video
	ExistsOut   bool

	CreateErr error
	GetErr    error
	ListErr   error
	ExistsErr error

	Created      *model.Video
	GetCalled    bool
	GotID        db.UUID
	ListCalled   bool
	GotFilter    port.ListVideosFilter
	ExistsCalled bool
	GotVideoURL  string
}

var _ port.VideoRepository = (*VideoRepo)(nil)

func (m *VideoRepo) Create(ctx context.Context, video *model.Video) error {
	m.Created = video
	return m.CreateErr
}

func (m *VideoRepo) GetByID(ctx context.Context, id db.UUID) (*model.Video, error) {
	m.GetCalled = true
	m.GotID = id
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.VideoRecord != nil {
		return m.VideoRecord, nil
	}
	// echo back what was created so tests can round-trip
	return m.Created, nil
}

func (m *VideoRepo) ListNewest(ctx context.Context, filter port.ListVideosFilter) ([]model.Video, error) {
	m.ListCalled = true
	m.GotFilter = filter
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	if m.ListOut == nil {
		return []model.Video{}, nil
	}
	return m.ListOut, nil
}

func (m *VideoRepo) ExistsByVideoURL(ctx context.Context, videoURL string) (bool, error) {
	m.ExistsCalled = true
	m.GotVideoURL = videoURL
	if m.ExistsErr != nil {
		return false, m.ExistsErr
	}
	return m.ExistsOut, nil
}
