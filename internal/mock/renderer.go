package mock

import (
	"context"

	"github.com/reelkit/reels-ms-go/internal/port"
)

// HTTPRenderer implements port.HTTPRenderer for tests.
type HTTPRenderer struct {
	Raw  []byte
	Etag string
	Err  error

	Called   bool
	GotLimit int
}

var _ port.HTTPRenderer = (*HTTPRenderer)(nil)

func (m *HTTPRenderer) RenderFeedPage(ctx context.Context, lister port.VideosLister, limit int) ([]byte, string, error) {
	m.Called = true
	m.GotLimit = limit
	if m.Err != nil {
		return nil, "", m.Err
	}
	return m.Raw, m.Etag, nil
}
