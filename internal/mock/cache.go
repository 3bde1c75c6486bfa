package mock

import (
	"context"
	"time"

	"github.com/reelkit/reels-ms-go/internal/port"
)

// Cache implements the cache interface for tests.
type Cache struct {
	PageOut []byte
	EtagOut string

	GetErr        error
	InvalidateErr error

	GetCalled        bool
	SetCalled        bool
	SetData          []byte
	SetEtag          string
	SetTTL           time.Duration
	InvalidateCalled bool
}

var _ port.Cache = (*Cache)(nil)

func (m *Cache) GetFeedPage(ctx context.Context) ([]byte, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.PageOut, nil
}

func (m *Cache) GetEtagFeedPage(ctx context.Context) (string, error) {
	if m.GetErr != nil {
		return "", m.GetErr
	}
	return m.EtagOut, nil
}

func (m *Cache) SetFeedPage(ctx context.Context, data []byte, ttl time.Duration) {
	m.SetCalled = true
	m.SetData = data
	m.SetTTL = ttl
}

func (m *Cache) SetEtagFeedPage(ctx context.Context, etag string, ttl time.Duration) {
	m.SetEtag = etag
}

func (m *Cache) InvalidateFeedPage(ctx context.Context) error {
	m.InvalidateCalled = true
	return m.InvalidateErr
}
