package cache

import (
	"context"
	"time"

	"github.com/reelkit/reels-ms-go/internal/port"
)

type NoopCache struct{}

// compile-time check: *NoopCache must satisfy port.Cache
var _ port.Cache = (*NoopCache)(nil)

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) GetFeedPage(ctx context.Context) ([]byte, error) {
	return nil, nil // always cache miss
}

func (n *NoopCache) GetEtagFeedPage(ctx context.Context) (string, error) {
	return "", nil
}

func (n *NoopCache) SetFeedPage(ctx context.Context, data []byte, ttl time.Duration) {}

func (n *NoopCache) SetEtagFeedPage(ctx context.Context, etag string, ttl time.Duration) {}

func (n *NoopCache) InvalidateFeedPage(ctx context.Context) error { return nil }
