package port

import (
	"context"
	"time"
)

// Cache stores the rendered first page of the feed. Only the cursor-less
// default page is ever cached; every insert invalidates it so a freshly
// uploaded video is visible to the next read.
type Cache interface {
	GetFeedPage(ctx context.Context) ([]byte, error)
	GetEtagFeedPage(ctx context.Context) (string, error)
	SetFeedPage(ctx context.Context, data []byte, ttl time.Duration)
	SetEtagFeedPage(ctx context.Context, etag string, ttl time.Duration)
	InvalidateFeedPage(ctx context.Context) error
}
