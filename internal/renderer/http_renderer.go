package renderer

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/crc32"

	"github.com/reelkit/reels-ms-go/internal/port"
	"github.com/reelkit/reels-ms-go/internal/usecase/video"
)

type httpRenderer struct {
	cache port.Cache
}

// compile-time check: *httpRenderer must satisfy port.HTTPRenderer
var _ port.HTTPRenderer = (*httpRenderer)(nil)

// NewHTTPRenderer creates a new HTTPRenderer implementation.
func NewHTTPRenderer(cache port.Cache) port.HTTPRenderer {
	return &httpRenderer{cache: cache}
}

// RenderFeedPage serves the cursor-less feed page either from cache or from
// the wrapped use case. It returns the JSON encoded listing and a quoted ETag
// string. Only the default page size goes through the cache; other limits
// pass straight to the use case.
func (r *httpRenderer) RenderFeedPage(ctx context.Context, lister port.VideosLister, limit int) ([]byte, string, error) {
	cacheable := limit == video.DefaultLimit

	if cacheable {
		raw, err := r.cache.GetFeedPage(ctx)
		etag, errEtag := r.cache.GetEtagFeedPage(ctx)
		if err == nil && errEtag == nil && raw != nil && etag != "" {
			return raw, etag, nil
		}
	}

	out, err := lister.ListVideos(ctx, port.ListVideosInput{Limit: limit})
	if err != nil {
		return nil, "", err
	}

	raw, err := json.Marshal(out)
	if err != nil {
		return nil, "", fmt.Errorf("json marshal: %w", err)
	}

	etag := fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(raw))
	if cacheable {
		r.cache.SetFeedPage(ctx, raw, video.FeedPageTTL)
		r.cache.SetEtagFeedPage(ctx, etag, video.FeedPageTTL)
	}

	return raw, etag, nil
}
