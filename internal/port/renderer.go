package port

import "context"

// HTTPRenderer mediates between HTTP handlers and the feed listing use case.
// It provides caching capabilities and returns both the JSON representation of
// the result as well as an ETag value derived from it.
type HTTPRenderer interface {
	// RenderFeedPage returns the cached JSON first page and its ETag if
	// available, or executes the underlying use case and caches the output.
	RenderFeedPage(ctx context.Context, lister VideosLister, limit int) ([]byte, string, error)
}
