package renderer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/crc32"
	"testing"

	"github.com/reelkit/reels-ms-go/internal/mock"
	"github.com/reelkit/reels-ms-go/internal/model"
	"github.com/reelkit/reels-ms-go/internal/usecase/video"
)

func TestRenderFeedPage_CacheHit(t *testing.T) {
	ca := &mock.Cache{PageOut: []byte(`[{"seq":2}]`), EtagOut: `"cafebabe"`}
	lister := &mock.VideosLister{}
	r := NewHTTPRenderer(ca)

	raw, etag, err := r.RenderFeedPage(context.Background(), lister, video.DefaultLimit)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if string(raw) != `[{"seq":2}]` {
		t.Errorf("raw = %q; want cached page", raw)
	}
	if etag != `"cafebabe"` {
		t.Errorf("etag = %q; want cached etag", etag)
	}
	if lister.Called {
		t.Error("the use case should not run on a cache hit")
	}
}

func TestRenderFeedPage_CacheMissRendersAndStores(t *testing.T) {
	ca := &mock.Cache{}
	out := []model.Video{{Seq: 2}, {Seq: 1}}
	lister := &mock.VideosLister{Out: out}
	r := NewHTTPRenderer(ca)

	raw, etag, err := r.RenderFeedPage(context.Background(), lister, video.DefaultLimit)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !lister.Called {
		t.Fatal("expected the use case to run on a cache miss")
	}
	if lister.In.Limit != video.DefaultLimit {
		t.Errorf("limit = %d; want %d", lister.In.Limit, video.DefaultLimit)
	}

	want, _ := json.Marshal(out)
	if string(raw) != string(want) {
		t.Errorf("raw = %q; want %q", raw, want)
	}
	wantEtag := fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(want))
	if etag != wantEtag {
		t.Errorf("etag = %q; want %q", etag, wantEtag)
	}

	if !ca.SetCalled {
		t.Error("expected the rendered page to be cached")
	}
	if string(ca.SetData) != string(want) {
		t.Errorf("cached %q; want %q", ca.SetData, want)
	}
	if ca.SetEtag != wantEtag {
		t.Errorf("cached etag %q; want %q", ca.SetEtag, wantEtag)
	}
	if ca.SetTTL != video.FeedPageTTL {
		t.Errorf("cached with TTL %v; want %v", ca.SetTTL, video.FeedPageTTL)
	}
}

func TestRenderFeedPage_NonDefaultLimitBypassesCache(t *testing.T) {
	ca := &mock.Cache{PageOut: []byte(`[]`), EtagOut: `"cafebabe"`}
	lister := &mock.VideosLister{Out: []model.Video{{Seq: 1}}}
	r := NewHTTPRenderer(ca)

	_, _, err := r.RenderFeedPage(context.Background(), lister, 3)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ca.GetCalled {
		t.Error("a non-default limit must not read the cache")
	}
	if ca.SetCalled {
		t.Error("a non-default limit must not write the cache")
	}
	if !lister.Called {
		t.Error("expected the use case to run")
	}
}

func TestRenderFeedPage_ListerError(t *testing.T) {
	lister := &mock.VideosLister{Err: errors.New("boom")}
	r := NewHTTPRenderer(&mock.Cache{})

	if _, _, err := r.RenderFeedPage(context.Background(), lister, video.DefaultLimit); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestRenderFeedPage_CacheErrorFallsThrough(t *testing.T) {
	ca := &mock.Cache{GetErr: errors.New("redis down")}
	lister := &mock.VideosLister{Out: []model.Video{{Seq: 1}}}
	r := NewHTTPRenderer(ca)

	raw, etag, err := r.RenderFeedPage(context.Background(), lister, video.DefaultLimit)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !lister.Called {
		t.Error("expected the use case to run when the cache is unavailable")
	}
	if len(raw) == 0 || etag == "" {
		t.Errorf("expected a rendered page, got raw=%q etag=%q", raw, etag)
	}
}
