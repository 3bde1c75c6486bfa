package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/reelkit/reels-ms-go/internal/logger"
	"github.com/reelkit/reels-ms-go/internal/port"
	"github.com/reelkit/reels-ms-go/internal/usecase/video"
)

func ListVideosHandler(renderer port.HTTPRenderer, svc port.VideosLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		limit := video.DefaultLimit
		if raw := q.Get("limit"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 0 {
				limit = n
			}
		}

		var cursor *time.Time
		var cursorSeq *int64
		if raw := q.Get("cursor"); raw != "" {
			t, err := time.Parse(time.RFC3339Nano, raw)
			if err != nil {
				WriteError(w, http.StatusBadRequest, "cursor must be an RFC3339 timestamp", err)
				return
			}
			cursor = &t

			if rawSeq := q.Get("cursor_seq"); rawSeq != "" {
				n, err := strconv.ParseInt(rawSeq, 10, 64)
				if err != nil {
					WriteError(w, http.StatusBadRequest, "cursor_seq must be an integer", err)
					return
				}
				cursorSeq = &n
			}
		}

		// the cursor-less first page goes through the caching renderer
		if cursor == nil {
			raw, etag, err := renderer.RenderFeedPage(r.Context(), svc, limit)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "Could not list videos", err)
				return
			}

			w.Header().Set("ETag", etag)
			w.Header().Set("Cache-Control", "public, max-age=30")
			if match := r.Header.Get("If-None-Match"); match == etag {
				w.WriteHeader(http.StatusNotModified)
				logger.Info(r.Context(), "✅  Returning cached feed page")
				return
			}

			RespondRawJSON(w, http.StatusOK, raw)
			return
		}

		out, err := svc.ListVideos(r.Context(), port.ListVideosInput{
			Limit:     limit,
			Cursor:    cursor,
			CursorSeq: cursorSeq,
		})
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not list videos", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Successfully returned %d videos", len(out))
	}
}
