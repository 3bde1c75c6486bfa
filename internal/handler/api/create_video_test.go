package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/reelkit/reels-ms-go/internal/api_context"
	"github.com/reelkit/reels-ms-go/internal/db"
	"github.com/reelkit/reels-ms-go/internal/mock"
	"github.com/reelkit/reels-ms-go/internal/model"
)

func TestCreateVideoHandler(t *testing.T) {
	created := &model.Video{
		ID:        db.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")),
		Seq:       7,
		CreatorID: "user-1",
		VideoURL:  "https://cdn.example.com/videos/123_abc.mp4",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name       string
		body       string
		authSub    string // "" leaves the request unauthenticated (service-role)
		svcOut     *model.Video
		svcErr     error
		wantStatus int

		wantErrorMap     map[string]string
		wantBodyContains string
		wantSvcCalled    bool
	}{
		{
			name:          "happy path service-role",
			body:          `{"creator_id":"user-1","video_url":"https://cdn.example.com/videos/123_abc.mp4","aspect_ratio":"9:16","duration":17}`,
			svcOut:        created,
			wantStatus:    http.StatusCreated,
			wantSvcCalled: true,
		},
		{
			name:          "happy path matching bearer subject",
			body:          `{"creator_id":"user-1","video_url":"https://cdn.example.com/videos/123_abc.mp4"}`,
			authSub:       "user-1",
			svcOut:        created,
			wantStatus:    http.StatusCreated,
			wantSvcCalled: true,
		},
		{
			name:             "bearer subject mismatch",
			body:             `{"creator_id":"user-2","video_url":"https://cdn.example.com/videos/123_abc.mp4"}`,
			authSub:          "user-1",
			wantStatus:       http.StatusForbidden,
			wantBodyContains: "creator_id does not match",
		},
		{
			name:             "invalid JSON",
			body:             `{"creator_id":`,
			wantStatus:       http.StatusBadRequest,
			wantBodyContains: "Invalid request",
		},
		{
			name:         "validation error: missing creator_id",
			body:         `{"video_url":"https://cdn.example.com/videos/123_abc.mp4"}`,
			wantStatus:   http.StatusBadRequest,
			wantErrorMap: map[string]string{"creator_id": "required"},
		},
		{
			name:         "validation error: video_url not a URL",
			body:         `{"creator_id":"user-1","video_url":"not-a-url"}`,
			wantStatus:   http.StatusBadRequest,
			wantErrorMap: map[string]string{"video_url": "url"},
		},
		{
			name:         "validation error: negative duration",
			body:         `{"creator_id":"user-1","video_url":"https://cdn.example.com/videos/123_abc.mp4","duration":-1}`,
			wantStatus:   http.StatusBadRequest,
			wantErrorMap: map[string]string{"duration": "gte"},
		},
		{
			name:             "service error",
			body:             `{"creator_id":"user-1","video_url":"https://cdn.example.com/videos/123_abc.mp4"}`,
			svcErr:           errors.New("boom"),
			wantStatus:       http.StatusInternalServerError,
			wantBodyContains: "Could not create video record",
			wantSvcCalled:    true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockSvc := &mock.VideoCreator{Out: tc.svcOut, Err: tc.svcErr}
			handlerFn := CreateVideoHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/videos", strings.NewReader(tc.body))
			if tc.authSub != "" {
				req = req.WithContext(api_context.WithAuthUserID(req.Context(), tc.authSub))
			}
			rec := httptest.NewRecorder()

			handlerFn(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d (body=%q)", rec.Code, tc.wantStatus, rec.Body.String())
			}
			if gotCT := rec.Header().Get("Content-Type"); gotCT != "application/json" {
				t.Errorf("Content-Type = %q; want %q", gotCT, "application/json")
			}
			if mockSvc.Called != tc.wantSvcCalled {
				t.Errorf("service called = %v; want %v", mockSvc.Called, tc.wantSvcCalled)
			}

			data := rec.Body.Bytes()

			switch {
			case tc.wantStatus == http.StatusCreated:
				var got model.Video
				if err := json.Unmarshal(data, &got); err != nil {
					t.Fatalf("JSON decode = %v (body=%q)", err, string(data))
				}
				if got.ID != created.ID {
					t.Errorf("ID = %v; want %v", got.ID, created.ID)
				}
				if got.Seq != created.Seq {
					t.Errorf("Seq = %d; want %d", got.Seq, created.Seq)
				}
				if mockSvc.In.CreatorID != "user-1" {
					t.Errorf("service called with CreatorID %q; want %q", mockSvc.In.CreatorID, "user-1")
				}

			case tc.wantErrorMap != nil:
				var errs map[string]string
				if err := json.Unmarshal(data, &errs); err != nil {
					t.Fatalf("error JSON: %v; body=%q", err, string(data))
				}
				for k, want := range tc.wantErrorMap {
					got, ok := errs[k]
					if !ok {
						t.Errorf("missing key %q in error response: %v", k, errs)
						continue
					}
					if got != want {
						t.Errorf("errs[%q] = %q; want %q", k, got, want)
					}
				}

			default:
				if !strings.Contains(string(data), tc.wantBodyContains) {
					t.Errorf("body %q does not contain %q", string(data), tc.wantBodyContains)
				}
			}
		})
	}
}
