package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/reelkit/reels-ms-go/internal/mock"
	"github.com/reelkit/reels-ms-go/internal/task"
)

func TestReclaimObjectHandler_Success(t *testing.T) {
	svc := &mock.ObjectReclaimer{}

	err := ReclaimObjectHandler(context.Background(), task.ReclaimObjectPayload{ObjectKey: "123_abc.mp4"}, svc)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !svc.Called {
		t.Fatal("expected the reclaimer service to be called")
	}
	if svc.GotObjectKey != "123_abc.mp4" {
		t.Errorf("object key = %q; want %q", svc.GotObjectKey, "123_abc.mp4")
	}
}

func TestReclaimObjectHandler_ServiceError(t *testing.T) {
	svc := &mock.ObjectReclaimer{Err: errors.New("boom")}

	err := ReclaimObjectHandler(context.Background(), task.ReclaimObjectPayload{ObjectKey: "123_abc.mp4"}, svc)
	if err == nil {
		t.Fatal("expected the service error to propagate for retry")
	}
}
