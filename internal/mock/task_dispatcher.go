package mock

import (
	"context"
	"time"

	"github.com/reelkit/reels-ms-go/internal/port"
)

// TaskDispatcher implements the dispatcher interface for tests.
type TaskDispatcher struct {
	EnqueueErr error

	EnqueueCalled bool
	GotObjectKey  string
	GotDelay      time.Duration
}

var _ port.TaskDispatcher = (*TaskDispatcher)(nil)

func (m *TaskDispatcher) EnqueueReclaimObject(ctx context.Context, objectKey string, delay time.Duration) error {
	m.EnqueueCalled = true
	m.GotObjectKey = objectKey
	m.GotDelay = delay
	return m.EnqueueErr
}
