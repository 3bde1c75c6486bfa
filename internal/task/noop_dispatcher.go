package task

import (
	"context"
	"time"

	"github.com/reelkit/reels-ms-go/internal/port"
)

type NoopDispatcher struct{}

var _ port.TaskDispatcher = (*NoopDispatcher)(nil)

func NewNoopDispatcher() *NoopDispatcher { return &NoopDispatcher{} }

func (d *NoopDispatcher) EnqueueReclaimObject(ctx context.Context, objectKey string, delay time.Duration) error {
	return nil
}
