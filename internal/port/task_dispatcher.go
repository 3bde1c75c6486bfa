package port

import (
	"context"
	"time"
)

// TaskDispatcher enqueues asynchronous background tasks.
type TaskDispatcher interface {
	// EnqueueReclaimObject schedules a check, after the given delay, that
	// removes the object if no video record references it by then.
	EnqueueReclaimObject(ctx context.Context, objectKey string, delay time.Duration) error
}
