package task

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"github.com/reelkit/reels-ms-go/internal/port"
)

type Dispatcher struct {
	client *asynq.Client
}

// compile-time check
var _ port.TaskDispatcher = (*Dispatcher)(nil)

func NewDispatcher(addr, password string) *Dispatcher {
	c := asynq.NewClient(asynq.RedisClientOpt{Addr: addr, Password: password})
	return &Dispatcher{client: c}
}

func (d *Dispatcher) EnqueueReclaimObject(ctx context.Context, objectKey string, delay time.Duration) error {
	t, err := NewReclaimObjectTask(objectKey)
	if err != nil {
		return err
	}
	if _, err := d.client.EnqueueContext(ctx, t, asynq.ProcessIn(delay)); err != nil {
		return err
	}
	return nil
}
