package worker

import (
	"context"
	"log"

	"github.com/reelkit/reels-ms-go/internal/port"
	"github.com/reelkit/reels-ms-go/internal/task"
)

// ReclaimObjectHandler handles a reclaim-object task. It delegates to the
// reclaimer service, which removes the object only when no video record
// references it.
func ReclaimObjectHandler(ctx context.Context, p task.ReclaimObjectPayload, svc port.ObjectReclaimer) error {
	if err := svc.ReclaimObject(ctx, p.ObjectKey); err != nil {
		log.Printf("❌  Failed to reclaim object %q: %v", p.ObjectKey, err)
		return err
	}

	log.Printf("✅  Reclaim check done for object %q", p.ObjectKey)
	return nil
}
