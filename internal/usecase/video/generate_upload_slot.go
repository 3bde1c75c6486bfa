package video

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/reelkit/reels-ms-go/internal/logger"
	"github.com/reelkit/reels-ms-go/internal/port"
)

type uploadSlotGeneratorSrv struct {
	strg       port.Storage
	dispatcher port.TaskDispatcher
	bucket     string
	genUUID    port.UUIDGen
}

// compile-time check: *uploadSlotGeneratorSrv must satisfy port.UploadSlotGenerator
var _ port.UploadSlotGenerator = (*uploadSlotGeneratorSrv)(nil)

func NewUploadSlotGenerator(strg port.Storage, dispatcher port.TaskDispatcher, bucket string, genUUID port.UUIDGen) port.UploadSlotGenerator {
	return &uploadSlotGeneratorSrv{strg: strg, dispatcher: dispatcher, bucket: bucket, genUUID: genUUID}
}

// GenerateUploadSlot derives a globally-unique object path from the current
// time plus a random suffix, keeping the original file extension, and returns
// a short-lived signed write URL together with the permanent public read URL
// for that path. Collisions are treated as negligible, not eliminated.
func (s *uploadSlotGeneratorSrv) GenerateUploadSlot(ctx context.Context, in port.GenerateUploadSlotInput) (port.GenerateUploadSlotOutput, error) {
	ext := strings.ToLower(filepath.Ext(in.Filename))
	suffix := strings.SplitN(s.genUUID().String(), "-", 2)[0]
	objectKey := fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), suffix, ext)

	uploadURL, err := s.strg.GeneratePresignedUploadURL(ctx, s.bucket, objectKey, UploadURLTTL)
	if err != nil {
		return port.GenerateUploadSlotOutput{}, err
	}

	// The slot may never be used, or be used without a record ever being
	// written. Schedule a reclaim check past the grace period; a failed
	// enqueue only degrades cleanup, not the slot itself.
	if err := s.dispatcher.EnqueueReclaimObject(ctx, objectKey, ReclaimGrace); err != nil {
		logger.Warnf(ctx, "⚠️  Could not schedule reclaim for object %q: %v", objectKey, err)
	}

	return port.GenerateUploadSlotOutput{
		UploadURL: uploadURL,
		PublicURL: s.strg.PublicURL(s.bucket, objectKey),
		Path:      objectKey,
	}, nil
}
