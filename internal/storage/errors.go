package storage

import (
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/reelkit/reels-ms-go/internal/usecase/video"
)

func mapMinioErr(err error) error {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey":
		return video.ErrObjectNotFound
	case "NoSuchBucket":
		return video.ErrBucketNotFound
	case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
		return video.ErrUnauthorized
	default:
		// catch everything else
		return fmt.Errorf("%w: %v", video.ErrInternal, err)
	}
}
