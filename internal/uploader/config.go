package uploader

import "time"

const (
	// MaxFileSize is the hard client-side cap; bigger files are rejected
	// before any network call.
	MaxFileSize = 50 << 20 // 50 MiB

	// ProbeTimeout bounds the duration probe; on timeout the record is
	// created with a null duration instead of blocking the pipeline.
	ProbeTimeout = 10 * time.Second
)

// contentTypeForExt is the file-picker whitelist: only these extensions are
// accepted, with their declared MIME types.
var contentTypeForExt = map[string]string{
	".mp4": "video/mp4",
	".mov": "video/quicktime",
}
