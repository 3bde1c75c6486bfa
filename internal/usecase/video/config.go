package video

import "time"

const (
	// DefaultLimit is the page size used when the caller does not supply one.
	DefaultLimit = 10

	// UploadURLTTL is how long a signed upload slot stays usable.
	UploadURLTTL = 5 * time.Minute

	// ReclaimGrace is how long after a slot is issued before the matching
	// object is checked for a referencing record and removed if orphaned.
	ReclaimGrace = 1 * time.Hour

	// FeedPageTTL bounds staleness of the cached first page; inserts
	// invalidate it sooner.
	FeedPageTTL = 30 * time.Second
)
