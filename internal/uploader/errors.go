package uploader

import "errors"

var (
	ErrFileMissing      = errors.New("uploader: file missing")
	ErrFileTooLarge     = errors.New("uploader: file exceeds the 50 MiB limit")
	ErrUnsupportedType  = errors.New("uploader: unsupported media type")
	ErrNotAuthenticated = errors.New("uploader: not authenticated")
	ErrSlotRequest      = errors.New("uploader: could not obtain upload slot")
	ErrTransferFailed   = errors.New("uploader: transfer to storage failed")
	ErrPersistFailed    = errors.New("uploader: could not save video metadata")
)
