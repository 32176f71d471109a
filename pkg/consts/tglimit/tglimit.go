package tglimit

import (
	"github.com/gotd/td/telegram/uploader"
)

const (
	MaxPartSize       = 1024 * 1024
	MaxUploadPartSize = uploader.MaximumPartSize
	MaxPhotoSize      = 10 * 1024 * 1024

	// SplitPartSize is the default size of one part produced by the chunked uploader.
	SplitPartSize int64 = 9 * 1024 * 1024 * 1024
)
