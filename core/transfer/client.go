// Package transfer wraps Telegram file transfers with throttled progress
// reporting, per-user download directories and cleanup on failure.
package transfer

import (
	"context"
	"io"

	"github.com/gotd/td/tg"
	"github.com/krau/tgxfer/common/utils/mediautil"
	"github.com/krau/tgxfer/pkg/tfile"
)

// ProgressFunc receives the running byte count of a transfer. It may be
// called concurrently by parallel transfer workers.
type ProgressFunc func(done, total int64)

// Client moves the bytes. progress may be nil.
type Client interface {
	Download(ctx context.Context, file tfile.TGFile, w io.WriterAt, progress ProgressFunc) error
	Upload(ctx context.Context, name string, r io.Reader, size int64, progress ProgressFunc) (tg.InputFileClass, error)
}

// Document is an uploaded file ready to be sent to a chat.
type Document struct {
	File    tg.InputFileClass
	Name    string
	Caption string
	MIME    string
	Video   *mediautil.Info
}

// Publisher sends uploaded documents to a chat.
type Publisher interface {
	SendDocument(ctx context.Context, doc Document) error
}
