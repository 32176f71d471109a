// Package split uploads files larger than a single Telegram document as a
// sequence of numbered parts.
package split

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/krau/tgxfer/core/notify"
	"github.com/krau/tgxfer/core/transfer"
	"github.com/krau/tgxfer/pkg/consts/tglimit"
)

const uploaderTitle = "╭─────────────────────╮\n│      Uploader\n├─────────────────────"

// Uploader sends status messages to Chat and documents through Publisher.
type Uploader struct {
	Client    transfer.Client
	Chat      notify.Chat
	Publisher transfer.Publisher
	// PartSize defaults to tglimit.SplitPartSize.
	PartSize int64
	// Interval between progress edits, defaults to throttle.DefaultInterval.
	Interval time.Duration
}

func (u *Uploader) partSize() int64 {
	if u.PartSize <= 0 {
		return tglimit.SplitPartSize
	}
	return u.PartSize
}

// PartName returns the file name of the zero-based part index of path.
func PartName(path string, index int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s.part%03d%s", strings.TrimSuffix(path, ext), index, ext)
}

// PartCaption appends the one-based part number to caption.
func PartCaption(caption string, number int) string {
	return fmt.Sprintf("%s\n\nPart : %d", caption, number)
}

// PartCount returns how many parts a file of size bytes is split into.
func PartCount(size, partSize int64) int {
	if size <= 0 || partSize <= 0 {
		return 0
	}
	return int((size + partSize - 1) / partSize)
}
