package ioutil

import (
	"io"
	"sync/atomic"
)

var _ io.WriterAt = (*ProgressWriterAt)(nil)

// ProgressWriterAt counts bytes written through WriteAt. It is safe for the
// concurrent WriteAt calls made by parallel downloaders.
type ProgressWriterAt struct {
	wrAt       io.WriterAt
	total      int64
	written    atomic.Int64
	onProgress func(written int64, total int64)
}

func (p *ProgressWriterAt) WriteAt(buf []byte, off int64) (n int, err error) {
	n, err = p.wrAt.WriteAt(buf, off)
	if n > 0 {
		written := p.written.Add(int64(n))
		if p.onProgress != nil {
			p.onProgress(written, p.total)
		}
	}
	return
}

func (p *ProgressWriterAt) BytesWritten() int64 {
	return p.written.Load()
}

func NewProgressWriterAt(
	wrAt io.WriterAt,
	total int64,
	onProgress func(written int64, total int64),
) *ProgressWriterAt {
	return &ProgressWriterAt{
		wrAt:       wrAt,
		total:      total,
		onProgress: onProgress,
	}
}
