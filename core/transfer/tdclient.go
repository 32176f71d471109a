package transfer

import (
	"context"
	"io"

	"github.com/gotd/td/telegram/downloader"
	"github.com/gotd/td/telegram/uploader"
	"github.com/gotd/td/tg"
	"github.com/krau/tgxfer/common/utils/dlutil"
	"github.com/krau/tgxfer/common/utils/ioutil"
	"github.com/krau/tgxfer/pkg/consts/tglimit"
	"github.com/krau/tgxfer/pkg/tfile"
)

var _ Client = (*TDClient)(nil)

// TDClient implements Client with the gotd downloader and uploader.
type TDClient struct {
	api     *tg.Client
	threads int
}

func NewTDClient(api *tg.Client, threads int) *TDClient {
	if threads < 1 {
		threads = 1
	}
	return &TDClient{
		api:     api,
		threads: threads,
	}
}

func (c *TDClient) Download(ctx context.Context, file tfile.TGFile, w io.WriterAt, progress ProgressFunc) error {
	wrAt := w
	if progress != nil {
		wrAt = ioutil.NewProgressWriterAt(w, file.Size(), progress)
	}
	_, err := downloader.NewDownloader().
		WithPartSize(tglimit.MaxPartSize).
		Download(c.api, file.Location()).
		WithThreads(dlutil.BestThreads(file.Size(), c.threads)).
		Parallel(ctx, wrAt)
	return err
}

func (c *TDClient) Upload(ctx context.Context, name string, r io.Reader, size int64, progress ProgressFunc) (tg.InputFileClass, error) {
	upler := uploader.NewUploader(c.api).
		WithPartSize(tglimit.MaxUploadPartSize).
		WithThreads(dlutil.BestThreads(size, c.threads))
	if progress != nil {
		upler = upler.WithProgress(chunkProgress(progress))
	}
	if size < 0 {
		return upler.FromReader(ctx, name, r)
	}
	return upler.Upload(ctx, uploader.NewUpload(name, r, size))
}

// chunkProgress adapts a ProgressFunc to uploader.Progress.
type chunkProgress ProgressFunc

func (p chunkProgress) Chunk(ctx context.Context, state uploader.ProgressState) error {
	p(state.Uploaded, state.Total)
	return nil
}
