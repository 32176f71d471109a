package transfer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gabriel-vasile/mimetype"
	"github.com/krau/tgxfer/common/utils/fsutil"
	"github.com/krau/tgxfer/common/utils/mediautil"
	"github.com/krau/tgxfer/pkg/tfile"
)

type DownloadResult struct {
	Path  string
	Name  string
	Size  int64
	MIME  string
	Video *mediautil.Info
}

// Download fetches file into the per-user download directory, reporting
// progress through the configured status message. A failed download leaves
// no file behind.
func Download(ctx context.Context, client Client, file tfile.TGFile, opts ...Option) (*DownloadResult, error) {
	o := newOptions(opts)
	name := ResolveDownloadName(file, o.name, o.userID, time.Now())
	logger := log.FromContext(ctx).WithPrefix(fmt.Sprintf("download[%s]", name))

	dir, err := fsutil.EnsureUserDir(o.dir, o.userID)
	if dir == "" {
		return nil, fmt.Errorf("failed to create download dir: %w", err)
	}
	if err != nil {
		logger.Warnf("Falling back to shared download dir: %s", err)
	}

	localFile, err := createDestination(dir, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create local file: %w", err)
	}
	localPath := localFile.Name()
	logger.Info("Starting file download", "path", localPath, "size", file.Size())

	var onProgress ProgressFunc
	if reporter := o.newReporter(); reporter != nil {
		onProgress = func(done, total int64) {
			reporter.Report(ctx, done, total)
		}
	}
	if err := client.Download(ctx, file, localFile, onProgress); err != nil {
		if rmErr := localFile.CloseAndRemove(); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			logger.Errorf("Failed to remove partial file: %s", rmErr)
		}
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	if err := localFile.Close(); err != nil {
		if rmErr := localFile.Remove(); rmErr != nil {
			logger.Errorf("Failed to remove partial file: %s", rmErr)
		}
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	logger.Info("File downloaded successfully")
	return inspectDownload(logger, localPath)
}

// createDestination opens dir/name exclusively, switching to a suffixed name
// when the file already exists.
func createDestination(dir, name string) (*fsutil.File, error) {
	f, err := fsutil.CreateExclusive(filepath.Join(dir, name))
	if errors.Is(err, os.ErrExist) {
		return fsutil.CreateExclusive(filepath.Join(dir, fsutil.WithRandomSuffix(name)))
	}
	return f, err
}

func inspectDownload(logger *log.Logger, localPath string) (*DownloadResult, error) {
	stat, err := os.Stat(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get file stat: %w", err)
	}
	result := &DownloadResult{
		Path: localPath,
		Name: filepath.Base(localPath),
		Size: stat.Size(),
	}
	mt, err := mimetype.DetectFile(localPath)
	if err != nil {
		logger.Warnf("Failed to detect file type: %s", err)
		return result, nil
	}
	result.MIME = mt.String()
	if filepath.Ext(localPath) == "" && mt.Extension() != "" {
		withExt := localPath + mt.Extension()
		if !fsutil.FileExists(withExt) {
			if err := os.Rename(localPath, withExt); err != nil {
				logger.Warnf("Failed to add extension: %s", err)
			} else {
				result.Path = withExt
				result.Name = filepath.Base(withExt)
			}
		}
	}
	video, err := mediautil.ProbeFile(result.Path, result.MIME)
	if err != nil {
		logger.Debugf("Failed to read video attributes: %s", err)
	}
	result.Video = video
	return result, nil
}
