package transfer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/duke-git/lancet/v2/retry"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gotd/td/tg"
	"github.com/krau/tgxfer/common/utils/mediautil"
)

var ErrFileNotFound = errors.New("file not found")

// Upload sends the local file at path through client, reporting progress
// through the configured status message.
func Upload(ctx context.Context, client Client, path string, opts ...Option) (tg.InputFileClass, error) {
	file, _, err := upload(ctx, client, path, newOptions(opts))
	return file, err
}

// upload returns the uploaded file together with the display name it was sent under.
func upload(ctx context.Context, client Client, path string, o *options) (tg.InputFileClass, string, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, "", fmt.Errorf("%w: %w", ErrFileNotFound, err)
		}
		return nil, "", fmt.Errorf("failed to get file stat: %w", err)
	}
	if stat.IsDir() {
		return nil, "", fmt.Errorf("%s is a directory", path)
	}
	name := ResolveUploadName(filepath.Base(path), o.name, o.userID, time.Now())
	logger := log.FromContext(ctx).WithPrefix(fmt.Sprintf("upload[%s]", name))

	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	var onProgress ProgressFunc
	if reporter := o.newReporter(); reporter != nil {
		onProgress = func(done, total int64) {
			reporter.Report(ctx, done, total)
		}
	}
	logger.Info("Starting file upload", "path", path, "size", stat.Size())
	file, err := client.Upload(ctx, name, f, stat.Size(), onProgress)
	if err != nil {
		return nil, "", fmt.Errorf("failed to upload file: %w", err)
	}
	logger.Info("File uploaded successfully")
	return file, name, nil
}

// UploadAndSend uploads path and publishes it as a document with caption.
func UploadAndSend(ctx context.Context, client Client, pub Publisher, path, caption string, opts ...Option) (*Document, error) {
	file, name, err := upload(ctx, client, path, newOptions(opts))
	if err != nil {
		return nil, err
	}
	doc := Document{
		File:    file,
		Name:    name,
		Caption: caption,
	}
	if mt, err := mimetype.DetectFile(path); err == nil {
		doc.MIME = mt.String()
		if video, err := mediautil.ProbeFile(path, doc.MIME); err == nil {
			doc.Video = video
		}
	}
	if named, ok := file.(interface{ GetName() string }); ok && named.GetName() != "" {
		doc.Name = named.GetName()
	}
	err = retry.Retry(func() error {
		return pub.SendDocument(ctx, doc)
	}, retry.RetryTimes(3), retry.Context(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to send document: %w", err)
	}
	return &doc, nil
}
