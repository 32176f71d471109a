package split

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/krau/tgxfer/core/notify"
	"github.com/krau/tgxfer/core/progress"
	"github.com/krau/tgxfer/core/transfer"
	"github.com/krau/tgxfer/pkg/throttle"
)

// Upload sends path to the target chat, splitting it into parts of at most
// PartSize bytes. The source file is removed once every part is published.
func (u *Uploader) Upload(ctx context.Context, path, caption string) error {
	logger := log.FromContext(ctx).WithPrefix(fmt.Sprintf("split[%s]", filepath.Base(path)))
	stat, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if _, sendErr := u.Chat.Send(ctx, "❌ File not found!"); sendErr != nil {
				logger.Warnf("Failed to send message: %s", sendErr)
			}
			return fmt.Errorf("%w: %w", transfer.ErrFileNotFound, err)
		}
		return fmt.Errorf("failed to get file stat: %w", err)
	}
	start, err := u.Chat.Send(ctx, fmt.Sprintf("ℹ️ File size: %.2f MB", float64(stat.Size())/(1024*1024)))
	if err != nil {
		logger.Warnf("Failed to send message: %s", err)
	}

	partSize := u.partSize()
	if stat.Size() <= partSize {
		reporter := u.newReporter(start)
		err := u.publish(ctx, path, caption, reporter)
		deleteStatus(ctx, start, reporter)
		if err != nil {
			return err
		}
	} else {
		logger.Infof("Splitting into %d parts", PartCount(stat.Size(), partSize))
		if err := u.uploadParts(ctx, path, caption, partSize); err != nil {
			return err
		}
		deleteStatus(ctx, start, nil)
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove source file: %w", err)
	}
	logger.Info("Split upload finished")
	return nil
}

func (u *Uploader) uploadParts(ctx context.Context, path, caption string, partSize int64) error {
	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	for index := 0; ; index++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		partPath := PartName(path, index)
		written, err := writePart(src, partPath, partSize)
		if err != nil {
			return err
		}
		if written == 0 {
			return nil
		}
		number := index + 1
		status, err := u.Chat.Send(ctx, fmt.Sprintf("⬆️ Uploading part %d...", number))
		if err != nil {
			log.FromContext(ctx).Warnf("Failed to send message: %s", err)
		}
		reporter := u.newReporter(status)
		err = u.publish(ctx, partPath, PartCaption(caption, number), reporter)
		deleteStatus(ctx, status, reporter)
		if rmErr := os.Remove(partPath); rmErr != nil {
			log.FromContext(ctx).Warnf("Failed to remove part file: %s", rmErr)
		}
		if err != nil {
			return fmt.Errorf("failed to upload part %d: %w", number, err)
		}
		if written < partSize {
			return nil
		}
	}
}

// writePart copies the next partSize bytes of src into partPath. An empty
// part is not left on disk.
func writePart(src io.Reader, partPath string, partSize int64) (int64, error) {
	dst, err := os.Create(partPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create part file: %w", err)
	}
	written, err := io.CopyN(dst, src, partSize)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil || written == 0 {
		os.Remove(partPath)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to write part file: %w", err)
	}
	return written, nil
}

func (u *Uploader) newReporter(status notify.Status) *notify.Reporter {
	interval := u.Interval
	if interval <= 0 {
		interval = throttle.DefaultInterval
	}
	return notify.NewReporter(status,
		notify.WithFallback(u.Chat),
		notify.WithInterval(interval),
		notify.WithFormatter(progress.Detailed(uploaderTitle, time.Now())),
	)
}

func (u *Uploader) publish(ctx context.Context, path, caption string, reporter *notify.Reporter) error {
	_, err := transfer.UploadAndSend(ctx, u.Client, u.Publisher, path, caption,
		transfer.WithName(filepath.Base(path)),
		transfer.WithReporter(reporter),
	)
	return err
}

// deleteStatus removes status and, when the reporter moved to a fallback
// message, that message as well.
func deleteStatus(ctx context.Context, status notify.Status, reporter *notify.Reporter) {
	targets := []notify.Status{status}
	if current := reporter.Status(); current != nil && current != status {
		targets = append(targets, current)
	}
	for _, st := range targets {
		if st == nil {
			continue
		}
		if err := st.Delete(ctx); err != nil {
			log.FromContext(ctx).Warnf("Failed to delete message: %s", err)
		}
	}
}
