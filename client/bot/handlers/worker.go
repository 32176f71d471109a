package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/celestix/gotgproto/ext"
	"github.com/charmbracelet/log"
	"github.com/krau/tgxfer/common/utils/cache"
	"github.com/krau/tgxfer/config"
	"github.com/krau/tgxfer/core/transfer"
	"golang.org/x/sync/errgroup"
)

// transfers bounds how many transfers run at once.
var transfers errgroup.Group

// runTransfer runs fn in the background once a transfer slot is free.
func runTransfer(ctx context.Context, name string, fn func(ctx context.Context) error) {
	logger := log.FromContext(ctx).WithPrefix(name)
	go transfers.Go(func() error {
		start := time.Now()
		if err := fn(log.WithContext(ctx, logger)); err != nil {
			logger.Errorf("Transfer failed: %s", err)
			return nil
		}
		logger.Debugf("Transfer finished in %s", time.Since(start))
		return nil
	})
}

func newClient(ctx *ext.Context) transfer.Client {
	return transfer.NewTDClient(ctx.Raw, config.C().Threads)
}

func intervalKey(userID int64) string {
	return fmt.Sprintf("interval:%d", userID)
}

// userInterval returns the progress interval chosen by userID, or the
// configured one.
func userInterval(userID int64) time.Duration {
	if d, ok := cache.Get[time.Duration](intervalKey(userID)); ok {
		return d
	}
	return config.C().Transfer.IntervalDuration()
}
