package recovery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/charmbracelet/log"
	"github.com/gotd/td/bin"
	"github.com/gotd/td/telegram"
	"github.com/gotd/td/tg"
)

type recovery struct {
	ctx     context.Context
	backoff backoff.BackOff
}

// New returns middleware that retries requests failing on a broken
// connection until ctx is done or b gives up.
func New(ctx context.Context, b backoff.BackOff) telegram.Middleware {
	return &recovery{
		ctx:     ctx,
		backoff: b,
	}
}

func (r *recovery) Handle(next tg.Invoker) telegram.InvokeFunc {
	return func(ctx context.Context, input bin.Encoder, output bin.Decoder) error {
		b := backoff.WithContext(r.backoff, ctx)
		return backoff.RetryNotify(func() error {
			if err := next.Invoke(ctx, input, output); err != nil {
				if r.shouldRecover(err) {
					return fmt.Errorf("recover: %w", err)
				}
				return backoff.Permanent(err)
			}
			return nil
		}, b, func(err error, d time.Duration) {
			log.FromContext(ctx).Debug("Waiting for connection recovery", "error", err, "after", d)
		})
	}
}

func (r *recovery) shouldRecover(err error) bool {
	select {
	case <-r.ctx.Done():
		return false
	default:
	}
	return IsConnectionError(err)
}

// IsConnectionError reports whether err comes from a dropped connection.
func IsConnectionError(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, net.ErrClosed)
}
