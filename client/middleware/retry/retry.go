package retry

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gotd/td/bin"
	"github.com/gotd/td/telegram"
	"github.com/gotd/td/tg"
	"github.com/gotd/td/tgerr"
)

var internalErrors = []string{
	"Timedout",
	"No workers running",
	"RPC_CALL_FAIL",
	"RPC_MCGET_FAIL",
	"WORKER_BUSY_TOO_LONG_RETRY",
	"memory limit exit",
}

type retry struct {
	max    int
	errors []string
}

func (r retry) Handle(next tg.Invoker) telegram.InvokeFunc {
	return func(ctx context.Context, input bin.Encoder, output bin.Decoder) error {
		for attempt := 1; ; attempt++ {
			err := next.Invoke(ctx, input, output)
			if err == nil {
				return nil
			}
			if !tgerr.Is(err, r.errors...) {
				return err
			}
			if attempt >= r.max {
				return fmt.Errorf("retry limit reached after %d attempts: %w", attempt, err)
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			log.FromContext(ctx).Debug("Retrying telegram request", "attempt", attempt, "error", err)
		}
	}
}

// New returns middleware that retries a request up to max times while it
// fails with a transient server error or one of extra.
func New(max int, extra ...string) telegram.Middleware {
	if max < 1 {
		max = 1
	}
	return retry{
		max:    max,
		errors: append(extra, internalErrors...),
	}
}
