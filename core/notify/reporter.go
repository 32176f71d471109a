package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/charmbracelet/log"
	"github.com/krau/tgxfer/core/progress"
	"github.com/krau/tgxfer/pkg/throttle"
)

// Reporter is the throttled progress callback of a single transfer.
// Failures to update the status never reach the transfer.
type Reporter struct {
	mu         sync.Mutex
	status     Status
	fallback   Chat
	timer      *throttle.Timer
	format     progress.Formatter
	newBackOff func() backoff.BackOff
}

type ReporterOption func(*Reporter)

// WithFallback sets the chat used to post a fresh status message when
// editing the current one fails.
func WithFallback(chat Chat) ReporterOption {
	return func(r *Reporter) {
		r.fallback = chat
	}
}

func WithFormatter(format progress.Formatter) ReporterOption {
	return func(r *Reporter) {
		if format != nil {
			r.format = format
		}
	}
}

func WithTimer(timer *throttle.Timer) ReporterOption {
	return func(r *Reporter) {
		if timer != nil {
			r.timer = timer
		}
	}
}

func WithInterval(interval time.Duration) ReporterOption {
	return func(r *Reporter) {
		r.timer = throttle.New(interval)
	}
}

// WithBackOff sets the retry policy for fallback sends.
func WithBackOff(newBackOff func() backoff.BackOff) ReporterOption {
	return func(r *Reporter) {
		if newBackOff != nil {
			r.newBackOff = newBackOff
		}
	}
}

func NewReporter(status Status, opts ...ReporterOption) *Reporter {
	r := &Reporter{
		status:     status,
		format:     progress.Bar,
		newBackOff: defaultBackOff,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.timer == nil {
		r.timer = throttle.New(throttle.DefaultInterval)
	}
	return r
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	b.MaxInterval = 5 * time.Second
	return backoff.WithMaxRetries(b, 3)
}

// Report is called for every progress sample and emits only when the timer allows.
func (r *Reporter) Report(ctx context.Context, done, total int64) {
	if r == nil || !r.timer.Allow() {
		return
	}
	err := r.Notify(ctx, r.format(done, total))
	switch Classify(err) {
	case KindNone:
	case KindRateLimited:
		log.FromContext(ctx).Debugf("Skipped progress update: %s", err)
	default:
		log.FromContext(ctx).Warnf("Failed to update progress: %s", err)
	}
}

// Notify edits the status message with text. Not-modified errors are
// swallowed; other non rate-limit failures switch to a new message posted
// through the fallback chat when one is configured.
func (r *Reporter) Notify(ctx context.Context, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status == nil && r.fallback == nil {
		return nil
	}
	var err error
	if r.status != nil {
		err = r.status.Edit(ctx, text)
		switch Classify(err) {
		case KindNone, KindNotModified:
			return nil
		case KindRateLimited:
			return fmt.Errorf("%w: %w", ErrRateLimited, err)
		}
		if r.fallback == nil {
			return err
		}
		log.FromContext(ctx).Debugf("Status edit failed, posting a new status message: %s", err)
	}
	status, sendErr := r.send(ctx, text)
	if sendErr != nil {
		return errors.Join(err, fmt.Errorf("fallback send failed: %w", sendErr))
	}
	r.status = status
	return nil
}

func (r *Reporter) send(ctx context.Context, text string) (Status, error) {
	var status Status
	err := backoff.Retry(func() error {
		var err error
		status, err = r.fallback.Send(ctx, text)
		if Classify(err) == KindRateLimited {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(r.newBackOff(), ctx))
	if err != nil {
		return nil, err
	}
	return status, nil
}

// Status returns the message currently receiving updates, which differs from
// the initial one after a fallback.
func (r *Reporter) Status() Status {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}
