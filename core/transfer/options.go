package transfer

import (
	"time"

	"github.com/krau/tgxfer/core/notify"
	"github.com/krau/tgxfer/core/progress"
	"github.com/krau/tgxfer/pkg/throttle"
)

const DefaultDownloadDir = "downloads"

type options struct {
	status   notify.Status
	fallback notify.Chat
	reporter *notify.Reporter
	timer    *throttle.Timer
	interval time.Duration
	format   progress.Formatter
	dir      string
	name     string
	userID   int64
}

type Option func(*options)

// WithStatus sets the message that receives progress updates.
func WithStatus(status notify.Status) Option {
	return func(o *options) {
		o.status = status
	}
}

// WithFallback sets the chat used when editing the status message fails.
func WithFallback(chat notify.Chat) Option {
	return func(o *options) {
		o.fallback = chat
	}
}

// WithReporter uses r instead of building a reporter from the other options.
func WithReporter(r *notify.Reporter) Option {
	return func(o *options) {
		o.reporter = r
	}
}

func WithTimer(timer *throttle.Timer) Option {
	return func(o *options) {
		o.timer = timer
	}
}

func WithInterval(interval time.Duration) Option {
	return func(o *options) {
		o.interval = interval
	}
}

func WithFormatter(format progress.Formatter) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithDir sets the base download directory. Ignored by uploads.
func WithDir(dir string) Option {
	return func(o *options) {
		o.dir = dir
	}
}

// WithName sets the display name, overriding any inferred one.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithUserID isolates downloads per user and prefixes upload names.
func WithUserID(userID int64) Option {
	return func(o *options) {
		o.userID = userID
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		dir:      DefaultDownloadDir,
		format:   progress.Bar,
		interval: throttle.DefaultInterval,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.dir == "" {
		o.dir = DefaultDownloadDir
	}
	return o
}

func (o *options) newReporter() *notify.Reporter {
	if o.reporter != nil {
		return o.reporter
	}
	if o.status == nil && o.fallback == nil {
		return nil
	}
	timer := o.timer
	if timer == nil {
		timer = throttle.New(o.interval)
	}
	ropts := []notify.ReporterOption{
		notify.WithTimer(timer),
		notify.WithFormatter(o.format),
	}
	if o.fallback != nil {
		ropts = append(ropts, notify.WithFallback(o.fallback))
	}
	return notify.NewReporter(o.status, ropts...)
}
