// Package notify delivers throttled progress updates to a status message.
package notify

import (
	"context"
	"errors"

	"github.com/gotd/td/tgerr"
)

// Status is a message that can be edited in place.
type Status interface {
	Edit(ctx context.Context, text string) error
	Delete(ctx context.Context) error
}

// Chat posts new status messages.
type Chat interface {
	Send(ctx context.Context, text string) (Status, error)
}

type Kind int

const (
	KindNone Kind = iota
	// KindNotModified means the new text equals the current one.
	KindNotModified
	// KindRateLimited means the backend asked us to slow down.
	KindRateLimited
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNotModified:
		return "not_modified"
	case KindRateLimited:
		return "rate_limited"
	default:
		return "other"
	}
}

var ErrRateLimited = errors.New("status update rate limited")

const errMessageNotModified = "MESSAGE_NOT_MODIFIED"

// Classify sorts a status update error.
func Classify(err error) Kind {
	if err == nil {
		return KindNone
	}
	if tgerr.Is(err, errMessageNotModified) {
		return KindNotModified
	}
	if errors.Is(err, ErrRateLimited) {
		return KindRateLimited
	}
	if _, ok := tgerr.AsFloodWait(err); ok {
		return KindRateLimited
	}
	return KindOther
}
