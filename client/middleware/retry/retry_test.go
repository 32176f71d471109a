package retry_test

import (
	"context"
	"testing"

	"github.com/gotd/td/bin"
	"github.com/gotd/td/tgerr"
	"github.com/krau/tgxfer/client/middleware/retry"
)

type invoker struct {
	calls int
	fails int
	err   error
}

func (i *invoker) Invoke(ctx context.Context, input bin.Encoder, output bin.Decoder) error {
	i.calls++
	if i.calls <= i.fails {
		return i.err
	}
	return nil
}

func TestRetryInternalErrors(t *testing.T) {
	next := &invoker{fails: 2, err: tgerr.New(500, "RPC_CALL_FAIL")}
	if err := retry.New(5).Handle(next)(context.Background(), nil, nil); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if next.calls != 3 {
		t.Errorf("calls = %d, want 3", next.calls)
	}
}

func TestRetryLimit(t *testing.T) {
	next := &invoker{fails: 10, err: tgerr.New(500, "RPC_CALL_FAIL")}
	if err := retry.New(3).Handle(next)(context.Background(), nil, nil); err == nil {
		t.Fatal("Handle() error = nil, want limit error")
	}
	if next.calls != 3 {
		t.Errorf("calls = %d, want 3", next.calls)
	}
}

func TestRetrySkipsOtherErrors(t *testing.T) {
	next := &invoker{fails: 1, err: tgerr.New(400, "PEER_ID_INVALID")}
	err := retry.New(3).Handle(next)(context.Background(), nil, nil)
	if !tgerr.Is(err, "PEER_ID_INVALID") {
		t.Fatalf("Handle() error = %v", err)
	}
	if next.calls != 1 {
		t.Errorf("calls = %d, want 1", next.calls)
	}
}
