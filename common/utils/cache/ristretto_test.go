package cache_test

import (
	"testing"
	"time"

	"github.com/krau/tgxfer/common/utils/cache"
)

func TestSetGet(t *testing.T) {
	if err := cache.Set("interval:1", 3*time.Second); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, ok := cache.Get[time.Duration]("interval:1")
	if !ok || got != 3*time.Second {
		t.Errorf("Get() = %v, %v, want 3s, true", got, ok)
	}
	if _, ok := cache.Get[string]("interval:1"); ok {
		t.Error("Get() with wrong type should miss")
	}
	cache.Delete("interval:1")
	if _, ok := cache.Get[time.Duration]("interval:1"); ok {
		t.Error("Get() after Delete should miss")
	}
	if _, ok := cache.Get[time.Duration]("missing"); ok {
		t.Error("Get() of missing key should miss")
	}
}
