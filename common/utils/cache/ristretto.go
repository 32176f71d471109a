package cache

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dgraph-io/ristretto/v2"
)

var (
	cache *ristretto.Cache[string, any]
	ttl   time.Duration
)

func init() {
	if err := Init(1e5, 1e6, 0); err != nil {
		log.Fatalf("failed to create ristretto cache: %v", err)
	}
}

// Init replaces the process cache. A zero ttl keeps entries until evicted.
func Init(numCounters, maxCost int64, entryTTL time.Duration) error {
	c, err := ristretto.NewCache(&ristretto.Config[string, any]{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return err
	}
	if cache != nil {
		cache.Close()
	}
	cache = c
	ttl = entryTTL
	return nil
}

func Set(key string, value any) error {
	ok := cache.SetWithTTL(key, value, 1, ttl)
	if !ok {
		return fmt.Errorf("failed to set value in cache")
	}
	cache.Wait()
	return nil
}

func Get[T any](key string) (T, bool) {
	v, ok := cache.Get(key)
	if !ok {
		var zero T
		return zero, false
	}
	vT, ok := v.(T)
	if !ok {
		var zero T
		return zero, false
	}
	return vT, true
}

func Delete(key string) {
	cache.Del(key)
}
