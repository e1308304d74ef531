package cache

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/IvanBrykalov/sievecache/engine"
	"github.com/IvanBrykalov/sievecache/engine/s3fifo"
	"github.com/IvanBrykalov/sievecache/engine/sieve"
	"golang.org/x/sync/singleflight"
)

// New constructs a Cache with the provided Options. Defaults:
//   - Engine      -> SIEVE
//   - Concurrency -> Shared
//   - Metrics     -> NoopMetrics
//
// New returns an Error (kind ErrBadCapacity) if Capacity <= 0.
func New[K comparable, V any](opt Options[K, V]) (Cache[K, V], error) {
	if opt.Capacity <= 0 {
		return nil, &Error{Kind: ErrBadCapacity, Op: "New"}
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}

	var factory engine.Factory[K, V]
	switch opt.Engine {
	case S3FIFO:
		factory = s3fifo.New[K, V]()
	default:
		factory = sieve.New[K, V]()
	}
	eng := factory(opt.Capacity)

	if opt.Concurrency == Serial {
		return &serialCache[K, V]{eng: eng, opt: opt}, nil
	}
	return &sharedCache[K, V]{eng: eng, opt: opt}, nil
}

// ---- serialCache: no synchronization at all ----

// serialCache has no mutex field: there is nothing to elide, the
// synchronization simply does not exist. Safe only for single-goroutine
// use, per Options.Concurrency's Serial contract.
type serialCache[K comparable, V any] struct {
	eng    engine.Engine[K, V]
	opt    Options[K, V]
	closed bool
}

func (c *serialCache[K, V]) Len() int      { return c.eng.Len() }
func (c *serialCache[K, V]) Capacity() int { return c.opt.Capacity }
func (c *serialCache[K, V]) IsEmpty() bool { return c.eng.Len() == 0 }

func (c *serialCache[K, V]) Contains(key K) bool {
	if c.closed {
		return false
	}
	return c.eng.Contains(key)
}

func (c *serialCache[K, V]) Get(key K) (V, bool) {
	if c.closed {
		var zero V
		return zero, false
	}
	v, ok := c.eng.Get(key)
	if ok {
		c.opt.Metrics.Hit()
	} else {
		c.opt.Metrics.Miss()
	}
	return v, ok
}

func (c *serialCache[K, V]) Set(key K, val V) bool {
	if c.closed {
		return false
	}
	before := c.eng.Len()
	inserted := c.eng.Set(key, val)
	n := c.eng.Len()
	if inserted && before >= c.opt.Capacity {
		c.opt.Metrics.Evict()
	}
	c.opt.Metrics.Size(n)
	return inserted
}

func (c *serialCache[K, V]) FetchRemove(key K) (V, bool) {
	if c.closed {
		var zero V
		return zero, false
	}
	v, ok := c.eng.Remove(key)
	if ok {
		c.opt.Metrics.Size(c.eng.Len())
	}
	return v, ok
}

func (c *serialCache[K, V]) Purge() {
	if c.closed {
		return
	}
	c.eng.Purge()
	c.opt.Metrics.Size(0)
}

func (c *serialCache[K, V]) Close() error {
	if !c.closed {
		c.eng.Purge()
	}
	c.closed = true
	return nil
}

func (c *serialCache[K, V]) GetOrLoad(ctx context.Context, key K) (V, error) {
	return getOrLoad(ctx, c, &noSingleflight[K, V]{}, c.opt.Loader, key)
}

// ---- sharedCache: one coarse RWMutex around the whole engine ----

// sharedCache guards every engine call with a single RWMutex, exactly the
// "no finer locking" contract: there is no per-entry or per-shard lock,
// only one lock for the whole cache. Get/Contains/Len/IsEmpty take a read
// lock; every mutating operation takes a write lock.
type sharedCache[K comparable, V any] struct {
	mu     sync.RWMutex
	eng    engine.Engine[K, V]
	opt    Options[K, V]
	closed atomic.Bool
	sf     singleflight.Group
}

func (c *sharedCache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.eng.Len()
}

func (c *sharedCache[K, V]) Capacity() int { return c.opt.Capacity }

func (c *sharedCache[K, V]) IsEmpty() bool { return c.Len() == 0 }

func (c *sharedCache[K, V]) Contains(key K) bool {
	if c.closed.Load() {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.eng.Contains(key)
}

func (c *sharedCache[K, V]) Get(key K) (V, bool) {
	if c.closed.Load() {
		var zero V
		return zero, false
	}
	c.mu.RLock()
	v, ok := c.eng.Get(key)
	c.mu.RUnlock()
	if ok {
		c.opt.Metrics.Hit()
	} else {
		c.opt.Metrics.Miss()
	}
	return v, ok
}

func (c *sharedCache[K, V]) Set(key K, val V) bool {
	if c.closed.Load() {
		return false
	}
	c.mu.Lock()
	before := c.eng.Len()
	inserted := c.eng.Set(key, val)
	n := c.eng.Len()
	c.mu.Unlock()
	if inserted && before >= c.opt.Capacity {
		c.opt.Metrics.Evict()
	}
	c.opt.Metrics.Size(n)
	return inserted
}

func (c *sharedCache[K, V]) FetchRemove(key K) (V, bool) {
	if c.closed.Load() {
		var zero V
		return zero, false
	}
	c.mu.Lock()
	v, ok := c.eng.Remove(key)
	n := c.eng.Len()
	c.mu.Unlock()
	if ok {
		c.opt.Metrics.Size(n)
	}
	return v, ok
}

func (c *sharedCache[K, V]) Purge() {
	if c.closed.Load() {
		return
	}
	c.mu.Lock()
	c.eng.Purge()
	c.mu.Unlock()
	c.opt.Metrics.Size(0)
}

func (c *sharedCache[K, V]) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed.Swap(true) {
		c.eng.Purge()
	}
	return nil
}

func (c *sharedCache[K, V]) GetOrLoad(ctx context.Context, key K) (V, error) {
	return getOrLoad(ctx, c, &c.sf, c.opt.Loader, key)
}

// ---- shared GetOrLoad plumbing ----

// sfGroup is the subset of singleflight.Group's API getOrLoad needs,
// letting serialCache route through a no-op coalescer (it is only ever
// used from one goroutine, so there is nothing to coalesce) while
// sharedCache routes through the real golang.org/x/sync/singleflight
// group keyed by a string-rendered key.
type sfGroup interface {
	Do(key string, fn func() (interface{}, error)) (interface{}, error, bool)
}

type noSingleflight[K comparable, V any] struct{}

func (*noSingleflight[K, V]) Do(_ string, fn func() (interface{}, error)) (interface{}, error, bool) {
	v, err := fn()
	return v, err, false
}

func getOrLoad[K comparable, V any](ctx context.Context, c Cache[K, V], sf sfGroup, loader func(context.Context, K) (V, error), key K) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	if loader == nil {
		var zero V
		return zero, ErrNoLoader
	}

	sfKey := singleflightKey(key)
	res, err, _ := sf.Do(sfKey, func() (interface{}, error) {
		if v, ok := c.Get(key); ok {
			return v, nil
		}
		v, err := loader(ctx, key)
		if err == nil {
			c.Set(key, v)
		}
		return v, err
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return res.(V), nil
}

// singleflightKey renders K into the string key golang.org/x/sync's
// singleflight.Group requires. fmt.Sprint handles any comparable K
// (strings pass through, everything else gets its default representation);
// collisions between distinct keys with identical string renderings only
// cost extra coalescing, they never cause cross-key data corruption since
// the work function closes over the real key, not the string.
func singleflightKey[K comparable](key K) string {
	if s, ok := any(key).(string); ok {
		return s
	}
	return fmt.Sprint(key)
}
