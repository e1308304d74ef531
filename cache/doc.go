// Package cache provides a fixed-capacity, in-memory, generic key/value
// cache with a choice of two eviction policies — SIEVE and S3-FIFO — and
// a choice of two concurrency models.
//
// Design
//
//   - Capacity is fixed at construction; there is no resize operation.
//   - Eviction policy is selected via Options.Engine: SIEVE (the default)
//     keeps one FIFO list with a scanning hand and a visited bit per
//     entry; S3FIFO keeps small/main/ghost FIFO queues with a per-entry
//     frequency counter gating promotion and second-chance reinsertion.
//     See package engine/sieve and engine/s3fifo.
//   - Concurrency is selected via Options.Concurrency: Shared (the
//     default) wraps the whole cache in a single coarse sync.RWMutex —
//     there is no finer-grained or per-shard locking. Serial performs no
//     synchronization at all and must only be used from one goroutine.
//   - GetOrLoad coalesces concurrent loads for the same key using
//     golang.org/x/sync/singleflight.
//   - Metrics: Options.Metrics receives Hit/Miss/Evict/Size signals. By
//     default NoopMetrics is used; plug metrics/prom.New to export them
//     over Prometheus.
//
// Basic usage
//
//	c, err := cache.New[string, []byte](cache.Options[string, []byte]{Capacity: 10_000})
//	if err != nil { ... }
//	c.Set("a", []byte("1"))
//	if v, ok := c.Get("a"); ok {
//	    _ = v
//	}
//	c.FetchRemove("a")
//
// Choosing S3-FIFO
//
//	c, err := cache.New[string, string](cache.Options[string, string]{
//	    Capacity: 50_000,
//	    Engine:   cache.S3FIFO,
//	})
//
// With GetOrLoad (singleflight)
//
//	c, _ := cache.New[string, string](cache.Options[string, string]{
//	    Capacity: 1024,
//	    Loader: func(ctx context.Context, k string) (string, error) {
//	        return "v:" + k, nil
//	    },
//	})
//	v, err := c.GetOrLoad(context.Background(), "key")
//
// Exporting metrics
//
//	m := prom.New(nil, "sievecache", "demo", nil)
//	c, _ := cache.New[string, []byte](cache.Options[string, []byte]{
//	    Capacity: 10_000,
//	    Metrics:  m,
//	})
//
// Thread-safety & complexity
//
// A Shared Cache is safe for concurrent use by multiple goroutines. All
// operations run in amortized O(1): one map access and a constant amount
// of list-pointer fixes.
package cache
