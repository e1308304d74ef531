// Package engine defines the contract both eviction policies (SIEVE,
// S3-FIFO) implement. The cache package drives an Engine without knowing
// which policy it is talking to, the same separation the teacher draws
// between a shard and its policy.ShardPolicy.
package engine

// Engine is a single-threaded eviction-policy-backed store. Callers (the
// cache package) are responsible for all synchronization; an Engine itself
// performs no locking.
type Engine[K comparable, V any] interface {
	// Len returns the number of resident entries.
	Len() int

	// Get returns the value for key and whether it was present. A hit
	// updates the policy's recency/frequency signal for key.
	Get(key K) (V, bool)

	// Contains reports whether key is resident without touching any
	// policy state.
	Contains(key K) bool

	// Set inserts or replaces key→val. It returns true iff key was
	// absent before the call.
	Set(key K, val V) bool

	// Remove deletes key if present, returning its value and true.
	Remove(key K) (V, bool)

	// Purge deletes every resident entry, leaving the engine at zero
	// length but otherwise usable.
	Purge()
}

// Factory constructs a fresh Engine[K,V] for a given capacity. The two
// concrete policies (sieve.New, s3fifo.New) both return this shape, so the
// cache package picks one constructor and then drives the resulting Engine
// without knowing which policy it is — mirroring the teacher's
// policy.Policy factory.
type Factory[K comparable, V any] func(capacity int) Engine[K, V]
