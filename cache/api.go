package cache

import "context"

// Cache is a fixed-capacity, in-memory key/value store backed by either
// the SIEVE or the S3-FIFO eviction policy.
//
// Depending on Options.Concurrency, a Cache is either safe for concurrent
// use by multiple goroutines (Shared, the default) or unsynchronized and
// intended for single-goroutine use (Serial, no locking overhead at all).
type Cache[K comparable, V any] interface {
	// Len returns the number of resident entries.
	Len() int

	// Capacity returns the fixed entry limit passed to New.
	Capacity() int

	// IsEmpty reports whether Len() == 0.
	IsEmpty() bool

	// Contains reports whether key is resident without affecting any
	// eviction-policy state (no promotion, no frequency bump).
	Contains(key K) bool

	// Get returns the value for key and whether it was present. A hit
	// updates the active policy's recency/frequency signal for key.
	Get(key K) (V, bool)

	// Set inserts or replaces key→val. It returns true iff key was
	// absent before the call.
	Set(key K, val V) bool

	// FetchRemove deletes key if present, returning its value and true.
	FetchRemove(key K) (V, bool)

	// Purge deletes every resident entry, leaving the cache empty but
	// usable.
	Purge()

	// Close releases the cache's storage. It is idempotent and safe to
	// call more than once. There is no explicit free(): dropping every
	// reference to the returned Cache is enough for the garbage
	// collector to reclaim it; Close exists to make teardown explicit
	// and symmetrical with New, and to reject further operations.
	Close() error

	// GetOrLoad returns the value for key, loading it via
	// Options.Loader on miss. Concurrent loads for the same key are
	// coalesced. Returns ErrNoLoader if no Loader was configured.
	GetOrLoad(ctx context.Context, key K) (V, error)
}

// ErrorKind classifies an Error returned by New.
type ErrorKind int

const (
	// ErrBadCapacity means Options.Capacity was <= 0.
	ErrBadCapacity ErrorKind = iota
	// ErrOutOfMemory is modeled for parity with other implementations of
	// this algorithm; Go's allocator has no recoverable out-of-memory
	// path (make/new panics the process on exhaustion), so this kind is
	// not produced by this package on any normal code path.
	ErrOutOfMemory
)

func (k ErrorKind) String() string {
	switch k {
	case ErrBadCapacity:
		return "bad capacity"
	case ErrOutOfMemory:
		return "out of memory"
	default:
		return "unknown error"
	}
}

// Error is returned by New when construction fails.
type Error struct {
	Kind ErrorKind
	Op   string
}

func (e *Error) Error() string { return "cache: " + e.Op + ": " + e.Kind.String() }

// errString is a minimal error value, used for sentinels that don't fit
// the Kind/Op shape of Error (GetOrLoad's ErrNoLoader is not a
// construction failure).
type errString string

func (e errString) Error() string { return string(e) }

// ErrNoLoader is returned by GetOrLoad when no Loader was configured.
const ErrNoLoader = errString("cache: GetOrLoad: no Loader configured")
