// Package hashindex wraps a pre-sized Go map as the cache's key index.
//
// Go's map[K]V already performs structural hashing for any comparable K
// (and byte-wise hashing for string K), so there is no custom hasher here —
// only the preallocation discipline the teacher's shard constructor used
// for its per-shard map.
package hashindex

// Index is a thin, pre-reserved map wrapper mapping keys to node pointers.
type Index[K comparable, P any] struct {
	m map[K]P
}

// New returns an Index pre-sized for capacity entries.
func New[K comparable, P any](capacity int) *Index[K, P] {
	return &Index[K, P]{m: make(map[K]P, capacity)}
}

// Get returns the node for key and whether it was present.
func (idx *Index[K, P]) Get(key K) (P, bool) {
	p, ok := idx.m[key]
	return p, ok
}

// Put installs node under key, overwriting any previous entry for key.
func (idx *Index[K, P]) Put(key K, node P) {
	idx.m[key] = node
}

// Delete removes key from the index. It is a no-op if key is absent.
func (idx *Index[K, P]) Delete(key K) {
	delete(idx.m, key)
}

// Len returns the number of indexed keys.
func (idx *Index[K, P]) Len() int { return len(idx.m) }

// Reset clears the index back to an empty map of the given capacity.
func (idx *Index[K, P]) Reset(capacity int) {
	idx.m = make(map[K]P, capacity)
}
