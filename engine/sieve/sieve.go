// Package sieve implements the SIEVE eviction policy: one FIFO-ordered
// list of resident entries plus a scanning "hand" cursor and a per-entry
// visited bit, in place of LRU's move-to-front-on-every-hit discipline.
package sieve

import (
	"sync/atomic"

	"github.com/IvanBrykalov/sievecache/engine"
	"github.com/IvanBrykalov/sievecache/internal/dlist"
	"github.com/IvanBrykalov/sievecache/internal/hashindex"
)

// entry is the intrusive list node held by the resident list. visited is
// an atomic.Bool rather than a plain bool because the shared concurrency
// wrapper only takes a read lock around Get, which is the one path that
// flips this bit.
type entry[K comparable, V any] struct {
	key K
	val V

	visited atomic.Bool

	prev *entry[K, V]
	next *entry[K, V]
}

func (e *entry[K, V]) Next() *entry[K, V]     { return e.next }
func (e *entry[K, V]) SetNext(p *entry[K, V]) { e.next = p }
func (e *entry[K, V]) Prev() *entry[K, V]     { return e.prev }
func (e *entry[K, V]) SetPrev(p *entry[K, V]) { e.prev = p }

// Engine is the SIEVE eviction policy bound to a fixed capacity.
type Engine[K comparable, V any] struct {
	capacity int
	list     dlist.List[entry[K, V], *entry[K, V]]
	hand     *entry[K, V] // nil means "start scan from the tail"
	idx      *hashindex.Index[K, *entry[K, V]]
}

// New returns an engine.Factory that constructs SIEVE engines, matching
// the shape the cache package expects from every policy.
func New[K comparable, V any]() engine.Factory[K, V] {
	return func(capacity int) engine.Engine[K, V] {
		return &Engine[K, V]{
			capacity: capacity,
			idx:      hashindex.New[K, *entry[K, V]](capacity),
		}
	}
}

func (e *Engine[K, V]) Len() int { return e.idx.Len() }

func (e *Engine[K, V]) Contains(key K) bool {
	_, ok := e.idx.Get(key)
	return ok
}

func (e *Engine[K, V]) Get(key K) (V, bool) {
	n, ok := e.idx.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	n.visited.Store(true)
	return n.val, true
}

// Set inserts or replaces key→val. An existing entry's list position is
// left untouched (overwrite-in-place), but its visited bit resets to
// false: an overwrite is not a cache hit, so it earns no protection from
// the next scan. A new entry is admitted at the head with visited=false,
// evicting via the hand scan first if the cache is already full.
func (e *Engine[K, V]) Set(key K, val V) bool {
	if n, ok := e.idx.Get(key); ok {
		n.val = val
		n.visited.Store(false)
		return false
	}

	if e.idx.Len() >= e.capacity {
		e.evict()
	}

	n := &entry[K, V]{key: key, val: val}
	e.list.PushFront(n)
	e.idx.Put(key, n)
	return true
}

func (e *Engine[K, V]) Remove(key K) (V, bool) {
	n, ok := e.idx.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	if e.hand == n {
		e.hand = n.prev
	}
	e.list.Remove(n)
	e.idx.Delete(key)
	return n.val, true
}

func (e *Engine[K, V]) Purge() {
	e.list = dlist.List[entry[K, V], *entry[K, V]]{}
	e.hand = nil
	e.idx.Reset(e.capacity)
}

// evict runs the SIEVE scan: starting at the hand (or the tail, if the
// hand is unset), walk backward clearing visited bits until an unvisited
// entry is found, then remove it. The hand is recorded as the victim's
// predecessor before the victim is unlinked, so the next scan resumes
// exactly where this one left off.
func (e *Engine[K, V]) evict() {
	victim := e.hand
	if victim == nil {
		victim = e.list.Back()
	}
	if victim == nil {
		return // empty list, nothing to evict
	}

	for victim.visited.Load() {
		victim.visited.Store(false)
		victim = victim.prev
		if victim == nil {
			victim = e.list.Back()
		}
	}

	e.hand = victim.prev
	e.list.Remove(victim)
	e.idx.Delete(victim.key)
}
