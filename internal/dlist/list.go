// Package dlist implements a generic intrusive doubly linked list.
//
// Unlike container/list, nodes are not wrapped in a separate Element: the
// link fields live directly on the caller's node type, so a List never
// allocates and a node can be unlinked in O(1) given only a pointer to it.
package dlist

// Linker is satisfied by a pointer to a node type that embeds its own
// prev/next links. Constraining the type parameter to "*N" (rather than
// leaving it as an unconstrained P) fixes P to exactly *N, which is always
// comparable to nil — that is what lets List compare nodes to nil instead
// of requiring a sentinel or reflection.
type Linker[N any] interface {
	*N
	Next() *N
	SetNext(*N)
	Prev() *N
	SetPrev(*N)
}

// List is an intrusive doubly linked list over node type N, accessed
// through pointer type P (always *N). Front is the list's head,
// Back is its tail.
type List[N any, P Linker[N]] struct {
	front P
	back  P
	size  int
}

// Len returns the number of linked nodes.
func (l *List[N, P]) Len() int { return l.size }

// Front returns the head of the list, or nil if empty.
func (l *List[N, P]) Front() P { return l.front }

// Back returns the tail of the list, or nil if empty.
func (l *List[N, P]) Back() P { return l.back }

// PushFront links n at the head.
func (l *List[N, P]) PushFront(n P) {
	n.SetPrev(nil)
	n.SetNext(l.front)
	if l.front != nil {
		l.front.SetPrev(n)
	}
	l.front = n
	if l.back == nil {
		l.back = n
	}
	l.size++
}

// PushBack links n at the tail.
func (l *List[N, P]) PushBack(n P) {
	n.SetNext(nil)
	n.SetPrev(l.back)
	if l.back != nil {
		l.back.SetNext(n)
	}
	l.back = n
	if l.front == nil {
		l.front = n
	}
	l.size++
}

// Remove unlinks n. n must currently belong to l; behavior is undefined
// otherwise (same contract as container/list.List.Remove).
func (l *List[N, P]) Remove(n P) {
	if p := n.Prev(); p != nil {
		P(p).SetNext(n.Next())
	} else {
		l.front = n.Next()
	}
	if nx := n.Next(); nx != nil {
		P(nx).SetPrev(n.Prev())
	} else {
		l.back = n.Prev()
	}
	n.SetPrev(nil)
	n.SetNext(nil)
	l.size--
}

// MoveToFront relinks n at the head. n must already belong to l.
func (l *List[N, P]) MoveToFront(n P) {
	if l.front == n {
		return
	}
	l.Remove(n)
	l.PushFront(n)
}
