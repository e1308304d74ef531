package dlist

import "testing"

type testNode struct {
	v    int
	prev *testNode
	next *testNode
}

func (n *testNode) Next() *testNode     { return n.next }
func (n *testNode) SetNext(p *testNode) { n.next = p }
func (n *testNode) Prev() *testNode     { return n.prev }
func (n *testNode) SetPrev(p *testNode) { n.prev = p }

func values(l *List[testNode, *testNode]) []int {
	var out []int
	for n := l.Front(); n != nil; n = n.Next() {
		out = append(out, n.v)
	}
	return out
}

func eq(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPushFrontAndBack(t *testing.T) {
	var l List[testNode, *testNode]
	a, b, c := &testNode{v: 1}, &testNode{v: 2}, &testNode{v: 3}

	l.PushBack(a)
	l.PushBack(b)
	l.PushFront(c)

	if got := values(&l); !eq(got, []int{3, 1, 2}) {
		t.Fatalf("got %v", got)
	}
	if l.Len() != 3 {
		t.Fatalf("len = %d", l.Len())
	}
	if l.Front() != c || l.Back() != b {
		t.Fatalf("front/back mismatch")
	}
}

func TestRemoveMiddleHeadTail(t *testing.T) {
	var l List[testNode, *testNode]
	a, b, c := &testNode{v: 1}, &testNode{v: 2}, &testNode{v: 3}
	l.PushBack(a)
	l.PushBack(b)
	l.PushBack(c)

	l.Remove(b)
	if got := values(&l); !eq(got, []int{1, 3}) {
		t.Fatalf("after middle remove: %v", got)
	}

	l.Remove(a)
	if got := values(&l); !eq(got, []int{3}) {
		t.Fatalf("after head remove: %v", got)
	}
	if l.Front() != c || l.Back() != c {
		t.Fatalf("front/back should both be c")
	}

	l.Remove(c)
	if l.Len() != 0 || l.Front() != nil || l.Back() != nil {
		t.Fatalf("list should be empty")
	}
}

func TestMoveToFront(t *testing.T) {
	var l List[testNode, *testNode]
	a, b, c := &testNode{v: 1}, &testNode{v: 2}, &testNode{v: 3}
	l.PushBack(a)
	l.PushBack(b)
	l.PushBack(c)

	l.MoveToFront(b)
	if got := values(&l); !eq(got, []int{2, 1, 3}) {
		t.Fatalf("got %v", got)
	}
	if l.Back() != c {
		t.Fatalf("back should remain c")
	}

	l.MoveToFront(l.Front()) // already front: no-op
	if got := values(&l); !eq(got, []int{2, 1, 3}) {
		t.Fatalf("no-op move changed list: %v", got)
	}
}

func TestUnlinkedNodeHasNilLinks(t *testing.T) {
	var l List[testNode, *testNode]
	a := &testNode{v: 1}
	l.PushBack(a)
	l.Remove(a)
	if a.Next() != nil || a.Prev() != nil {
		t.Fatalf("removed node must have nil links")
	}
}
