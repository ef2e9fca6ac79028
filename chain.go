// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plumb

import (
	"fmt"
	"iter"

	"github.com/npillmayer/schuko/tracing"
)

// Node is a handle to a node of a Chain.
//
// Handles are indices into the chain's arena, starting at 1.
// The zero value Nil refers to no node.
type Node uint32

// Nil is the null node handle.
const Nil Node = 0

// link holds a node's neighbor handles. Nil means no neighbor.
type link struct {
	prev Node
	next Node
}

type chainSlot[T any] struct {
	value T
	link
	live bool
}

// Chain is a fixed-capacity arena of self-relinking doubly-linked nodes.
//
// Each node carries a value of type T and two non-owning neighbor handles.
// Neighbors are arena indices rather than pointers, so nodes never dangle
// and the arena is the single owner of every node. A Chain may hold any
// number of disjoint chains at once; a node is either isolated or part of
// exactly one of them.
//
// Freeing a node unlinks it first, so chains stay consistent however a
// node's lifetime ends.
//
// All storage is allocated by NewChain. New returns ErrWouldBlock when the
// arena is exhausted.
//
// A Chain is not safe for concurrent use.
//
// Example:
//
//	c := plumb.NewChain[string](16)
//	a, _ := c.New("a")
//	b, _ := c.New("b")
//	c.Link(a, b) // a <-> b
//	c.Walk(a, func(n plumb.Node) bool {
//	    fmt.Println(*c.Value(n))
//	    return true
//	})
type Chain[T any] struct {
	slots []chainSlot[T] // slots[0] is unused; index == Node
	free  freeRing
	live  int
}

// NewChain creates a chain arena holding at most capacity nodes.
// Panics if capacity < 1.
func NewChain[T any](capacity int) *Chain[T] {
	return newChain[T](capacity, false)
}

func newChain[T any](capacity int, lifo bool) *Chain[T] {
	if capacity < 1 {
		panic("plumb: capacity must be >= 1")
	}
	if uint64(capacity) >= 1<<32 {
		panic("plumb: capacity exceeds node handle range")
	}
	c := &Chain[T]{
		slots: make([]chainSlot[T], capacity+1),
		free:  newFreeRing(capacity, lifo),
	}
	// Either way, the first New returns node 1.
	for i := range capacity {
		n := Node(i + 1)
		if lifo {
			n = Node(capacity - i)
		}
		_ = c.free.push(n)
	}
	return c
}

// New allocates an isolated node holding v.
// Returns (Nil, ErrWouldBlock) if the arena is exhausted.
func (c *Chain[T]) New(v T) (Node, error) {
	n, err := c.free.pop()
	if err != nil {
		if traces(tracing.LevelInfo) {
			tracer().Infof("chain arena exhausted, capacity %d", c.Cap())
		}
		return Nil, err
	}
	s := &c.slots[n]
	s.value = v
	s.link = link{}
	s.live = true
	c.live++
	return n, nil
}

// Free destroys node n: it is unlinked from its chain and its slot returns
// to the arena. The handle must not be used afterwards.
func (c *Chain[T]) Free(n Node) {
	c.Unlink(n)
	s := &c.slots[n]
	var zero T
	s.value = zero
	s.live = false
	c.live--
	if err := c.free.push(n); err != nil {
		panic("plumb: chain free list overflow")
	}
}

// Link splices next into n's chain, immediately after n.
//
// Link returns false and changes nothing if next appears linked, that is
// if both of its neighbor handles are set (see [Chain.Linked]), or if next
// is n itself. The caller must Unlink next first and retry.
//
// The check does not catch a node linked on one side only, such as the
// head or tail of another chain: such a node is accepted and its old
// neighbors are left pointing at it, corrupting that chain.
func (c *Chain[T]) Link(n, next Node) bool {
	s, x := c.slot(n), c.slot(next)
	if n == next || (x.prev != Nil && x.next != Nil) {
		if traces(tracing.LevelDebug) {
			tracer().Debugf("link %d after %d rejected: node appears linked", next, n)
		}
		return false
	}
	x.prev = n
	x.next = s.next
	if s.next != Nil {
		c.slots[s.next].prev = next
	}
	s.next = next
	return true
}

// Unlink removes n from its chain, joining its neighbors to each other,
// and leaves n isolated. No-op if n is already isolated.
func (c *Chain[T]) Unlink(n Node) {
	s := c.slot(n)
	if s.prev != Nil {
		c.slots[s.prev].next = s.next
	}
	if s.next != Nil {
		c.slots[s.next].prev = s.prev
	}
	s.link = link{}
}

// Copy allocates a node holding a copy of n's value and links it
// immediately after n. Neighbor handles are never copied; n keeps its
// predecessor and its former successor follows the copy.
// Returns (Nil, ErrWouldBlock) if the arena is exhausted.
func (c *Chain[T]) Copy(n Node) (Node, error) {
	m, err := c.New(c.slot(n).value)
	if err != nil {
		return Nil, err
	}
	c.Link(n, m)
	return m, nil
}

// Walk visits root and every node after it, in chain order, until visit
// returns false or the chain ends.
//
// The successor is read before visit runs, so visit may unlink, relink or
// free the node it is given without disturbing the walk. It must not free
// the successor.
func (c *Chain[T]) Walk(root Node, visit func(n Node) bool) {
	for n := root; n != Nil; {
		next := c.slot(n).next
		if !visit(n) {
			return
		}
		n = next
	}
}

// All returns an iterator over root and the nodes after it, with pointers
// to their values. It has the same safety guarantees as Walk.
func (c *Chain[T]) All(root Node) iter.Seq2[Node, *T] {
	return func(yield func(Node, *T) bool) {
		c.Walk(root, func(n Node) bool {
			return yield(n, &c.slots[n].value)
		})
	}
}

// Head returns the first node of n's chain.
func (c *Chain[T]) Head(n Node) Node {
	for p := c.slot(n).prev; p != Nil; p = c.slots[p].prev {
		n = p
	}
	return n
}

// Value returns a pointer to n's value. The pointer is valid until n is freed.
func (c *Chain[T]) Value(n Node) *T {
	return &c.slot(n).value
}

// Prev returns n's predecessor. Reports false if n has none.
func (c *Chain[T]) Prev(n Node) (Node, bool) {
	p := c.slot(n).prev
	return p, p != Nil
}

// Next returns n's successor. Reports false if n has none.
func (c *Chain[T]) Next(n Node) (Node, bool) {
	x := c.slot(n).next
	return x, x != Nil
}

// Linked reports whether n appears linked: both neighbor handles are set.
// A chain head or tail does not appear linked.
func (c *Chain[T]) Linked(n Node) bool {
	s := c.slot(n)
	return s.prev != Nil && s.next != Nil
}

// Isolated reports whether n has no neighbors.
func (c *Chain[T]) Isolated(n Node) bool {
	s := c.slot(n)
	return s.prev == Nil && s.next == Nil
}

// Len returns the number of allocated nodes.
func (c *Chain[T]) Len() int { return c.live }

// Cap returns the arena capacity.
func (c *Chain[T]) Cap() int { return len(c.slots) - 1 }

// Verify checks that every allocated node is its successor's predecessor
// and its predecessor's successor.
// Returns an error wrapping ErrBrokenChain at the first violation.
func (c *Chain[T]) Verify() error {
	for i := 1; i < len(c.slots); i++ {
		s := &c.slots[i]
		if !s.live {
			continue
		}
		n := Node(i)
		if s.next != Nil && (!c.slots[s.next].live || c.slots[s.next].prev != n) {
			return fmt.Errorf("%w: node %d -> %d", ErrBrokenChain, n, s.next)
		}
		if s.prev != Nil && (!c.slots[s.prev].live || c.slots[s.prev].next != n) {
			return fmt.Errorf("%w: node %d <- %d", ErrBrokenChain, n, s.prev)
		}
	}
	return nil
}

// slot returns the live slot for n. Panics on Nil, out-of-range or freed handles.
func (c *Chain[T]) slot(n Node) *chainSlot[T] {
	if n == Nil || int(n) >= len(c.slots) || !c.slots[n].live {
		panic("plumb: invalid node handle")
	}
	return &c.slots[n]
}
