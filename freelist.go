// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plumb

// freeRing holds the unused node indices of a chain arena.
//
// It is a Lamport ring buffer without atomics: an arena is owned by one
// goroutine at a time. In FIFO mode (default) a freed index goes to the
// back, so a stale handle is not handed out again until every other free
// slot has been used. In LIFO mode the most recently freed index is reused
// first, which keeps the working set small.
//
// Memory: O(capacity), rounded up to a power of 2
type freeRing struct {
	head   uint64 // next index to hand out (FIFO)
	tail   uint64 // next free cell
	buffer []Node
	mask   uint64
	lifo   bool
}

func newFreeRing(capacity int, lifo bool) freeRing {
	n := uint64(roundToPow2(capacity))
	return freeRing{
		buffer: make([]Node, n),
		mask:   n - 1,
		lifo:   lifo,
	}
}

// push returns an index to the ring.
// Returns ErrWouldBlock if the ring is full.
func (r *freeRing) push(n Node) error {
	if r.tail-r.head > r.mask {
		return ErrWouldBlock
	}
	r.buffer[r.tail&r.mask] = n
	r.tail++
	return nil
}

// pop takes an index from the ring.
// Returns (Nil, ErrWouldBlock) if the ring is empty.
func (r *freeRing) pop() (Node, error) {
	if r.head >= r.tail {
		return Nil, ErrWouldBlock
	}
	if r.lifo {
		r.tail--
		return r.buffer[r.tail&r.mask], nil
	}
	n := r.buffer[r.head&r.mask]
	r.head++
	return n, nil
}
