// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plumb

import "slices"

// Slice is a growable Sequence backed by a Go slice.
//
// The zero value is an empty sequence ready to use. InsertAt never fails;
// it may grow the backing array.
type Slice[T any] []T

// Len returns the number of elements.
func (s *Slice[T]) Len() int { return len(*s) }

// At returns the element at position i.
func (s *Slice[T]) At(i int) T { return (*s)[i] }

// Set overwrites the element at position i.
func (s *Slice[T]) Set(i int, v T) { (*s)[i] = v }

// InsertAt inserts v before position i. Always returns nil.
func (s *Slice[T]) InsertAt(i int, v T) error {
	*s = slices.Insert(*s, i, v)
	return nil
}

// RemoveAt removes the element at position i.
func (s *Slice[T]) RemoveAt(i int) {
	*s = slices.Delete(*s, i, i+1)
}

// Bounded is a fixed-capacity Sequence.
//
// All storage is allocated by NewBounded; no operation allocates afterwards.
// InsertAt returns ErrWouldBlock once Len reaches Cap.
//
// Memory: O(capacity)
type Bounded[T any] struct {
	buffer []T
	n      int
}

// NewBounded creates a bounded sequence holding at most capacity elements.
// Panics if capacity < 1.
func NewBounded[T any](capacity int) *Bounded[T] {
	if capacity < 1 {
		panic("plumb: capacity must be >= 1")
	}
	return &Bounded[T]{buffer: make([]T, capacity)}
}

// Len returns the number of elements.
func (b *Bounded[T]) Len() int { return b.n }

// Cap returns the sequence capacity.
func (b *Bounded[T]) Cap() int { return len(b.buffer) }

// At returns the element at position i.
func (b *Bounded[T]) At(i int) T {
	if uint(i) >= uint(b.n) {
		panic("plumb: index out of range")
	}
	return b.buffer[i]
}

// Set overwrites the element at position i.
func (b *Bounded[T]) Set(i int, v T) {
	if uint(i) >= uint(b.n) {
		panic("plumb: index out of range")
	}
	b.buffer[i] = v
}

// InsertAt inserts v before position i.
// Returns ErrWouldBlock if the sequence is full.
func (b *Bounded[T]) InsertAt(i int, v T) error {
	if uint(i) > uint(b.n) {
		panic("plumb: index out of range")
	}
	if b.n == len(b.buffer) {
		return ErrWouldBlock
	}
	copy(b.buffer[i+1:b.n+1], b.buffer[i:b.n])
	b.buffer[i] = v
	b.n++
	return nil
}

// RemoveAt removes the element at position i.
// The vacated slot is cleared to allow garbage collection of referenced objects.
func (b *Bounded[T]) RemoveAt(i int) {
	if uint(i) >= uint(b.n) {
		panic("plumb: index out of range")
	}
	copy(b.buffer[i:b.n-1], b.buffer[i+1:b.n])
	b.n--
	var zero T
	b.buffer[b.n] = zero
}

// Values returns the live elements. The result aliases internal storage
// and is valid until the next mutation.
func (b *Bounded[T]) Values() []T {
	return b.buffer[:b.n:b.n]
}

// Reset removes all elements without releasing storage.
func (b *Bounded[T]) Reset() {
	clear(b.buffer[:b.n])
	b.n = 0
}
