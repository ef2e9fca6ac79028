// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plumb

// Sequence is the combined read-write interface for an ordered,
// randomly-accessible sequence.
//
// The sorted-sequence operations ([Insert], [Find], [Erase] and their
// Func variants) work on any Sequence. They only keep a sequence sorted
// when every mutation goes through them; writing through Set or InsertAt
// directly can break the order without notice.
//
// Two implementations are provided:
//
//	var s plumb.Slice[int]            // growable, backed by a Go slice
//	b := plumb.NewBounded[int](64)    // fixed capacity, no allocation after construction
//
// Example:
//
//	var s plumb.Slice[int]
//	plumb.Insert(&s, 7)
//	plumb.Insert(&s, 3)
//	i, ok := plumb.Find(&s, 7) // 1, true
type Sequence[T any] interface {
	Reader[T]
	Writer[T]
}

// Reader is the interface for positional reads.
type Reader[T any] interface {
	// Len returns the number of elements.
	Len() int

	// At returns the element at position i.
	// Panics if i is out of range.
	At(i int) T
}

// Writer is the interface for positional mutation.
type Writer[T any] interface {
	// Set overwrites the element at position i.
	// Panics if i is out of range.
	Set(i int, v T)

	// InsertAt inserts v before position i, shifting later elements up.
	// i may equal Len to append.
	// Returns ErrWouldBlock if the sequence has no room left.
	InsertAt(i int, v T) error

	// RemoveAt removes the element at position i, shifting later elements down.
	// Panics if i is out of range.
	RemoveAt(i int)
}
