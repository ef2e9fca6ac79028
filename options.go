// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plumb

// Options configures arena and sequence creation.
type Options struct {
	// Recycling policy for freed chain nodes
	lifo bool // Reuse the most recently freed node first

	// Capacity (exact, not rounded)
	capacity int
}

// Builder creates fixed-capacity containers with fluent configuration.
//
// Example:
//
//	// Chain arena with 256 nodes, default FIFO recycling
//	c := plumb.BuildChain[Task](plumb.New(256))
//
//	// Chain arena that reuses hot slots first
//	c := plumb.BuildChain[Task](plumb.New(256).LIFO())
//
//	// Bounded sorted sequence
//	s := plumb.BuildBounded[uint64](plumb.New(1024))
type Builder struct {
	opts Options
}

// New creates a builder with the given capacity.
//
// Panics if capacity < 1.
func New(capacity int) *Builder {
	if capacity < 1 {
		panic("plumb: capacity must be >= 1")
	}
	return &Builder{opts: Options{capacity: capacity}}
}

// LIFO makes chain arenas reuse the most recently freed node first.
//
// Trade-off: better cache locality, but a stale handle to a freed node is
// more likely to alias a newly allocated one. The default FIFO policy
// delays reuse for as long as possible.
//
// Sequences ignore LIFO().
func (b *Builder) LIFO() *Builder {
	b.opts.lifo = true
	return b
}

// Capacity returns the configured capacity.
func (b *Builder) Capacity() int {
	return b.opts.capacity
}

// BuildChain creates a chain arena.
func BuildChain[T any](b *Builder) *Chain[T] {
	return newChain[T](b.opts.capacity, b.opts.lifo)
}

// BuildBounded creates a bounded sequence.
func BuildBounded[T any](b *Builder) *Bounded[T] {
	return NewBounded[T](b.opts.capacity)
}

// roundToPow2 rounds n up to the next power of 2.
func roundToPow2(n int) int {
	if n < 2 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}
