// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package plumb provides allocation-free building blocks for low-level
// plumbing code.
//
// The package offers four independent mechanisms:
//
//   - Callable: a fixed-capacity, type-erased callable slot
//   - Chain: an arena of self-relinking doubly-linked nodes
//   - Insert, Find, Erase, ...: maintenance of sorted sequences by binary search
//   - Step, Generator: restartable resumable computations without goroutines
//
// They share one discipline: storage is fixed when a value is constructed,
// dispatch goes through function pointers rather than boxed interfaces,
// and failures are reported as booleans or control-flow errors, never as
// panics. Panics are reserved for programming errors such as a payload
// that does not fit its callable or a stale node handle.
//
// # Quick Start
//
// Bounded callable:
//
//	type bump struct{ by int }
//	func (b *bump) Invoke(n *int) { *n += b.by }
//
//	var cb plumb.Callable[*int, plumb.Cap16]
//	plumb.Bind(&cb, bump{by: 2})
//	defer cb.Reset()
//	cb.Invoke(&total)
//
// Chain:
//
//	c := plumb.NewChain[Timer](1024)
//	a, _ := c.New(t1)
//	b, _ := c.New(t2)
//	c.Link(a, b)
//	c.Walk(a, func(n plumb.Node) bool {
//	    if c.Value(n).Expired() {
//	        c.Free(n) // safe during Walk
//	    }
//	    return true
//	})
//
// Sorted sequence:
//
//	s := plumb.NewBounded[int](64)
//	plumb.Insert(s, 7)
//	plumb.InsertMulti(s, 5)
//	if i, ok := plumb.Find(s, 7); ok {
//	    _ = s.At(i)
//	}
//
// Resumable step:
//
//	g := plumb.NewGenerator(func(s *plumb.Step) (string, bool) {
//	    switch s.At() {
//	    case plumb.Start:
//	        return plumb.Yield(s, 1, "ping")
//	    case 1:
//	        return plumb.Yield(s, 2, "pong")
//	    }
//	    return plumb.Exhaust[string](s)
//	})
//	for v := range g.Seq() {
//	    fmt.Println(v)
//	}
//
// # Ownership
//
// A Chain owns all of its nodes; neighbors refer to each other by index
// and never own one another. A Callable owns its payload exclusively and
// destroys it exactly once, on Reset, on rebind or when overwritten by
// CopyFrom.
//
// # Thread Safety
//
// Nothing in this package synchronizes. Shared Callable, Chain or Sequence
// values must be serialized by the caller, for example with
// [code.hybscloud.com/plumb/lock.Guarded]. A Generator must not be invoked
// concurrently or from within its own body.
//
// # Error Handling
//
// Recoverable conditions use [ErrWouldBlock] (an exhausted arena or a full
// bounded sequence); check with [IsWouldBlock]. Lookups report absence
// with a boolean. Chain.Link reports rejection with false and performs no
// mutation.
//
// # Tracing
//
// Cold paths (rejected links, exhausted arenas, payloads that do not fit)
// trace to the schuko tracer selected by the key "plumb".
//
// # Dependencies
//
// This package uses:
//   - [code.hybscloud.com/iox] for semantic errors (ErrWouldBlock)
//   - [github.com/npillmayer/schuko/tracing] for tracing
package plumb
