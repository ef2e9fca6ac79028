// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lock provides the synchronization primitives used to serialize
// shared plumb values.
//
// Nothing in package plumb synchronizes internally. Code that shares a
// Chain, Callable or Sequence between goroutines wraps it:
//
//	g := lock.NewGuarded(plumb.NewChain[Job](256), new(lock.SpinLock))
//	g.Do(func(c **plumb.Chain[Job]) {
//	    n, _ := (*c).New(job)
//	    (*c).Link(head, n)
//	})
//
// The atomic aliases come from [code.hybscloud.com/atomix], which provides
// explicit memory-ordering variants (LoadAcquire, StoreRelease, ...).
package lock

import (
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Aliases over platform primitives.
type (
	Mutex     = sync.Mutex
	RWMutex   = sync.RWMutex
	Locker    = sync.Locker
	WaitGroup = sync.WaitGroup

	Int  = atomix.Int64
	Uint = atomix.Uint64
	Flag = atomix.Bool
)

// SpinLock is a mutual exclusion lock that spins instead of parking.
//
// Use it for critical sections of a few dozen instructions, such as a
// Link or Unlink on a shared chain. The zero value is unlocked.
// A SpinLock must not be copied after first use.
type SpinLock struct {
	_     noCopy
	state atomix.Uint64
}

// Lock acquires l, spinning while it is held elsewhere.
func (l *SpinLock) Lock() {
	sw := spin.Wait{}
	for !l.TryLock() {
		sw.Once()
	}
}

// TryLock acquires l if it is free and reports whether it did.
func (l *SpinLock) TryLock() bool {
	return l.state.LoadRelaxed() == 0 && l.state.CompareAndSwapAcqRel(0, 1)
}

// Unlock releases l. Panics if l is not locked.
func (l *SpinLock) Unlock() {
	if l.state.LoadRelaxed() == 0 {
		panic("lock: unlock of unlocked SpinLock")
	}
	l.state.StoreRelease(0)
}

var _ Locker = (*SpinLock)(nil)

// noCopy may be embedded into structs which must not be copied
// after the first use. See go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Guarded holds a value that is only reachable while its lock is held.
type Guarded[T any] struct {
	l Locker
	v T
}

// NewGuarded wraps v. A nil l selects a Mutex.
func NewGuarded[T any](v T, l Locker) *Guarded[T] {
	if l == nil {
		l = new(Mutex)
	}
	return &Guarded[T]{l: l, v: v}
}

// Do runs fn with exclusive access to the value.
// fn must not retain the pointer after it returns.
func (g *Guarded[T]) Do(fn func(v *T)) {
	g.l.Lock()
	defer g.l.Unlock()
	fn(&g.v)
}

// With runs fn with exclusive access to g's value and returns its result.
func With[T, R any](g *Guarded[T], fn func(v *T) R) R {
	g.l.Lock()
	defer g.l.Unlock()
	return fn(&g.v)
}

// Thread is a goroutine that can be joined.
type Thread struct {
	done chan struct{}
}

// Spawn starts fn on a new goroutine.
func Spawn(fn func()) *Thread {
	t := &Thread{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		fn()
	}()
	return t
}

// Join blocks until the goroutine has returned.
func (t *Thread) Join() {
	<-t.done
}
