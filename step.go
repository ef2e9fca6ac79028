// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plumb

import "iter"

// Resumable steps.
//
// A resumable step is a computation that produces values one call at a
// time without a goroutine or stack of its own. It remembers, in a single
// Point, where its body last yielded; the next call dispatches on that
// point and continues from there. When the body finishes, the point goes
// back to Start and the following call runs the body from the beginning
// again, reproducing the same values (a cyclic generator).
//
// A body is a switch on s.At() with one case per resume point. State that
// must survive between calls lives outside the body's stack frame; loops
// are written by falling into a shared tail:
//
//	var i int
//	body := func(s *plumb.Step) (int, bool) {
//	    switch s.At() {
//	    case plumb.Start:
//	        i = 0
//	    case 1:
//	        i++
//	    }
//	    if i < 3 {
//	        return plumb.Yield(s, 1, i)
//	    }
//	    return plumb.Exhaust[int](s)
//	}
//
// Every yield must be reachable by dispatching from the top of the body.
// Resuming into the middle of a construct the switch cannot jump into is
// not supported.

// Point marks where a resumable body continues on its next invocation.
type Point uint32

// Start is the resume point of a fresh or exhausted step.
const Start Point = 0

// Step is the resumption state of a resumable computation.
//
// The zero value is at Start. A Step must not be invoked concurrently or
// reentrantly.
type Step struct {
	at      Point
	running bool
}

// At returns the point the body resumes at.
func (s *Step) At() Point { return s.at }

// Yield records at as the resume point and returns (v, true).
// Bodies return its result directly. Panics if at is Start.
func Yield[T any](s *Step, at Point, v T) (T, bool) {
	if at == Start {
		panic("plumb: cannot yield at Start")
	}
	s.at = at
	return v, true
}

// Exhaust resets the resume point to Start and returns (zero, false).
// Bodies return its result directly when they run to completion.
func Exhaust[T any](s *Step) (T, bool) {
	s.at = Start
	var zero T
	return zero, false
}

// Body is one invocation of a resumable computation: it dispatches on
// s.At(), runs to the next yield and returns the produced value, or
// returns false when it runs to completion.
type Body[T any] func(s *Step) (T, bool)

// Generator drives a Body one value per call.
//
// Example:
//
//	g := plumb.NewGenerator(body)
//	for v, ok := g.Next(); ok; v, ok = g.Next() {
//	    fmt.Println(v) // 0 1 2
//	}
//	v, ok := g.Next() // 0, true: restarted
type Generator[T any] struct {
	step Step
	body Body[T]
}

// NewGenerator creates a generator at Start.
// Panics if body is nil.
func NewGenerator[T any](body Body[T]) *Generator[T] {
	if body == nil {
		panic("plumb: nil body")
	}
	return &Generator[T]{body: body}
}

// Next runs the body from its resume point.
//
// Returns (v, true) if the body yielded v. Returns (zero, false) if it
// ran to completion; the generator is then back at Start and the next
// call restarts the body.
//
// Panics if called from within the body.
func (g *Generator[T]) Next() (T, bool) {
	if g.step.running {
		panic("plumb: resumable step invoked reentrantly")
	}
	g.step.running = true
	v, ok := g.body(&g.step)
	g.step.running = false
	if !ok {
		g.step.at = Start
	}
	return v, ok
}

// At returns the point the body resumes at.
func (g *Generator[T]) At() Point { return g.step.at }

// Reset puts the generator back at Start.
// It also clears the reentrancy guard after a body panicked.
func (g *Generator[T]) Reset() {
	g.step = Step{}
}

// Seq returns an iterator over the values of one run, from the current
// resume point to exhaustion.
//
// Breaking out of the range loop leaves the generator suspended; a later
// Next or Seq continues where the loop stopped. Call Reset to start over.
func (g *Generator[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := g.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
