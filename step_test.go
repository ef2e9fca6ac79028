// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plumb_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/plumb"
)

// counter returns a body yielding 0, 1, ..., n-1.
func counter(n int) plumb.Body[int] {
	var i int
	return func(s *plumb.Step) (int, bool) {
		switch s.At() {
		case plumb.Start:
			i = 0
		case 1:
			i++
		}
		if i < n {
			return plumb.Yield(s, 1, i)
		}
		return plumb.Exhaust[int](s)
	}
}

// pingPong yields through two distinct resume points.
func pingPong(s *plumb.Step) (string, bool) {
	switch s.At() {
	case plumb.Start:
		return plumb.Yield(s, 1, "ping")
	case 1:
		return plumb.Yield(s, 2, "pong")
	}
	return plumb.Exhaust[string](s)
}

// =============================================================================
// Generator
// =============================================================================

func TestGeneratorRestarts(t *testing.T) {
	g := plumb.NewGenerator(counter(3))

	for run := range 3 {
		for want := range 3 {
			v, ok := g.Next()
			if !ok || v != want {
				t.Fatalf("run %d: got %d, %v; want %d, true", run, v, ok, want)
			}
		}
		if v, ok := g.Next(); ok || v != 0 {
			t.Fatalf("run %d: exhausted got %d, %v; want 0, false", run, v, ok)
		}
		if g.At() != plumb.Start {
			t.Fatalf("run %d: At after exhaustion: got %d, want Start", run, g.At())
		}
	}
}

func TestGeneratorResumePoints(t *testing.T) {
	g := plumb.NewGenerator(pingPong)

	if g.At() != plumb.Start {
		t.Fatalf("fresh At: got %d", g.At())
	}
	v, _ := g.Next()
	if v != "ping" || g.At() != 1 {
		t.Fatalf("first: got %q at %d", v, g.At())
	}
	v, _ = g.Next()
	if v != "pong" || g.At() != 2 {
		t.Fatalf("second: got %q at %d", v, g.At())
	}
	if _, ok := g.Next(); ok {
		t.Fatalf("third: want exhaustion")
	}
}

func TestGeneratorSeq(t *testing.T) {
	g := plumb.NewGenerator(pingPong)

	for run := range 2 {
		if got := slices.Collect(g.Seq()); !slices.Equal(got, []string{"ping", "pong"}) {
			t.Fatalf("run %d: got %v", run, got)
		}
	}

	// Breaking out leaves the generator suspended
	for v := range g.Seq() {
		if v != "ping" {
			t.Fatalf("first value: got %q", v)
		}
		break
	}
	if v, _ := g.Next(); v != "pong" {
		t.Fatalf("after break: got %q, want pong", v)
	}

	// Reset starts over
	g.Next()
	g.Next()
	g.Reset()
	if v, _ := g.Next(); v != "ping" {
		t.Fatalf("after Reset: got %q, want ping", v)
	}
}

func TestStepWithoutGenerator(t *testing.T) {
	var s plumb.Step
	body := counter(2)

	var got []int
	for v, ok := body(&s); ok; v, ok = body(&s) {
		got = append(got, v)
	}
	if !slices.Equal(got, []int{0, 1}) || s.At() != plumb.Start {
		t.Fatalf("got %v at %d", got, s.At())
	}
}

// =============================================================================
// Misuse
// =============================================================================

func TestGeneratorReentrantPanics(t *testing.T) {
	var g *plumb.Generator[int]
	g = plumb.NewGenerator(func(s *plumb.Step) (int, bool) {
		g.Next()
		return plumb.Yield(s, 1, 1)
	})

	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("reentrant Next: expected panic")
			}
		}()
		g.Next()
	}()

	// The guard stays set until Reset
	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("Next after panic: expected panic")
			}
		}()
		g.Next()
	}()
	g.Reset()
	if g.At() != plumb.Start {
		t.Fatalf("At after Reset: got %d", g.At())
	}
}

func TestYieldAtStartPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"Yield", func() {
			var s plumb.Step
			plumb.Yield(&s, plumb.Start, 0)
		}},
		{"NilBody", func() { plumb.NewGenerator[int](nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestGeneratorNoAllocs(t *testing.T) {
	g := plumb.NewGenerator(counter(4))
	allocs := testing.AllocsPerRun(100, func() {
		for _, ok := g.Next(); ok; _, ok = g.Next() {
		}
	})
	if allocs != 0 {
		t.Fatalf("Next: got %v allocs, want 0", allocs)
	}
}

func BenchmarkGeneratorNext(b *testing.B) {
	g := plumb.NewGenerator(counter(1 << 20))

	b.ReportAllocs()
	for b.Loop() {
		g.Next()
	}
}
