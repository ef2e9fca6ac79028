// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plumb

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"
)

// Capacity is the set of fixed payload buffers a Callable can carry.
type Capacity interface {
	~[16]byte | ~[32]byte | ~[64]byte | ~[128]byte
}

// Capacity classes.
type (
	Cap16  [16]byte
	Cap32  [32]byte
	Cap64  [64]byte
	Cap128 [128]byte
)

// Invoker is implemented by callable payloads.
//
// Invoke is called through a pointer into the slot's buffer, so a
// pointer-receiver Invoke may update payload state in place.
type Invoker[A any] interface {
	Invoke(arg A)
}

// Destroyer is an optional payload hook run when a Callable releases
// its payload (Reset, rebind, or CopyFrom over a bound slot).
type Destroyer interface {
	Destroy()
}

// bufferAlign is the alignment of Callable.buf.
const bufferAlign = unsafe.Alignof(uint64(0))

// Callable is a fixed-capacity, type-erased callable slot.
//
// A Callable holds at most one payload of a concrete type unknown to the
// slot, stored inline in a buffer of type C. Operations dispatch through an
// operation table recorded at Bind time, a zero-size value whose methods
// copy, destroy or invoke the payload. The payload itself is never boxed,
// and Bind, Invoke, CopyFrom and Reset do not allocate.
//
// Payloads must be plain data: no pointers, slices, strings, maps,
// interfaces, channels or funcs, because the buffer is not scanned by the
// garbage collector. State that lives elsewhere is reached through the
// argument (A may be a pointer type) or through indices into caller-owned
// storage.
//
// The zero value is an empty slot. Invoking an empty slot is a no-op.
//
// Go has no destructors: callers release a payload explicitly, typically
//
//	var s plumb.Callable[*Event, plumb.Cap32]
//	plumb.Bind(&s, counter{limit: 8})
//	defer s.Reset()
//
// A Callable is not safe for concurrent use.
type Callable[A any, C Capacity] struct {
	_   [0]uint64
	buf C
	ops callableOps[A] // nil when empty
}

// callableOps is the operation table of a bound payload type.
type callableOps[A any] interface {
	copyInto(dst, src unsafe.Pointer)
	destroy(p unsafe.Pointer)
	invoke(p unsafe.Pointer, arg A)
}

// payloadOps implements callableOps for payload type P.
// It has no fields, so storing it in an interface does not allocate.
type payloadOps[A, P any, PP interface {
	*P
	Invoker[A]
}] struct{}

func (payloadOps[A, P, PP]) copyInto(dst, src unsafe.Pointer) {
	*(*P)(dst) = *(*P)(src)
}

func (payloadOps[A, P, PP]) destroy(p unsafe.Pointer) {
	if d, ok := any((*P)(p)).(Destroyer); ok {
		d.Destroy()
	}
	var zero P
	*(*P)(p) = zero
}

func (payloadOps[A, P, PP]) invoke(p unsafe.Pointer, arg A) {
	PP((*P)(p)).Invoke(arg)
}

// Bind stores payload in s, replacing any previous payload.
//
// The previous payload is destroyed first. Bind panics if P does not fit
// the capacity class C (see [Fits]); use [MustFit] in a package-level
// declaration to reject such payloads at program start-up.
//
// Example:
//
//	type tally struct{ n int }
//	func (t *tally) Invoke(d *int) { t.n++; *d += t.n }
//
//	var s plumb.Callable[*int, plumb.Cap16]
//	plumb.Bind(&s, tally{})
func Bind[A any, C Capacity, P any, PP interface {
	*P
	Invoker[A]
}](s *Callable[A, C], payload P) {
	if err := Fits[P, C](); err != nil {
		tracer().Errorf("bind %T: %v", payload, err)
		panic(err)
	}
	s.Reset()
	*(*P)(unsafe.Pointer(&s.buf)) = payload
	s.ops = payloadOps[A, P, PP]{}
}

// Invoke calls the bound payload with arg. No-op if s is empty.
func (s *Callable[A, C]) Invoke(arg A) {
	if s.ops == nil {
		return
	}
	s.ops.invoke(unsafe.Pointer(&s.buf), arg)
}

// Bound reports whether s holds a payload.
func (s *Callable[A, C]) Bound() bool {
	return s.ops != nil
}

// Reset destroys the payload and leaves s empty. No-op if s is empty.
func (s *Callable[A, C]) Reset() {
	if s.ops == nil {
		return
	}
	s.ops.destroy(unsafe.Pointer(&s.buf))
	s.ops = nil
}

// CopyFrom makes s a copy of src.
//
// The payload of s, if any, is destroyed first. If src is bound, its
// recorded copy operation constructs a copy of the payload in s and the
// operation table is shared; if src is empty, s becomes empty.
func (s *Callable[A, C]) CopyFrom(src *Callable[A, C]) {
	if s == src {
		return
	}
	s.Reset()
	if src.ops == nil {
		return
	}
	src.ops.copyInto(unsafe.Pointer(&s.buf), unsafe.Pointer(&src.buf))
	s.ops = src.ops
}

// Clone returns an independent copy of s.
func (s *Callable[A, C]) Clone() Callable[A, C] {
	var c Callable[A, C]
	c.CopyFrom(s)
	return c
}

// Equal reports whether s and o are both empty.
//
// Equality is by boundness only: a bound slot is unequal to every slot,
// itself included. Payloads are never compared.
func (s *Callable[A, C]) Equal(o *Callable[A, C]) bool {
	return s.ops == nil && o.ops == nil
}

// Fits reports whether payload type P can be bound to a Callable with
// capacity class C. It returns ErrPayloadTooLarge, ErrPayloadAlignment or
// ErrPayloadPointers (possibly wrapped) when it cannot.
func Fits[P any, C Capacity]() error {
	var (
		p P
		c C
	)
	if unsafe.Sizeof(p) > unsafe.Sizeof(c) {
		return fmt.Errorf("%w: %d > %d bytes", ErrPayloadTooLarge, unsafe.Sizeof(p), unsafe.Sizeof(c))
	}
	if unsafe.Alignof(p) > bufferAlign {
		return fmt.Errorf("%w: %d > %d", ErrPayloadAlignment, unsafe.Alignof(p), bufferAlign)
	}
	if hasPointers(reflect.TypeFor[P]()) {
		return ErrPayloadPointers
	}
	return nil
}

// MustFit panics unless P fits capacity class C.
//
// Intended for package-level assertions, so a payload that does not fit
// aborts program start-up:
//
//	var _ = plumb.MustFit[tally, plumb.Cap16]()
func MustFit[P any, C Capacity]() bool {
	if err := Fits[P, C](); err != nil {
		panic(err)
	}
	return true
}

// pointerTypes caches the pointer scan per payload type.
var pointerTypes sync.Map // reflect.Type -> bool

func hasPointers(t reflect.Type) bool {
	if v, ok := pointerTypes.Load(t); ok {
		return v.(bool)
	}
	has := scanPointers(t)
	pointerTypes.Store(t, has)
	return has
}

func scanPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && scanPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if scanPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
