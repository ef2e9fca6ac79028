// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plumb

import "cmp"

// Sorted-sequence maintenance.
//
// Every operation assumes seq is already sorted (non-descending under the
// active ordering) and never re-sorts. Searches are binary, via lower bound:
// the first position whose element is not ordered before the key.
//
// The plain variants order by cmp.Compare. The Func variants take an
// explicit comparator; Find, Erase and LowerBound accept a comparator
// against a different key type, which allows searching composite elements
// by a partial or derived key:
//
//	type entry struct {
//	    id   uint32
//	    name string
//	}
//	byID := func(e entry, id uint32) int { return cmp.Compare(e.id, id) }
//	i, ok := plumb.FindFunc(&entries, 42, byID)

// LowerBound returns the first position in seq whose element is not less
// than key, or seq.Len() if there is none.
func LowerBound[S Reader[T], T cmp.Ordered](seq S, key T) int {
	return LowerBoundFunc(seq, key, cmp.Compare[T])
}

// LowerBoundFunc is LowerBound under the ordering cmp, where cmp(e, key)
// reports how element e orders relative to key.
func LowerBoundFunc[S Reader[T], T, K any](seq S, key K, cmp func(T, K) int) int {
	lo, hi := 0, seq.Len()
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if cmp(seq.At(mid), key) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// Insert inserts key unless an equal element already exists.
//
// Returns the position of the inserted element, or of the existing equal
// element, which is left unchanged. Errors come only from seq.InsertAt
// (ErrWouldBlock for a full Bounded sequence).
func Insert[S Sequence[T], T cmp.Ordered](seq S, key T) (int, error) {
	return InsertFunc(seq, key, cmp.Compare[T])
}

// InsertFunc is Insert under the ordering cmp.
func InsertFunc[S Sequence[T], T any](seq S, key T, cmp func(T, T) int) (int, error) {
	i := LowerBoundFunc(seq, key, cmp)
	if i < seq.Len() && cmp(seq.At(i), key) == 0 {
		return i, nil
	}
	return i, seq.InsertAt(i, key)
}

// InsertOrOverwrite inserts key, or overwrites an existing equal element
// in place. The length is unchanged on overwrite.
// Returns the position of the stored element.
func InsertOrOverwrite[S Sequence[T], T cmp.Ordered](seq S, key T) (int, error) {
	return InsertOrOverwriteFunc(seq, key, cmp.Compare[T])
}

// InsertOrOverwriteFunc is InsertOrOverwrite under the ordering cmp.
func InsertOrOverwriteFunc[S Sequence[T], T any](seq S, key T, cmp func(T, T) int) (int, error) {
	i := LowerBoundFunc(seq, key, cmp)
	if i < seq.Len() && cmp(seq.At(i), key) == 0 {
		seq.Set(i, key)
		return i, nil
	}
	return i, seq.InsertAt(i, key)
}

// InsertMulti always inserts key at its lower bound, permitting duplicates.
//
// Each new element is placed before all equal elements already present,
// so duplicates end up in reverse insertion order:
//
//	keys [5 3 5 1 5] -> [1 3 5c 5b 5a]
func InsertMulti[S Sequence[T], T cmp.Ordered](seq S, key T) (int, error) {
	return InsertMultiFunc(seq, key, cmp.Compare[T])
}

// InsertMultiFunc is InsertMulti under the ordering cmp.
func InsertMultiFunc[S Sequence[T], T any](seq S, key T, cmp func(T, T) int) (int, error) {
	i := LowerBoundFunc(seq, key, cmp)
	return i, seq.InsertAt(i, key)
}

// Find returns the position of an element equal to key.
// The boolean result is false if there is none; the position is then
// where key would be inserted.
func Find[S Reader[T], T cmp.Ordered](seq S, key T) (int, bool) {
	return FindFunc(seq, key, cmp.Compare[T])
}

// FindFunc is Find under the ordering cmp.
func FindFunc[S Reader[T], T, K any](seq S, key K, cmp func(T, K) int) (int, bool) {
	i := LowerBoundFunc(seq, key, cmp)
	return i, i < seq.Len() && cmp(seq.At(i), key) == 0
}

// Erase removes the first element equal to key.
// Reports whether an element was removed.
func Erase[S Sequence[T], T cmp.Ordered](seq S, key T) bool {
	return EraseFunc(seq, key, cmp.Compare[T])
}

// EraseFunc is Erase under the ordering cmp.
func EraseFunc[S Sequence[T], T, K any](seq S, key K, cmp func(T, K) int) bool {
	i, ok := FindFunc(seq, key, cmp)
	if ok {
		seq.RemoveAt(i)
	}
	return ok
}
