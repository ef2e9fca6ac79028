// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plumb

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed without more room.
//
// For Chain.New and Chain.Copy: the node arena is exhausted
// For Bounded.InsertAt: the sequence is at capacity
//
// ErrWouldBlock is a control flow signal, not a failure. The caller should
// free a node or drain the sequence and retry rather than propagating the
// error.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
//
// Example:
//
//	n, err := chain.New(v)
//	if plumb.IsWouldBlock(err) {
//	    chain.Free(oldest)
//	    n, err = chain.New(v)
//	}
var ErrWouldBlock = iox.ErrWouldBlock

// ErrBrokenChain is returned by Chain.Verify when a neighbor does not point
// back at the node that references it.
var ErrBrokenChain = errors.New("plumb: chain links are inconsistent")

// ErrPayloadTooLarge is returned by Fits when a payload does not fit the
// buffer of a capacity class.
var ErrPayloadTooLarge = errors.New("plumb: payload exceeds callable capacity")

// ErrPayloadAlignment is returned by Fits when a payload needs stricter
// alignment than the callable buffer provides.
var ErrPayloadAlignment = errors.New("plumb: payload alignment exceeds callable buffer")

// ErrPayloadPointers is returned by Fits when a payload holds pointers.
// Callable buffers are not scanned by the garbage collector.
var ErrPayloadPointers = errors.New("plumb: payload contains pointers")

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrWouldBlock, or ErrMore.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
