// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plumb

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'plumb'.
// Only cold paths trace; formatting arguments escape to the heap.
func tracer() tracing.Trace {
	return tracing.Select("plumb")
}

// traces reports whether the tracer records messages at level l.
// Guard Debugf/Infof calls on recoverable paths with it, so that their
// arguments are not boxed when nothing would be recorded.
func traces(l tracing.TraceLevel) bool {
	return tracer().GetTraceLevel() >= l
}
