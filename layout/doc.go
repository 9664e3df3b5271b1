/*
Package layout word-wraps sequences of style runs onto a rendering surface.

The engine itself is measurement-agnostic: it asks a Backend for the width
of text in the backend's native units (text columns for a console grid,
pixels for a canvas) and delegates all drawing to it. One Print call lays
out one paragraph from a caller-owned cursor; nothing persists across calls
except that cursor.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'styledtext'
func tracer() tracing.Trace {
	return tracing.Select("styledtext")
}
