/*
Package inline tokenizes inline-styled text.

Two source syntaxes are understood: a small markup syntax (`code`, *bold*,
_italic_, __underline__, ~~strikeout~~, ##highlight##) and a constrained
HTML-tag subset (<code> <b> <i> <u> <s> <mark> and their closing forms).
Both produce the same shape of output, a flat []styledtext.StyleRun in
left-to-right source order.

Tokenizing is permissive by design. Style markers are independent toggles,
not a stack, and no balance checking is performed: unclosed markers simply
leave their flag set until end of input. Callers relying on partial or
streamed fragments depend on this.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package inline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'styledtext'
func tracer() tracing.Trace {
	return tracing.Select("styledtext")
}
