/*
Package styledtext models inline-styled text as sequences of style runs.

A style run is a maximal span of text whose characters all share one fixed
combination of style attributes (bold, italic, code, and so on). Tokenizers
for a small markup syntax and for a constrained HTML-tag subset live in
subpackage inline; they turn raw strings into []StyleRun. Subpackage layout
word-wraps run sequences onto a rendering surface, delegating measurement
and drawing to a backend. Three backends are provided under backend/: a
fixed-grid text console, a pixel canvas, and a bitmap-font renderer.

No state survives a print call except the caller-owned layout cursor.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package styledtext

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'styledtext'
func tracer() tracing.Trace {
	return tracing.Select("styledtext")
}

// Error is an error type for the styledtext module.
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrNoRoom is flagged when a layout backend's measurements leave no room to
// place even a single character on any line. Laying out would not terminate,
// so the operation is aborted.
const ErrNoRoom = Error("no room to place text; check wrap positions and backend metrics")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = Error("illegal arguments")
