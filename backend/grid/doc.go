/*
Package grid is a fixed-grid text-console backend for the layout engine.

Text is drawn into a matrix of character cells, one style set per cell.
Widths are display columns, East-Asian-width aware. The grid renders to a
terminal with ANSI attributes, or to plain text for piping and testing.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package grid

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'styledtext'
func tracer() tracing.Trace {
	return tracing.Select("styledtext")
}
