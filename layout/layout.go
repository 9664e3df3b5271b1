package layout

import (
	"github.com/npillmayer/styledtext"
	"github.com/npillmayer/styledtext/inline"
)

// Backend is the capability interface rendering surfaces supply to the
// layout engine. Widths and coordinates are in the backend's native units.
// Draw calls are synchronous; a backend may buffer internally as long as it
// preserves their order.
type Backend interface {
	// MeasureWidth returns the width text will occupy when drawn.
	MeasureWidth(text string) int
	// DrawRun draws text with the decorations implied by style, starting at
	// (x, y), and returns the x position immediately after the drawn text.
	DrawRun(style styledtext.StyleSet, text string, x, y int) int
	// LineAdvance is the signed y distance between consecutive lines; its
	// sign fixes the backend's vertical coordinate direction.
	LineAdvance() int
}

// Cursor is the layout position state of one paragraph print. X and Y are
// backend-native coordinates. WrapAt is the rightmost position text may
// occupy before a wrap is forced; WrapTo is the left margin wrapped lines
// restart at. A cursor is owned by the caller and mutated in place, so
// consecutive prints may be chained through it. Sharing one cursor between
// concurrent prints is not supported.
type Cursor struct {
	X, Y   int
	WrapAt int
	WrapTo int
}

// NewCursor creates a cursor at (x, y) wrapping at wrapAt. WrapTo defaults
// to x, so the first line is unconstrained on the left while continuation
// lines re-indent to the same margin.
func NewCursor(x, y, wrapAt int) *Cursor {
	return &Cursor{X: x, Y: y, WrapAt: wrapAt, WrapTo: x}
}

// Print lays out one paragraph of style runs from the cursor position,
// word-wrapping between cursor.WrapTo and cursor.WrapAt, and draws it on
// the backend. Afterwards the cursor rests at the left margin one line
// below the last drawn line, ready for the next paragraph.
//
// Wrapping prefers whitespace boundaries. Only when a line starts at the
// left margin and still cannot hold the next word is the word cut at a rune
// boundary. If the backend's measurements leave no room to place even a
// single rune, Print aborts with styledtext.ErrNoRoom; it never loops.
func Print(runs []styledtext.StyleRun, c *Cursor, b Backend) error {
	if c == nil || b == nil {
		return styledtext.ErrIllegalArguments
	}
	for _, run := range runs {
		rest := run.Text
		if rest == "" {
			continue
		}
		for rest != "" && b.MeasureWidth(rest) > c.WrapAt-c.X {
			avail := c.WrapAt - c.X
			force := c.X <= c.WrapTo // at the margin already, cannot defer further
			cc := cutToFit(rest, avail, force, b)
			if force && cc.piece == "" {
				tracer().Errorf("layout: no progress at x=%d, wrap %d…%d", c.X, c.WrapTo, c.WrapAt)
				return styledtext.ErrNoRoom
			}
			tracer().Debugf("layout: wrap at y=%d, piece=%q", c.Y, cc.piece)
			if cc.piece != "" {
				b.DrawRun(run.Style, cc.piece, c.X, c.Y)
			}
			rest = cc.rest
			c.Y += b.LineAdvance()
			c.X = c.WrapTo
		}
		if rest != "" {
			c.X = b.DrawRun(run.Style, rest, c.X, c.Y)
		}
	}
	c.X = c.WrapTo
	c.Y += b.LineAdvance()
	return nil
}

// PrintMarkup tokenizes a markup-syntax string (see inline.ParseMarkup) and
// lays it out like Print.
func PrintMarkup(source string, c *Cursor, b Backend) error {
	return Print(inline.ParseMarkup(source), c, b)
}

// PrintHTML tokenizes an HTML-tag-subset string (see inline.ParseHTML) and
// lays it out like Print.
func PrintHTML(source string, c *Cursor, b Backend) error {
	return Print(inline.ParseHTML(source), c, b)
}
