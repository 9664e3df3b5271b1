package grid

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/styledtext"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// cell is one character position of the grid.
type cell struct {
	content rune
	style   styledtext.StyleSet
}

// Grid is a rectangular matrix of character cells. It implements the layout
// engine's Backend interface with display columns as width units and rows
// growing downward. Drawing outside the grid is silently clipped.
type Grid struct {
	cells   []cell
	w, h    int
	context *uax11.Context
	// Colors overrides the synthesized ANSI attributes for exact style
	// sets, in the spirit of a terminal color palette. May stay nil.
	Colors map[styledtext.StyleSet]*color.Color
}

// New creates a cleared grid of w columns by h rows. Width measuring uses
// uax11.LatinContext; see SetContext for other regional contexts.
func New(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	g := &Grid{
		cells:   make([]cell, w*h),
		w:       w,
		h:       h,
		context: uax11.LatinContext,
	}
	g.Clear()
	return g
}

// SetContext sets the regional context used for East-Asian-width measuring.
func (g *Grid) SetContext(context *uax11.Context) {
	if context != nil {
		g.context = context
	}
}

// Width returns the number of columns of the grid.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows of the grid.
func (g *Grid) Height() int { return g.h }

// Clear blanks all cells.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = cell{content: ' '}
	}
}

// MeasureWidth returns the number of display columns text occupies,
// grapheme-cluster and East-Asian-width aware.
func (g *Grid) MeasureWidth(text string) int {
	if text == "" { // the grapheme segmenter chokes on empty input
		return 0
	}
	gstr := grapheme.StringFromString(text)
	return uax11.StringWidth(gstr, g.context)
}

// DrawRun writes text into the cell row y starting at column x, tagging
// each cell with the run's style set, and returns the column immediately
// after the text. Decorations are cell attributes here; they become ANSI
// attributes when the grid is written out.
func (g *Grid) DrawRun(style styledtext.StyleSet, text string, x, y int) int {
	for _, r := range text {
		w := g.MeasureWidth(string(r))
		if w <= 0 {
			continue // zero-width rune, no cell of its own; discarded
		}
		g.set(x, y, cell{content: r, style: style})
		for i := 1; i < w; i++ { // wide character, pad the spanned cells
			g.set(x+i, y, cell{content: 0, style: style})
		}
		x += w
	}
	return x
}

// LineAdvance is one row downward.
func (g *Grid) LineAdvance() int { return 1 }

func (g *Grid) set(x, y int, c cell) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return
	}
	g.cells[y*g.w+x] = c
}

func (g *Grid) at(x, y int) cell {
	return g.cells[y*g.w+x]
}

// Line returns row y as a plain string, style information and trailing
// blanks dropped.
func (g *Grid) Line(y int) string {
	if y < 0 || y >= g.h {
		return ""
	}
	var b strings.Builder
	for x := 0; x < g.w; x++ {
		if c := g.at(x, y); c.content != 0 {
			b.WriteRune(c.content)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// String returns the grid as plain text, one line per row, trailing blank
// rows dropped. Clients must not rely on the format of the string.
func (g *Grid) String() string {
	lines := make([]string, g.h)
	last := 0
	for y := 0; y < g.h; y++ {
		lines[y] = g.Line(y)
		if lines[y] != "" {
			last = y + 1
		}
	}
	return strings.Join(lines[:last], "\n")
}

// WriteTo renders the grid to w with ANSI attributes, row by row. Styles
// map onto SGR attributes: bold, italic, underline and strikeout onto their
// terminal counterparts, highlight onto a background color, code onto an
// alternate foreground. Whether escape sequences are actually emitted is
// governed by the color package (see color.NoColor).
func (g *Grid) WriteTo(out io.Writer) (n int64, err error) {
	for y := 0; y < g.h; y++ {
		x := 0
		for x < g.w {
			style := g.at(x, y).style
			var seg strings.Builder
			for x < g.w && g.at(x, y).style == style {
				if c := g.at(x, y); c.content != 0 {
					seg.WriteRune(c.content)
				}
				x++
			}
			var written int
			if style == styledtext.PlainStyle {
				written, err = io.WriteString(out, seg.String())
			} else {
				written, err = g.colorFor(style).Fprint(out, seg.String())
			}
			n += int64(written)
			if err != nil {
				return n, err
			}
		}
		written, err := io.WriteString(out, "\n")
		n += int64(written)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

func (g *Grid) colorFor(style styledtext.StyleSet) *color.Color {
	if c, ok := g.Colors[style]; ok && c != nil {
		return c
	}
	c := color.New()
	if style.Has(styledtext.BoldStyle) {
		c.Add(color.Bold)
	}
	if style.Has(styledtext.ItalicStyle) {
		c.Add(color.Italic)
	}
	if style.Has(styledtext.UnderlineStyle) {
		c.Add(color.Underline)
	}
	if style.Has(styledtext.StrikeoutStyle) {
		c.Add(color.CrossedOut)
	}
	if style.Has(styledtext.HighlightStyle) {
		c.Add(color.BgYellow)
	}
	if style.Has(styledtext.CodeStyle) {
		c.Add(color.FgCyan)
	}
	return c
}

// --- Config for terminals --------------------------------------------------

// Config collects terminal-derived parameters for printing to a console.
type Config struct {
	LineWidth int
	Context   *uax11.Context
}

// ConfigFromTerminal is a simple helper for creating a Config. It checks
// whether stdout is a terminal, and if so it reads the terminal's width and
// sets the Config.LineWidth parameter accordingly. The regional context is
// derived from the user environment.
func ConfigFromTerminal() *Config {
	config := &Config{Context: uax11.ContextFromEnvironment()}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
