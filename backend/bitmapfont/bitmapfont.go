package bitmapfont

import (
	"image"
	"image/color"
	"image/draw"
	"unicode/utf8"

	"github.com/npillmayer/styledtext"
	"golang.org/x/image/font/basicfont"
)

// Font describes a monospaced bitmap-glyph atlas. Mask is an alpha image
// holding one cell of CellWidth by CellHeight pixels per glyph; Lookup maps
// a rune onto the top-left corner of its cell within Mask. Advance is the
// horizontal step per glyph and Ascent the baseline distance from the cell
// top, both in pixels.
type Font struct {
	Mask       image.Image
	CellWidth  int
	CellHeight int
	Advance    int
	Ascent     int
	Lookup     func(r rune) (image.Point, bool)
}

// FromBasicfont adapts a basicfont.Face into an atlas font. The face's mask
// stacks glyph cells vertically, one cell of ascent+descent rows per glyph
// index, with rune ranges mapping onto indices.
func FromBasicfont(f *basicfont.Face) *Font {
	cellH := f.Ascent + f.Descent
	ranges := f.Ranges
	return &Font{
		Mask:       f.Mask,
		CellWidth:  f.Width,
		CellHeight: cellH,
		Advance:    f.Advance,
		Ascent:     f.Ascent,
		Lookup: func(r rune) (image.Point, bool) {
			for _, rr := range ranges {
				if r >= rr.Low && r < rr.High {
					i := rr.Offset + int(r-rr.Low)
					return image.Pt(0, i*cellH), true
				}
			}
			return image.Point{}, false
		},
	}
}

// Renderer draws style runs onto an RGBA image by blitting atlas regions.
// It implements the layout engine's Backend interface with pixels as width
// units; the y coordinate passed to DrawRun is the top of the glyph cell.
type Renderer struct {
	Dst     *image.RGBA
	Font    *Font
	LineGap int
	// Colors; zero values are replaced by New with black text, yellow
	// highlight and a dark cyan for code runs.
	Fg          color.Color
	CodeFg      color.Color
	HighlightBg color.Color
}

// New creates a renderer drawing on dst with fnt and a default color scheme.
func New(dst *image.RGBA, fnt *Font) *Renderer {
	return &Renderer{
		Dst:         dst,
		Font:        fnt,
		Fg:          color.Black,
		CodeFg:      color.RGBA{R: 0x00, G: 0x60, B: 0x70, A: 0xff},
		HighlightBg: color.RGBA{R: 0xff, G: 0xf3, B: 0xa0, A: 0xff},
	}
}

// MeasureWidth returns the width of text in pixels. The atlas is
// monospaced, so this is the rune count times the glyph advance.
func (rd *Renderer) MeasureWidth(text string) int {
	return utf8.RuneCountInString(text) * rd.Font.Advance
}

// LineAdvance is the glyph cell height plus the line gap, downward.
func (rd *Renderer) LineAdvance() int {
	return rd.Font.CellHeight + rd.LineGap
}

// DrawRun blits the glyphs of text with cell tops at row y, starting at
// column x, and returns the pixel position after the text. Runes without an
// atlas cell advance silently. Underline and strikeout rows derive from the
// atlas metrics; the highlight rectangle spans the full cell height.
func (rd *Renderer) DrawRun(style styledtext.StyleSet, text string, x, y int) int {
	w := rd.MeasureWidth(text)
	fnt := rd.Font
	if style.Has(styledtext.HighlightStyle) {
		rd.fill(image.Rect(x, y, x+w, y+fnt.CellHeight), rd.HighlightBg)
	}
	fg := rd.Fg
	if style.Has(styledtext.CodeStyle) {
		fg = rd.CodeFg
	}
	gx := x
	for _, r := range text {
		if pt, ok := fnt.Lookup(r); ok {
			rd.blitGlyph(pt, gx, y, fg, style)
		}
		gx += fnt.Advance
	}
	if style.Has(styledtext.UnderlineStyle) {
		rd.fill(image.Rect(x, y+fnt.Ascent+1, x+w, y+fnt.Ascent+2), fg)
	}
	if style.Has(styledtext.StrikeoutStyle) {
		row := y + fnt.Ascent - fnt.CellHeight/3
		rd.fill(image.Rect(x, row, x+w, row+1), fg)
	}
	return x + w
}

// blitGlyph copies one atlas cell to (x, y). Fake bold is a second blit one
// pixel to the right; fake italic blits the cell in three horizontal bands,
// the upper bands shifted further right.
func (rd *Renderer) blitGlyph(pt image.Point, x, y int, fg color.Color, style styledtext.StyleSet) {
	fnt := rd.Font
	src := image.NewUniform(fg)
	blit := func(dx, top, bottom int) {
		r := image.Rect(x+dx, y+top, x+dx+fnt.CellWidth, y+bottom)
		draw.DrawMask(rd.Dst, r, src, image.Point{}, fnt.Mask, image.Pt(pt.X, pt.Y+top), draw.Over)
	}
	bands := [][2]int{{0, fnt.CellHeight}}
	if style.Has(styledtext.ItalicStyle) {
		bandH := (fnt.CellHeight + 2) / 3
		bands = bands[:0]
		for top := 0; top < fnt.CellHeight; top += bandH {
			bottom := top + bandH
			if bottom > fnt.CellHeight {
				bottom = fnt.CellHeight
			}
			bands = append(bands, [2]int{top, bottom})
		}
	}
	for i, band := range bands {
		dx := 0
		if len(bands) > 1 {
			dx = len(bands) - 1 - i
		}
		blit(dx, band[0], band[1])
		if style.Has(styledtext.BoldStyle) {
			blit(dx+1, band[0], band[1])
		}
	}
}

func (rd *Renderer) fill(r image.Rectangle, c color.Color) {
	draw.Draw(rd.Dst, r, image.NewUniform(c), image.Point{}, draw.Over)
}
