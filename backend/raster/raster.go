package raster

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/npillmayer/styledtext"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Canvas draws style runs onto an RGBA image. It implements the layout
// engine's Backend interface with pixels as width units; the y coordinate
// passed to DrawRun is the text baseline.
type Canvas struct {
	Dst  *image.RGBA
	Face font.Face
	// Dedicated faces for weight and slant. When nil, bold and italic are
	// faked from Face. Line breaking measures with Face only, so a
	// dedicated face should share its advance metrics; with wider metrics
	// a styled run may overshoot the wrap position.
	BoldFace   font.Face
	ItalicFace font.Face
	// Colors; zero values are replaced by New with black text, yellow
	// highlight and a dark cyan for code runs.
	Fg          color.Color
	CodeFg      color.Color
	HighlightBg color.Color
}

// New creates a canvas drawing on dst with face and a default color scheme.
func New(dst *image.RGBA, face font.Face) *Canvas {
	return &Canvas{
		Dst:         dst,
		Face:        face,
		Fg:          color.Black,
		CodeFg:      color.RGBA{R: 0x00, G: 0x60, B: 0x70, A: 0xff},
		HighlightBg: color.RGBA{R: 0xff, G: 0xf3, B: 0xa0, A: 0xff},
	}
}

// MeasureWidth returns the advance of text in pixels, measured with the
// regular face.
func (cv *Canvas) MeasureWidth(text string) int {
	return font.MeasureString(cv.Face, text).Ceil()
}

// LineAdvance is the face line height in pixels, downward.
func (cv *Canvas) LineAdvance() int {
	return cv.Face.Metrics().Height.Ceil()
}

// DrawRun draws text at baseline position (x, y) with the decorations
// implied by style and returns the pixel position after the text. The
// highlight rectangle is painted first, spanning ascent above and descent
// below the baseline; underline and strikeout lines span the measured width
// at face-metric offsets.
func (cv *Canvas) DrawRun(style styledtext.StyleSet, text string, x, y int) int {
	face := cv.faceFor(style)
	w := font.MeasureString(face, text).Ceil()
	metrics := face.Metrics()
	ascent, descent := metrics.Ascent.Ceil(), metrics.Descent.Ceil()
	if style.Has(styledtext.HighlightStyle) {
		cv.fill(image.Rect(x, y-ascent, x+w, y+descent), cv.HighlightBg)
	}
	fg := cv.Fg
	if style.Has(styledtext.CodeStyle) {
		fg = cv.CodeFg
	}
	fakeBold := style.Has(styledtext.BoldStyle) && cv.BoldFace == nil
	if style.Has(styledtext.ItalicStyle) && cv.ItalicFace == nil {
		cv.drawSlanted(face, text, x, y, w, ascent, descent, fg, fakeBold)
	} else {
		cv.drawString(cv.Dst, face, text, x, y, fg)
		if fakeBold {
			cv.drawString(cv.Dst, face, text, x+1, y, fg)
		}
	}
	if style.Has(styledtext.UnderlineStyle) {
		cv.fill(image.Rect(x, y+(descent+1)/2, x+w, y+(descent+1)/2+1), fg)
	}
	if style.Has(styledtext.StrikeoutStyle) {
		cv.fill(image.Rect(x, y-ascent/3, x+w, y-ascent/3+1), fg)
	}
	return x + w
}

func (cv *Canvas) faceFor(style styledtext.StyleSet) font.Face {
	if style.Has(styledtext.BoldStyle) && cv.BoldFace != nil {
		return cv.BoldFace
	}
	if style.Has(styledtext.ItalicStyle) && cv.ItalicFace != nil {
		return cv.ItalicFace
	}
	return cv.Face
}

func (cv *Canvas) drawString(dst draw.Image, face font.Face, text string, x, y int, fg color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// drawSlanted fakes an italic slant: the run is rendered to a scratch image
// and blitted in horizontal bands, the upper bands shifted further right.
func (cv *Canvas) drawSlanted(face font.Face, text string, x, y, w, ascent, descent int, fg color.Color, fakeBold bool) {
	h := ascent + descent
	if h <= 0 || w <= 0 {
		return
	}
	shear := h / 4
	if shear < 1 {
		shear = 1
	}
	scratch := image.NewRGBA(image.Rect(0, 0, w+shear+1, h))
	cv.drawString(scratch, face, text, 0, ascent, fg)
	if fakeBold {
		cv.drawString(scratch, face, text, 1, ascent, fg)
	}
	const band = 2 // pixel rows per band
	for ty := 0; ty < h; ty += band {
		dx := shear * (h - ty - 1) / h
		r := image.Rect(x+dx, y-ascent+ty, x+dx+scratch.Rect.Dx(), y-ascent+ty+band)
		draw.Draw(cv.Dst, r, scratch, image.Pt(0, ty), draw.Over)
	}
}

func (cv *Canvas) fill(r image.Rectangle, c color.Color) {
	draw.Draw(cv.Dst, r, image.NewUniform(c), image.Point{}, draw.Over)
}
