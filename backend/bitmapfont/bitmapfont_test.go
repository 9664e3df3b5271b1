package bitmapfont

import (
	"image"
	"image/color"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/styledtext"
	"github.com/npillmayer/styledtext/layout"
	"golang.org/x/image/font/basicfont"
)

func testRenderer() *Renderer {
	return New(image.NewRGBA(image.Rect(0, 0, 300, 100)), FromBasicfont(basicfont.Face7x13))
}

func inked(img *image.RGBA, r image.Rectangle) bool {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				return true
			}
		}
	}
	return false
}

func TestFromBasicfont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext")
	defer teardown()
	//
	fnt := FromBasicfont(basicfont.Face7x13)
	if fnt.Advance != 7 || fnt.CellWidth != 6 || fnt.CellHeight != 13 || fnt.Ascent != 11 {
		t.Errorf("unexpected atlas metrics: %+v", fnt)
	}
	if _, ok := fnt.Lookup('A'); !ok {
		t.Error("expected an atlas cell for 'A'")
	}
	if _, ok := fnt.Lookup('你'); ok {
		t.Error("expected no atlas cell outside the face's rune ranges")
	}
	a, _ := fnt.Lookup('A')
	b, _ := fnt.Lookup('B')
	if b.Y-a.Y != fnt.CellHeight {
		t.Errorf("consecutive glyphs must be one cell apart, have %d", b.Y-a.Y)
	}
}

func TestRendererMeasure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext")
	defer teardown()
	//
	rd := testRenderer()
	if w := rd.MeasureWidth("abc"); w != 21 {
		t.Errorf("expected 21px for 'abc', have %d", w)
	}
	if rd.LineAdvance() != 13 {
		t.Errorf("expected 13px line advance, have %d", rd.LineAdvance())
	}
	rd.LineGap = 2
	if rd.LineAdvance() != 15 {
		t.Errorf("line gap must add to the advance, have %d", rd.LineAdvance())
	}
}

func TestRendererDrawRun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext")
	defer teardown()
	//
	rd := testRenderer()
	newx := rd.DrawRun(styledtext.PlainStyle, "AB", 10, 10)
	if newx != 24 {
		t.Errorf("expected new x position 24, have %d", newx)
	}
	if !inked(rd.Dst, image.Rect(10, 10, 24, 23)) {
		t.Error("expected glyph ink inside the run's cells")
	}
}

func TestRendererHighlight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext")
	defer teardown()
	//
	rd := testRenderer()
	rd.DrawRun(styledtext.HighlightStyle, " ", 10, 10)
	got := rd.Dst.RGBAAt(13, 16)
	want := color.RGBA{R: 0xff, G: 0xf3, B: 0xa0, A: 0xff}
	if got != want {
		t.Errorf("expected highlight background %v behind a blank, have %v", want, got)
	}
}

func TestRendererDecorations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext")
	defer teardown()
	//
	rd := testRenderer()
	rd.DrawRun(styledtext.UnderlineStyle, " ", 10, 10)
	if rd.Dst.RGBAAt(12, 10+11+1) != (color.RGBA{A: 0xff}) {
		t.Error("expected an underline pixel below the baseline")
	}
	rd.DrawRun(styledtext.StrikeoutStyle, " ", 40, 10)
	row := 10 + 11 - 13/3
	if rd.Dst.RGBAAt(42, row) != (color.RGBA{A: 0xff}) {
		t.Error("expected a strikeout pixel through the cell")
	}
}

func TestRendererFakeBoldAndItalic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext")
	defer teardown()
	//
	rd := testRenderer()
	if newx := rd.DrawRun(styledtext.BoldStyle, "x", 10, 10); newx != 17 {
		t.Errorf("fake bold must not change the advance, have %d", newx)
	}
	if newx := rd.DrawRun(styledtext.ItalicStyle, "x", 40, 10); newx != 47 {
		t.Errorf("fake italic must not change the advance, have %d", newx)
	}
	if !inked(rd.Dst, image.Rect(40, 10, 50, 23)) {
		t.Error("expected sheared glyph ink near the italic run")
	}
}

func TestRendererLayout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext")
	defer teardown()
	//
	rd := testRenderer()
	c := layout.NewCursor(0, 0, 80)
	if err := layout.PrintHTML("lazy <b>dog</b> jumps", c, rd); err != nil {
		t.Fatal(err)
	}
	if c.Y != 2*13 {
		t.Errorf("expected the cursor two lines down, have y=%d", c.Y)
	}
	if !inked(rd.Dst, image.Rect(0, 13, 40, 26)) {
		t.Error("expected ink on the wrapped line")
	}
}
