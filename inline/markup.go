package inline

import (
	"strings"

	"github.com/npillmayer/styledtext"
)

// Markup toggle characters. The doubled forms have to be matched before the
// single forms to guarantee longest-match.
const markupSpecials = "`*_~#\\"

// ParseMarkup scans a markup-syntax string and produces a sequence of style
// runs. Recognized markers are
//
//	`code`   *bold*   _italic_   __underline__   ~~strikeout~~   ##highlight##
//
// Each marker toggles one style flag; markers may nest and overlap freely.
// While code mode is active all other markers are literal text and only a
// closing backtick ends the run. A backslash escapes a following markup
// character; before any other character (or at end of input) the backslash
// itself is literal. Escapes are not processed inside code mode, so a
// backtick cannot be embedded in a code run.
//
// Zero-length runs are omitted; adjacent runs of identical style merge.
func ParseMarkup(source string) []styledtext.StyleRun {
	var runs []styledtext.StyleRun
	style := styledtext.PlainStyle
	var text strings.Builder // text scanned since the last flush point
	flush := func() {
		runs = styledtext.AppendRun(runs, styledtext.StyleRun{Text: text.String(), Style: style})
		text.Reset()
	}
	toggle := func(s styledtext.StyleSet) {
		flush()
		style = style.Toggle(s)
	}
	i := 0
	for i < len(source) {
		c := source[i]
		if style.Has(styledtext.CodeStyle) {
			if c == '`' {
				toggle(styledtext.CodeStyle)
				i++
				continue
			}
			text.WriteByte(c)
			i++
			continue
		}
		doubled := i+1 < len(source) && source[i+1] == c
		switch {
		case c == '\\':
			if i+1 < len(source) && strings.IndexByte(markupSpecials, source[i+1]) >= 0 {
				text.WriteByte(source[i+1])
				i += 2
			} else {
				text.WriteByte(c)
				i++
			}
		case c == '_' && doubled:
			toggle(styledtext.UnderlineStyle)
			i += 2
		case c == '~' && doubled:
			toggle(styledtext.StrikeoutStyle)
			i += 2
		case c == '#' && doubled:
			toggle(styledtext.HighlightStyle)
			i += 2
		case c == '`':
			toggle(styledtext.CodeStyle)
			i++
		case c == '*':
			toggle(styledtext.BoldStyle)
			i++
		case c == '_':
			toggle(styledtext.ItalicStyle)
			i++
		default:
			text.WriteByte(c)
			i++
		}
	}
	flush()
	tracer().Debugf("markup: tokenized %d bytes into %d style runs", len(source), len(runs))
	return runs
}

// markers, in emission order
var markupMarkers = []struct {
	style  styledtext.StyleSet
	marker string
}{
	{styledtext.BoldStyle, "*"},
	{styledtext.ItalicStyle, "_"},
	{styledtext.UnderlineStyle, "__"},
	{styledtext.StrikeoutStyle, "~~"},
	{styledtext.HighlightStyle, "##"},
}

// Markup serializes a sequence of style runs back into minimal markup.
// Every style difference between adjacent runs is emitted as the toggle
// markers for the changed flags, and all flags still open after the last run
// are closed. Markup characters inside run text are escaped, except inside
// code runs, where escaping is not available.
//
// Re-tokenizing the result yields an equivalent run sequence: identical
// flags and identical concatenated text, with boundaries of equal-styled
// neighbors possibly merged.
func Markup(runs []styledtext.StyleRun) string {
	var b strings.Builder
	style := styledtext.PlainStyle
	for _, run := range runs {
		if run.Text == "" {
			continue
		}
		style = switchMarkup(&b, style, run.Style)
		if style.Has(styledtext.CodeStyle) {
			b.WriteString(run.Text)
		} else {
			escapeMarkup(&b, run.Text)
		}
	}
	switchMarkup(&b, style, styledtext.PlainStyle)
	return b.String()
}

// switchMarkup emits the toggle markers taking style from to to, leaving
// code mode first and entering it last so that intervening markers are not
// swallowed by a code run.
func switchMarkup(b *strings.Builder, from, to styledtext.StyleSet) styledtext.StyleSet {
	if from.Has(styledtext.CodeStyle) && !to.Has(styledtext.CodeStyle) {
		b.WriteByte('`')
	}
	diff := from.Toggle(to)
	for _, m := range markupMarkers {
		if diff.Has(m.style) {
			b.WriteString(m.marker)
		}
	}
	if !from.Has(styledtext.CodeStyle) && to.Has(styledtext.CodeStyle) {
		b.WriteByte('`')
	}
	return to
}

func escapeMarkup(b *strings.Builder, text string) {
	for i := 0; i < len(text); i++ {
		if strings.IndexByte(markupSpecials, text[i]) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(text[i])
	}
}
