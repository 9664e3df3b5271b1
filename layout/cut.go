package layout

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// cut is the outcome of a cut-to-fit attempt. An empty piece with deferred
// set means nothing fits before a word boundary and the whole (trimmed)
// rest moves to the next line; this is an explicit state, not an overload
// of the empty string, so the wrap loop's termination stays unambiguous.
type cut struct {
	piece    string // text to draw on the current line
	rest     string // text remaining for the following lines
	deferred bool   // nothing placed, everything moved to the next line
}

// cutToFit cuts a left piece off text that fits into avail width units.
// It scans backward from the last rune still within avail, looking for a
// whitespace boundary; the piece extends up to and including that boundary
// and the rest is trimmed of leading whitespace. A boundary exactly at the
// last fitting position is preferred over scanning further left.
//
// Without a boundary in reach the whole text is deferred to the next line,
// unless force is set, in which case the text is hard-cut at the last rune
// that fits. A forced cut of an empty piece means the backend leaves no
// room at all; the caller has to treat that as an error.
func cutToFit(text string, avail int, force bool, b Backend) cut {
	fit := fitPrefix(text, avail, b)
	for i := fit; i > 0; {
		r, size := utf8.DecodeLastRuneInString(text[:i])
		i -= size
		if unicode.IsSpace(r) {
			return cut{
				piece: text[:i+size],
				rest:  trimLeadingSpace(text[i+size:]),
			}
		}
	}
	if !force {
		return cut{rest: trimLeadingSpace(text), deferred: true}
	}
	return cut{piece: text[:fit], rest: trimLeadingSpace(text[fit:])}
}

// fitPrefix returns the byte length of the longest prefix of text, ending
// on a rune boundary, that measures at most avail width units.
func fitPrefix(text string, avail int, b Backend) int {
	if avail <= 0 {
		return 0
	}
	fit := 0
	for i := range text {
		if i == 0 {
			continue
		}
		if b.MeasureWidth(text[:i]) > avail {
			return fit
		}
		fit = i
	}
	if b.MeasureWidth(text) <= avail {
		fit = len(text)
	}
	return fit
}

func trimLeadingSpace(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}
