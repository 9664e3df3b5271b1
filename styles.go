package styledtext

import "strings"

// StyleSet is a set of inline text styles, applicable on runs of characters.
// Styles are independent boolean flags, not a stack: setting or clearing one
// flag never touches the others.
type StyleSet uint8

// The inline text styles.
const (
	PlainStyle StyleSet = 0
	CodeStyle  StyleSet = 1 << iota
	BoldStyle
	ItalicStyle
	UnderlineStyle
	StrikeoutStyle
	HighlightStyle
)

func styleString(s StyleSet) string {
	switch s {
	case PlainStyle:
		return "plain"
	case CodeStyle:
		return "code"
	case BoldStyle:
		return "b"
	case ItalicStyle:
		return "i"
	case UnderlineStyle:
		return "u"
	case StrikeoutStyle:
		return "s"
	case HighlightStyle:
		return "mark"
	}
	return "?"
}

// Has tells if all flags of other are set in s.
func (s StyleSet) Has(other StyleSet) bool {
	return s&other == other
}

// Add returns s with the flags of other set.
func (s StyleSet) Add(other StyleSet) StyleSet {
	return s | other
}

// Minus returns s with the flags of other cleared.
func (s StyleSet) Minus(other StyleSet) StyleSet {
	return s & ^other
}

// Toggle returns s with the flags of other flipped.
func (s StyleSet) Toggle(other StyleSet) StyleSet {
	return s ^ other
}

// Equals compares two style sets flag by flag.
func (s StyleSet) Equals(other StyleSet) bool {
	return s == other
}

func (s StyleSet) String() string {
	if s == PlainStyle {
		return styleString(PlainStyle)
	}
	var b strings.Builder
	for i := 1; i <= 6; i++ {
		if s&(1<<i) > 0 {
			b.WriteString(styleString(1 << i))
		}
	}
	if b.Len() == 0 {
		return "?"
	}
	return b.String()
}

// StyleRun is a span of text whose characters all carry the style set Style.
// A StyleRun is an independent value; sequences of runs own their text and
// share no state with the source string they were tokenized from.
type StyleRun struct {
	Text  string
	Style StyleSet
}

// Text concatenates the text of a sequence of runs, dropping all style
// information.
func Text(runs []StyleRun) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// AppendRun appends a run to a sequence, omitting empty runs and merging
// with the last run if the styles match.
func AppendRun(runs []StyleRun, run StyleRun) []StyleRun {
	if run.Text == "" {
		return runs
	}
	if n := len(runs); n > 0 && runs[n-1].Style.Equals(run.Style) {
		runs[n-1].Text += run.Text
		return runs
	}
	return append(runs, run)
}
