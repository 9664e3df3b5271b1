package inline

import (
	"strings"

	"github.com/npillmayer/styledtext"
)

// tagStyles maps the recognized HTML tag names onto style flags.
var tagStyles = map[string]styledtext.StyleSet{
	"code": styledtext.CodeStyle,
	"b":    styledtext.BoldStyle,
	"i":    styledtext.ItalicStyle,
	"u":    styledtext.UnderlineStyle,
	"s":    styledtext.StrikeoutStyle,
	"mark": styledtext.HighlightStyle,
}

// ParseHTML scans a string containing a constrained HTML-tag subset and
// produces a sequence of style runs. Recognized tags are <code> <b> <i> <u>
// <s> <mark> and their closing forms; each sets or clears one style flag.
// Unrecognized tags are consumed without altering style. While code mode is
// active only </code> is honored; any other tag-like sequence is literal
// text. A '<' without a closing '>' is literal text as well.
//
// The entities &lt; &gt; &amp; are decoded in each flushed text segment; no
// other entities are recognized. Tag balance is not validated: mismatched or
// unclosed tags leave the style flags in whatever state the last toggle left
// them, which callers handling partial fragments depend on.
func ParseHTML(source string) []styledtext.StyleRun {
	var runs []styledtext.StyleRun
	style := styledtext.PlainStyle
	var text strings.Builder
	flush := func() {
		runs = styledtext.AppendRun(runs, styledtext.StyleRun{
			Text:  decodeEntities(text.String()),
			Style: style,
		})
		text.Reset()
	}
	i := 0
	for i < len(source) {
		c := source[i]
		if c != '<' {
			text.WriteByte(c)
			i++
			continue
		}
		end := strings.IndexByte(source[i+1:], '>')
		if end < 0 { // unterminated tag, recover with a literal '<'
			text.WriteByte(c)
			i++
			continue
		}
		tag := source[i+1 : i+1+end]
		if style.Has(styledtext.CodeStyle) && tag != "/code" {
			text.WriteByte(c)
			i++
			continue
		}
		i += end + 2
		name, closing := tag, false
		if strings.HasPrefix(tag, "/") {
			name, closing = tag[1:], true
		}
		flag, known := tagStyles[name]
		if !known {
			tracer().Debugf("html: skipping unknown tag <%s>", tag)
			continue
		}
		flush()
		if closing {
			style = style.Minus(flag)
		} else {
			style = style.Add(flag)
		}
	}
	flush()
	return runs
}

// decodeEntities replaces the three supported HTML entities in s.
var entityDecoder = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&amp;", "&")

func decodeEntities(s string) string {
	if strings.IndexByte(s, '&') < 0 {
		return s
	}
	return entityDecoder.Replace(s)
}

// tag names indexed by flag emission order; code is special-cased in
// switchTags since no other tag is honored inside a code run
var htmlTags = []struct {
	style styledtext.StyleSet
	name  string
}{
	{styledtext.BoldStyle, "b"},
	{styledtext.ItalicStyle, "i"},
	{styledtext.UnderlineStyle, "u"},
	{styledtext.StrikeoutStyle, "s"},
	{styledtext.HighlightStyle, "mark"},
}

// HTML serializes a sequence of style runs into the supported tag subset,
// escaping '<', '>' and '&' in run text.
func HTML(runs []styledtext.StyleRun) string {
	var b strings.Builder
	style := styledtext.PlainStyle
	for _, run := range runs {
		if run.Text == "" {
			continue
		}
		style = switchTags(&b, style, run.Style)
		b.WriteString(encodeEntities(run.Text))
	}
	switchTags(&b, style, styledtext.PlainStyle)
	return b.String()
}

// switchTags emits the tags taking style from to to. A </code> is emitted
// before and a <code> after all other tags, since a re-scan treats any other
// tag inside a code run as literal text.
func switchTags(b *strings.Builder, from, to styledtext.StyleSet) styledtext.StyleSet {
	if from.Has(styledtext.CodeStyle) && !to.Has(styledtext.CodeStyle) {
		b.WriteString("</code>")
	}
	for i := len(htmlTags) - 1; i >= 0; i-- { // close in reverse order of opening
		t := htmlTags[i]
		if from.Has(t.style) && !to.Has(t.style) {
			b.WriteString("</" + t.name + ">")
		}
	}
	for _, t := range htmlTags {
		if !from.Has(t.style) && to.Has(t.style) {
			b.WriteString("<" + t.name + ">")
		}
	}
	if !from.Has(styledtext.CodeStyle) && to.Has(styledtext.CodeStyle) {
		b.WriteString("<code>")
	}
	return to
}

var entityEncoder = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func encodeEntities(s string) string {
	return entityEncoder.Replace(s)
}
