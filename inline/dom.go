package inline

import (
	"io"

	"github.com/npillmayer/styledtext"
	"golang.org/x/net/html"
)

// InnerText creates style runs for the textual content of an HTML element
// and all its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript, except that InnerText cannot respect CSS styling (including
// properties changing the visibility of the node's descendents). The
// resulting runs are therefore limited to the inline span elements of this
// package's tag subset,
//
//	<b> … </b>
//	<i> … </i>
//
// etc. Clients should provide a paragraph-like element. Styles of nested
// elements accumulate: text inside <b><i>…</i></b> carries both flags.
//
// This is the door for well-formed document input. For partial or streamed
// fragments, where permissive recovery matters more than tree structure,
// use ParseHTML instead.
func InnerText(n *html.Node) ([]styledtext.StyleRun, error) {
	if n == nil {
		return nil, styledtext.ErrIllegalArguments
	}
	var runs []styledtext.StyleRun
	collectText(n, styledtext.PlainStyle, &runs)
	return runs, nil
}

func collectText(n *html.Node, style styledtext.StyleSet, runs *[]styledtext.StyleRun) {
	if n.Type == html.ElementNode {
		tracer().Debugf("inline text: collect text of <%s>", n.Data)
		if flag, ok := tagStyles[n.Data]; ok {
			style = style.Add(flag)
		}
	} else if n.Type == html.TextNode {
		tracer().Debugf("inline text = %q (%v)", n.Data, style)
		*runs = styledtext.AppendRun(*runs, styledtext.StyleRun{Text: n.Data, Style: style})
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, style, runs)
	}
}

// RunsFromHTML creates style runs from the textual content of an HTML
// fragment. The fragment should reflect the content of a paragraph-like
// element.
func RunsFromHTML(input io.Reader) ([]styledtext.StyleRun, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	var runs []styledtext.StyleRun
	for _, n := range nodes {
		collectText(n, styledtext.PlainStyle, &runs)
	}
	return runs, nil
}
