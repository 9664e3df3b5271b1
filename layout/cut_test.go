package layout

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCutAtBoundary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext")
	defer teardown()
	//
	rec := &recorder{}
	cc := cutToFit("lazy dog", 6, false, rec)
	if cc.deferred {
		t.Fatal("expected a boundary cut, not a deferral")
	}
	if cc.piece != "lazy " {
		t.Errorf("piece must include the boundary, have %q", cc.piece)
	}
	if cc.rest != "dog" {
		t.Errorf("rest must be trimmed of leading whitespace, have %q", cc.rest)
	}
}

func TestCutBoundaryAtLastFittingPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext")
	defer teardown()
	//
	// the space sits exactly at the last fitting position: greedy-maximal
	// fit wins over scanning further left
	rec := &recorder{}
	cc := cutToFit("ab cd ef", 6, false, rec)
	if cc.piece != "ab cd " || cc.rest != "ef" {
		t.Errorf("expected cut after 'ab cd ', have %q + %q", cc.piece, cc.rest)
	}
}

func TestCutDefers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext")
	defer teardown()
	//
	rec := &recorder{}
	cc := cutToFit("unbreakable", 5, false, rec)
	if !cc.deferred || cc.piece != "" {
		t.Fatalf("expected a deferral, have %+v", cc)
	}
	if cc.rest != "unbreakable" {
		t.Errorf("deferred rest is %q", cc.rest)
	}
	// leading whitespace is stripped off a deferred rest
	cc = cutToFit("  abc", 0, false, rec)
	if !cc.deferred || cc.rest != "abc" {
		t.Errorf("deferred rest must be trimmed, have %+v", cc)
	}
}

func TestCutForced(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext")
	defer teardown()
	//
	rec := &recorder{}
	cc := cutToFit("unbreakable", 5, true, rec)
	if cc.deferred {
		t.Fatal("a forced cut must not defer")
	}
	if cc.piece != "unbre" || cc.rest != "akable" {
		t.Errorf("expected a hard cut after 5 units, have %q + %q", cc.piece, cc.rest)
	}
}

func TestCutForcedNothingFits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext")
	defer teardown()
	//
	rec := &recorder{}
	cc := cutToFit("x", 0, true, rec)
	if cc.piece != "" {
		t.Errorf("nothing fits into zero width, have %q", cc.piece)
	}
}

func TestFitPrefixRuneBoundaries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext")
	defer teardown()
	//
	rec := &recorder{} // one width unit per rune
	text := "äöü"
	fit := fitPrefix(text, 2, rec)
	if fit != len("äö") {
		t.Errorf("prefix must end on a rune boundary, have %d bytes", fit)
	}
	if fit := fitPrefix(text, 10, rec); fit != len(text) {
		t.Errorf("whole text fits, have %d bytes", fit)
	}
}
