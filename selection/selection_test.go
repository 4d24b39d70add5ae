package selection

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBuildAndPrepend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vdoc.selection")
	defer teardown()
	//
	sel := Prepend(2, Prepend(0, Build(1, "x")))
	if len(sel) != 1 || !sel[0].Path.Equal(Path{2, 0, 1}) {
		t.Errorf("expected path (2,0,1), got %v", sel)
	}
	r := Range(3, []string{"a", "b"})
	if r[1].Path.String() != "(4,)" || r[1].Node != "b" {
		t.Errorf("expected second range entry to be ((4,), b), is %v", r[1])
	}
	if err := Prepend(7, r).Validate(); err != nil {
		t.Errorf("expected prepended range to be valid, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vdoc.selection")
	defer teardown()
	//
	for i, tc := range []struct {
		sel Selection[string]
		err error
	}{
		{sel(), nil},
		{sel(P(0), "a", P(0, 1), "b"), ErrNotPrefixFree},
		{sel(P(0, 2), "a", P(1), "b", P(1, 0), "c"), ErrNotPrefixFree},
		{sel(P(1), "a", P(0), "b"), ErrUnsorted},
		{sel(P(1), "a", P(1), "b"), ErrDuplicate},
		{sel(P(), "a"), ErrEmptyPath},
		{sel(P(0, 2), "a", P(1), "b", P(1, 0), "c")[:2], nil},
		{sel(P(0, 1), "a", P(0, 2), "b", P(3), "c"), nil},
	} {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			err := tc.sel.Validate()
			if tc.err == nil && err != nil {
				t.Errorf("expected %v to be valid, got %v", tc.sel, err)
			}
			if tc.err != nil && !errors.Is(err, tc.err) {
				t.Errorf("expected %v to be rejected with %v, got %v", tc.sel, tc.err, err)
			}
			if tc.err != nil && !errors.Is(err, ErrMalformed) {
				t.Errorf("expected error to wrap ErrMalformed")
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	in := []Entry[string]{
		{P(1, 0), "c"}, {P(0, 2), "a"}, {P(1), "b"}, {P(0, 2), "a"},
	}
	s := Normalize(in)
	if err := s.Validate(); err != nil {
		t.Fatalf("expected normalized selection to be valid, got %v", err)
	}
	if len(s) != 2 || s[0].Node != "a" || s[1].Node != "b" {
		t.Errorf("expected normalized selection [a b], got %v", s)
	}
}

func TestCommonPrefix(t *testing.T) {
	for i, tc := range []struct {
		sel    Selection[string]
		prefix Path
	}{
		{sel(), P()},
		{sel(P(1, 2, 3), "a"), P(1, 2, 3)},
		{sel(P(1, 2, 3), "a", P(1, 2, 5), "b"), P(1, 2)},
		{sel(P(1, 2), "a", P(1, 3, 0), "b", P(1, 4), "c"), P(1)},
		{sel(P(0), "a", P(1), "b"), P()},
	} {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			if p := CommonPrefix(tc.sel); !p.Equal(tc.prefix) {
				t.Errorf("expected common prefix %v, got %v", tc.prefix, p)
			}
		})
	}
}

func TestTreeRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vdoc.selection")
	defer teardown()
	//
	for i, s := range []Selection[string]{
		sel(),
		sel(P(0), "a"),
		sel(P(0), "a", P(1), "b", P(2, 0), "c", P(2, 3, 1), "d", P(5), "e"),
		sel(P(0, 0), "a", P(0, 1), "b", P(1), "c"),
	} {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			if got := ToTree(s).List(); !equal(got, s) {
				t.Errorf("tree round trip: expected %v, got %v", s, got)
			}
			if got := ToTree2(s).List(); !equal(got, s) {
				t.Errorf("tree2 round trip: expected %v, got %v", s, got)
			}
		})
	}
}

func TestTree2Collapses(t *testing.T) {
	t2 := ToTree2(sel(P(0), "a", P(1, 0), "b", P(1, 1), "c"))
	if len(t2) != 2 {
		t.Fatalf("expected 2 branches, got %v", t2)
	}
	if !t2[0].IsLeaf || t2[0].Node != "a" {
		t.Errorf("expected first branch to be leaf a, is %v", t2[0])
	}
	if t2[1].IsLeaf || len(t2[1].Sub) != 2 || !t2[1].Sub[1].Path.Equal(P(1)) {
		t.Errorf("expected second branch to hold 2 sub-entries, is %v", t2[1])
	}
}

func TestSliced(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vdoc.selection")
	defer teardown()
	//
	children := []string{"c0", "c1", "c2", "c3", "c4", "c5", "c6", "c7"}
	s := sel(P(0), "c0", P(1), "c1", P(2), "c2", P(4), "c4", P(5, 1), "x", P(6), "c6", P(7), "c7")
	sliced := ToSliced(s)
	expected := "[0:3] (4, c4) (5, [((1,), x)]) [6:8]"
	if got := fmt.Sprintf("%v %v %v %v", sliced[0], sliced[1], sliced[2], sliced[3]); got != expected || len(sliced) != 4 {
		t.Errorf("expected sliced tree %s, got %v", expected, sliced)
	}
	back := sliced.Expand(func(i int) string { return children[i] })
	if !equal(back, s) {
		t.Errorf("expected expansion to reconstruct %v, got %v", s, back)
	}
	desc := sliced.Descending()
	if desc[0].Start != 6 || desc[3].Start != 0 {
		t.Errorf("expected descending order, got %v", desc)
	}
}

func TestSlicedSingleRun(t *testing.T) {
	s := ToSliced(sel(P(3), "a"))
	if len(s) != 1 || s[0].Kind != SingleChild || s[0].Node != "a" {
		t.Errorf("expected single child item, got %v", s)
	}
}

// ---------------------------------------------------------------------------

func P(x ...int) Path {
	return Path(x)
}

func sel(args ...interface{}) Selection[string] {
	var s Selection[string]
	for i := 0; i+1 < len(args); i += 2 {
		s = append(s, Entry[string]{Path: args[i].(Path), Node: args[i+1].(string)})
	}
	return s
}

func equal(a, b Selection[string]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Path.Equal(b[i].Path) || a[i].Node != b[i].Node {
			return false
		}
	}
	return true
}
