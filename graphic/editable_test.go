package graphic

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/vdoc/geom"
	"github.com/npillmayer/vdoc/selection"
	"github.com/npillmayer/vdoc/undo"
)

func TestInsertRemove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vdoc.graphic")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	g := NewGroup()
	objs := rects(3)
	sel, u, err := g.Insert(objs, Path{0})
	if err != nil {
		t.Fatal(err)
	}
	if len(sel) != 3 || !sel[2].Path.Equal(Path{2}) || sel[2].Node != objs[2] {
		t.Errorf("expected selection of 3 inserted objects, have %v", sel)
	}
	if !sameObjects(g, objs...) {
		t.Fatalf("expected group to hold the inserted objects in order")
	}
	r, err := g.RemoveObjects(Selection{sel[0], sel[2]})
	if err != nil {
		t.Fatal(err)
	}
	if !sameObjects(g, objs[1]) {
		t.Errorf("expected only middle object to remain, have %v", g)
	}
	if IsAttached(objs[0]) {
		t.Errorf("expected removed object to be detached")
	}
	undo.Apply(r)
	if !sameObjects(g, objs...) {
		t.Errorf("expected undo to restore all objects, have %v", g)
	}
	undo.Apply(u)
	if g.Len() != 0 {
		t.Errorf("expected undo of insert to leave group empty, have %d children", g.Len())
	}
}

func TestInsertBeyondEndAppends(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vdoc.graphic")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	g := NewGroup(rects(2)...)
	x := rect(100)
	sel, _, err := g.Insert([]Object{x}, Path{17})
	if err != nil {
		t.Fatal(err)
	}
	if g.Child(2) != x || !sel[0].Path.Equal(Path{2}) {
		t.Errorf("expected insert beyond end to append, have %v", sel)
	}
	if _, _, err = g.Insert([]Object{x}, Path{0}); !errors.Is(err, ErrAttached) {
		t.Errorf("expected inserting an attached object to fail, have %v", err)
	}
}

func TestInsertNested(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vdoc.graphic")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	inner := NewGroup(rects(2)...)
	l := NewLayer("L")
	l.Insert([]Object{rect(0), inner}, nil)
	x := rect(100)
	sel, _, err := l.Insert([]Object{x}, Path{1, 1})
	if err != nil {
		t.Fatal(err)
	}
	if inner.Child(1) != x || !sel[0].Path.Equal(Path{1, 1}) {
		t.Errorf("expected x at (1,1), have %v", sel)
	}
	if _, _, err = l.Insert([]Object{rect(0)}, Path{0, 0}); !errors.Is(err, ErrNotEditable) {
		t.Errorf("expected insert into primitive to fail, have %v", err)
	}
}

func TestMoveToBottomNoOp(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vdoc.graphic")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	g := NewGroup()
	sel, _, err := g.Insert(rects(3), Path{0})
	if err != nil {
		t.Fatal(err)
	}
	before := dump(g)
	newsel, u, err := g.MoveToBottom(sel)
	if err != nil {
		t.Fatal(err)
	}
	if !u.IsNull() {
		t.Errorf("expected moving everything to the bottom to be a no-op, have %v", u)
	}
	if len(newsel) != 3 || !newsel[0].Path.Equal(Path{0}) {
		t.Errorf("expected unchanged selection, have %v", newsel)
	}
	if dump(g) != before {
		t.Errorf("expected group to be unchanged")
	}
}

func TestMoveToTop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vdoc.graphic")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	objs := rects(4)
	a, b, c, d := objs[0], objs[1], objs[2], objs[3]
	g := NewGroup(objs...)
	sel := append(selection.Build(0, a), selection.Build(2, c)...)
	newsel, u, err := g.MoveToTop(sel)
	if err != nil {
		t.Fatal(err)
	}
	if !sameObjects(g, b, d, a, c) {
		t.Errorf("expected order b d a c, have %v", g)
	}
	if len(newsel) != 2 || !newsel[0].Path.Equal(Path{2}) || newsel[0].Node != a ||
		!newsel[1].Path.Equal(Path{3}) || newsel[1].Node != c {
		t.Errorf("expected new selection [(2) a, (3) c], have %v", newsel)
	}
	undo.Apply(u)
	if !sameObjects(g, objs...) {
		t.Errorf("expected undo to restore order, have %v", g)
	}
	newsel, _, _ = g.MoveToBottom(selection.Build(3, d))
	if !sameObjects(g, d, a, b, c) || !newsel[0].Path.Equal(Path{0}) {
		t.Errorf("expected d at bottom, have %v", g)
	}
}

func TestMoveUpDown(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vdoc.graphic")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	objs := rects(5)
	a, b, c, d, e := objs[0], objs[1], objs[2], objs[3], objs[4]
	g := NewGroup(objs...)
	sel := append(selection.Range(0, []Object{a, b}), selection.Build(3, d)...)
	newsel, u, err := g.MoveUp(sel)
	if err != nil {
		t.Fatal(err)
	}
	if !sameObjects(g, c, a, b, e, d) {
		t.Errorf("expected order c a b e d, have %v", g)
	}
	expected := []Path{{1}, {2}, {4}}
	for i, p := range expected {
		if !newsel[i].Path.Equal(p) {
			t.Errorf("expected entry #%d at %v, have %v", i, p, newsel[i].Path)
		}
	}
	undo.Apply(u)
	if !sameObjects(g, objs...) {
		t.Fatalf("expected undo to restore order, have %v", g)
	}
	sel = append(selection.Range(1, []Object{b, c}), selection.Build(4, e)...)
	if _, _, err = g.MoveDown(sel); err != nil {
		t.Fatal(err)
	}
	if !sameObjects(g, b, c, a, e, d) {
		t.Errorf("expected order b c a e d, have %v", g)
	}
	_, u, _ = g.MoveDown(selection.Build(0, b))
	if !u.IsNull() {
		t.Errorf("expected moving the bottom-most object down to be a no-op")
	}
}

func TestMoveRemapsSubSelections(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vdoc.graphic")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	x, y := rect(0), rect(100)
	g1, g2 := rect(20), rect(40)
	grp := NewGroup(g1, g2)
	l := NewLayer("L")
	l.Insert([]Object{x, grp, y}, nil)
	sel := Selection{
		{Path: Path{0}, Node: x},
		{Path: Path{1, 0}, Node: g1},
	}
	newsel, _, err := l.MoveToTop(sel)
	if err != nil {
		t.Fatal(err)
	}
	if !sameObjects(l, grp, y, x) || !sameObjects(grp, g2, g1) {
		t.Fatalf("unexpected order: %v", l)
	}
	if len(newsel) != 2 || !newsel[0].Path.Equal(Path{0, 1}) || !newsel[1].Path.Equal(Path{2}) {
		t.Errorf("expected selection [(0,1) (2)], have %v", newsel)
	}
	if err := l.check(newsel); err != nil {
		t.Errorf("expected new selection to address the moved objects: %v", err)
	}
}

func TestDuplicateObjects(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vdoc.graphic")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	objs := rects(3)
	g := NewGroup(objs...)
	sel := append(selection.Build(0, objs[0]), selection.Build(2, objs[2])...)
	dups, u, err := g.DuplicateObjects(sel, geom.Pt(5, 5))
	if err != nil {
		t.Fatal(err)
	}
	if g.Len() != 5 || g.Child(0) != objs[0] || g.Child(2) != objs[1] || g.Child(3) != objs[2] {
		t.Fatalf("expected copies behind originals, have %v", g)
	}
	if len(dups) != 2 || !dups[0].Path.Equal(Path{1}) || !dups[1].Path.Equal(Path{4}) {
		t.Errorf("expected copies at (1) and (4), have %v", dups)
	}
	dup := dups[0].Node
	if dup.ID() == objs[0].ID() {
		t.Errorf("expected copy to have an identity of its own")
	}
	if !offsetOf(dup).Near(offsetOf(objs[0]).Add(geom.Pt(5, 5))) {
		t.Errorf("expected copy to be translated by (5,5), is at %v", offsetOf(dup))
	}
	undo.Apply(u)
	if !sameObjects(g, objs...) {
		t.Errorf("expected undo to remove copies, have %v", g)
	}
}

func TestReplaceChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vdoc.graphic")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	objs := rects(2)
	g := NewGroup(objs...)
	x := rect(100)
	u, err := g.ReplaceChild(objs[1], x)
	if err != nil {
		t.Fatal(err)
	}
	if !sameObjects(g, objs[0], x) || IsAttached(objs[1]) {
		t.Errorf("expected x to replace second child, have %v", g)
	}
	undo.Apply(u)
	if !sameObjects(g, objs...) || IsAttached(x) {
		t.Errorf("expected undo to restore second child, have %v", g)
	}
	if _, err = g.ReplaceChild(x, rect(0)); !errors.Is(err, ErrStaleSelection) {
		t.Errorf("expected replacing a non-child to fail, have %v", err)
	}
}

func TestStaleSelection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vdoc.graphic")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	objs := rects(3)
	g := NewGroup(objs...)
	sel := selection.Build(1, objs[2])
	if _, err := g.RemoveObjects(sel); !errors.Is(err, ErrStaleSelection) {
		t.Errorf("expected stale selection to be rejected, have %v", err)
	}
	sel = selection.Build(7, objs[2])
	if _, _, err := g.MoveUp(sel); !errors.Is(err, ErrStaleSelection) {
		t.Errorf("expected out of range selection to be rejected, have %v", err)
	}
	if !sameObjects(g, objs...) {
		t.Errorf("expected group to be unchanged")
	}
}

// A fault is injected into the n-th child of a layer. As children are
// processed in descending order, removal fails after 3-n successful
// sub-steps.
func TestRemoveObjectsAtomicity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vdoc.graphic")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	for n := 0; n < 4; n++ {
		l := NewLayer("L")
		var sel Selection
		for i := 0; i < 4; i++ {
			var c Compound
			if i == n {
				c = newBrittle(rect(0), rect(20))
			} else {
				c = NewGroup(rect(0), rect(20))
			}
			l.Insert([]Object{c}, nil)
			sel = append(sel, selection.Entry[Object]{Path: Path{i, 1}, Node: c.Child(1)})
		}
		before := dump(l)
		_, err := l.RemoveObjects(sel)
		if !errors.Is(err, errFault) {
			t.Fatalf("n=%d: expected injected fault, have %v", n, err)
		}
		if after := dump(l); after != before {
			t.Errorf("n=%d: expected layer to be unchanged\nbefore:\n%s\nafter:\n%s", n, before, after)
		}
		if l.IsBatching() {
			t.Errorf("n=%d: expected batch to be closed after rollback", n)
		}
	}
}

func TestCompoundTranslateBatches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vdoc.graphic")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	doc := NewDocument()
	g := NewGroup(rects(3)...)
	if _, err := doc.Insert([]Object{g}, nil); err != nil {
		t.Fatal(err)
	}
	notified := 0
	doc.OnChange(func(*Document) { notified++ })
	u := g.Translate(geom.Pt(1, 2))
	if notified != 1 {
		t.Errorf("expected one notification for translating a group, have %d", notified)
	}
	if !offsetOf(g.Child(2)).Near(geom.Pt(41, 2)) {
		t.Errorf("expected third child at (41,2), is at %v", offsetOf(g.Child(2)))
	}
	undo.Apply(u)
	if notified != 2 {
		t.Errorf("expected one notification for undo, have %d", notified-1)
	}
	if !offsetOf(g.Child(2)).Near(geom.Pt(40, 0)) {
		t.Errorf("expected undo to move third child back, is at %v", offsetOf(g.Child(2)))
	}
}

func TestCompoundUnchangedIsNull(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vdoc.graphic")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	g := NewGroup(NewGroup(), NewGroup())
	if u := g.Translate(geom.Pt(5, 5)); !u.IsNull() {
		t.Errorf("expected moving a group of empty groups to change nothing")
	}
	doc := NewDocument()
	if _, err := doc.Insert([]Object{g}, nil); err != nil {
		t.Fatal(err)
	}
	doc.ClearEdited()
	text := doc.UndoText()
	if err := doc.Translate(SelectionOf(g), geom.Pt(5, 5)); err != nil {
		t.Fatal(err)
	}
	if doc.WasEdited() || doc.UndoText() != text {
		t.Errorf("expected no undo step for a no-op move, undo text is %q", doc.UndoText())
	}
}
