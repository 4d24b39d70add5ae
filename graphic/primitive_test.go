package graphic

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/vdoc/geom"
	"github.com/npillmayer/vdoc/style"
	"github.com/npillmayer/vdoc/undo"
)

func TestTransformUndoRestoresTrafo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vdoc.graphic")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	r := NewRectangle(3, 7, 10, 20, nil)
	before := r.Trafo()
	u := r.Transform(geom.Rotation(math.Pi / 3))
	u = undo.Compose(u, r.Translate(geom.Pt(0.1, 0.7)))
	undo.Apply(u)
	if r.Trafo() != before {
		t.Errorf("expected exact trafo %v after undo, have %v", before, r.Trafo())
	}
	c := r.Corners()
	if !c[2].Near(geom.Pt(13, 27)) {
		t.Errorf("expected upper right corner at (13,27), have %v", c[2])
	}
}

func TestPolyLineTransform(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vdoc.graphic")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	pl := NewPolyLine([]geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10)}, true, nil)
	u := pl.Transform(geom.Scaling(2, 3))
	if p := pl.Points()[2]; !p.Near(geom.Pt(20, 30)) {
		t.Errorf("expected (20,30), have %v", p)
	}
	undo.Apply(u)
	if p := pl.Points()[2]; p != geom.Pt(10, 10) {
		t.Errorf("expected undo to restore (10,10), have %v", p)
	}
	open := NewPolyLine(pl.Points(), false, nil)
	if _, err := pl.Blend(open, 0.5, 0.5); !errors.Is(err, ErrBlendMismatch) {
		t.Errorf("expected closed and open poly-lines not to blend, have %v", err)
	}
	short := NewPolyLine(pl.Points()[:2], true, nil)
	if _, err := pl.Blend(short, 0.5, 0.5); !errors.Is(err, ErrBlendMismatch) {
		t.Errorf("expected poly-lines of different length not to blend, have %v", err)
	}
	b, err := pl.Blend(NewPolyLine(pl.Points(), true, nil), 0.25, 0.75)
	if err != nil {
		t.Fatal(err)
	}
	if p := b.(*PolyLine).Points()[1]; !p.Near(geom.Pt(10, 0)) {
		t.Errorf("expected blend of equal poly-lines to be equal, have %v", p)
	}
}

func TestDuplicateIsIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vdoc.graphic")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	e := NewEllipse(50, 50, 10, 5, nil)
	e.SetProperties(style.KeyValue{Key: style.LineWidth, Value: "2"})
	dup := e.Duplicate().(*Ellipse)
	if dup.ID() == e.ID() {
		t.Errorf("expected duplicate to have an identity of its own")
	}
	if dup.Center() != e.Center() || dup.Properties().Get(style.LineWidth) != "2" {
		t.Errorf("expected duplicate to look like the original, have %v", dup)
	}
	dup.SetProperties(style.KeyValue{Key: style.LineWidth, Value: "5"})
	if e.Properties().Get(style.LineWidth) != "2" {
		t.Errorf("expected properties of original to be unaffected by duplicate")
	}
	if IsAttached(dup) {
		t.Errorf("expected duplicate to be detached")
	}
}

func TestBlendPrimitives(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vdoc.graphic")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	e1, e2 := NewEllipse(0, 0, 10, 10, nil), NewEllipse(100, 0, 30, 10, nil)
	b, err := e1.Blend(e2, 0.5, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if c := b.(*Ellipse).Center(); !c.Near(geom.Pt(50, 0)) {
		t.Errorf("expected center (50,0), have %v", c)
	}
	if _, err = e1.Blend(rect(0), 0.5, 0.5); !errors.Is(err, ErrBlendMismatch) {
		t.Errorf("expected ellipse and rectangle not to blend, have %v", err)
	}
	g1, g2 := NewGroup(rect(0), e1.Duplicate()), NewGroup(rect(100), e2.Duplicate())
	bg, err := g1.Blend(g2, 0.5, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if g := bg.(*Group); g.Len() != 2 || g.Child(1).Kind() != KindEllipse {
		t.Errorf("expected groups to blend child by child, have %v", bg)
	}
	bg, err = g1.Blend(NewGroup(rect(0)), 0.5, 0.5)
	if err != nil || bg.(*Group).Len() != 1 {
		t.Errorf("expected surplus children to be ignored, have %v, %v", bg, err)
	}
	if _, err = g1.Blend(rect(0), 0.5, 0.5); !errors.Is(err, ErrBlendMismatch) {
		t.Errorf("expected group and rectangle not to blend, have %v", err)
	}
}

func TestLayerAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vdoc.graphic")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	doc := NewDocument()
	l, _ := doc.Layer(0)
	err := doc.Edit("Layer Attributes", func() (undo.Entry, error) {
		return undo.Compose(l.SetName("Sketch"), l.SetVisible(false), l.SetPrintable(false)), nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if l.Name() != "Sketch" || l.IsVisible() || l.IsPrintable() {
		t.Errorf("expected changed layer attributes, have %v", l)
	}
	doc.Undo()
	if l.Name() != "Layer 1" || !l.IsVisible() || !l.IsPrintable() {
		t.Errorf("expected undo to restore layer attributes, have %v", l)
	}
	if _, err := doc.Layer(3); !errors.Is(err, ErrNoLayer) {
		t.Errorf("expected missing layer to be reported, have %v", err)
	}
}
