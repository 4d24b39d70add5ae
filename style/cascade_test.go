package style

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/vdoc/undo"
)

func TestCascadeLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vdoc.style")
	defer teardown()
	//
	l1 := NewLayer(KeyValue{LineWidth, "2"})
	l2 := NewLayer(KeyValue{LineWidth, "3"}, KeyValue{LinePattern, "Red"})
	l3 := NewLayer(KeyValue{FillPattern, "blue"})
	c := NewCascade(l1, l2, l3)
	if p := c.Get(LineWidth); p != "2" {
		t.Errorf("expected line width from top layer to be 2, is %s", p)
	}
	if p := c.Get(LinePattern); p != "red" {
		t.Errorf("expected line pattern 'red' (lower case), is %s", p)
	}
	if p := c.Get(FontSize); p != "12" {
		t.Errorf("expected font size to default to 12, is %s", p)
	}
	if p := c.Get("no-such-property"); !p.IsEmpty() {
		t.Errorf("expected unknown property to be empty, is %s", p)
	}
}

func TestCascadeMemoInvalidation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vdoc.style")
	defer teardown()
	//
	shared := NewLayer(KeyValue{LineWidth, "1"}).AsDynamic("thin")
	c1 := NewCascade(shared)
	c2 := NewCascade(NewLayer(KeyValue{FillPattern, "red"}), shared)
	if c1.Get(LineWidth) != "1" || c2.Get(LineWidth) != "1" {
		t.Fatal("expected both cascades to see line width 1")
	}
	shared.Set(LineWidth, "0.5")
	if c1.Get(LineWidth) != "0.5" || c2.Get(LineWidth) != "0.5" {
		t.Errorf("expected change of shared layer to be visible everywhere, got %s and %s",
			c1.Get(LineWidth), c2.Get(LineWidth))
	}
}

func TestCascadeCopyOnWrite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vdoc.style")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	shared := NewLayer(KeyValue{LineWidth, "1"}, KeyValue{LinePattern, "green"}).AsDynamic("thin")
	other := NewCascade(shared)
	c := NewCascade(shared)
	before := c.String()
	u := c.Set(LineWidth, "4")
	if p, _ := shared.Get(LineWidth); p != "1" {
		t.Errorf("expected shared layer to remain unchanged, line width is %s", p)
	}
	if c.Get(LineWidth) != "4" || other.Get(LineWidth) != "1" {
		t.Errorf("expected only c to change, have %s and %s", c.Get(LineWidth), other.Get(LineWidth))
	}
	if c.Len() != 2 || c.Layers()[0].IsDynamic() {
		t.Errorf("expected new private layer on top, cascade is %v", c)
	}
	r := undo.Apply(u)
	if c.String() != before {
		t.Errorf("expected undo to restore %s, is %s", before, c)
	}
	if c.Get(LineWidth) != "1" {
		t.Errorf("expected undo to restore line width 1, is %s", c.Get(LineWidth))
	}
	undo.Apply(r)
	if c.Get(LineWidth) != "4" {
		t.Errorf("expected redo to set line width 4, is %s", c.Get(LineWidth))
	}
}

func TestCascadeSetWritesTopPrivate(t *testing.T) {
	shared := NewLayer(KeyValue{LineWidth, "1"}).AsDynamic("thin")
	top := NewLayer(KeyValue{FillPattern, "red"})
	c := NewCascade(top, shared)
	c.Set(LineWidth, "3")
	if p, _ := top.Get(LineWidth); p != "3" {
		t.Errorf("expected value to go to private top layer, top is %v", top)
	}
	if c.Len() != 1 {
		t.Errorf("expected shadowed shared layer to be compacted away, cascade is %v", c)
	}
}

func TestCascadeCompact(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vdoc.style")
	defer teardown()
	//
	l1 := NewLayer(KeyValue{LineWidth, "2"}, KeyValue{FillPattern, "red"})
	l2 := NewLayer(KeyValue{LineWidth, "3"})
	l3 := NewLayer(KeyValue{FillPattern, "blue"}, KeyValue{FontSize, "10"})
	l4 := NewLayer(KeyValue{FontSize, "14"})
	c := NewCascade(l1, l2, l3, l4)
	values := snapshot(c)
	u := c.Compact()
	if c.Len() != 2 {
		t.Errorf("expected 2 layers after compaction, have %d: %v", c.Len(), c)
	}
	for k, v := range values {
		if c.Get(k) != v {
			t.Errorf("expected %s to remain %s after compaction, is %s", k, v, c.Get(k))
		}
	}
	undo.Apply(u)
	if c.Len() != 4 {
		t.Errorf("expected undo to restore 4 layers, have %d", c.Len())
	}
}

func TestCascadeCondense(t *testing.T) {
	shared := NewLayer(KeyValue{LineWidth, "1"}).AsDynamic("thin")
	l1 := NewLayer(KeyValue{FillPattern, "red"})
	l2 := NewLayer(KeyValue{FontSize, "10"})
	l3 := NewLayer(KeyValue{LineCap, "round"})
	c := NewCascade(l1, l2, shared, l3)
	values := snapshot(c)
	u := c.Condense()
	if c.Len() != 3 {
		t.Errorf("expected 3 layers after condensing, have %d: %v", c.Len(), c)
	}
	for k, v := range values {
		if c.Get(k) != v {
			t.Errorf("expected %s to remain %s after condensing, is %s", k, v, c.Get(k))
		}
	}
	if l1.Len() != 1 {
		t.Errorf("expected original layer to remain untouched, is %v", l1)
	}
	undo.Apply(u)
	if c.Len() != 4 {
		t.Errorf("expected undo to restore 4 layers, have %d", c.Len())
	}
}

func TestCascadeDemoteAndNames(t *testing.T) {
	shared := NewLayer(KeyValue{LineWidth, "1"}).AsDynamic("thin")
	c := NewCascade(NewLayer(KeyValue{FillPattern, "red"}), shared)
	if names := c.DynamicStyleNames(); len(names) != 1 || names[0] != "thin" {
		t.Errorf("expected dynamic style names [thin], got %v", names)
	}
	u := c.Demote(shared)
	if c.Uses(shared) || len(c.DynamicStyleNames()) != 0 {
		t.Errorf("expected shared layer to be replaced by a private copy, cascade is %v", c)
	}
	if c.Get(LineWidth) != "1" {
		t.Errorf("expected demotion to keep line width 1, is %s", c.Get(LineWidth))
	}
	undo.Apply(u)
	if !c.Uses(shared) {
		t.Error("expected undo to restore the shared layer")
	}
}

func TestCascadeDuplicate(t *testing.T) {
	shared := NewLayer(KeyValue{LineWidth, "1"}).AsDynamic("thin")
	private := NewLayer(KeyValue{FillPattern, "red"})
	c := NewCascade(private, shared)
	d := c.Duplicate()
	if d.Layers()[1] != shared {
		t.Error("expected duplicate to share dynamic layer")
	}
	if d.Layers()[0] == private {
		t.Error("expected duplicate to copy private layer")
	}
	d.Set(FillPattern, "blue")
	if c.Get(FillPattern) != "red" {
		t.Errorf("expected original to keep fill red, is %s", c.Get(FillPattern))
	}
}

func TestCreateStyle(t *testing.T) {
	c := NewCascade(NewLayer(KeyValue{LineWidth, "5"}))
	l := c.CreateStyle()
	if p, _ := l.Get(LineWidth); p != "5" {
		t.Errorf("expected snapshot to hold line width 5, is %s", p)
	}
	if l.IsSet(FontSize) {
		t.Error("expected font properties to be skipped without a font")
	}
	l = c.CreateStyle(FillPattern)
	if l.Len() != 1 {
		t.Errorf("expected snapshot of a single property, got %v", l)
	}
}

// ---------------------------------------------------------------------------

func snapshot(c *Cascade) map[string]Property {
	m := make(map[string]Property)
	for _, k := range PropertyKeys() {
		m[k] = c.Get(k)
	}
	return m
}
