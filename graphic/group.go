package graphic

import (
	"fmt"

	"github.com/npillmayer/vdoc/undo"
)

// Group is an editable compound without properties of its own.
type Group struct {
	editable
}

// NewGroup creates a group of detached objects.
func NewGroup(objs ...Object) *Group {
	g := &Group{}
	g.init(g)
	for _, obj := range objs {
		assertThat(!IsAttached(obj), "new group: %s: %v", describe(obj), ErrAttached)
		g.node.AddChild(obj.TreeNode())
	}
	return g
}

// Kind is KindGroup.
func (g *Group) Kind() Kind { return KindGroup }

// Duplicate creates a detached deep copy.
func (g *Group) Duplicate() Object {
	dup := NewGroup()
	g.duplicateChildren(&dup.compound)
	return dup
}

// Blend blends children pairwise with the children of another group.
func (g *Group) Blend(other Object, w1, w2 float64) (Object, error) {
	o, ok := other.(*Group)
	if !ok {
		return nil, fmt.Errorf("%s with %s: %w", describe(g), describe(other), ErrBlendMismatch)
	}
	children, err := g.blendChildren(o, w1, w2)
	if err != nil {
		return nil, err
	}
	return NewGroup(children...), nil
}

// Ungroup detaches all children and returns them.
func (g *Group) Ungroup() ([]Object, undo.Entry) {
	objs := g.Children()
	return objs, g.removeSlice(0, len(objs))
}

// Save calls v.BeginGroup, saves the children and calls v.EndGroup.
func (g *Group) Save(v Visitor) error {
	if err := v.BeginGroup(g); err != nil {
		return err
	}
	if err := g.saveChildren(v); err != nil {
		return err
	}
	return v.EndGroup(g)
}

// --- Layer -----------------------------------------------------------------

// Layer is a top-level compound of a document.
type Layer struct {
	editable
	name      string
	visible   bool
	printable bool
}

// NewLayer creates a visible and printable layer.
func NewLayer(name string) *Layer {
	l := &Layer{name: name, visible: true, printable: true}
	l.init(l)
	return l
}

// Kind is KindLayer.
func (l *Layer) Kind() Kind { return KindLayer }

// Name returns the name of the layer.
func (l *Layer) Name() string { return l.name }

// IsVisible tells if the layer is shown.
func (l *Layer) IsVisible() bool { return l.visible }

// IsPrintable tells if the layer is output by savers.
func (l *Layer) IsPrintable() bool { return l.printable }

// SetName renames the layer.
func (l *Layer) SetName(name string) undo.Entry {
	old := l.name
	if old == name {
		return undo.Null
	}
	l.name = name
	notifyChanged(l)
	return undo.New(func() undo.Entry { return l.SetName(old) })
}

// SetVisible shows or hides the layer.
func (l *Layer) SetVisible(visible bool) undo.Entry {
	old := l.visible
	if old == visible {
		return undo.Null
	}
	l.visible = visible
	notifyChanged(l)
	return undo.New(func() undo.Entry { return l.SetVisible(old) })
}

// SetPrintable includes or excludes the layer from output.
func (l *Layer) SetPrintable(printable bool) undo.Entry {
	old := l.printable
	if old == printable {
		return undo.Null
	}
	l.printable = printable
	notifyChanged(l)
	return undo.New(func() undo.Entry { return l.SetPrintable(old) })
}

// Duplicate creates a detached deep copy.
func (l *Layer) Duplicate() Object {
	dup := NewLayer(l.name)
	dup.visible, dup.printable = l.visible, l.printable
	l.duplicateChildren(&dup.compound)
	return dup
}

// Blend is not supported for layers.
func (l *Layer) Blend(other Object, w1, w2 float64) (Object, error) {
	return nil, fmt.Errorf("%s: %w", describe(l), ErrBlendMismatch)
}

// Save calls v.BeginLayer, saves the children and calls v.EndLayer.
func (l *Layer) Save(v Visitor) error {
	if err := v.BeginLayer(l); err != nil {
		return err
	}
	if err := l.saveChildren(v); err != nil {
		return err
	}
	return v.EndLayer(l)
}

// --- Root ------------------------------------------------------------------

// Root is the topmost compound of a document. Its children are the layers.
type Root struct {
	editable
	doc *Document
}

func newRoot(doc *Document) *Root {
	r := &Root{doc: doc}
	r.init(r)
	return r
}

// Kind is KindRoot.
func (r *Root) Kind() Kind { return KindRoot }

// Document returns the document r belongs to.
func (r *Root) Document() *Document { return r.doc }

// Layers returns the layers of the document.
func (r *Root) Layers() []*Layer {
	layers := make([]*Layer, 0, r.Len())
	for _, ch := range r.Children() {
		if l, ok := ch.(*Layer); ok {
			layers = append(layers, l)
		}
	}
	return layers
}

// Duplicate copies all layers into a new root, not belonging to any
// document.
func (r *Root) Duplicate() Object {
	dup := newRoot(nil)
	r.duplicateChildren(&dup.compound)
	return dup
}

// Blend is not supported for the root.
func (r *Root) Blend(other Object, w1, w2 float64) (Object, error) {
	return nil, fmt.Errorf("%s: %w", describe(r), ErrBlendMismatch)
}

// Save saves all layers.
func (r *Root) Save(v Visitor) error {
	return r.saveChildren(v)
}
