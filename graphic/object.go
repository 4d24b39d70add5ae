package graphic

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/npillmayer/vdoc/geom"
	"github.com/npillmayer/vdoc/selection"
	"github.com/npillmayer/vdoc/style"
	"github.com/npillmayer/vdoc/tree"
	"github.com/npillmayer/vdoc/undo"
)

// Kind is the type of a graphic object.
type Kind int8

// Kinds of objects.
const (
	KindRectangle Kind = iota
	KindEllipse
	KindPolyLine
	KindGroup
	KindBlendGroup
	KindInterpolation
	KindLayer
	KindRoot
)

var kindNames = [...]string{"rectangle", "ellipse", "polyline", "group", "blendgroup",
	"interpolation", "layer", "root"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "<unknown>"
	}
	return kindNames[k]
}

// Object is the interface every node of a drawing implements.
//
// Methods returning undo.Entry change the object. Applying the entry
// reverts the change.
type Object interface {
	TreeNode() *tree.Node[Object] // the node linking the object into the tree
	ID() uuid.UUID                // unique identity, preserved by undo, renewed by Duplicate
	Kind() Kind
	IsCompound() bool
	// Properties returns the property cascade of the object. Compounds
	// without properties of their own return nil.
	Properties() *style.Cascade
	// Duplicate creates a detached deep copy of the object.
	Duplicate() Object
	Translate(offset geom.Point) undo.Entry
	Transform(t geom.Trafo) undo.Entry
	SetProperties(kv ...style.KeyValue) undo.Entry
	AddStyle(l *style.Layer) undo.Entry
	// Blend creates a new object in between the receiver and other.
	// Weight w1 is applied to the receiver, w2 to other. If the objects are
	// not compatible, an error wrapping ErrBlendMismatch is returned.
	Blend(other Object, w1, w2 float64) (Object, error)
	Save(v Visitor) error
}

// Selection is a selection of objects, see package selection.
type Selection = selection.Selection[Object]

// Path is the address of an object relative to a compound.
type Path = selection.Path

// Compound is an object with children.
type Compound interface {
	Object
	Len() int
	Child(i int) Object
	Children() []Object
	// ChildChanged is called by a child after it has changed.
	ChildChanged(child Object)
	// BeginBatch and EndBatch bracket a series of changes of children.
	// The compound propagates changes of its children to its own parent
	// once, at the end of the outermost batch. Both return the inverse
	// operation.
	BeginBatch() undo.Entry
	EndBatch() undo.Entry
	IsBatching() bool
}

// Editable is a compound whose children may be re-arranged by clients.
//
// Selections handed to the methods of Editable are relative to the
// compound. Methods returning a selection return the selection which
// corresponds to the objects of the argument after the operation.
type Editable interface {
	Compound
	Insert(objs []Object, at Path) (Selection, undo.Entry, error)
	Remove(obj Object, at Path) (undo.Entry, error)
	RemoveSlice(from, to int) (undo.Entry, error)
	RemoveObjects(sel Selection) (undo.Entry, error)
	ReplaceChild(old, new Object) (undo.Entry, error)
	MoveToTop(sel Selection) (Selection, undo.Entry, error)
	MoveToBottom(sel Selection) (Selection, undo.Entry, error)
	MoveUp(sel Selection) (Selection, undo.Entry, error)
	MoveDown(sel Selection) (Selection, undo.Entry, error)
	DuplicateObjects(sel Selection, offset geom.Point) (Selection, undo.Entry, error)
}

// Ungroupable is implemented by compounds which may be dissolved into a
// list of objects. Ungroup removes all children from the compound and
// returns them, in order, together with the undo entry re-attaching them.
type Ungroupable interface {
	Compound
	Ungroup() ([]Object, undo.Entry)
}

// --- Base ------------------------------------------------------------------

// Base holds what all objects have in common. Concrete object types embed
// it and call init with themselves as argument.
type Base struct {
	node tree.Node[Object]
	id   uuid.UUID
}

func (b *Base) init(self Object) {
	b.node.Payload = self
	b.id = uuid.New()
}

// TreeNode returns the tree node of the object.
func (b *Base) TreeNode() *tree.Node[Object] {
	return &b.node
}

// ID returns the unique identity of the object.
func (b *Base) ID() uuid.UUID {
	return b.id
}

// --- Helpers ---------------------------------------------------------------

// Parent returns the compound obj is a child of, or nil.
func Parent(obj Object) Compound {
	p := obj.TreeNode().Parent()
	if p == nil {
		return nil
	}
	c, ok := p.Payload.(Compound)
	assertThat(ok, "parent of %v is not a compound", obj)
	return c
}

// DocumentOf returns the document obj is attached to, or nil.
func DocumentOf(obj Object) *Document {
	if r, ok := obj.TreeNode().Root().Payload.(*Root); ok {
		return r.doc
	}
	return nil
}

// PathOf returns the path from the document root to obj.
func PathOf(obj Object) Path {
	return Path(obj.TreeNode().Path())
}

// IsAttached returns true if obj is a child of some compound.
func IsAttached(obj Object) bool {
	return obj.TreeNode().Parent() != nil
}

// Index returns the position of obj within its parent, or -1.
func Index(obj Object) int {
	p := obj.TreeNode().Parent()
	if p == nil {
		return -1
	}
	return p.IndexOfChild(obj.TreeNode())
}

// notifyChanged propagates a change of obj to its parent, or to the
// document if obj is the root of a document.
func notifyChanged(obj Object) {
	if p := Parent(obj); p != nil {
		p.ChildChanged(obj)
		return
	}
	if r, ok := obj.(*Root); ok && r.doc != nil {
		r.doc.rootChanged()
	}
}

// SelectionOf creates a selection of objects attached to a common tree,
// addressed from the root of the tree.
func SelectionOf(objs ...Object) Selection {
	entries := make([]selection.Entry[Object], 0, len(objs))
	for _, obj := range objs {
		entries = append(entries, selection.Entry[Object]{Path: PathOf(obj), Node: obj})
	}
	return selection.Normalize(entries)
}

// Walk calls f for obj and all of its descendants, in depth-first order.
// Walking stops at the first error returned by f.
func Walk(obj Object, f func(Object) error) error {
	_, err := tree.NewWalker(obj.TreeNode()).TopDown(
		func(n, _ *tree.Node[Object], _ int) (*tree.Node[Object], error) {
			return nil, f(n.Payload)
		}).Promise()()
	return err
}

func describe(obj Object) string {
	if obj == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s#%s", obj.Kind(), obj.ID().String()[:8])
}
