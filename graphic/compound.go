package graphic

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/vdoc/geom"
	"github.com/npillmayer/vdoc/style"
	"github.com/npillmayer/vdoc/undo"
)

// compound implements the parts common to all objects with children.
// It does not offer any re-arrangement of children, see editable.
type compound struct {
	Base
	batch int  // nesting level of batches
	dirty bool // children changed during the current batch
	// onBatchEnd, if set, is called at the end of the outermost batch,
	// before the parent is notified.
	onBatchEnd func()
}

// IsCompound is true.
func (c *compound) IsCompound() bool { return true }

// Properties of compounds are the properties of their children.
func (c *compound) Properties() *style.Cascade { return nil }

func (c *compound) self() Compound {
	return c.node.Payload.(Compound)
}

// Len returns the number of children.
func (c *compound) Len() int {
	return c.node.ChildCount()
}

// Child returns the child at position i. i has to be in range.
func (c *compound) Child(i int) Object {
	ch, ok := c.node.Child(i)
	assertThat(ok, "child index %d out of range [0…%d)", i, c.node.ChildCount())
	return ch.Payload
}

// Children returns the children of the compound.
func (c *compound) Children() []Object {
	nodes := c.node.Children()
	objs := make([]Object, len(nodes))
	for i, n := range nodes {
		objs[i] = n.Payload
	}
	return objs
}

// IsBatching is true between BeginBatch and the matching EndBatch.
func (c *compound) IsBatching() bool {
	return c.batch > 0
}

// BeginBatch starts a batch of changes of children.
func (c *compound) BeginBatch() undo.Entry {
	c.batch++
	return undo.New(c.EndBatch)
}

// EndBatch ends a batch of changes. At the end of the outermost batch, the
// parent is notified if anything has changed.
func (c *compound) EndBatch() undo.Entry {
	assertThat(c.batch > 0, "%s: EndBatch without BeginBatch", describe(c.self()))
	c.batch--
	if c.batch == 0 {
		if c.onBatchEnd != nil {
			c.onBatchEnd()
		}
		if c.dirty {
			c.dirty = false
			notifyChanged(c.self())
		}
	}
	return undo.New(c.BeginBatch)
}

// ChildChanged propagates the change of a child, or defers it to the end
// of the current batch.
func (c *compound) ChildChanged(child Object) {
	c.changed()
}

func (c *compound) changed() {
	if c.batch > 0 {
		c.dirty = true
		return
	}
	notifyChanged(c.self())
}

// --- Primitive child operations --------------------------------------------

// insertAt links objs into the list of children at position idx and
// returns the inverse operation.
func (c *compound) insertAt(idx int, objs ...Object) undo.Entry {
	if len(objs) == 0 {
		return undo.Null
	}
	assertThat(idx >= 0 && idx <= c.Len(), "insert position %d out of range [0…%d]", idx, c.Len())
	for _, obj := range objs {
		assertThat(!IsAttached(obj), "%s: insert %s: %v", describe(c.self()), describe(obj), ErrAttached)
		c.node.InsertChildAt(idx, obj.TreeNode())
		idx++
	}
	c.changed()
	from := idx - len(objs)
	return undo.New(func() undo.Entry { return c.removeSlice(from, from+len(objs)) })
}

// removeSlice unlinks the children at positions from…to-1 and returns the
// inverse operation.
func (c *compound) removeSlice(from, to int) undo.Entry {
	if from == to {
		return undo.Null
	}
	nodes := c.node.RemoveSlice(from, to)
	objs := make([]Object, len(nodes))
	for i, n := range nodes {
		objs[i] = n.Payload
	}
	c.changed()
	return undo.New(func() undo.Entry { return c.insertAt(from, objs...) })
}

// replaceAt replaces the child at position idx and returns the inverse
// operation.
func (c *compound) replaceAt(idx int, obj Object) undo.Entry {
	assertThat(!IsAttached(obj), "%s: replace with %s: %v", describe(c.self()), describe(obj), ErrAttached)
	old := c.node.ReplaceChildAt(idx, obj.TreeNode()).Payload
	c.changed()
	return undo.New(func() undo.Entry { return c.replaceAt(idx, old) })
}

// permute re-orders the children: position k receives the child at
// position perm[k]. The identity permutation results in undo.Null.
func (c *compound) permute(perm []int) undo.Entry {
	identity := true
	for k, p := range perm {
		if k != p {
			identity = false
			break
		}
	}
	if identity {
		return undo.Null
	}
	c.node.Permute(perm)
	c.changed()
	inverse := make([]int, len(perm))
	for k, p := range perm {
		inverse[p] = k
	}
	return undo.New(func() undo.Entry { return c.permute(inverse) })
}

// --- Operations applied to every child -------------------------------------

// forAll calls f for every child within a batch. Undo entries are combined,
// with the batch bracketing the undo as well. If no child changed, the
// result is undo.Null.
func (c *compound) forAll(f func(Object) undo.Entry) undo.Entry {
	entries := []undo.Entry{c.BeginBatch()}
	changed := false
	for _, ch := range c.Children() {
		u := f(ch)
		changed = changed || !u.IsNull()
		entries = append(entries, u)
	}
	entries = append(entries, c.EndBatch())
	if !changed {
		return undo.Null
	}
	return undo.Compose(entries...)
}

// Translate moves all children by offset.
func (c *compound) Translate(offset geom.Point) undo.Entry {
	return c.forAll(func(o Object) undo.Entry { return o.Translate(offset) })
}

// Transform applies t to all children.
func (c *compound) Transform(t geom.Trafo) undo.Entry {
	return c.forAll(func(o Object) undo.Entry { return o.Transform(t) })
}

// SetProperties sets properties on all children.
func (c *compound) SetProperties(kv ...style.KeyValue) undo.Entry {
	return c.forAll(func(o Object) undo.Entry { return o.SetProperties(kv...) })
}

// AddStyle adds a style to all children.
func (c *compound) AddStyle(l *style.Layer) undo.Entry {
	return c.forAll(func(o Object) undo.Entry { return o.AddStyle(l) })
}

// duplicateChildren appends copies of the children of c to dup.
func (c *compound) duplicateChildren(dup *compound) {
	for _, ch := range c.Children() {
		dup.node.AddChild(ch.Duplicate().TreeNode())
	}
}

// blendChildren blends children pairwise. Surplus children of the longer
// compound are ignored.
func (c *compound) blendChildren(other Compound, w1, w2 float64) ([]Object, error) {
	n := min(c.Len(), other.Len())
	blended := make([]Object, n)
	for i := 0; i < n; i++ {
		b, err := blendObjects(c.Child(i), other.Child(i), w1, w2)
		if err != nil {
			return nil, err
		}
		blended[i] = b
	}
	return blended, nil
}

func (c *compound) saveChildren(v Visitor) error {
	for _, ch := range c.Children() {
		if err := ch.Save(v); err != nil {
			return err
		}
	}
	return nil
}

func (c *compound) String() string {
	var b strings.Builder
	b.WriteString(describe(c.self()))
	b.WriteString("[")
	for i, ch := range c.Children() {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(fmt.Sprint(ch))
	}
	b.WriteString("]")
	return b.String()
}

// check validates sel and verifies that every entry still addresses the
// node it names, relative to c.
func (c *compound) check(sel Selection) error {
	if err := sel.Validate(); err != nil {
		return fmt.Errorf("%s: %w", describe(c.self()), err)
	}
	for _, e := range sel {
		n, ok := c.node.At(e.Path)
		if !ok || n.Payload != e.Node {
			return fmt.Errorf("%s: entry %v: %w", describe(c.self()), e.Path, ErrStaleSelection)
		}
	}
	return nil
}

// childAt returns the child at position at[0], or an error if there is no
// such child.
func (c *compound) childAt(at Path) (Object, error) {
	if len(at) == 0 {
		return nil, fmt.Errorf("%s: empty path: %w", describe(c.self()), ErrStaleSelection)
	}
	ch, ok := c.node.Child(at[0])
	if !ok {
		return nil, fmt.Errorf("%s: no child at %v: %w", describe(c.self()), at, ErrStaleSelection)
	}
	return ch.Payload, nil
}

func editableChild(obj Object) (Editable, error) {
	ed, ok := obj.(Editable)
	if !ok {
		return nil, fmt.Errorf("%s: %w", describe(obj), ErrNotEditable)
	}
	return ed, nil
}
