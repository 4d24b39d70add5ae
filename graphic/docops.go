package graphic

import (
	"fmt"

	"github.com/npillmayer/vdoc/geom"
	"github.com/npillmayer/vdoc/selection"
	"github.com/npillmayer/vdoc/style"
	"github.com/npillmayer/vdoc/undo"
)

// Document level edits. Every method runs as a transaction of its own
// (or as part of an enclosing transaction) and is recorded in the undo
// history. Selections are addressed from the root of the document, with
// the first path component selecting the layer.

// Insert inserts objs at path at. An empty path appends to the last
// layer, a path of length 1 appends to the layer at at[0].
func (d *Document) Insert(objs []Object, at Path) (Selection, error) {
	var sel Selection
	err := d.Edit("Create", func() (undo.Entry, error) {
		at = append(Path(nil), at...)
		switch len(at) {
		case 0:
			if d.root.Len() == 0 {
				return undo.Null, fmt.Errorf("insert: %w", ErrNoLayer)
			}
			at = Path{d.root.Len() - 1, d.root.Child(d.root.Len() - 1).(Compound).Len()}
		case 1:
			l, err := d.Layer(at[0])
			if err != nil {
				return undo.Null, err
			}
			at = append(at, l.Len())
		}
		if _, err := d.Layer(at[0]); err != nil {
			return undo.Null, err
		}
		s, u, err := d.root.Insert(objs, at)
		sel = s
		return u, err
	})
	return sel, err
}

// AppendLayer appends a new layer on top of all others.
func (d *Document) AppendLayer(name string) (*Layer, error) {
	l := NewLayer(name)
	err := d.Edit("New Layer", func() (undo.Entry, error) {
		return d.root.insertAt(d.root.Len(), l), nil
	})
	return l, err
}

// Remove deletes the selected objects.
func (d *Document) Remove(sel Selection) error {
	return d.Edit("Delete", func() (undo.Entry, error) {
		return d.root.RemoveObjects(sel)
	})
}

// MoveToTop moves the selected objects in front of their siblings.
func (d *Document) MoveToTop(sel Selection) (Selection, error) {
	return d.rearrange("Move to Top", sel, d.root.MoveToTop)
}

// MoveToBottom moves the selected objects behind their siblings.
func (d *Document) MoveToBottom(sel Selection) (Selection, error) {
	return d.rearrange("Move to Bottom", sel, d.root.MoveToBottom)
}

// MoveUp moves the selected objects one step towards the front.
func (d *Document) MoveUp(sel Selection) (Selection, error) {
	return d.rearrange("Move One Up", sel, d.root.MoveUp)
}

// MoveDown moves the selected objects one step towards the back.
func (d *Document) MoveDown(sel Selection) (Selection, error) {
	return d.rearrange("Move One Down", sel, d.root.MoveDown)
}

func (d *Document) rearrange(label string, sel Selection,
	op func(Selection) (Selection, undo.Entry, error)) (Selection, error) {
	//
	result := sel
	err := d.Edit(label, func() (undo.Entry, error) {
		s, u, err := op(sel)
		result = s
		return u, err
	})
	if err != nil {
		return sel, err
	}
	return result, nil
}

// Duplicate inserts copies of the selected objects, translated by offset,
// and returns the selection of the copies.
func (d *Document) Duplicate(sel Selection, offset geom.Point) (Selection, error) {
	var result Selection
	err := d.Edit("Duplicate", func() (undo.Entry, error) {
		s, u, err := d.root.DuplicateObjects(sel, offset)
		result = s
		return u, err
	})
	return result, err
}

// Translate moves the selected objects.
func (d *Document) Translate(sel Selection, offset geom.Point) error {
	return d.forSelection("Move Objects", sel, func(o Object) undo.Entry {
		return o.Translate(offset)
	})
}

// Transform applies t to the selected objects.
func (d *Document) Transform(sel Selection, t geom.Trafo) error {
	return d.forSelection("Transform", sel, func(o Object) undo.Entry {
		return o.Transform(t)
	})
}

// SetProperties sets properties of the selected objects.
func (d *Document) SetProperties(sel Selection, kv ...style.KeyValue) error {
	return d.forSelection("Set Properties", sel, func(o Object) undo.Entry {
		return o.SetProperties(kv...)
	})
}

// AddStyle applies the named style to the selected objects.
func (d *Document) AddStyle(sel Selection, name string) error {
	l, ok := d.registry.Lookup(name)
	if !ok {
		return fmt.Errorf("add style %q: %w", name, style.ErrUnknownStyle)
	}
	return d.forSelection("Add Style", sel, func(o Object) undo.Entry {
		return o.AddStyle(l)
	})
}

func (d *Document) forSelection(label string, sel Selection, f func(Object) undo.Entry) error {
	return d.Edit(label, func() (undo.Entry, error) {
		if err := d.root.check(sel); err != nil {
			return undo.Null, err
		}
		entries := make([]undo.Entry, 0, len(sel))
		for _, e := range sel {
			entries = append(entries, f(e.Node))
		}
		return undo.Compose(entries...), nil
	})
}

// Group wraps the selected objects into a new group. The group is
// inserted where the first selected object has been, within the
// innermost compound containing all selected objects. If the selection
// spans layers, the group is appended to the layer of the first object.
func (d *Document) Group(sel Selection) (Selection, error) {
	if len(sel) == 0 {
		return nil, nil
	}
	var result Selection
	err := d.Edit("Create Group", func() (undo.Entry, error) {
		if err := d.root.check(sel); err != nil {
			return undo.Null, err
		}
		at := groupPosition(d.root, sel)
		log := undo.NewLog()
		defer log.Rollback()
		u, err := d.root.RemoveObjects(sel)
		if err != nil {
			return undo.Null, err
		}
		log.Add(u)
		g := NewGroup()
		log.Add(g.insertAt(0, sel.Nodes()...))
		_, u, err = d.root.Insert([]Object{g}, at)
		if err != nil {
			return undo.Null, err
		}
		log.Add(u)
		result = SelectionOf(g)
		return log.Commit(), nil
	})
	return result, err
}

func groupPosition(root *Root, sel Selection) Path {
	first := sel[0].Path
	if len(sel) == 1 {
		return first
	}
	prefix := selection.CommonPrefix(sel)
	if len(prefix) == 0 {
		layer := root.Child(first[0]).(Compound)
		return Path{first[0], layer.Len()}
	}
	return append(append(Path(nil), prefix...), first[len(prefix)])
}

// Ungroup dissolves the selected groups and blend groups. Their children
// take their place.
func (d *Document) Ungroup(sel Selection) (Selection, error) {
	return d.dissolve("Ungroup", sel, func(obj Object) ([]Object, undo.Entry, error) {
		ug, ok := obj.(Ungroupable)
		if !ok {
			return nil, undo.Null, fmt.Errorf("%s: %w", describe(obj), ErrNotUngroupable)
		}
		objs, u := ug.Ungroup()
		return objs, u, nil
	})
}

// CancelBlend replaces the selected blend groups by their controls.
func (d *Document) CancelBlend(sel Selection) (Selection, error) {
	return d.dissolve("Cancel Blend", sel, func(obj Object) ([]Object, undo.Entry, error) {
		bg, ok := obj.(*BlendGroup)
		if !ok {
			return nil, undo.Null, fmt.Errorf("%s: %w", describe(obj), ErrNotUngroupable)
		}
		objs, u := bg.CancelEffect()
		return objs, u, nil
	})
}

func (d *Document) dissolve(label string, sel Selection,
	split func(Object) ([]Object, undo.Entry, error)) (Selection, error) {
	//
	var result Selection
	err := d.Edit(label, func() (undo.Entry, error) {
		if err := d.root.check(sel); err != nil {
			return undo.Null, err
		}
		log := undo.NewLog()
		defer log.Rollback()
		var all []Object
		for i := len(sel) - 1; i >= 0; i-- {
			e := sel[i]
			u, err := d.root.Remove(e.Node, e.Path)
			if err != nil {
				return undo.Null, err
			}
			log.Add(u)
			objs, u, err := split(e.Node)
			if err != nil {
				return undo.Null, err
			}
			log.Add(u)
			_, u, err = d.root.Insert(objs, e.Path)
			if err != nil {
				return undo.Null, err
			}
			log.Add(u)
			all = append(all, objs...)
		}
		result = SelectionOf(all...)
		return log.Commit(), nil
	})
	return result, err
}

// Blend blends two selected objects with an interpolation of the given
// number of steps. If one of them is an end control of a blend group, the
// group is extended by the other object. Otherwise a new blend group
// takes the place of the first object.
func (d *Document) Blend(sel Selection, steps int) (Selection, error) {
	if len(sel) != 2 {
		return nil, fmt.Errorf("blend needs 2 objects, have %d: %w", len(sel), ErrBlendMismatch)
	}
	var result Selection
	err := d.Edit("Blend", func() (undo.Entry, error) {
		if err := d.root.check(sel); err != nil {
			return undo.Null, err
		}
		log := undo.NewLog()
		defer log.Rollback()
		start, end := sel[0], sel[1]
		startBG, _ := Parent(start.Node).(*BlendGroup)
		endBG, _ := Parent(end.Node).(*BlendGroup)
		if startBG != nil && endBG != nil {
			return undo.Null, fmt.Errorf("blend: both objects are blended already: %w", ErrBlendGroupShape)
		}
		if startBG != nil || endBG != nil {
			if startBG == nil {
				start, end = end, start
			}
			u, err := d.root.Remove(end.Node, end.Path)
			if err != nil {
				return undo.Null, err
			}
			log.Add(u)
			bg, u, err := CreateBlendGroup(start.Node, end.Node, steps)
			if err != nil {
				return undo.Null, err
			}
			log.Add(u)
			result = SelectionOf(bg)
			return log.Commit(), nil
		}
		u, err := d.root.RemoveObjects(sel)
		if err != nil {
			return undo.Null, err
		}
		log.Add(u)
		bg, u, err := CreateBlendGroup(start.Node, end.Node, steps)
		if err != nil {
			return undo.Null, err
		}
		log.Add(u)
		s, u, err := d.root.Insert([]Object{bg}, start.Path)
		if err != nil {
			return undo.Null, err
		}
		log.Add(u)
		result = s
		return log.Commit(), nil
	})
	return result, err
}

// SetSteps changes the number of steps of an interpolation.
func (d *Document) SetSteps(ip *Interpolation, steps int) error {
	return d.Edit("Set Steps", func() (undo.Entry, error) {
		return ip.SetSteps(steps)
	})
}

// SetLayout changes the page layout.
func (d *Document) SetLayout(l Layout) error {
	return d.Edit("Page Layout", func() (undo.Entry, error) {
		return d.setLayout(l), nil
	})
}

func (d *Document) setLayout(l Layout) undo.Entry {
	old := d.layout
	if old == l {
		return undo.Null
	}
	d.layout = l
	d.rootChanged()
	return undo.New(func() undo.Entry { return d.setLayout(old) })
}

// --- Named styles ----------------------------------------------------------

// DefineStyle registers a named style.
func (d *Document) DefineStyle(name string, kv ...style.KeyValue) (*style.Layer, error) {
	var l *style.Layer
	err := d.Edit("Create Style", func() (undo.Entry, error) {
		var u undo.Entry
		var err error
		l, u, err = d.registry.Define(name, kv...)
		return u, err
	})
	return l, err
}

// SetDefault changes a default property of the document.
func (d *Document) SetDefault(key string, p style.Property) error {
	return d.Edit("Set Default", func() (undo.Entry, error) {
		return d.registry.SetDefault(key, p)
	})
}

// propertyHolder is implemented by objects with a cascade of their own.
type propertyHolder interface {
	changeProperties(f func() undo.Entry) undo.Entry
}

// RemoveStyle removes a named style from the registry. Objects using the
// style keep their appearance: the style is replaced by a private copy in
// each of them.
func (d *Document) RemoveStyle(name string) error {
	return d.Edit("Remove Style", func() (undo.Entry, error) {
		log := undo.NewLog()
		defer log.Rollback()
		l, u, err := d.registry.Remove(name)
		if err != nil {
			return undo.Null, err
		}
		log.Add(u)
		err = Walk(d.root, func(obj Object) error {
			ph, ok := obj.(propertyHolder)
			if !ok || !obj.Properties().Uses(l) {
				return nil
			}
			log.Add(ph.changeProperties(func() undo.Entry {
				return obj.Properties().Demote(l)
			}))
			return nil
		})
		if err != nil {
			return undo.Null, err
		}
		return log.Commit(), nil
	})
}

// UpdateStyle changes properties of a named style in place. All objects
// using the style change their appearance, blend groups depending on them
// are recomputed.
func (d *Document) UpdateStyle(name string, kv ...style.KeyValue) error {
	l, ok := d.registry.Lookup(name)
	if !ok {
		return fmt.Errorf("update style %q: %w", name, style.ErrUnknownStyle)
	}
	for _, p := range kv {
		if !style.IsKnown(p.Key) {
			return fmt.Errorf("update style %q: %q: %w", name, p.Key, style.ErrUnknownKey)
		}
	}
	return d.Edit("Update Style", func() (undo.Entry, error) {
		log := undo.NewLog()
		defer log.Rollback()
		for _, p := range kv {
			log.Add(l.Set(p.Key, p.Value))
		}
		notify, err := d.styleChanged(l)
		if err != nil {
			return undo.Null, err
		}
		return undo.ComposeAfter(log.Commit(), notify), nil
	})
}

// styleChanged notifies the parents of all objects using l. The returned
// entry repeats the notification, to be run after l has been restored.
func (d *Document) styleChanged(l *style.Layer) (undo.Entry, error) {
	n := 0
	err := Walk(d.root, func(obj Object) error {
		if c := obj.Properties(); c != nil && c.Uses(l) {
			notifyChanged(obj)
			n++
		}
		return nil
	})
	if err != nil {
		return undo.Null, err
	}
	tracer().Debugf("style %q changed, %d objects affected", l.Name(), n)
	return undo.New(func() undo.Entry {
		u, err := d.styleChanged(l)
		if err != nil {
			tracer().Errorf("style %q: %v", l.Name(), err)
		}
		return u
	}), nil
}

// CreateStyleFromSelection creates a named style from the effective
// properties of a single selected object and applies it to the object.
// Without keys, all properties are taken over.
func (d *Document) CreateStyleFromSelection(sel Selection, name string, keys ...string) (*style.Layer, error) {
	if len(sel) != 1 {
		return nil, fmt.Errorf("create style %q from %d objects: %w", name, len(sel), ErrNoProperties)
	}
	var l *style.Layer
	err := d.Edit("Create Style", func() (undo.Entry, error) {
		if err := d.root.check(sel); err != nil {
			return undo.Null, err
		}
		obj := sel[0].Node
		c := obj.Properties()
		if c == nil {
			return undo.Null, fmt.Errorf("create style %q from %s: %w", name, describe(obj), ErrNoProperties)
		}
		log := undo.NewLog()
		defer log.Rollback()
		var u undo.Entry
		var err error
		if l, u, err = d.registry.Define(name, c.CreateStyle(keys...).Properties()...); err != nil {
			return undo.Null, err
		}
		log.Add(u)
		log.Add(obj.AddStyle(l))
		return log.Commit(), nil
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}
