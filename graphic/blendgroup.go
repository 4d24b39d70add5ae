package graphic

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/vdoc/geom"
	"github.com/npillmayer/vdoc/selection"
	"github.com/npillmayer/vdoc/style"
	"github.com/npillmayer/vdoc/undo"
)

// BlendGroup is a compound with children alternating between controls
// and interpolations: control, interpolation, control, …, control.
// Every interpolation blends its two neighbours.
//
// Changes of controls schedule a recomputation of the adjacent
// interpolations. Within a document, recomputation is deferred to the end
// of the current transaction; detached blend groups recompute at once.
type BlendGroup struct {
	compound
	pending    []*Interpolation // interpolations affected during the current batch
	recomputes int
}

func newBlendGroup() *BlendGroup {
	bg := &BlendGroup{}
	bg.init(bg)
	bg.onBatchEnd = bg.flushPending
	return bg
}

// NewBlendGroup creates a blend group of two detached controls, with an
// interpolation of steps steps in between. It returns an error wrapping
// ErrBlendMismatch if start and end cannot be blended.
func NewBlendGroup(start, end Object, steps int) (*BlendGroup, error) {
	if steps < 2 {
		return nil, fmt.Errorf("new blend group: %d: %w", steps, ErrSteps)
	}
	if IsAttached(start) || IsAttached(end) {
		return nil, fmt.Errorf("new blend group: %w", ErrAttached)
	}
	ip := newInterpolation(steps)
	objs, err := ip.compute(start, end)
	if err != nil {
		return nil, err
	}
	ip.setObjects(objs)
	bg := newBlendGroup()
	bg.node.AddChild(start.TreeNode()).AddChild(ip.TreeNode()).AddChild(end.TreeNode())
	return bg, nil
}

// CreateBlendGroup blends start and end. If one of them is the first or
// last control of a blend group, this group is extended by the other
// object, which has to be detached. Otherwise a new blend group is
// created from two detached objects. Its undo information detaches the
// controls again; inserting the new group is up to the caller.
func CreateBlendGroup(start, end Object, steps int) (*BlendGroup, undo.Entry, error) {
	if bg, ok := Parent(start).(*BlendGroup); ok {
		u, err := bg.ExtendBlend(start, end, steps)
		return bg, u, err
	}
	if bg, ok := Parent(end).(*BlendGroup); ok {
		u, err := bg.ExtendBlend(end, start, steps)
		return bg, u, err
	}
	bg, err := NewBlendGroup(start, end, steps)
	if err != nil {
		return nil, undo.Null, err
	}
	return bg, undo.New(func() undo.Entry { return bg.removeSlice(0, bg.Len()) }), nil
}

// Kind is KindBlendGroup.
func (bg *BlendGroup) Kind() Kind { return KindBlendGroup }

// Controls returns the control objects.
func (bg *BlendGroup) Controls() []Object {
	var controls []Object
	for i, ch := range bg.Children() {
		if i%2 == 0 {
			controls = append(controls, ch)
		}
	}
	return controls
}

// Interpolations returns the derived children.
func (bg *BlendGroup) Interpolations() []*Interpolation {
	var ips []*Interpolation
	for i, ch := range bg.Children() {
		if i%2 == 1 {
			ips = append(ips, ch.(*Interpolation))
		}
	}
	return ips
}

// Recomputes counts the recomputations of interpolations performed so far.
func (bg *BlendGroup) Recomputes() int { return bg.recomputes }

// ControlEnd selects a side for Control.
type ControlEnd int8

// Sides of a child of a blend group.
const (
	StartControl ControlEnd = iota
	EndControl
)

// Control returns the control next to child, at the requested side.
// For an interpolation, these are its neighbours. For a control, these
// are the controls one interpolation away, or the control itself at the
// ends of the group.
func (bg *BlendGroup) Control(child Object, side ControlEnd) (Object, bool) {
	idx := bg.node.IndexOfChild(child.TreeNode())
	if idx < 0 {
		return nil, false
	}
	if idx%2 == 1 {
		if side == StartControl {
			return bg.Child(idx - 1), true
		}
		return bg.Child(idx + 1), true
	}
	if side == StartControl && idx > 0 {
		idx -= 2
	} else if side == EndControl && idx < bg.Len()-1 {
		idx += 2
	}
	return bg.Child(idx), true
}

// CheckShape verifies the alternation of controls and interpolations.
func (bg *BlendGroup) CheckShape() error {
	n := bg.Len()
	if n < 3 || n%2 == 0 {
		return fmt.Errorf("%s has %d children: %w", describe(bg), n, ErrBlendGroupShape)
	}
	for i, ch := range bg.Children() {
		_, isIP := ch.(*Interpolation)
		if isIP != (i%2 == 1) {
			return fmt.Errorf("%s: child #%d is %s: %w", describe(bg), i, ch.Kind(), ErrBlendGroupShape)
		}
	}
	return nil
}

// --- Recomputation ---------------------------------------------------------

// ChildChanged schedules recomputation of the interpolations adjacent to
// a changed control.
func (bg *BlendGroup) ChildChanged(child Object) {
	if idx := bg.node.IndexOfChild(child.TreeNode()); idx >= 0 && idx%2 == 0 {
		for _, i := range []int{idx - 1, idx + 1} {
			if i < 0 || i >= bg.Len() {
				continue
			}
			if ip, ok := bg.Child(i).(*Interpolation); ok {
				if bg.IsBatching() {
					bg.markPending(ip)
				} else {
					bg.scheduleRecompute(ip)
				}
			}
		}
	}
	bg.changed()
}

func (bg *BlendGroup) markPending(ip *Interpolation) {
	for _, p := range bg.pending {
		if p == ip {
			return
		}
	}
	bg.pending = append(bg.pending, ip)
}

func (bg *BlendGroup) flushPending() {
	pending := bg.pending
	bg.pending = nil
	for _, ip := range pending {
		bg.scheduleRecompute(ip)
	}
}

type recomputeKey struct {
	ip *Interpolation
}

func (bg *BlendGroup) scheduleRecompute(ip *Interpolation) {
	if doc := DocumentOf(bg); doc != nil {
		doc.AddAfterHandler(recomputeKey{ip}, bg.node.Depth(), func() error {
			return bg.recompute(ip)
		})
		return
	}
	if err := bg.recompute(ip); err != nil {
		tracer().Errorf("%s: %v", describe(bg), err)
	}
}

// recompute blends the neighbours of ip. If ip is no longer part of the
// group, nothing is done.
func (bg *BlendGroup) recompute(ip *Interpolation) error {
	idx := bg.node.IndexOfChild(ip.TreeNode())
	if idx <= 0 || idx >= bg.Len()-1 {
		tracer().Debugf("%s: skip recomputation of detached %s", describe(bg), describe(ip))
		return nil
	}
	objs, err := ip.compute(bg.Child(idx-1), bg.Child(idx+1))
	if err != nil {
		return fmt.Errorf("%s: recompute #%d: %w", describe(bg), idx, err)
	}
	ip.setObjects(objs)
	bg.recomputes++
	tracer().Debugf("%s: recomputed interpolation #%d", describe(bg), idx)
	return nil
}

// --- Operations on all children --------------------------------------------

// forAll applies f to all children within one batch. Interpolations follow
// the change of the group themselves, therefore pending recomputations are
// dropped and only the undo information of controls is kept.
func (bg *BlendGroup) forAll(f func(Object) undo.Entry) undo.Entry {
	bg.BeginBatch()
	var entries []undo.Entry
	for i, ch := range bg.Children() {
		u := f(ch)
		if i%2 == 0 {
			entries = append(entries, u)
		}
	}
	bg.pending = nil
	bg.EndBatch()
	return undo.Compose(entries...)
}

// Translate moves the whole blend group.
func (bg *BlendGroup) Translate(offset geom.Point) undo.Entry {
	return bg.forAll(func(o Object) undo.Entry { return o.Translate(offset) })
}

// Transform transforms the whole blend group.
func (bg *BlendGroup) Transform(t geom.Trafo) undo.Entry {
	return bg.forAll(func(o Object) undo.Entry { return o.Transform(t) })
}

// SetProperties sets properties for all controls and interpolated objects.
func (bg *BlendGroup) SetProperties(kv ...style.KeyValue) undo.Entry {
	return bg.forAll(func(o Object) undo.Entry { return o.SetProperties(kv...) })
}

// AddStyle adds a style to all controls and interpolated objects.
func (bg *BlendGroup) AddStyle(l *style.Layer) undo.Entry {
	return bg.forAll(func(o Object) undo.Entry { return o.AddStyle(l) })
}

// --- Structural operations -------------------------------------------------

// Insert is not supported. Use ExtendBlend.
func (bg *BlendGroup) Insert(objs []Object, at Path) (Selection, undo.Entry, error) {
	return nil, undo.Null, fmt.Errorf("%s: insert: %w", describe(bg), ErrNotEditable)
}

// RemoveSlice is not supported.
func (bg *BlendGroup) RemoveSlice(from, to int) (undo.Entry, error) {
	return undo.Null, fmt.Errorf("%s: remove slice: %w", describe(bg), ErrNotEditable)
}

// Remove removes a control, or an object below a control.
func (bg *BlendGroup) Remove(obj Object, at Path) (undo.Entry, error) {
	ch, err := bg.childAt(at)
	if err != nil {
		return undo.Null, err
	}
	if at[0]%2 == 1 {
		return undo.Null, fmt.Errorf("%s: remove %v: %w", describe(bg), at, ErrDerivedChild)
	}
	if len(at) > 1 {
		ed, err := editableChild(ch)
		if err != nil {
			return undo.Null, err
		}
		return ed.Remove(obj, at[1:])
	}
	if ch != obj {
		return undo.Null, fmt.Errorf("%s: %s is not at %v: %w", describe(bg), describe(obj), at,
			ErrStaleSelection)
	}
	return bg.removeControls([]int{at[0]})
}

// RemoveObjects removes controls, or objects below controls.
//
// Removing a control at either end of the group drops the adjacent
// interpolation. Removing a control in the middle merges the two adjacent
// interpolations, summing up their steps. If fewer than two controls
// remain, the group is dissolved: a surviving control takes the place of
// the group within its parent.
func (bg *BlendGroup) RemoveObjects(sel Selection) (undo.Entry, error) {
	if len(sel) == 0 {
		return undo.Null, nil
	}
	if err := bg.check(sel); err != nil {
		return undo.Null, err
	}
	var controls []int
	for _, item := range selection.ToSliced(sel).Descending() {
		if item.Kind == selection.ChildRange || item.Start%2 == 1 {
			return undo.Null, fmt.Errorf("%s: remove %v: %w", describe(bg), item, ErrDerivedChild)
		}
	}
	log := undo.NewLog()
	defer log.Rollback()
	log.Add(bg.BeginBatch())
	for _, item := range selection.ToSliced(sel).Descending() {
		if item.Kind == selection.SingleChild {
			controls = append(controls, item.Start)
			continue
		}
		ed, err := editableChild(bg.Child(item.Start))
		if err != nil {
			return undo.Null, err
		}
		u, err := ed.RemoveObjects(item.Sub)
		if err != nil {
			return undo.Null, err
		}
		log.Add(u)
	}
	u, err := bg.removeControls(controls)
	if err != nil {
		return undo.Null, err
	}
	log.Add(u)
	log.Add(bg.EndBatch())
	return log.Commit(), nil
}

// removeControls removes the controls at positions idxs, which are in
// descending order.
func (bg *BlendGroup) removeControls(idxs []int) (undo.Entry, error) {
	if len(idxs) == 0 {
		return undo.Null, nil
	}
	if (bg.Len()+1)/2-len(idxs) < 2 {
		return bg.dissolve(idxs)
	}
	log := undo.NewLog()
	defer log.Rollback()
	for _, idx := range idxs {
		u, err := bg.removeControl(idx)
		if err != nil {
			return undo.Null, err
		}
		log.Add(u)
	}
	return log.Commit(), nil
}

func (bg *BlendGroup) removeControl(idx int) (undo.Entry, error) {
	last := bg.Len() - 1
	assertThat(idx%2 == 0 && idx <= last, "%s: no control at %d", describe(bg), idx)
	tracer().Debugf("%s: remove control #%d", describe(bg), idx)
	switch idx {
	case 0:
		return bg.removeSlice(0, 2), nil
	case last:
		return bg.removeSlice(idx-1, idx+1), nil
	}
	before := bg.Child(idx - 1).(*Interpolation)
	after := bg.Child(idx + 1).(*Interpolation)
	steps := before.Steps() + after.Steps()
	u := bg.removeSlice(idx, idx+2)
	s, err := before.SetSteps(steps)
	if err != nil {
		undo.Apply(u)
		return undo.Null, err
	}
	return undo.ComposeAfter(u, s), nil
}

// dissolve removes all children, except for the controls not listed in
// idxs, and replaces the group within its parent by the surviving control.
// Without a survivor, the group is removed from its parent.
func (bg *BlendGroup) dissolve(idxs []int) (undo.Entry, error) {
	parent, ok := Parent(bg).(Editable)
	if !ok {
		return undo.Null, fmt.Errorf("%s: cannot dissolve without editable parent: %w",
			describe(bg), ErrNotEditable)
	}
	removed := make(map[int]bool, len(idxs))
	for _, idx := range idxs {
		removed[idx] = true
	}
	log := undo.NewLog()
	defer log.Rollback()
	var survivor Object
	for i, ch := range bg.Children() {
		if i%2 == 0 && !removed[i] {
			survivor = ch
		}
	}
	pos := Index(bg)
	tracer().Debugf("%s: dissolve, survivor = %s", describe(bg), describe(survivor))
	log.Add(bg.removeSlice(0, bg.Len()))
	if survivor == nil {
		u, err := parent.Remove(bg, Path{pos})
		if err != nil {
			return undo.Null, err
		}
		log.Add(u)
	} else {
		u, err := parent.ReplaceChild(bg, survivor)
		if err != nil {
			return undo.Null, err
		}
		log.Add(u)
	}
	return log.Commit(), nil
}

// ReplaceChild replaces a control. The adjacent interpolations are
// recomputed.
func (bg *BlendGroup) ReplaceChild(old, new Object) (undo.Entry, error) {
	idx := bg.node.IndexOfChild(old.TreeNode())
	if idx < 0 {
		return undo.Null, fmt.Errorf("%s: %s is not a child: %w", describe(bg), describe(old),
			ErrStaleSelection)
	}
	if idx%2 == 1 {
		return undo.Null, fmt.Errorf("%s: replace #%d: %w", describe(bg), idx, ErrDerivedChild)
	}
	if IsAttached(new) {
		return undo.Null, fmt.Errorf("%s: replace with %s: %w", describe(bg), describe(new), ErrAttached)
	}
	return bg.replaceControl(idx, new), nil
}

func (bg *BlendGroup) replaceControl(idx int, obj Object) undo.Entry {
	old := bg.node.ReplaceChildAt(idx, obj.TreeNode()).Payload
	bg.ChildChanged(obj)
	return undo.New(func() undo.Entry { return bg.replaceControl(idx, old) })
}

// Children of blend groups are not re-arranged. The move operations
// return the selection unchanged.

// MoveToTop does nothing.
func (bg *BlendGroup) MoveToTop(sel Selection) (Selection, undo.Entry, error) {
	return sel, undo.Null, nil
}

// MoveToBottom does nothing.
func (bg *BlendGroup) MoveToBottom(sel Selection) (Selection, undo.Entry, error) {
	return sel, undo.Null, nil
}

// MoveUp does nothing.
func (bg *BlendGroup) MoveUp(sel Selection) (Selection, undo.Entry, error) {
	return sel, undo.Null, nil
}

// MoveDown does nothing.
func (bg *BlendGroup) MoveDown(sel Selection) (Selection, undo.Entry, error) {
	return sel, undo.Null, nil
}

// DuplicateObjects does not duplicate children of blend groups. It returns
// an empty selection.
func (bg *BlendGroup) DuplicateObjects(sel Selection, offset geom.Point) (Selection, undo.Entry, error) {
	return nil, undo.Null, nil
}

// ExtendBlend appends a new control end next to start, which has to be the
// first or the last control of the group. end has to be detached.
func (bg *BlendGroup) ExtendBlend(start, end Object, steps int) (undo.Entry, error) {
	if steps < 2 {
		return undo.Null, fmt.Errorf("%s: extend: %d: %w", describe(bg), steps, ErrSteps)
	}
	if IsAttached(end) {
		return undo.Null, fmt.Errorf("%s: extend with %s: %w", describe(bg), describe(end), ErrAttached)
	}
	idx := bg.node.IndexOfChild(start.TreeNode())
	if idx != 0 && idx != bg.Len()-1 {
		return undo.Null, fmt.Errorf("%s: extend from inner child #%d: %w", describe(bg), idx,
			ErrBlendGroupShape)
	}
	ip := newInterpolation(steps)
	var objs []Object
	var err error
	if idx == 0 {
		objs, err = ip.compute(end, start)
	} else {
		objs, err = ip.compute(start, end)
	}
	if err != nil {
		return undo.Null, err
	}
	ip.setObjects(objs)
	if idx == 0 {
		return bg.insertAt(0, end, ip), nil
	}
	return bg.insertAt(bg.Len(), ip, end), nil
}

// CancelEffect dissolves the blend relation: it detaches all children and
// returns the controls.
func (bg *BlendGroup) CancelEffect() ([]Object, undo.Entry) {
	controls := bg.Controls()
	return controls, bg.removeSlice(0, bg.Len())
}

// Ungroup detaches all children and returns them, with every
// interpolation frozen into a group.
func (bg *BlendGroup) Ungroup() ([]Object, undo.Entry) {
	children := bg.Children()
	objs := make([]Object, len(children))
	for i, ch := range children {
		if ip, ok := ch.(*Interpolation); ok {
			objs[i] = ip.AsGroup()
		} else {
			objs[i] = ch
		}
	}
	return objs, bg.removeSlice(0, bg.Len())
}

// Duplicate creates a detached deep copy.
func (bg *BlendGroup) Duplicate() Object {
	dup := newBlendGroup()
	bg.duplicateChildren(&dup.compound)
	return dup
}

// Blend is not supported for blend groups.
func (bg *BlendGroup) Blend(other Object, w1, w2 float64) (Object, error) {
	return nil, fmt.Errorf("%s: %w", describe(bg), ErrBlendMismatch)
}

// Save calls v.BeginBlendGroup, saves the children and calls
// v.EndBlendGroup.
func (bg *BlendGroup) Save(v Visitor) error {
	if err := v.BeginBlendGroup(bg); err != nil {
		return err
	}
	if err := bg.saveChildren(v); err != nil {
		return err
	}
	return v.EndBlendGroup(bg)
}

// appendLoaded appends a child while a document is loaded. An empty
// interpolation preceding an appended control is computed right away.
func (bg *BlendGroup) appendLoaded(obj Object) error {
	bg.insertAt(bg.Len(), obj)
	n := bg.Len()
	if n < 3 || n%2 == 0 {
		return nil
	}
	ip, ok := bg.Child(n - 2).(*Interpolation)
	if !ok || ip.Len() > 0 {
		return nil
	}
	return bg.recompute(ip)
}
