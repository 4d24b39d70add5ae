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
	"github.com/npillmayer/vdoc/undo"
)

// editable is a compound whose children may be freely re-arranged.
// Layers and groups are editable.
type editable struct {
	compound
}

// Insert inserts objs at position at. If at has more than one component,
// objs are inserted into the child at at[0], recursively. Positions beyond
// the end append, as does an empty path.
//
// Insert returns the selection of the inserted objects.
func (e *editable) Insert(objs []Object, at Path) (Selection, undo.Entry, error) {
	for _, obj := range objs {
		if IsAttached(obj) {
			return nil, undo.Null, fmt.Errorf("%s: insert %s: %w", describe(e.self()), describe(obj), ErrAttached)
		}
	}
	if len(at) > 1 {
		ch, err := e.childAt(at)
		if err != nil {
			return nil, undo.Null, err
		}
		ed, err := editableChild(ch)
		if err != nil {
			return nil, undo.Null, err
		}
		sel, u, err := ed.Insert(objs, at[1:])
		if err != nil {
			return nil, undo.Null, err
		}
		return selection.Prepend(at[0], sel), u, nil
	}
	idx := e.Len()
	if len(at) == 1 {
		assertThat(at[0] >= 0, "negative insert position %d", at[0])
		idx = min(idx, at[0])
	}
	tracer().Debugf("%s: insert %d object(s) at %d", describe(e.self()), len(objs), idx)
	u := e.insertAt(idx, objs...)
	return selection.Range(idx, objs), u, nil
}

// Remove removes obj, which has to be located at path at.
func (e *editable) Remove(obj Object, at Path) (undo.Entry, error) {
	ch, err := e.childAt(at)
	if err != nil {
		return undo.Null, err
	}
	if len(at) > 1 {
		ed, err := editableChild(ch)
		if err != nil {
			return undo.Null, err
		}
		return ed.Remove(obj, at[1:])
	}
	if ch != obj {
		return undo.Null, fmt.Errorf("%s: %s is not at %v: %w", describe(e.self()), describe(obj),
			at, ErrStaleSelection)
	}
	return e.removeSlice(at[0], at[0]+1), nil
}

// RemoveSlice removes the children at positions from…to-1.
func (e *editable) RemoveSlice(from, to int) (undo.Entry, error) {
	return e.removeSlice(from, to), nil
}

// RemoveObjects removes all objects of sel. Children are processed in
// descending order of their position, runs of selected children are
// removed in one step.
func (e *editable) RemoveObjects(sel Selection) (undo.Entry, error) {
	if len(sel) == 0 {
		return undo.Null, nil
	}
	if err := e.check(sel); err != nil {
		return undo.Null, err
	}
	log := undo.NewLog()
	defer log.Rollback()
	log.Add(e.BeginBatch())
	for _, item := range selection.ToSliced(sel).Descending() {
		switch item.Kind {
		case selection.ChildRange:
			log.Add(e.removeSlice(item.Start, item.End))
		case selection.SingleChild:
			u, err := e.Remove(item.Node, Path{item.Start})
			if err != nil {
				return undo.Null, err
			}
			log.Add(u)
		case selection.Descendants:
			ed, err := editableChild(e.Child(item.Start))
			if err != nil {
				return undo.Null, err
			}
			u, err := ed.RemoveObjects(item.Sub)
			if err != nil {
				return undo.Null, err
			}
			log.Add(u)
		}
	}
	log.Add(e.EndBatch())
	return log.Commit(), nil
}

// ReplaceChild puts new in the place of child old.
func (e *editable) ReplaceChild(old, new Object) (undo.Entry, error) {
	idx := e.node.IndexOfChild(old.TreeNode())
	if idx < 0 {
		return undo.Null, fmt.Errorf("%s: %s is not a child: %w", describe(e.self()), describe(old),
			ErrStaleSelection)
	}
	if IsAttached(new) {
		return undo.Null, fmt.Errorf("%s: replace with %s: %w", describe(e.self()), describe(new), ErrAttached)
	}
	return e.replaceAt(idx, new), nil
}

// MoveToTop moves the selected children to the end of the list of
// children, i.e. in front of all other children, keeping their relative
// order. Selections below children are handled by the children.
func (e *editable) MoveToTop(sel Selection) (Selection, undo.Entry, error) {
	return e.rearrange(sel, Editable.MoveToTop, func(moved []bool) []int {
		return stackPermutation(moved, true)
	})
}

// MoveToBottom moves the selected children to the start of the list of
// children, behind all other children.
func (e *editable) MoveToBottom(sel Selection) (Selection, undo.Entry, error) {
	return e.rearrange(sel, Editable.MoveToBottom, func(moved []bool) []int {
		return stackPermutation(moved, false)
	})
}

// MoveUp moves each run of selected children one position towards the
// end, swapping it with its successor. A run at the end stays in place.
func (e *editable) MoveUp(sel Selection) (Selection, undo.Entry, error) {
	return e.rearrange(sel, Editable.MoveUp, func(moved []bool) []int {
		return shiftPermutation(moved, true)
	})
}

// MoveDown moves each run of selected children one position towards the
// start, swapping it with its predecessor. A run at the start stays in
// place.
func (e *editable) MoveDown(sel Selection) (Selection, undo.Entry, error) {
	return e.rearrange(sel, Editable.MoveDown, func(moved []bool) []int {
		return shiftPermutation(moved, false)
	})
}

type subResult struct {
	idx int
	sel Selection
}

// rearrange is the common skeleton of re-ordering operations. Selected
// children are re-ordered by a single permutation computed by reorder;
// selections below children are delegated to the children by calling
// recurse. Children are visited in descending order.
//
// If nothing changes, sel is returned unchanged with undo.Null.
func (e *editable) rearrange(sel Selection,
	recurse func(Editable, Selection) (Selection, undo.Entry, error),
	reorder func([]bool) []int) (Selection, undo.Entry, error) {
	//
	if len(sel) == 0 {
		return sel, undo.Null, nil
	}
	if err := e.check(sel); err != nil {
		return nil, undo.Null, err
	}
	log := undo.NewLog()
	defer log.Rollback()
	log.Add(e.BeginBatch())
	changed := false
	moved := make([]bool, e.Len())
	var subs []subResult
	for _, item := range selection.ToSliced(sel).Descending() {
		if item.Kind != selection.Descendants {
			for i := item.Start; i < item.End; i++ {
				moved[i] = true
			}
			continue
		}
		ed, err := editableChild(e.Child(item.Start))
		if err != nil {
			return nil, undo.Null, err
		}
		s, u, err := recurse(ed, item.Sub)
		if err != nil {
			return nil, undo.Null, err
		}
		changed = changed || !u.IsNull()
		log.Add(u)
		subs = append(subs, subResult{idx: item.Start, sel: s})
	}
	perm := reorder(moved)
	u := e.permute(perm)
	changed = changed || !u.IsNull()
	log.Add(u)
	log.Add(e.EndBatch())
	if !changed {
		log.Commit()
		return sel, undo.Null, nil
	}
	// child previously at position perm[k] is now at position k
	position := make([]int, len(perm))
	for k, p := range perm {
		position[p] = k
	}
	var entries []selection.Entry[Object]
	for _, s := range subs {
		entries = append(entries, selection.Prepend(position[s.idx], s.sel)...)
	}
	for i, m := range moved {
		if m {
			entries = append(entries, selection.Build(position[i], e.Child(position[i]))...)
		}
	}
	return selection.Normalize(entries), log.Commit(), nil
}

// stackPermutation puts the moved positions at the end (top) or at the
// start of the list, keeping relative order within both partitions.
func stackPermutation(moved []bool, top bool) []int {
	var stay, move []int
	for i, m := range moved {
		if m {
			move = append(move, i)
		} else {
			stay = append(stay, i)
		}
	}
	if top {
		return append(stay, move...)
	}
	return append(move, stay...)
}

// shiftPermutation moves every maximal run of moved positions by one
// towards the end (up) or towards the start. The neighbour which is
// jumped over takes the place at the other end of the run.
func shiftPermutation(moved []bool, up bool) []int {
	n := len(moved)
	perm := make([]int, n)
	for k := range perm {
		perm[k] = k
	}
	for s := 0; s < n; {
		if !moved[s] {
			s++
			continue
		}
		t := s
		for t < n && moved[t] {
			t++
		}
		switch {
		case up && t < n:
			perm[s] = t
			for k := s + 1; k <= t; k++ {
				perm[k] = k - 1
			}
		case !up && s > 0:
			for k := s - 1; k < t-1; k++ {
				perm[k] = k + 1
			}
			perm[t-1] = s - 1
		}
		s = t
	}
	return perm
}

// DuplicateObjects inserts a copy of each selected object behind the
// original, translated by offset. It returns the selection of the
// copies.
func (e *editable) DuplicateObjects(sel Selection, offset geom.Point) (Selection, undo.Entry, error) {
	if len(sel) == 0 {
		return nil, undo.Null, nil
	}
	if err := e.check(sel); err != nil {
		return nil, undo.Null, err
	}
	log := undo.NewLog()
	defer log.Rollback()
	log.Add(e.BeginBatch())
	var entries []selection.Entry[Object]
	added := 0
	for _, b := range selection.ToTree2(sel) {
		idx := b.Index + added
		if b.IsLeaf {
			dup := b.Node.Duplicate()
			dup.Translate(offset)
			log.Add(e.insertAt(idx+1, dup))
			entries = append(entries, selection.Build(idx+1, dup)...)
			added++
			continue
		}
		ed, err := editableChild(e.Child(idx))
		if err != nil {
			return nil, undo.Null, err
		}
		s, u, err := ed.DuplicateObjects(b.Sub, offset)
		if err != nil {
			return nil, undo.Null, err
		}
		log.Add(u)
		entries = append(entries, selection.Prepend(idx, s)...)
	}
	log.Add(e.EndBatch())
	return selection.Normalize(entries), log.Commit(), nil
}

// ForAll calls f for every child, within a single batch.
func (e *editable) ForAll(f func(Object) undo.Entry) undo.Entry {
	return e.forAll(f)
}
