package selection

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
)

// Entry is a selected node, together with the path leading to it.
type Entry[T any] struct {
	Path Path
	Node T
}

func (e Entry[T]) String() string {
	return fmt.Sprintf("(%v, %v)", e.Path, e.Node)
}

// Selection is a list of entries in standard representation, see package
// documentation. Selections are values; operations of this package never
// modify a selection handed to them.
type Selection[T any] []Entry[T]

// Build creates a selection consisting of a single child at position idx.
func Build[T any](idx int, node T) Selection[T] {
	assertThat(idx >= 0, "negative child index %d", idx)
	return Selection[T]{{Path: Path{idx}, Node: node}}
}

// Prepend puts idx in front of every path of sel. This is used by compound
// objects to express a selection of one of its children relative to itself.
func Prepend[T any](idx int, sel Selection[T]) Selection[T] {
	assertThat(idx >= 0, "negative child index %d", idx)
	r := make(Selection[T], len(sel))
	for i, e := range sel {
		r[i] = Entry[T]{Path: e.Path.Prepend(idx), Node: e.Node}
	}
	return r
}

// Range selects a run of siblings, the first of which is at position start.
func Range[T any](start int, nodes []T) Selection[T] {
	assertThat(start >= 0, "negative child index %d", start)
	r := make(Selection[T], len(nodes))
	for i, n := range nodes {
		r[i] = Entry[T]{Path: Path{start + i}, Node: n}
	}
	return r
}

// Join concatenates selections. The result is checked for conformance
// with the standard representation.
func Join[T any](sels ...Selection[T]) (Selection[T], error) {
	var r Selection[T]
	for _, s := range sels {
		r = append(r, s...)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Normalize creates a selection in standard representation from an
// arbitrary collection of entries. Entries are sorted by path, duplicates
// are removed, as well as entries located below another selected entry.
func Normalize[T any](entries []Entry[T]) Selection[T] {
	r := make(Selection[T], len(entries))
	copy(r, entries)
	sort.SliceStable(r, func(i, j int) bool {
		return r[i].Path.Compare(r[j].Path) < 0
	})
	n := 0
	for _, e := range r {
		if n > 0 {
			last := r[n-1].Path
			if last.Equal(e.Path) || last.IsPrefixOf(e.Path) {
				continue
			}
		}
		r[n] = e
		n++
	}
	if n < len(r) {
		tracer().Debugf("normalized selection: dropped %d entries", len(r)-n)
	}
	return r[:n]
}

// Validate checks if sel conforms to the standard representation.
// It returns an error wrapping ErrMalformed if it does not.
//
// As selections are sorted, it suffices to check adjacent entries:
// if a path is a prefix of any later path, it is a prefix of its successor.
func (sel Selection[T]) Validate() error {
	for i, e := range sel {
		if len(e.Path) == 0 {
			return fmt.Errorf("entry #%d: %w", i, ErrEmptyPath)
		}
		for _, x := range e.Path {
			if x < 0 {
				return fmt.Errorf("entry #%d %v: %w", i, e.Path, ErrMalformed)
			}
		}
		if i == 0 {
			continue
		}
		prev := sel[i-1].Path
		switch c := prev.Compare(e.Path); {
		case c == 0:
			return fmt.Errorf("entry #%d %v: %w", i, e.Path, ErrDuplicate)
		case c > 0:
			return fmt.Errorf("entry #%d %v after %v: %w", i, e.Path, prev, ErrUnsorted)
		case prev.IsPrefixOf(e.Path):
			return fmt.Errorf("entry #%d %v below %v: %w", i, e.Path, prev, ErrNotPrefixFree)
		}
	}
	return nil
}

// Nodes returns the selected nodes, in order of the selection.
func (sel Selection[T]) Nodes() []T {
	nodes := make([]T, len(sel))
	for i, e := range sel {
		nodes[i] = e.Node
	}
	return nodes
}

// Paths returns the paths of the selection.
func (sel Selection[T]) Paths() []Path {
	paths := make([]Path, len(sel))
	for i, e := range sel {
		paths[i] = e.Path
	}
	return paths
}

// Parent returns the entry of the parent of e, if parent is known to the
// caller. It returns false if e is located at top level.
func Parent[T any](e Entry[T], parent T) (Entry[T], bool) {
	if len(e.Path) <= 1 {
		return Entry[T]{}, false
	}
	return Entry[T]{Path: e.Path.Parent(), Node: parent}, true
}

// CommonPrefix returns the longest path all entries of sel have in common.
// As sel is sorted, it suffices to compare the first and the last entry.
// For a single entry, this is the entry's path.
func CommonPrefix[T any](sel Selection[T]) Path {
	if len(sel) == 0 {
		return Path{}
	}
	if len(sel) == 1 {
		return sel[0].Path
	}
	first, last := sel[0].Path, sel[len(sel)-1].Path
	length := min(len(first), len(last))
	for i := 0; i < length; i++ {
		if first[i] != last[i] {
			return first[:i:i]
		}
	}
	return first[:length:length]
}
