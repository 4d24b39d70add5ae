package selection

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// Group is a group of entries of a Tree representation. Sel holds the
// entries below the child at position Index, with paths relative to that
// child.
type Group[T any] struct {
	Index int
	Sel   Selection[T]
}

// Tree is the Tree representation of a selection.
type Tree[T any] []Group[T]

// ToTree converts a selection in standard representation to Tree
// representation. The selection may not contain entries with an empty path.
func ToTree[T any](sel Selection[T]) Tree[T] {
	var t Tree[T]
	for _, e := range sel {
		assertThat(len(e.Path) > 0, "cannot group entry with empty path")
		sub := Entry[T]{Path: e.Path[1:len(e.Path):len(e.Path)], Node: e.Node}
		if n := len(t); n > 0 && t[n-1].Index == e.Path[0] {
			t[n-1].Sel = append(t[n-1].Sel, sub)
			continue
		}
		t = append(t, Group[T]{Index: e.Path[0], Sel: Selection[T]{sub}})
	}
	return t
}

// List converts a Tree back to standard representation.
func (t Tree[T]) List() Selection[T] {
	var r Selection[T]
	for _, g := range t {
		r = append(r, Prepend(g.Index, g.Sel)...)
	}
	return r
}

// Branch is an item of the Tree2 representation. If the child at position
// Index is selected itself, IsLeaf is set and Node holds the child.
// Otherwise Sub holds the entries below the child, relative to it.
type Branch[T any] struct {
	Index  int
	IsLeaf bool
	Node   T
	Sub    Selection[T]
}

func (b Branch[T]) String() string {
	if b.IsLeaf {
		return fmt.Sprintf("(%d, %v)", b.Index, b.Node)
	}
	return fmt.Sprintf("(%d, %v)", b.Index, b.Sub)
}

// Tree2 is the Tree2 representation of a selection.
type Tree2[T any] []Branch[T]

// ToTree2 converts a selection in standard representation to Tree2
// representation.
func ToTree2[T any](sel Selection[T]) Tree2[T] {
	t := ToTree(sel)
	t2 := make(Tree2[T], len(t))
	for i, g := range t {
		if len(g.Sel) == 1 && len(g.Sel[0].Path) == 0 {
			t2[i] = Branch[T]{Index: g.Index, IsLeaf: true, Node: g.Sel[0].Node}
		} else {
			t2[i] = Branch[T]{Index: g.Index, Sub: g.Sel}
		}
	}
	return t2
}

// List converts a Tree2 back to standard representation.
func (t Tree2[T]) List() Selection[T] {
	var r Selection[T]
	for _, b := range t {
		if b.IsLeaf {
			r = append(r, Build(b.Index, b.Node)...)
		} else {
			r = append(r, Prepend(b.Index, b.Sub)...)
		}
	}
	return r
}

// SliceKind tells the kind of an item of a Sliced representation.
type SliceKind int8

// Kinds of sliced items.
const (
	SingleChild SliceKind = iota // a single selected child
	ChildRange                   // a run of selected children
	Descendants                  // entries below a child
)

// Slice is an item of the Sliced representation.
//
//   ▪︎ SingleChild: the child at Start is selected, Node holds it
//   ▪︎ ChildRange: the children at Start…End-1 are selected, with End > Start+1
//   ▪︎ Descendants: Sub holds entries below the child at Start, relative to it
type Slice[T any] struct {
	Kind  SliceKind
	Start int
	End   int
	Node  T
	Sub   Selection[T]
}

func (s Slice[T]) String() string {
	switch s.Kind {
	case ChildRange:
		return fmt.Sprintf("[%d:%d]", s.Start, s.End)
	case Descendants:
		return fmt.Sprintf("(%d, %v)", s.Start, s.Sub)
	}
	return fmt.Sprintf("(%d, %v)", s.Start, s.Node)
}

// Sliced is the Sliced representation of a selection.
type Sliced[T any] []Slice[T]

// ToSliced converts a selection in standard representation to Sliced
// representation. Runs of consecutive selected children merge into a
// range; a run of length 1 stays a single child.
func ToSliced[T any](sel Selection[T]) Sliced[T] {
	var r Sliced[T]
	start, end := -1, -1
	var first T
	flush := func() {
		if start < 0 {
			return
		}
		if end > start+1 {
			r = append(r, Slice[T]{Kind: ChildRange, Start: start, End: end})
		} else {
			r = append(r, Slice[T]{Kind: SingleChild, Start: start, End: end, Node: first})
		}
		start, end = -1, -1
	}
	for _, b := range ToTree2(sel) {
		if !b.IsLeaf {
			flush()
			r = append(r, Slice[T]{Kind: Descendants, Start: b.Index, End: b.Index + 1, Sub: b.Sub})
			continue
		}
		if b.Index == end {
			end++
			continue
		}
		flush()
		start, end, first = b.Index, b.Index+1, b.Node
	}
	flush()
	return r
}

// Expand converts a Sliced representation back to standard representation.
// Ranges do not carry their nodes, therefore child has to look up the
// child at a given position.
func (s Sliced[T]) Expand(child func(int) T) Selection[T] {
	var r Selection[T]
	for _, item := range s {
		switch item.Kind {
		case SingleChild:
			r = append(r, Build(item.Start, item.Node)...)
		case ChildRange:
			for i := item.Start; i < item.End; i++ {
				r = append(r, Build(i, child(i))...)
			}
		case Descendants:
			r = append(r, Prepend(item.Start, item.Sub)...)
		}
	}
	return r
}

// Descending returns the items of s in descending order of child index.
func (s Sliced[T]) Descending() Sliced[T] {
	r := make(Sliced[T], len(s))
	for i, item := range s {
		r[len(s)-1-i] = item
	}
	return r
}
