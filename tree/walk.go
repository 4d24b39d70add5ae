package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
)

// ErrInvalidFilter is returned if a walker filter step is defunct.
var ErrInvalidFilter = errors.New("filter stage is invalid")

// ErrEmptyTree is returned if a Walker is called with an empty tree.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// Walker holds information for operating on trees: finding nodes and
// doing work on them. Clients usually create a Walker for a (sub-)tree
// to search for a selection of nodes matching certain criteria, and
// then perform some operation on this selection.
//
// A typical usage of a Walker looks like this:
//
//    w := NewWalker(node)
//    nodes, err := w.DescendantsWith(pred).Filter(other).Promise()()
//
// Each step operates on the result set of the previous step. Result sets
// are kept in document order (top-down, left to right) unless noted
// otherwise. The first error terminates the chain; subsequent steps are
// no-ops.
type Walker[T comparable] struct {
	initial *Node[T]
	nodes   []*Node[T]
	err     error
}

// NewWalker creates a Walker for the initial node of a (sub-)tree.
//
// If initial is nil, the walker will return an empty set of nodes
// and ErrEmptyTree.
func NewWalker[T comparable](initial *Node[T]) *Walker[T] {
	if initial == nil {
		return &Walker[T]{err: ErrEmptyTree}
	}
	tracer().Debugf("new tree-walker, initial node = %v", initial)
	return &Walker[T]{initial: initial, nodes: []*Node[T]{initial}}
}

// Promise returns a function to fetch the current result set and the
// first error which occurred.
func (w *Walker[T]) Promise() func() ([]*Node[T], error) {
	nodes, err := w.nodes, w.err
	return func() ([]*Node[T], error) {
		return nodes, err
	}
}

// ----------------------------------------------------------------------

// Predicate is a function type to match against nodes of a tree.
// It is used as an argument for various Walker functions to
// collect a selection of nodes.
// test is the node under test, node is the input node.
type Predicate[T comparable] func(test *Node[T], node *Node[T]) (match *Node[T], err error)

// Action is a function type to operate on tree nodes. It receives the node
// together with its parent and its position in the parent's children list.
// A non-nil result is put into the result set of the walker step.
type Action[T comparable] func(n *Node[T], parent *Node[T], position int) (*Node[T], error)

// Whatever is a predicate to match anything (see type Predicate).
// It is useful to match the first node in a given direction.
func Whatever[T comparable]() Predicate[T] {
	return func(test *Node[T], node *Node[T]) (*Node[T], error) {
		return test, nil
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T comparable]() Predicate[T] {
	return func(test *Node[T], node *Node[T]) (match *Node[T], err error) {
		if test.ChildCount() == 0 {
			return test, nil
		}
		return nil, nil
	}
}

// ----------------------------------------------------------------------

// Parent replaces every node of the result set by its parent.
// The root of a tree has no parent and drops out.
func (w *Walker[T]) Parent() *Walker[T] {
	return w.step(func(node *Node[T], emit func(*Node[T])) error {
		if p := node.Parent(); p != nil {
			emit(p)
		}
		return nil
	})
}

// AncestorWith finds the nearest ancestor of every node of the result set
// which matches predicate.
func (w *Walker[T]) AncestorWith(predicate Predicate[T]) *Walker[T] {
	if predicate == nil {
		return w.fail(ErrInvalidFilter)
	}
	return w.step(func(node *Node[T], emit func(*Node[T])) error {
		for anc := node.Parent(); anc != nil; anc = anc.Parent() {
			match, err := predicate(anc, node)
			if err != nil {
				return err
			}
			if match != nil {
				emit(match)
				break
			}
		}
		return nil
	})
}

// DescendantsWith finds all descendants of the nodes of the result set
// which match predicate. Nodes of the result set are not included.
func (w *Walker[T]) DescendantsWith(predicate Predicate[T]) *Walker[T] {
	if predicate == nil {
		return w.fail(ErrInvalidFilter)
	}
	return w.step(func(node *Node[T], emit func(*Node[T])) error {
		var descend func(*Node[T]) error
		descend = func(n *Node[T]) error {
			for _, ch := range n.children {
				match, err := predicate(ch, node)
				if err != nil {
					return err
				}
				if match != nil {
					emit(match)
				}
				if err = descend(ch); err != nil {
					return err
				}
			}
			return nil
		}
		return descend(node)
	})
}

// AllDescendants finds all descendants of the nodes of the result set.
func (w *Walker[T]) AllDescendants() *Walker[T] {
	return w.DescendantsWith(Whatever[T]())
}

// Filter keeps the nodes of the result set which match f.
func (w *Walker[T]) Filter(f Predicate[T]) *Walker[T] {
	if f == nil {
		return w.fail(ErrInvalidFilter)
	}
	return w.step(func(node *Node[T], emit func(*Node[T])) error {
		match, err := f(node, node)
		if err == nil && match != nil {
			emit(match)
		}
		return err
	})
}

// TopDown calls action for every node of the result set and for every
// descendant of these nodes, parents before children.
// If the action function returns an error for a node, the walk stops.
func (w *Walker[T]) TopDown(action Action[T]) *Walker[T] {
	if action == nil {
		return w.fail(ErrInvalidFilter)
	}
	return w.step(func(node *Node[T], emit func(*Node[T])) error {
		var visit func(n, parent *Node[T], pos int) error
		visit = func(n, parent *Node[T], pos int) error {
			result, err := action(n, parent, pos)
			if err != nil {
				return err
			}
			if result != nil {
				emit(result)
			}
			for i, ch := range n.Children() {
				if err = visit(ch, n, i); err != nil {
					return err
				}
			}
			return nil
		}
		return visit(node, node.Parent(), positionOf(node))
	})
}

// BottomUp calls action for every node of the result set and for every
// descendant of these nodes. Parents are not processed before all of their
// children. If the action function returns an error for a node, the walk
// stops.
func (w *Walker[T]) BottomUp(action Action[T]) *Walker[T] {
	if action == nil {
		return w.fail(ErrInvalidFilter)
	}
	return w.step(func(node *Node[T], emit func(*Node[T])) error {
		var visit func(n, parent *Node[T], pos int) error
		visit = func(n, parent *Node[T], pos int) error {
			for i, ch := range n.Children() {
				if err := visit(ch, n, i); err != nil {
					return err
				}
			}
			result, err := action(n, parent, pos)
			if err == nil && result != nil {
				emit(result)
			}
			return err
		}
		return visit(node, node.Parent(), positionOf(node))
	})
}

// --- Helpers ----------------------------------------------------------

func (w *Walker[T]) step(task func(node *Node[T], emit func(*Node[T])) error) *Walker[T] {
	if w == nil || w.err != nil {
		return w
	}
	seen := make(map[*Node[T]]struct{}, len(w.nodes))
	result := make([]*Node[T], 0, len(w.nodes))
	emit := func(n *Node[T]) {
		if _, dup := seen[n]; !dup {
			seen[n] = struct{}{}
			result = append(result, n)
		}
	}
	for _, node := range w.nodes {
		if err := task(node, emit); err != nil {
			tracer().Errorf("tree walker: %v", err)
			return &Walker[T]{initial: w.initial, err: err}
		}
	}
	return &Walker[T]{initial: w.initial, nodes: result}
}

func (w *Walker[T]) fail(err error) *Walker[T] {
	if w == nil || w.err != nil {
		return w
	}
	return &Walker[T]{initial: w.initial, err: err}
}

func positionOf[T comparable](node *Node[T]) int {
	if node.Parent() == nil {
		return 0
	}
	return node.Parent().IndexOfChild(node)
}
