package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
)

// Node is the base type our tree is built of.
type Node[T comparable] struct {
	parent   *Node[T]   // parent node of this node
	children []*Node[T] // children, without gaps
	Payload  T          // nodes may carry a payload of arbitrary type
}

// NewNode creates a new tree node with a given payload.
func NewNode[T comparable](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// AddChild appends a new child node.
// The newly inserted node is connected to this node as its parent.
// It returns the parent node to allow for chaining.
func (node *Node[T]) AddChild(ch *Node[T]) *Node[T] {
	if ch != nil {
		node.children = append(node.children, ch)
		ch.parent = node
	}
	return node
}

// InsertChildAt inserts a new child node into the tree.
// The newly inserted node is connected to this node as its parent.
// The child is set at a given position in relation to other children,
// shifting children at later positions. Positions beyond the end of the
// children list append ch.
// It returns the parent node to allow for chaining.
func (node *Node[T]) InsertChildAt(i int, ch *Node[T]) *Node[T] {
	if ch == nil {
		return node
	}
	return node.InsertChildrenAt(i, ch)
}

// InsertChildrenAt inserts a run of nodes at position i, in order.
func (node *Node[T]) InsertChildrenAt(i int, chs ...*Node[T]) *Node[T] {
	assertThat(i >= 0, "insert position %d is negative", i)
	if i > len(node.children) {
		i = len(node.children)
	}
	node.children = append(node.children[:i], append(append([]*Node[T]{}, chs...), node.children[i:]...)...)
	for _, ch := range chs {
		assertThat(ch != nil, "cannot insert nil child")
		ch.parent = node
	}
	return node
}

// RemoveChildAt detaches the child at position i and returns it.
// Children at later positions move up by one.
func (node *Node[T]) RemoveChildAt(i int) *Node[T] {
	assertThat(i >= 0 && i < len(node.children), "remove: child index %d out of range [0…%d)",
		i, len(node.children))
	ch := node.children[i]
	node.children = append(node.children[:i], node.children[i+1:]...)
	ch.parent = nil
	return ch
}

// RemoveSlice detaches the children at positions from…to-1 and returns them.
func (node *Node[T]) RemoveSlice(from, to int) []*Node[T] {
	assertThat(from >= 0 && from <= to && to <= len(node.children),
		"remove: slice [%d:%d] out of range [0…%d]", from, to, len(node.children))
	removed := make([]*Node[T], to-from)
	copy(removed, node.children[from:to])
	node.children = append(node.children[:from], node.children[to:]...)
	for _, ch := range removed {
		ch.parent = nil
	}
	return removed
}

// ReplaceChildAt puts ch at position i and returns the node which has been
// there before. The old child is detached from the tree.
func (node *Node[T]) ReplaceChildAt(i int, ch *Node[T]) *Node[T] {
	assertThat(i >= 0 && i < len(node.children), "replace: child index %d out of range [0…%d)",
		i, len(node.children))
	assertThat(ch != nil, "cannot replace with nil child")
	old := node.children[i]
	old.parent = nil
	node.children[i] = ch
	ch.parent = node
	return old
}

// Permute re-orders the children of node. After the call, position k will
// hold the child previously at position perm[k]. perm has to be a
// permutation of 0…n-1, with n = ChildCount().
func (node *Node[T]) Permute(perm []int) {
	n := len(node.children)
	assertThat(len(perm) == n, "permutation of length %d for %d children", len(perm), n)
	seen := make([]bool, n)
	reordered := make([]*Node[T], n)
	for k, p := range perm {
		assertThat(p >= 0 && p < n && !seen[p], "invalid permutation %v", perm)
		seen[p] = true
		reordered[k] = node.children[p]
	}
	node.children = reordered
}

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node[T]) Parent() *Node[T] {
	return node.parent
}

// Isolate removes a node from its parent.
// Isolate returns the isolated node.
func (node *Node[T]) Isolate() *Node[T] {
	if node != nil && node.parent != nil {
		if i := node.parent.IndexOfChild(node); i >= 0 {
			node.parent.RemoveChildAt(i)
		}
	}
	return node
}

// ChildCount returns the number of children-nodes for a node.
func (node *Node[T]) ChildCount() int {
	return len(node.children)
}

// Child returns the n-th child of a node.
func (node *Node[T]) Child(n int) (*Node[T], bool) {
	if n < 0 || len(node.children) <= n {
		return nil, false
	}
	return node.children[n], true
}

// Children returns a slice with all children of a node.
// The slice is a copy and may be modified by the caller.
func (node *Node[T]) Children() []*Node[T] {
	children := make([]*Node[T], len(node.children))
	copy(children, node.children)
	return children
}

// IndexOfChild returns the index of a child within the list of children
// of its parent. ch may not be nil.
func (node *Node[T]) IndexOfChild(ch *Node[T]) int {
	for i, child := range node.children {
		if ch == child {
			return i
		}
	}
	return -1
}

// Root returns the topmost ancestor of node.
func (node *Node[T]) Root() *Node[T] {
	for node.parent != nil {
		node = node.parent
	}
	return node
}

// Depth returns the number of ancestors of node.
func (node *Node[T]) Depth() int {
	d := 0
	for p := node.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// Path returns the sequence of child indices leading from the root of the
// tree to node.
func (node *Node[T]) Path() []int {
	path := make([]int, node.Depth())
	for n, i := node, len(path)-1; n.parent != nil; n, i = n.parent, i-1 {
		path[i] = n.parent.IndexOfChild(n)
	}
	return path
}

// At follows path downwards, starting at node. It returns false if path
// leaves the tree.
func (node *Node[T]) At(path []int) (*Node[T], bool) {
	n := node
	for _, i := range path {
		var ok bool
		if n, ok = n.Child(i); !ok {
			return nil, false
		}
	}
	return n, true
}
