package tree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNodeInsertRemove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vdoc.tree")
	defer teardown()
	//
	root := NewNode("root")
	root.AddChild(NewNode("a")).AddChild(NewNode("c"))
	root.InsertChildAt(1, NewNode("b"))
	if got := payloads(root); got != "a b c" {
		t.Fatalf("expected children a b c, got %s", got)
	}
	ch := root.RemoveChildAt(1)
	if ch.Payload != "b" || ch.Parent() != nil {
		t.Errorf("expected detached node b, got %v with parent %v", ch, ch.Parent())
	}
	root.InsertChildrenAt(0, NewNode("x"), NewNode("y"))
	if got := payloads(root); got != "x y a c" {
		t.Errorf("expected children x y a c, got %s", got)
	}
	removed := root.RemoveSlice(1, 3)
	if len(removed) != 2 || removed[0].Payload != "y" || removed[1].Payload != "a" {
		t.Errorf("expected to have removed y and a, got %v", removed)
	}
	if got := payloads(root); got != "x c" {
		t.Errorf("expected children x c, got %s", got)
	}
	old := root.ReplaceChildAt(0, NewNode("z"))
	if old.Payload != "x" || payloads(root) != "z c" {
		t.Errorf("expected x to be replaced by z, children are %s", payloads(root))
	}
}

func TestNodeIsolate(t *testing.T) {
	root := NewNode("root")
	b := NewNode("b")
	root.AddChild(NewNode("a")).AddChild(b).AddChild(NewNode("c"))
	b.Isolate()
	if root.ChildCount() != 2 || root.IndexOfChild(b) != -1 {
		t.Errorf("expected b to be removed without leaving a gap, children are %s", payloads(root))
	}
}

func TestNodePermute(t *testing.T) {
	root := NewNode("root")
	for _, p := range []string{"a", "b", "c", "d"} {
		root.AddChild(NewNode(p))
	}
	root.Permute([]int{3, 0, 1, 2})
	if got := payloads(root); got != "d a b c" {
		t.Errorf("expected d a b c after permutation, got %s", got)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected invalid permutation to panic")
		}
	}()
	root.Permute([]int{0, 0, 1, 2})
}

func TestNodePaths(t *testing.T) {
	root := NewNode("root")
	a, b := NewNode("a"), NewNode("b")
	b1, b2 := NewNode("b1"), NewNode("b2")
	root.AddChild(a).AddChild(b)
	b.AddChild(b1).AddChild(b2)
	if b2.Depth() != 2 {
		t.Errorf("expected depth of b2 to be 2, is %d", b2.Depth())
	}
	path := b2.Path()
	if len(path) != 2 || path[0] != 1 || path[1] != 1 {
		t.Errorf("expected path of b2 to be [1 1], is %v", path)
	}
	if n, ok := root.At(path); !ok || n != b2 {
		t.Errorf("expected to find b2 at %v", path)
	}
	if _, ok := root.At([]int{0, 0}); ok {
		t.Error("expected path [0 0] to leave the tree")
	}
	if b1.Root() != root {
		t.Error("expected root of b1 to be root")
	}
}

// ---------------------------------------------------------------------------

func payloads(node *Node[string]) string {
	s := ""
	for i, ch := range node.Children() {
		if i > 0 {
			s += " "
		}
		s += ch.Payload
	}
	return s
}
