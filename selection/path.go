package selection

import (
	"fmt"
	"slices"
	"strings"
)

// Path is a sequence of child indices, leading from a root down to a node.
type Path []int

// Compare compares two paths lexicographically. It returns -1 if p is
// ordered before q, +1 if it is ordered after q, and 0 for equal paths.
// A path is ordered before all of its extensions.
func (p Path) Compare(q Path) int {
	return slices.Compare(p, q)
}

// Equal is true if p and q address the same node.
func (p Path) Equal(q Path) bool {
	return slices.Equal(p, q)
}

// IsPrefixOf is true if p addresses an ancestor of the node addressed by q.
// A path is not a prefix of itself.
func (p Path) IsPrefixOf(q Path) bool {
	return len(p) < len(q) && slices.Equal(p, q[:len(p)])
}

// Parent returns the path of the parent of p. The parent of the
// empty path is nil.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1:len(p)-1]
}

// Last returns the last index of p, i.e. the position of the addressed node
// within its parent.
func (p Path) Last() int {
	assertThat(len(p) > 0, "empty path has no last index")
	return p[len(p)-1]
}

// Prepend returns a new path with idx as its first component.
func (p Path) Prepend(idx int) Path {
	q := make(Path, len(p)+1)
	q[0] = idx
	copy(q[1:], p)
	return q
}

func (p Path) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, x := range p {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", x)
	}
	if len(p) == 1 {
		b.WriteByte(',')
	}
	b.WriteByte(')')
	return b.String()
}
