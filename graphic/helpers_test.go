package graphic

import (
	"errors"
	"fmt"

	"github.com/npillmayer/vdoc/geom"
	"github.com/npillmayer/vdoc/undo"
	tp "github.com/xlab/treeprint"
)

// dump renders an object tree, including geometry and property cascades.
// Identities of interpolated objects are omitted, as they change with
// every recomputation.
func dump(obj Object) string {
	p := tp.New()
	ppt(p, obj, false)
	return p.String()
}

func ppt(p tp.Tree, obj Object, derived bool) {
	label := describeForTest(obj, derived)
	c, ok := obj.(Compound)
	if !ok || c.Len() == 0 {
		p.AddNode(label)
		return
	}
	branch := p.AddBranch(label)
	_, isIP := obj.(*Interpolation)
	for _, ch := range c.Children() {
		ppt(branch, ch, derived || isIP)
	}
}

func describeForTest(obj Object, derived bool) string {
	s := obj.Kind().String()
	if !derived {
		s += "#" + obj.ID().String()[:8]
	}
	switch o := obj.(type) {
	case *Rectangle:
		s += " " + o.Trafo().String()
	case *Ellipse:
		s += " " + o.Trafo().String()
	case *PolyLine:
		s += fmt.Sprintf(" %v", o.Points())
	case *Interpolation:
		s += fmt.Sprintf(" steps=%d", o.Steps())
	case *Layer:
		s += " " + o.Name()
	}
	if props := obj.Properties(); props != nil {
		s += " " + props.String()
	}
	return s
}

// rect creates a 10x10 square at (x,0).
func rect(x float64) *Rectangle {
	return NewRectangle(x, 0, 10, 10, nil)
}

func rects(n int) []Object {
	objs := make([]Object, n)
	for i := range objs {
		objs[i] = rect(float64(i * 20))
	}
	return objs
}

func sameObjects(c Compound, objs ...Object) bool {
	if c.Len() != len(objs) {
		return false
	}
	for i, obj := range objs {
		if c.Child(i) != obj {
			return false
		}
	}
	return true
}

func offsetOf(obj Object) geom.Point {
	switch o := obj.(type) {
	case *Rectangle:
		return o.Trafo().Offset()
	case *Ellipse:
		return o.Trafo().Offset()
	}
	return geom.Point{}
}

var errFault = errors.New("injected fault")

// brittle is a group failing to remove any of its children.
type brittle struct {
	*Group
}

func newBrittle(objs ...Object) *brittle {
	b := &brittle{Group: NewGroup(objs...)}
	b.TreeNode().Payload = b
	return b
}

func (b *brittle) RemoveObjects(sel Selection) (undo.Entry, error) {
	return undo.Null, errFault
}
