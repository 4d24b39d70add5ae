/*
Package query selects objects of a document by predicate.

Predicates are boolean expressions in the expr language
(https://expr-lang.org), evaluated for every object of a document.
Objects expose the following attributes:

    kind      "rectangle", "ellipse", "polyline", "group", "blendgroup" or "layer"
    id        identity of the object, as a string
    layer     name of the layer the object belongs to
    depth     number of ancestors below the root (layers have depth 1)
    index     position within the parent
    parent    kind of the parent, "" for the root
    leaf      true for objects without children
    compound  true for groups, blend groups and layers
    x, y      position (offset of the transformation, first point of a poly-line),
              nil for compounds
    closed    true for closed poly-lines
    points    number of points of a poly-line
    styles    names of the named styles the object uses
    props     effective property values, e.g. props["line-width"]

Example:

    q, err := query.Compile(`kind == "rectangle" && "thick" in styles`)
    sel, err := q.Select(doc)

Interpolations and the objects within them are derived from other objects
and are never selected. The resulting selection is in standard representation:
if an object matches together with one of its ancestors, only the
ancestor is selected.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package query

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/vdoc/geom"
	"github.com/npillmayer/vdoc/graphic"
	"github.com/npillmayer/vdoc/selection"
	"github.com/npillmayer/vdoc/style"
	"github.com/npillmayer/vdoc/tree"
)

// tracer traces with key 'vdoc.query'.
func tracer() tracing.Trace {
	return tracing.Select("vdoc.query")
}

// ErrQuery is returned for predicates which do not compile or do not
// evaluate to a boolean.
var ErrQuery = errors.New("invalid query")

// Query is a compiled predicate over object attributes.
type Query struct {
	source  string
	program *vm.Program
}

// Compile compiles a predicate.
func Compile(source string) (*Query, error) {
	if source == "" {
		return nil, fmt.Errorf("%w: empty predicate", ErrQuery)
	}
	program, err := expr.Compile(source,
		expr.Env(map[string]any{}),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return &Query{source: source, program: program}, nil
}

func (q *Query) String() string {
	return q.source
}

// Match evaluates the predicate for a single object.
func (q *Query) Match(obj graphic.Object) (bool, error) {
	result, err := expr.Run(q.program, Attributes(obj))
	if err != nil {
		return false, fmt.Errorf("%w: %q: %w", ErrQuery, q.source, err)
	}
	b, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q evaluates to %T", ErrQuery, q.source, result)
	}
	return b, nil
}

// Select returns the selection of all matching objects of doc, addressed
// from the root of the document.
func (q *Query) Select(doc *graphic.Document) (graphic.Selection, error) {
	return q.SelectBelow(doc.Root())
}

// SelectBelow returns the selection of all matching descendants of obj,
// with paths from the root of the tree obj is part of.
func (q *Query) SelectBelow(obj graphic.Object) (graphic.Selection, error) {
	nodes, err := tree.NewWalker(obj.TreeNode()).AllDescendants().Filter(q.predicate()).Promise()()
	if err != nil {
		return nil, err
	}
	entries := make([]selection.Entry[graphic.Object], len(nodes))
	for i, n := range nodes {
		entries[i] = selection.Entry[graphic.Object]{Path: graphic.PathOf(n.Payload), Node: n.Payload}
	}
	sel := selection.Normalize(entries)
	tracer().Debugf("query %q: %d matches, %d selected", q.source, len(nodes), len(sel))
	return sel, nil
}

func (q *Query) predicate() tree.Predicate[graphic.Object] {
	return func(test, _ *tree.Node[graphic.Object]) (*tree.Node[graphic.Object], error) {
		if isDerived(test.Payload) {
			return nil, nil
		}
		ok, err := q.Match(test.Payload)
		if err != nil || !ok {
			return nil, err
		}
		return test, nil
	}
}

// Attributes returns the attributes of obj which predicates may refer to.
func Attributes(obj graphic.Object) map[string]any {
	attrs := map[string]any{
		"kind":     obj.Kind().String(),
		"id":       obj.ID().String(),
		"depth":    obj.TreeNode().Depth(),
		"index":    graphic.Index(obj),
		"compound": obj.IsCompound(),
		"layer":    layerName(obj),
		"parent":   parentKind(obj),
		"leaf":     isLeaf(obj),
		"styles":   []string{},
		"props":    map[string]string{},
		"closed":   false,
		"points":   0,
	}
	switch o := obj.(type) {
	case *graphic.Rectangle:
		setPosition(attrs, o.Trafo().Offset())
	case *graphic.Ellipse:
		setPosition(attrs, o.Center())
	case *graphic.PolyLine:
		pts := o.Points()
		if len(pts) > 0 {
			setPosition(attrs, pts[0])
		}
		attrs["closed"] = o.IsClosed()
		attrs["points"] = len(pts)
	}
	if c := obj.Properties(); c != nil {
		if names := c.DynamicStyleNames(); names != nil {
			attrs["styles"] = names
		}
		props := make(map[string]string)
		for _, key := range style.PropertyKeys() {
			props[key] = c.Get(key).String()
		}
		attrs["props"] = props
	}
	return attrs
}

func setPosition(attrs map[string]any, p geom.Point) {
	attrs["x"], attrs["y"] = p.X, p.Y
}

type objectNode = tree.Node[graphic.Object]

// ancestor returns the nearest ancestor of obj which satisfies f, or nil.
func ancestor(obj graphic.Object, f func(graphic.Object) bool) graphic.Object {
	nodes, err := tree.NewWalker(obj.TreeNode()).AncestorWith(
		func(test, _ *objectNode) (*objectNode, error) {
			if f(test.Payload) {
				return test, nil
			}
			return nil, nil
		}).Promise()()
	if err != nil || len(nodes) == 0 {
		return nil
	}
	return nodes[0].Payload
}

func isLayer(obj graphic.Object) bool {
	_, ok := obj.(*graphic.Layer)
	return ok
}

func isInterpolation(obj graphic.Object) bool {
	_, ok := obj.(*graphic.Interpolation)
	return ok
}

func layerName(obj graphic.Object) string {
	if !isLayer(obj) {
		obj = ancestor(obj, isLayer)
	}
	if obj == nil {
		return ""
	}
	return obj.(*graphic.Layer).Name()
}

func parentKind(obj graphic.Object) string {
	nodes, err := tree.NewWalker(obj.TreeNode()).Parent().Promise()()
	if err != nil || len(nodes) == 0 {
		return ""
	}
	return nodes[0].Payload.Kind().String()
}

func isLeaf(obj graphic.Object) bool {
	nodes, err := tree.NewWalker(obj.TreeNode()).Filter(tree.NodeIsLeaf[graphic.Object]()).Promise()()
	return err == nil && len(nodes) == 1
}

// isDerived is true for interpolations and everything below them.
func isDerived(obj graphic.Object) bool {
	return isInterpolation(obj) || ancestor(obj, isInterpolation) != nil
}
