package graphic

import (
	"fmt"

	"github.com/npillmayer/vdoc/geom"
	"github.com/npillmayer/vdoc/style"
	"github.com/npillmayer/vdoc/undo"
)

// shape is the common part of all primitives: they carry a property
// cascade and have no children.
type shape struct {
	Base
	props *style.Cascade
}

func (s *shape) init(self Object, props *style.Cascade) {
	s.Base.init(self)
	if props == nil {
		props = style.NewCascade()
	}
	s.props = props
}

// IsCompound is false for primitives.
func (s *shape) IsCompound() bool { return false }

// Properties returns the property cascade of the primitive.
func (s *shape) Properties() *style.Cascade { return s.props }

// SetProperties sets properties in the private layer of the cascade.
func (s *shape) SetProperties(kv ...style.KeyValue) undo.Entry {
	return s.changeProperties(func() undo.Entry {
		return s.props.SetProperties(kv...)
	})
}

// AddStyle puts a style layer on top of the cascade.
func (s *shape) AddStyle(l *style.Layer) undo.Entry {
	return s.changeProperties(func() undo.Entry {
		return s.props.AddStyle(l)
	})
}

// changeProperties performs f and notifies the parent. The returned entry
// notifies the parent as well when applied.
func (s *shape) changeProperties(f func() undo.Entry) undo.Entry {
	u := f()
	if u.IsNull() {
		return undo.Null
	}
	notifyChanged(s.node.Payload)
	return undo.New(func() undo.Entry {
		return s.changeProperties(func() undo.Entry { return undo.Apply(u) })
	})
}

func (s *shape) blendProperties(other Object, w1, w2 float64) (*style.Cascade, error) {
	props, err := s.props.Blend(other.Properties(), w1, w2)
	if err != nil {
		return nil, fmt.Errorf("blending properties of %s and %s: %w: %w",
			describe(s.node.Payload), describe(other), ErrBlendMismatch, err)
	}
	return props, nil
}

// framed is a primitive defined as the image of a unit figure under an
// affine transformation.
type framed struct {
	shape
	trafo geom.Trafo
}

// Trafo returns the transformation mapping the unit figure to the object.
func (f *framed) Trafo() geom.Trafo { return f.trafo }

func (f *framed) setTrafo(t geom.Trafo) undo.Entry {
	old := f.trafo
	f.trafo = t
	notifyChanged(f.node.Payload)
	return undo.New(func() undo.Entry { return f.setTrafo(old) })
}

// Translate moves the object by offset.
func (f *framed) Translate(offset geom.Point) undo.Entry {
	return f.setTrafo(f.trafo.Then(geom.Translation(offset)))
}

// Transform applies t to the object.
func (f *framed) Transform(t geom.Trafo) undo.Entry {
	return f.setTrafo(f.trafo.Then(t))
}

// --- Rectangle -------------------------------------------------------------

// Rectangle is the image of the unit square under a transformation.
type Rectangle struct {
	framed
}

// NewRectangle creates an axis-parallel rectangle with lower left corner
// (x,y). props may be nil.
func NewRectangle(x, y, w, h float64, props *style.Cascade) *Rectangle {
	return NewRectangleTrafo(geom.Scaling(w, h).Then(geom.Translation(geom.Pt(x, y))), props)
}

// NewRectangleTrafo creates a rectangle from a transformation of the unit
// square.
func NewRectangleTrafo(t geom.Trafo, props *style.Cascade) *Rectangle {
	r := &Rectangle{}
	r.init(r, props)
	r.trafo = t
	return r
}

// Kind is KindRectangle.
func (r *Rectangle) Kind() Kind { return KindRectangle }

// Corners returns the corners of the rectangle, counter-clockwise,
// starting with the image of the origin.
func (r *Rectangle) Corners() [4]geom.Point {
	return [4]geom.Point{
		r.trafo.Apply(geom.Pt(0, 0)),
		r.trafo.Apply(geom.Pt(1, 0)),
		r.trafo.Apply(geom.Pt(1, 1)),
		r.trafo.Apply(geom.Pt(0, 1)),
	}
}

// Duplicate creates a detached copy with a new identity.
func (r *Rectangle) Duplicate() Object {
	return NewRectangleTrafo(r.trafo, r.props.Duplicate())
}

// Blend blends with other rectangles.
func (r *Rectangle) Blend(other Object, w1, w2 float64) (Object, error) {
	o, ok := other.(*Rectangle)
	if !ok {
		return nil, fmt.Errorf("%s with %s: %w", describe(r), describe(other), ErrBlendMismatch)
	}
	props, err := r.blendProperties(o, w1, w2)
	if err != nil {
		return nil, err
	}
	return NewRectangleTrafo(r.trafo.Blend(o.trafo, w1, w2), props), nil
}

// Save calls v.Rectangle.
func (r *Rectangle) Save(v Visitor) error {
	return v.Rectangle(r)
}

func (r *Rectangle) String() string {
	return fmt.Sprintf("%s%v", describe(r), r.trafo)
}

// --- Ellipse ---------------------------------------------------------------

// Ellipse is the image of the unit circle under a transformation.
type Ellipse struct {
	framed
}

// NewEllipse creates an axis-parallel ellipse. props may be nil.
func NewEllipse(cx, cy, rx, ry float64, props *style.Cascade) *Ellipse {
	return NewEllipseTrafo(geom.Scaling(rx, ry).Then(geom.Translation(geom.Pt(cx, cy))), props)
}

// NewEllipseTrafo creates an ellipse from a transformation of the unit
// circle.
func NewEllipseTrafo(t geom.Trafo, props *style.Cascade) *Ellipse {
	e := &Ellipse{}
	e.init(e, props)
	e.trafo = t
	return e
}

// Kind is KindEllipse.
func (e *Ellipse) Kind() Kind { return KindEllipse }

// Center returns the center of the ellipse.
func (e *Ellipse) Center() geom.Point {
	return e.trafo.Offset()
}

// Duplicate creates a detached copy with a new identity.
func (e *Ellipse) Duplicate() Object {
	return NewEllipseTrafo(e.trafo, e.props.Duplicate())
}

// Blend blends with other ellipses.
func (e *Ellipse) Blend(other Object, w1, w2 float64) (Object, error) {
	o, ok := other.(*Ellipse)
	if !ok {
		return nil, fmt.Errorf("%s with %s: %w", describe(e), describe(other), ErrBlendMismatch)
	}
	props, err := e.blendProperties(o, w1, w2)
	if err != nil {
		return nil, err
	}
	return NewEllipseTrafo(e.trafo.Blend(o.trafo, w1, w2), props), nil
}

// Save calls v.Ellipse.
func (e *Ellipse) Save(v Visitor) error {
	return v.Ellipse(e)
}

func (e *Ellipse) String() string {
	return fmt.Sprintf("%s%v", describe(e), e.trafo)
}

// --- PolyLine --------------------------------------------------------------

// PolyLine is a sequence of points, connected by straight lines.
type PolyLine struct {
	shape
	points []geom.Point
	closed bool
}

// NewPolyLine creates a poly-line through points. props may be nil.
func NewPolyLine(points []geom.Point, closed bool, props *style.Cascade) *PolyLine {
	pl := &PolyLine{closed: closed}
	pl.init(pl, props)
	pl.points = append([]geom.Point(nil), points...)
	return pl
}

// Kind is KindPolyLine.
func (pl *PolyLine) Kind() Kind { return KindPolyLine }

// Points returns a copy of the points of the poly-line.
func (pl *PolyLine) Points() []geom.Point {
	return append([]geom.Point(nil), pl.points...)
}

// IsClosed returns true if the last point connects to the first one.
func (pl *PolyLine) IsClosed() bool { return pl.closed }

func (pl *PolyLine) setPoints(points []geom.Point) undo.Entry {
	old := pl.points
	pl.points = points
	notifyChanged(pl)
	return undo.New(func() undo.Entry { return pl.setPoints(old) })
}

// Translate moves every point by offset.
func (pl *PolyLine) Translate(offset geom.Point) undo.Entry {
	return pl.Transform(geom.Translation(offset))
}

// Transform applies t to every point.
func (pl *PolyLine) Transform(t geom.Trafo) undo.Entry {
	points := make([]geom.Point, len(pl.points))
	for i, p := range pl.points {
		points[i] = t.Apply(p)
	}
	return pl.setPoints(points)
}

// Duplicate creates a detached copy with a new identity.
func (pl *PolyLine) Duplicate() Object {
	return NewPolyLine(pl.points, pl.closed, pl.props.Duplicate())
}

// Blend blends with poly-lines of the same number of points.
func (pl *PolyLine) Blend(other Object, w1, w2 float64) (Object, error) {
	o, ok := other.(*PolyLine)
	if !ok || len(o.points) != len(pl.points) || o.closed != pl.closed {
		return nil, fmt.Errorf("%s with %s: %w", describe(pl), describe(other), ErrBlendMismatch)
	}
	props, err := pl.blendProperties(o, w1, w2)
	if err != nil {
		return nil, err
	}
	points := make([]geom.Point, len(pl.points))
	for i := range pl.points {
		points[i] = pl.points[i].Blend(o.points[i], w1, w2)
	}
	return NewPolyLine(points, pl.closed, props), nil
}

// Save calls v.PolyLine.
func (pl *PolyLine) Save(v Visitor) error {
	return v.PolyLine(pl)
}

func (pl *PolyLine) String() string {
	return fmt.Sprintf("%s%v", describe(pl), pl.points)
}
