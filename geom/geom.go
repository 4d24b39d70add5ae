/*
Package geom provides the small amount of affine geometry needed to move,
transform and interpolate drawing objects.

A Trafo is an affine transformation, stored as a 2×3 matrix in row-major
order, as defined by golang.org/x/image/math/f64:

    | a  b  c |
    | d  e  f |

It maps a point (x, y) to (a·x + b·y + c, d·x + e·y + f).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package geom

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// Point is a point or a vector in the drawing plane.
type Point struct {
	X, Y float64
}

// Pt is a shortcut for creating a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Neg returns -p.
func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

// Blend returns the weighted combination w1·p + w2·q.
func (p Point) Blend(q Point, w1, w2 float64) Point {
	return Point{w1*p.X + w2*q.X, w1*p.Y + w2*q.Y}
}

// Near is true if p and q differ by less than a tolerance of 1e-9 in
// every coordinate.
func (p Point) Near(q Point) bool {
	return math.Abs(p.X-q.X) < 1e-9 && math.Abs(p.Y-q.Y) < 1e-9
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Trafo is an affine transformation.
type Trafo struct {
	m f64.Aff3
}

// Identity is the identity transformation.
var Identity = Trafo{m: f64.Aff3{1, 0, 0, 0, 1, 0}}

// NewTrafo creates a transformation from its matrix coefficients.
func NewTrafo(a, b, c, d, e, f float64) Trafo {
	return Trafo{m: f64.Aff3{a, b, c, d, e, f}}
}

// Translation creates a transformation which moves by offset.
func Translation(offset Point) Trafo {
	return NewTrafo(1, 0, offset.X, 0, 1, offset.Y)
}

// Scaling creates a transformation which scales by sx, sy.
func Scaling(sx, sy float64) Trafo {
	return NewTrafo(sx, 0, 0, 0, sy, 0)
}

// Rotation creates a transformation which rotates by angle (in radians)
// around the origin.
func Rotation(angle float64) Trafo {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return NewTrafo(cos, -sin, 0, sin, cos, 0)
}

// Matrix returns the coefficients of t.
func (t Trafo) Matrix() f64.Aff3 {
	return t.m
}

// Apply maps a point.
func (t Trafo) Apply(p Point) Point {
	m := t.m
	return Point{m[0]*p.X + m[1]*p.Y + m[2], m[3]*p.X + m[4]*p.Y + m[5]}
}

// ApplyVector maps a vector, i.e. ignores the translational part of t.
func (t Trafo) ApplyVector(p Point) Point {
	m := t.m
	return Point{m[0]*p.X + m[1]*p.Y, m[3]*p.X + m[4]*p.Y}
}

// Then returns the transformation which applies t first, then u.
func (t Trafo) Then(u Trafo) Trafo {
	a, b := u.m, t.m
	return Trafo{m: f64.Aff3{
		a[0]*b[0] + a[1]*b[3], a[0]*b[1] + a[1]*b[4], a[0]*b[2] + a[1]*b[5] + a[2],
		a[3]*b[0] + a[4]*b[3], a[3]*b[1] + a[4]*b[4], a[3]*b[2] + a[4]*b[5] + a[5],
	}}
}

// Offset returns the translational part of t.
func (t Trafo) Offset() Point {
	return Point{t.m[2], t.m[5]}
}

// Determinant returns the determinant of the linear part of t.
func (t Trafo) Determinant() float64 {
	return t.m[0]*t.m[4] - t.m[1]*t.m[3]
}

// Inverse returns the inverse of t. It returns false for a singular t.
func (t Trafo) Inverse() (Trafo, bool) {
	det := t.Determinant()
	if math.Abs(det) < 1e-12 {
		return Identity, false
	}
	m := t.m
	a, b, d, e := m[4]/det, -m[1]/det, -m[3]/det, m[0]/det
	return Trafo{m: f64.Aff3{
		a, b, -(a*m[2] + b*m[5]),
		d, e, -(d*m[2] + e*m[5]),
	}}, true
}

// Blend returns the coefficient-wise weighted combination w1·t + w2·u.
func (t Trafo) Blend(u Trafo, w1, w2 float64) Trafo {
	var m f64.Aff3
	for i := range m {
		m[i] = w1*t.m[i] + w2*u.m[i]
	}
	return Trafo{m: m}
}

// Near is true if the coefficients of t and u differ by less than 1e-9.
func (t Trafo) Near(u Trafo) bool {
	for i := range t.m {
		if math.Abs(t.m[i]-u.m[i]) >= 1e-9 {
			return false
		}
	}
	return true
}

func (t Trafo) String() string {
	m := t.m
	return fmt.Sprintf("[%g %g %g; %g %g %g]", m[0], m[1], m[2], m[3], m[4], m[5])
}
