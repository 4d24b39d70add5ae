package graphic

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"

	"github.com/npillmayer/vdoc/geom"
	"github.com/npillmayer/vdoc/style"
	"github.com/npillmayer/vdoc/undo"
)

// blendObjects blends a and b with weights w1 (for a) and w2 (for b). If a
// does not know how to blend with b, b is asked to blend with a.
func blendObjects(a, b Object, w1, w2 float64) (Object, error) {
	obj, err := a.Blend(b, w1, w2)
	if err == nil || !errors.Is(err, ErrBlendMismatch) {
		return obj, err
	}
	if obj, err2 := b.Blend(a, w2, w1); err2 == nil {
		return obj, nil
	}
	return nil, err
}

// Interpolation is the derived child of a blend group. Its children are
// computed from the neighbouring controls and the number of steps, and
// are never edited directly.
type Interpolation struct {
	compound
	steps int
}

func newInterpolation(steps int) *Interpolation {
	assertThat(steps >= 2, "interpolation with %d steps", steps)
	ip := &Interpolation{steps: steps}
	ip.init(ip)
	return ip
}

// Kind is KindInterpolation.
func (ip *Interpolation) Kind() Kind { return KindInterpolation }

// Steps returns the number of steps from one control to the other. An
// interpolation holds steps-1 objects.
func (ip *Interpolation) Steps() int { return ip.steps }

// SetSteps changes the number of steps and recomputes the interpolation.
func (ip *Interpolation) SetSteps(steps int) (undo.Entry, error) {
	if steps < 2 {
		return undo.Null, fmt.Errorf("%s: %d: %w", describe(ip), steps, ErrSteps)
	}
	old := ip.steps
	if old == steps {
		return undo.Null, nil
	}
	ip.steps = steps
	if bg := ip.blendGroup(); bg != nil {
		if err := bg.recompute(ip); err != nil {
			ip.steps = old
			return undo.Null, err
		}
	}
	return undo.New(func() undo.Entry {
		u, err := ip.SetSteps(old)
		if err != nil {
			tracer().Errorf("%s: cannot restore steps: %v", describe(ip), err)
		}
		return u
	}), nil
}

func (ip *Interpolation) blendGroup() *BlendGroup {
	bg, _ := Parent(ip).(*BlendGroup)
	return bg
}

// compute blends start and end. Objects are ordered from start to end.
func (ip *Interpolation) compute(start, end Object) ([]Object, error) {
	objs := make([]Object, 0, ip.steps-1)
	for step := ip.steps - 1; step > 0; step-- {
		w := float64(step) / float64(ip.steps)
		obj, err := blendObjects(start, end, w, 1-w)
		if err != nil {
			return nil, err
		}
		objs = append(objs, obj)
	}
	return objs, nil
}

// setObjects replaces all children. The old children are discarded.
func (ip *Interpolation) setObjects(objs []Object) {
	ip.BeginBatch()
	ip.removeSlice(0, ip.Len())
	ip.insertAt(0, objs...)
	ip.EndBatch()
}

// The transformations below act only while the blend group is changing
// all of its children at once. Otherwise recomputation takes care of the
// interpolation.

func (ip *Interpolation) parentBatching() bool {
	p := Parent(ip)
	return p != nil && p.IsBatching()
}

// Translate moves the interpolated objects, if the blend group is moved
// as a whole.
func (ip *Interpolation) Translate(offset geom.Point) undo.Entry {
	if ip.parentBatching() {
		ip.compound.Translate(offset)
	}
	return undo.Null
}

// Transform transforms the interpolated objects, if the blend group is
// transformed as a whole.
func (ip *Interpolation) Transform(t geom.Trafo) undo.Entry {
	if ip.parentBatching() {
		ip.compound.Transform(t)
	}
	return undo.Null
}

// SetProperties sets properties of the interpolated objects, if the blend
// group is changed as a whole.
func (ip *Interpolation) SetProperties(kv ...style.KeyValue) undo.Entry {
	if ip.parentBatching() {
		ip.compound.SetProperties(kv...)
	}
	return undo.Null
}

// AddStyle adds a style to the interpolated objects, if the blend group
// is changed as a whole.
func (ip *Interpolation) AddStyle(l *style.Layer) undo.Entry {
	if ip.parentBatching() {
		ip.compound.AddStyle(l)
	}
	return undo.Null
}

// Duplicate creates a detached deep copy.
func (ip *Interpolation) Duplicate() Object {
	dup := newInterpolation(ip.steps)
	ip.duplicateChildren(&dup.compound)
	return dup
}

// Blend is not supported for interpolations.
func (ip *Interpolation) Blend(other Object, w1, w2 float64) (Object, error) {
	return nil, fmt.Errorf("%s: %w", describe(ip), ErrBlendMismatch)
}

// AsGroup freezes the current state of the interpolation into a group of
// copies of the interpolated objects.
func (ip *Interpolation) AsGroup() *Group {
	objs := make([]Object, 0, ip.Len())
	for _, ch := range ip.Children() {
		objs = append(objs, ch.Duplicate())
	}
	return NewGroup(objs...)
}

// Save calls v.Interpolation. Visitors which want to output the
// interpolated objects save the children themselves.
func (ip *Interpolation) Save(v Visitor) error {
	return v.Interpolation(ip)
}
