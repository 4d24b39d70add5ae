package style

import (
	"fmt"
	"image/color"
	"math"
)

// blendFunc combines two property values with weights w1 and w2.
type blendFunc func(p1, p2 Property, w1, w2 float64) (Property, error)

// Properties without a blend function take the value of the first cascade.
var blendFunctions = map[string]blendFunc{
	FillPattern: blendPattern,
	LinePattern: blendPattern,
	LineWidth:   blendNumber,
	FontSize:    blendNumber,
}

// IsBlendable is true for properties which are interpolated by Blend.
func IsBlendable(key string) bool {
	_, ok := blendFunctions[key]
	return ok
}

// Blend creates a new cascade with a single private layer, holding the
// weighted combination w1·c + w2·other of the effective values of every
// property. Numbers are mixed linearly, patterns are mixed by color.
// Blending an empty pattern with any other pattern yields an empty pattern.
// Values which cannot be mixed, e.g. a line width which is not a number,
// make Blend return an error wrapping ErrBlendValue.
func (c *Cascade) Blend(other *Cascade, w1, w2 float64) (*Cascade, error) {
	l := NewLayer()
	for _, k := range propertyKeys {
		p1 := c.Get(k)
		f, ok := blendFunctions[k]
		if !ok {
			l.props[k] = p1
			continue
		}
		p, err := f(p1, other.Get(k), w1, w2)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		l.props[k] = p
	}
	return NewCascade(l), nil
}

func blendNumber(p1, p2 Property, w1, w2 float64) (Property, error) {
	n1, ok1 := p1.Float()
	n2, ok2 := p2.Float()
	if !ok1 || !ok2 {
		return NullStyle, fmt.Errorf("%q and %q: %w", p1, p2, ErrBlendValue)
	}
	return FloatProperty(round(n1*w1 + n2*w2)), nil
}

func blendPattern(p1, p2 Property, w1, w2 float64) (Property, error) {
	if p1.IsNone() || p2.IsNone() {
		return None, nil
	}
	c1, ok1 := p1.Color()
	c2, ok2 := p2.Color()
	if !ok1 || !ok2 {
		return NullStyle, fmt.Errorf("%q and %q: %w", p1, p2, ErrBlendValue)
	}
	mix := func(a, b uint8) uint8 {
		v := math.Round(float64(a)*w1 + float64(b)*w2)
		return uint8(math.Max(0, math.Min(255, v)))
	}
	return ColorProperty(color.RGBA{
		R: mix(c1.R, c2.R),
		G: mix(c1.G, c2.G),
		B: mix(c1.B, c2.B),
		A: 0xff,
	}), nil
}

// round to 6 decimal places, to keep property strings short.
func round(x float64) float64 {
	return math.Round(x*1e6) / 1e6
}
