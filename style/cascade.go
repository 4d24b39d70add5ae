package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/vdoc/undo"
)

// Cascade is a stack of style layers, ordered from most specific to least
// specific. Cascades always hold at least one layer.
//
// Property lookups are memoized. The memo is dropped whenever the stack of
// layers changes, or when a layer of the stack has been mutated since the
// memo has been filled.
type Cascade struct {
	layers []*Layer
	memo   map[string]Property
	gens   []uint64 // generations of layers at time of memoization
}

// NewCascade creates a cascade from layers, the most specific layer first.
// Without layers, the cascade starts with an empty private layer.
func NewCascade(layers ...*Layer) *Cascade {
	c := &Cascade{}
	for _, l := range layers {
		if l != nil {
			c.layers = append(c.layers, l)
		}
	}
	if len(c.layers) == 0 {
		c.layers = []*Layer{NewLayer()}
	}
	return c
}

// Get returns the value of a property from the first layer defining it,
// or the factory default. Unknown keys return NullStyle.
func (c *Cascade) Get(key string) Property {
	if !c.cacheValid() {
		c.fillCache()
	}
	if p, ok := c.memo[key]; ok {
		return p
	}
	p, ok := FactoryDefault(key)
	if !ok {
		tracer().Debugf("style: no property %q", key)
	}
	return p
}

// Layer returns the first layer defining key, or nil.
func (c *Cascade) Layer(key string) *Layer {
	for _, l := range c.layers {
		if l.IsSet(key) {
			return l
		}
	}
	return nil
}

// Layers returns the stack of layers, most specific first.
func (c *Cascade) Layers() []*Layer {
	layers := make([]*Layer, len(c.layers))
	copy(layers, c.layers)
	return layers
}

// Len returns the number of layers.
func (c *Cascade) Len() int {
	return len(c.layers)
}

func (c *Cascade) cacheValid() bool {
	if c.memo == nil || len(c.gens) != len(c.layers) {
		return false
	}
	for i, l := range c.layers {
		if c.gens[i] != l.gen {
			return false
		}
	}
	return true
}

func (c *Cascade) fillCache() {
	c.memo = make(map[string]Property, len(propertyKeys))
	c.gens = make([]uint64, len(c.layers))
	for i := len(c.layers) - 1; i >= 0; i-- {
		l := c.layers[i]
		for k, v := range l.props {
			c.memo[k] = v
		}
		c.gens[i] = l.gen
	}
}

// clearCache drops the memo. It is its own inverse.
func (c *Cascade) clearCache() undo.Entry {
	c.memo = nil
	c.gens = nil
	return undo.New(c.clearCache)
}

// Set writes a property value.
//
// A cascade consisting of a single private layer is changed in place.
// Otherwise the value goes to the layer currently defining the property,
// unless this is a dynamic layer: then it goes to the topmost layer, if that
// is private, or to a new private layer on top of the stack. Afterwards,
// layers which have become fully shadowed are removed.
func (c *Cascade) Set(key string, p Property) undo.Entry {
	return c.SetProperties(KeyValue{Key: key, Value: p})
}

// SetProperties writes a set of property values, see Set.
func (c *Cascade) SetProperties(kv ...KeyValue) undo.Entry {
	var entries []undo.Entry
	if len(c.layers) == 1 && !c.layers[0].dynamic {
		for _, x := range kv {
			entries = append(entries, c.layers[0].Set(x.Key, x.Value))
		}
	} else {
		for _, x := range kv {
			entries = append(entries, c.set(x.Key, x.Value))
		}
	}
	if len(c.layers) > 1 {
		entries = append(entries, c.Compact())
	}
	return undo.ComposeAfter(undo.Compose(entries...), c.clearCache())
}

func (c *Cascade) set(key string, p Property) undo.Entry {
	layer := c.Layer(key)
	if layer == nil || layer.dynamic {
		if c.layers[0].dynamic {
			return c.pushLayer(NewLayer(KeyValue{key, p}))
		}
		layer = c.layers[0]
	}
	return layer.Set(key, p)
}

// setLayers replaces the stack of layers. It returns an entry restoring
// the old stack.
func (c *Cascade) setLayers(layers []*Layer) undo.Entry {
	old := c.layers
	c.layers = layers
	c.clearCache()
	return undo.New(func() undo.Entry { return c.setLayers(old) })
}

func (c *Cascade) pushLayer(l *Layer) undo.Entry {
	layers := make([]*Layer, 0, len(c.layers)+1)
	layers = append(layers, l)
	layers = append(layers, c.layers...)
	return c.setLayers(layers)
}

// AddStyle puts a layer on top of the cascade. Dynamic layers are
// referenced as is, the properties of private layers are copied with
// SetProperties.
func (c *Cascade) AddStyle(l *Layer) undo.Entry {
	if !l.dynamic {
		return c.SetProperties(l.Properties()...)
	}
	tracer().Debugf("style: add dynamic layer %q", l.name)
	u := c.pushLayer(l)
	return undo.Compose(u, c.Compact())
}

// PopStyle removes the topmost layer, if there is more than one.
func (c *Cascade) PopStyle() undo.Entry {
	if len(c.layers) < 2 {
		return undo.Null
	}
	layers := make([]*Layer, len(c.layers)-1)
	copy(layers, c.layers[1:])
	return c.setLayers(layers)
}

// Compact removes every layer below the top which does not contribute any
// property, i.e. all of its properties are defined by layers above it.
// The top layer is never removed. Property lookups are not affected.
func (c *Cascade) Compact() undo.Entry {
	seen := make(map[string]struct{})
	for k := range c.layers[0].props {
		seen[k] = struct{}{}
	}
	kept := []*Layer{c.layers[0]}
	for _, l := range c.layers[1:] {
		n := len(seen)
		for k := range l.props {
			seen[k] = struct{}{}
		}
		if len(seen) != n {
			kept = append(kept, l)
		}
	}
	if len(kept) == len(c.layers) {
		return undo.Null
	}
	tracer().Debugf("style: compacted cascade from %d to %d layers", len(c.layers), len(kept))
	return c.setLayers(kept)
}

// Condense merges runs of adjacent private layers into single layers and
// then compacts the cascade. Merged layers are new copies, the layers of
// the old stack remain untouched.
func (c *Cascade) Condense() undo.Entry {
	var layers []*Layer
	for _, l := range c.layers {
		if n := len(layers); n > 0 && !l.dynamic && !layers[n-1].dynamic {
			merged := l.Copy()
			for k, v := range layers[n-1].props {
				merged.props[k] = v
			}
			merged.name = layers[n-1].name
			layers[n-1] = merged
			continue
		}
		layers = append(layers, l)
	}
	if len(layers) == len(c.layers) {
		return c.Compact()
	}
	u := c.setLayers(layers)
	return undo.Compose(u, c.Compact())
}

// Uses is true if l is part of the stack of layers.
func (c *Cascade) Uses(l *Layer) bool {
	for _, x := range c.layers {
		if x == l {
			return true
		}
	}
	return false
}

// Demote replaces a dynamic layer l by a private copy. This is used when
// a named style is removed from a registry: objects referencing it keep
// their appearance.
func (c *Cascade) Demote(l *Layer) undo.Entry {
	for i, x := range c.layers {
		if x == l {
			layers := c.Layers()
			layers[i] = l.AsPrivate()
			tracer().Debugf("style: demoted style %q", l.name)
			return c.setLayers(layers)
		}
	}
	return undo.Null
}

// DynamicStyleNames returns the names of all dynamic layers of the cascade.
func (c *Cascade) DynamicStyleNames() []string {
	var names []string
	for _, l := range c.layers {
		if l.dynamic {
			names = append(names, l.name)
		}
	}
	return names
}

// CreateStyle creates a private layer holding the effective values of a set
// of properties. Without keys, all known properties are included. Font
// properties are skipped if no font is set.
func (c *Cascade) CreateStyle(keys ...string) *Layer {
	if len(keys) == 0 {
		keys = propertyKeys
	}
	l := NewLayer()
	hasFont := !c.Get(Font).IsNone()
	for _, k := range keys {
		if GroupNameFromPropertyKey(k) == PGFont && !hasFont {
			continue
		}
		l.props[k] = c.Get(k)
	}
	return l
}

// Duplicate creates a copy of c for a copy of an object. Dynamic layers are
// shared, private layers are copied.
func (c *Cascade) Duplicate() *Cascade {
	d := &Cascade{layers: make([]*Layer, len(c.layers))}
	for i, l := range c.layers {
		d.layers[i] = l.Duplicate()
	}
	return d
}

// HasFill is true if the fill pattern is not empty.
func (c *Cascade) HasFill() bool {
	return !c.Get(FillPattern).IsNone()
}

// HasLine is true if the line pattern is not empty.
func (c *Cascade) HasLine() bool {
	return !c.Get(LinePattern).IsNone()
}

// HasFont is true if a font is set.
func (c *Cascade) HasFont() bool {
	return !c.Get(Font).IsNone()
}

// Stringer for cascades; used for debugging and for comparing states
// in tests.
func (c *Cascade) String() string {
	var b strings.Builder
	for i, l := range c.layers {
		if i > 0 {
			b.WriteString(" > ")
		}
		b.WriteString(l.String())
	}
	return b.String()
}
