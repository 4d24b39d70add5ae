package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/vdoc/undo"
)

// Layer is a mapping from property keys to values, i.e. a partial style.
// Layers are either private to a cascade or dynamic. Dynamic layers
// carry a name and may be shared by several cascades; they are owned by
// a Registry.
type Layer struct {
	name    string
	dynamic bool
	props   map[string]Property
	gen     uint64 // incremented on every mutation
}

// NewLayer creates a private layer, pre-filled with properties.
func NewLayer(kv ...KeyValue) *Layer {
	l := &Layer{props: make(map[string]Property, len(kv))}
	for _, x := range kv {
		l.props[x.Key] = normalize(x.Key, x.Value)
	}
	return l
}

// Name returns the name of a layer. Private layers usually are unnamed.
func (l *Layer) Name() string {
	return l.name
}

// IsDynamic is true for shared layers, owned by a registry.
func (l *Layer) IsDynamic() bool {
	return l.dynamic
}

// Get a property's value.
func (l *Layer) Get(key string) (Property, bool) {
	p, ok := l.props[key]
	return p, ok
}

// IsSet is a predicated wether a property is set within this layer.
func (l *Layer) IsSet(key string) bool {
	_, ok := l.props[key]
	return ok
}

// Len returns the number of properties set.
func (l *Layer) Len() int {
	return len(l.props)
}

// IsEmpty is true if no property is set.
func (l *Layer) IsEmpty() bool {
	return len(l.props) == 0
}

// Keys returns the keys of all properties set, sorted.
func (l *Layer) Keys() []string {
	keys := make([]string, 0, len(l.props))
	for k := range l.props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Properties returns all properties of a layer, sorted by key.
func (l *Layer) Properties() []KeyValue {
	r := make([]KeyValue, 0, len(l.props))
	for _, k := range l.Keys() {
		r = append(r, KeyValue{k, l.props[k]})
	}
	return r
}

// Set a property's value. Overwrites an existing value, if present.
// Returns an undo entry to restore the previous state.
//
// Set modifies the layer in place. For dynamic layers, this will change
// every cascade referencing it.
func (l *Layer) Set(key string, p Property) undo.Entry {
	var u undo.Entry
	if old, ok := l.props[key]; ok {
		u = undo.New(func() undo.Entry { return l.Set(key, old) })
	} else {
		u = undo.New(func() undo.Entry { return l.Delete(key) })
	}
	l.props[key] = normalize(key, p)
	l.gen++
	return u
}

// Delete removes a property. Returns an undo entry to restore it.
func (l *Layer) Delete(key string) undo.Entry {
	old, ok := l.props[key]
	if !ok {
		return undo.Null
	}
	delete(l.props, key)
	l.gen++
	return undo.New(func() undo.Entry { return l.Set(key, old) })
}

// SetName renames a layer. Returns an undo entry to restore the old name.
func (l *Layer) SetName(name string) undo.Entry {
	old := l.name
	l.name = name
	l.gen++
	return undo.New(func() undo.Entry { return l.SetName(old) })
}

// Copy returns a copy of l, including name and dynamic flag.
func (l *Layer) Copy() *Layer {
	c := &Layer{name: l.name, dynamic: l.dynamic, props: make(map[string]Property, len(l.props))}
	for k, v := range l.props {
		c.props[k] = v
	}
	return c
}

// Duplicate returns l itself for dynamic layers, and a copy otherwise.
func (l *Layer) Duplicate() *Layer {
	if l.dynamic {
		return l
	}
	return l.Copy()
}

// AsDynamic returns a dynamic copy of l with a given name.
func (l *Layer) AsDynamic(name string) *Layer {
	c := l.Copy()
	c.name = name
	c.dynamic = true
	return c
}

// AsPrivate returns a private, unnamed copy of l.
func (l *Layer) AsPrivate() *Layer {
	c := l.Copy()
	c.name = ""
	c.dynamic = false
	return c
}

// Stringer for layers; used for debugging.
func (l *Layer) String() string {
	var b strings.Builder
	if l.dynamic {
		fmt.Fprintf(&b, "[%s*] {", l.name)
	} else if l.name != "" {
		fmt.Fprintf(&b, "[%s] {", l.name)
	} else {
		b.WriteString("{")
	}
	for i, kv := range l.Properties() {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(kv.String())
	}
	b.WriteString("}")
	return b.String()
}
