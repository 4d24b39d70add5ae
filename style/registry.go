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

	"github.com/npillmayer/vdoc/undo"
)

// Registry holds the named dynamic styles of a document, together with the
// document's default properties for new objects.
//
// The registry owns its dynamic layers. Cascades reference them, but
// removing a style from the registry has to be accompanied by demoting
// the layer in every referencing cascade (see Cascade.Demote).
type Registry struct {
	styles   map[string]*Layer
	defaults *Layer
}

// NewRegistry creates an empty registry, with defaults set to the
// factory defaults.
func NewRegistry() *Registry {
	return &Registry{
		styles:   make(map[string]*Layer),
		defaults: FactoryDefaults(),
	}
}

// Define creates a new dynamic style with a given name.
func (r *Registry) Define(name string, kv ...KeyValue) (*Layer, undo.Entry, error) {
	l := NewLayer(kv...).AsDynamic(name)
	u, err := r.Add(l)
	if err != nil {
		return nil, undo.Null, err
	}
	return l, u, nil
}

// Add interns an existing dynamic layer.
func (r *Registry) Add(l *Layer) (undo.Entry, error) {
	if l.name == "" {
		return undo.Null, ErrUnnamedStyle
	}
	if !l.dynamic {
		l = l.AsDynamic(l.name)
	}
	if _, exists := r.styles[l.name]; exists {
		return undo.Null, fmt.Errorf("%q: %w", l.name, ErrDuplicateStyle)
	}
	r.styles[l.name] = l
	tracer().Debugf("style registry: defined %q", l.name)
	return undo.New(func() undo.Entry {
		u, _ := r.remove(l.name)
		return u
	}), nil
}

// Lookup finds a dynamic style by name.
func (r *Registry) Lookup(name string) (*Layer, bool) {
	l, ok := r.styles[name]
	return l, ok
}

// Remove drops a dynamic style from the registry. Clients will have to
// demote the layer in all cascades using it.
func (r *Registry) Remove(name string) (*Layer, undo.Entry, error) {
	l, ok := r.styles[name]
	if !ok {
		return nil, undo.Null, fmt.Errorf("%q: %w", name, ErrUnknownStyle)
	}
	u, _ := r.remove(name)
	return l, u, nil
}

func (r *Registry) remove(name string) (undo.Entry, *Layer) {
	l, ok := r.styles[name]
	if !ok {
		tracer().Errorf("style registry: cannot remove %q, not defined", name)
		return undo.Null, nil
	}
	delete(r.styles, name)
	return undo.New(func() undo.Entry {
		if _, exists := r.styles[name]; exists {
			tracer().Errorf("style registry: cannot re-insert %q, name taken", name)
			return undo.Null
		}
		r.styles[name] = l
		return undo.New(func() undo.Entry {
			u, _ := r.remove(name)
			return u
		})
	}), l
}

// Names returns the names of all dynamic styles, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.styles))
	for n := range r.styles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of dynamic styles.
func (r *Registry) Len() int {
	return len(r.styles)
}

// Defaults returns the layer of document default properties.
func (r *Registry) Defaults() *Layer {
	return r.defaults
}

// SetDefault changes a document default property. Objects created
// afterwards will start with the new value.
func (r *Registry) SetDefault(key string, p Property) (undo.Entry, error) {
	if !IsKnown(key) {
		return undo.Null, fmt.Errorf("%q: %w", key, ErrUnknownKey)
	}
	return r.defaults.Set(key, p), nil
}

// NewCascade creates a cascade for a new object, starting with a private
// copy of the document defaults.
func (r *Registry) NewCascade() *Cascade {
	return NewCascade(r.defaults.AsPrivate())
}
