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

	"github.com/npillmayer/vdoc/style"
	"github.com/npillmayer/vdoc/undo"
)

// Builder is used by loaders to create a document. Objects are appended
// depth-first, in the order they are encountered in the serialized form.
// Nothing is recorded in the undo history.
//
// Errors are sticky: after the first error, all further calls are
// ignored and Done reports the error.
type Builder struct {
	doc   *Document
	stack []Compound
	err   error
}

// NewBuilder creates a builder for a new document without layers.
func NewBuilder(opts ...Option) *Builder {
	opts = append(opts, WithLayerName(""))
	return &Builder{doc: NewDocument(opts...)}
}

// Err returns the first error encountered.
func (b *Builder) Err() error { return b.err }

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *Builder) top() Compound {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}

type appender interface {
	insertAt(idx int, objs ...Object) undo.Entry
}

func (b *Builder) appendObject(obj Object) {
	switch c := b.top().(type) {
	case nil:
		b.fail(errors.New("builder: object outside of layer"))
	case *BlendGroup:
		if err := c.appendLoaded(obj); err != nil {
			b.fail(err)
		}
	case *Interpolation:
		b.fail(fmt.Errorf("builder: append to interpolation: %w", ErrDerivedChild))
	default:
		a := c.(appender)
		a.insertAt(c.Len(), obj)
	}
}

// BeginLayer appends a new layer to the document. Following objects are
// appended to this layer.
func (b *Builder) BeginLayer(name string) *Layer {
	if b.err != nil {
		return nil
	}
	if len(b.stack) > 0 {
		b.fail(fmt.Errorf("builder: layer %q: nested layers", name))
		return nil
	}
	l := NewLayer(name)
	b.doc.root.insertAt(b.doc.root.Len(), l)
	b.stack = append(b.stack, l)
	return l
}

// EndLayer closes the current layer.
func (b *Builder) EndLayer() {
	if b.err != nil {
		return
	}
	if _, ok := b.top().(*Layer); !ok || len(b.stack) != 1 {
		b.fail(errors.New("builder: unbalanced EndLayer"))
		return
	}
	b.stack = b.stack[:0]
}

// BeginGroup starts a group. Following objects are appended to the group
// until EndGroup.
func (b *Builder) BeginGroup() {
	b.beginCompound(NewGroup())
}

// BeginBlendGroup starts a blend group. Following objects alternate between
// controls and interpolations (see AppendInterpolation).
func (b *Builder) BeginBlendGroup() {
	b.beginCompound(newBlendGroup())
}

func (b *Builder) beginCompound(c Compound) {
	if b.err != nil {
		return
	}
	if b.top() == nil {
		b.fail(errors.New("builder: group outside of layer"))
		return
	}
	b.stack = append(b.stack, c)
}

// EndGroup closes the current group or blend group and appends it to the
// enclosing compound.
func (b *Builder) EndGroup() {
	if b.err != nil {
		return
	}
	c := b.top()
	if _, ok := c.(*Layer); ok || c == nil {
		b.fail(errors.New("builder: unbalanced EndGroup"))
		return
	}
	if bg, ok := c.(*BlendGroup); ok {
		if err := bg.CheckShape(); err != nil {
			b.fail(err)
			return
		}
	}
	b.stack = b.stack[:len(b.stack)-1]
	b.appendObject(c)
}

// AppendInterpolation appends an empty interpolation to the current blend
// group. It is computed as soon as the next control is appended.
func (b *Builder) AppendInterpolation(steps int) {
	if b.err != nil {
		return
	}
	if _, ok := b.top().(*BlendGroup); !ok {
		b.fail(fmt.Errorf("builder: interpolation outside of blend group: %w", ErrBlendGroupShape))
		return
	}
	if steps < 2 {
		b.fail(fmt.Errorf("builder: %d: %w", steps, ErrSteps))
		return
	}
	b.appendObject(newInterpolation(steps))
}

// AppendChild appends a primitive to the current compound.
func (b *Builder) AppendChild(obj Object) {
	if b.err != nil {
		return
	}
	if IsAttached(obj) {
		b.fail(fmt.Errorf("builder: %s: %w", describe(obj), ErrAttached))
		return
	}
	b.appendObject(obj)
}

// DefineStyle registers a named style.
func (b *Builder) DefineStyle(name string, kv ...style.KeyValue) *style.Layer {
	if b.err != nil {
		return nil
	}
	l, _, err := b.doc.registry.Define(name, kv...)
	if err != nil {
		b.fail(err)
		return nil
	}
	return l
}

// Registry returns the registry of named styles of the document under
// construction.
func (b *Builder) Registry() *style.Registry { return b.doc.registry }

// Style looks up a named style defined earlier.
func (b *Builder) Style(name string) *style.Layer {
	if b.err != nil {
		return nil
	}
	l, ok := b.doc.registry.Lookup(name)
	if !ok {
		b.fail(fmt.Errorf("builder: %q: %w", name, style.ErrUnknownStyle))
	}
	return l
}

// SetDefault sets a default property of the document.
func (b *Builder) SetDefault(key string, p style.Property) {
	if b.err != nil {
		return
	}
	if _, err := b.doc.registry.SetDefault(key, p); err != nil {
		b.fail(err)
	}
}

// SetLayoutDefaults sets the page layout.
func (b *Builder) SetLayoutDefaults(l Layout) {
	b.doc.layout = l
}

// Done finishes the document. All groups and layers have to be closed.
// A document without layers receives an empty one.
func (b *Builder) Done() (*Document, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.stack) > 0 {
		return nil, fmt.Errorf("builder: %d unclosed compound(s)", len(b.stack))
	}
	if b.doc.root.Len() == 0 {
		b.doc.root.insertAt(0, NewLayer("Layer 1"))
	}
	b.doc.ResetUndo()
	return b.doc, nil
}
