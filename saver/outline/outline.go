/*
Package outline writes a textual outline of a document.

The outline lists layers, groups and primitives as an indented tree, e.g.

    .
    └── Document A4 595.27x841.89
        └── Layer "Layer 1"
            ├── Rectangle (0,0) [thick]
            └── BlendGroup
                ├── Rectangle (0,0)
                ├── Interpolation steps=3
                └── Rectangle (100,0)

It is meant for debugging and for command line tools.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package outline

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/vdoc/graphic"
	"github.com/npillmayer/vdoc/style"
	tp "github.com/xlab/treeprint"
)

// Options control the level of detail of an outline.
type Options struct {
	IDs           bool // include object identities
	Styles        bool // list named styles of the document and of each object
	Interpolation bool // include interpolated objects
}

// Write writes an outline of doc to w.
func Write(w io.Writer, doc *graphic.Document, opts Options) error {
	s, err := String(doc, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// String returns an outline of doc.
func String(doc *graphic.Document, opts Options) (string, error) {
	o := &outliner{opts: opts}
	if err := doc.Save(o); err != nil {
		return "", err
	}
	return o.root.String(), nil
}

type outliner struct {
	graphic.NopVisitor
	opts   Options
	root   tp.Tree
	styles tp.Tree
	stack  []tp.Tree
}

func (o *outliner) top() tp.Tree {
	return o.stack[len(o.stack)-1]
}

func (o *outliner) branch(label string) {
	o.stack = append(o.stack, o.top().AddBranch(label))
}

func (o *outliner) pop() error {
	o.stack = o.stack[:len(o.stack)-1]
	return nil
}

func (o *outliner) BeginDocument(d *graphic.Document) error {
	o.root = tp.New()
	o.stack = []tp.Tree{o.root.AddBranch("Document " + d.Layout().String())}
	return nil
}

func (o *outliner) Style(name string, l *style.Layer) error {
	if !o.opts.Styles {
		return nil
	}
	if o.styles == nil {
		o.styles = o.stack[0].AddBranch("Styles")
	}
	o.styles.AddNode(fmt.Sprintf(".%s %v", name, l))
	return nil
}

func (o *outliner) BeginLayer(l *graphic.Layer) error {
	label := fmt.Sprintf("Layer %q", l.Name())
	if !l.IsVisible() {
		label += " hidden"
	}
	o.branch(o.label(l, label))
	return nil
}

func (o *outliner) EndLayer(*graphic.Layer) error { return o.pop() }

func (o *outliner) BeginGroup(g *graphic.Group) error {
	o.branch(o.label(g, "Group"))
	return nil
}

func (o *outliner) EndGroup(*graphic.Group) error { return o.pop() }

func (o *outliner) BeginBlendGroup(bg *graphic.BlendGroup) error {
	o.branch(o.label(bg, "BlendGroup"))
	return nil
}

func (o *outliner) EndBlendGroup(*graphic.BlendGroup) error { return o.pop() }

func (o *outliner) Interpolation(ip *graphic.Interpolation) error {
	label := fmt.Sprintf("Interpolation steps=%d", ip.Steps())
	if !o.opts.Interpolation {
		o.top().AddNode(label)
		return nil
	}
	o.branch(label)
	for _, obj := range ip.Children() {
		if err := obj.Save(o); err != nil {
			return err
		}
	}
	return o.pop()
}

func (o *outliner) Rectangle(r *graphic.Rectangle) error {
	o.top().AddNode(o.label(r, "Rectangle "+r.Trafo().Offset().String()))
	return nil
}

func (o *outliner) Ellipse(e *graphic.Ellipse) error {
	o.top().AddNode(o.label(e, "Ellipse "+e.Center().String()))
	return nil
}

func (o *outliner) PolyLine(pl *graphic.PolyLine) error {
	kind := "PolyLine"
	if pl.IsClosed() {
		kind = "Polygon"
	}
	o.top().AddNode(o.label(pl, fmt.Sprintf("%s n=%d", kind, len(pl.Points()))))
	return nil
}

func (o *outliner) label(obj graphic.Object, s string) string {
	if props := obj.Properties(); props != nil && o.opts.Styles {
		if names := props.DynamicStyleNames(); len(names) > 0 {
			s += " [" + strings.Join(names, " ") + "]"
		}
	}
	if o.opts.IDs {
		if _, derived := graphic.Parent(obj).(*graphic.Interpolation); !derived {
			s += " #" + obj.ID().String()[:8]
		}
	}
	return s
}
