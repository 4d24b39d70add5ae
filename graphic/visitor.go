package graphic

import "github.com/npillmayer/vdoc/style"

// Visitor is the interface between documents and savers. Objects call
// the visitor method matching their type from Save.
type Visitor interface {
	BeginDocument(d *Document) error
	EndDocument(d *Document) error
	// Style is called for every named style of the document, before the
	// first layer.
	Style(name string, l *style.Layer) error
	BeginLayer(l *Layer) error
	EndLayer(l *Layer) error
	BeginGroup(g *Group) error
	EndGroup(g *Group) error
	BeginBlendGroup(bg *BlendGroup) error
	EndBlendGroup(bg *BlendGroup) error
	Interpolation(ip *Interpolation) error
	Rectangle(r *Rectangle) error
	Ellipse(e *Ellipse) error
	PolyLine(pl *PolyLine) error
}

// NopVisitor implements Visitor with methods doing nothing. Savers embed it
// and override what they need.
type NopVisitor struct{}

var _ Visitor = NopVisitor{}

func (NopVisitor) BeginDocument(*Document) error { return nil }
func (NopVisitor) EndDocument(*Document) error { return nil }
func (NopVisitor) Style(string, *style.Layer) error { return nil }
func (NopVisitor) BeginLayer(*Layer) error { return nil }
func (NopVisitor) EndLayer(*Layer) error { return nil }
func (NopVisitor) BeginGroup(*Group) error { return nil }
func (NopVisitor) EndGroup(*Group) error { return nil }
func (NopVisitor) BeginBlendGroup(*BlendGroup) error { return nil }
func (NopVisitor) EndBlendGroup(*BlendGroup) error { return nil }
func (NopVisitor) Interpolation(*Interpolation) error { return nil }
func (NopVisitor) Rectangle(*Rectangle) error { return nil }
func (NopVisitor) Ellipse(*Ellipse) error { return nil }
func (NopVisitor) PolyLine(*PolyLine) error { return nil }
