package svg

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/vdoc/geom"
	"github.com/npillmayer/vdoc/graphic"
	"github.com/npillmayer/vdoc/style"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Namespace is the XML namespace of SVG elements.
const Namespace = "http://www.w3.org/2000/svg"

// ErrUnbalanced is returned if a document calls the visitor with
// unbalanced begin and end calls.
var ErrUnbalanced = errors.New("unbalanced group structure")

// Write renders doc as a standalone SVG image to w.
func Write(w io.Writer, doc *graphic.Document) error {
	root, err := Encode(doc)
	if err != nil {
		return err
	}
	if _, err = io.WriteString(w, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"); err != nil {
		return err
	}
	if err = html.Render(w, root); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// Encode creates the SVG element tree for doc.
func Encode(doc *graphic.Document) (*html.Node, error) {
	s := &saver{}
	if err := doc.Save(s); err != nil {
		return nil, err
	}
	if len(s.stack) != 0 {
		return nil, fmt.Errorf("svg: %d open groups: %w", len(s.stack), ErrUnbalanced)
	}
	return s.svg, nil
}

// saver is a graphic.Visitor building an SVG element tree.
type saver struct {
	graphic.NopVisitor
	svg   *html.Node
	css   *html.Node
	rules []string
	stack []*html.Node
}

var _ graphic.Visitor = (*saver)(nil)

func element(name string, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: name, Namespace: "svg"}
	if a := atom.Lookup([]byte(name)); a != 0 {
		n.DataAtom = a
	}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func (s *saver) top() *html.Node {
	return s.stack[len(s.stack)-1]
}

func (s *saver) push(n *html.Node) {
	s.top().AppendChild(n)
	s.stack = append(s.stack, n)
}

func (s *saver) pop() error {
	if len(s.stack) < 2 {
		return fmt.Errorf("svg: %w", ErrUnbalanced)
	}
	s.stack = s.stack[:len(s.stack)-1]
	return nil
}

func (s *saver) BeginDocument(d *graphic.Document) error {
	w, h := d.Layout().Size()
	width, height := num(w), num(h)
	s.svg = element("svg", "xmlns", Namespace, "version", "1.1",
		"width", width+"pt", "height", height+"pt",
		"viewBox", "0 0 "+width+" "+height)
	s.css = element("style", "type", "text/css")
	s.svg.AppendChild(s.css)
	page := element("g", "transform", fmt.Sprintf("matrix(1 0 0 -1 0 %s)", height))
	s.svg.AppendChild(page)
	s.stack = []*html.Node{page}
	tracer().Debugf("svg: page %v", d.Layout())
	return nil
}

func (s *saver) EndDocument(*graphic.Document) error {
	if len(s.stack) != 1 {
		return fmt.Errorf("svg: end of document: %w", ErrUnbalanced)
	}
	s.stack = s.stack[:0]
	if len(s.rules) == 0 {
		s.svg.RemoveChild(s.css)
		return nil
	}
	s.css.AppendChild(&html.Node{Type: html.TextNode, Data: "\n" + strings.Join(s.rules, "\n") + "\n"})
	return nil
}

func (s *saver) Style(name string, l *style.Layer) error {
	var decls []string
	for _, kv := range l.Properties() {
		key, val := presentation(kv.Key, kv.Value)
		if key != "" {
			decls = append(decls, key+": "+val)
		}
	}
	sort.Strings(decls)
	s.rules = append(s.rules, fmt.Sprintf(".%s { %s }", name, strings.Join(decls, "; ")))
	return nil
}

func (s *saver) BeginLayer(l *graphic.Layer) error {
	g := element("g", "id", objectID(l), "data-layer", l.Name())
	if !l.IsVisible() {
		g.Attr = append(g.Attr, html.Attribute{Key: "display", Val: "none"})
	}
	s.push(g)
	return nil
}

func (s *saver) EndLayer(*graphic.Layer) error { return s.pop() }

func (s *saver) BeginGroup(g *graphic.Group) error {
	s.push(element("g", "id", objectID(g)))
	return nil
}

func (s *saver) EndGroup(*graphic.Group) error { return s.pop() }

func (s *saver) BeginBlendGroup(bg *graphic.BlendGroup) error {
	s.push(element("g", "id", objectID(bg), "class", "blend"))
	return nil
}

func (s *saver) EndBlendGroup(*graphic.BlendGroup) error { return s.pop() }

// Interpolation writes the interpolated objects. They are derived from
// the controls and do not carry identities of their own.
func (s *saver) Interpolation(ip *graphic.Interpolation) error {
	s.push(element("g", "class", "interpolation", "data-steps", strconv.Itoa(ip.Steps())))
	for _, obj := range ip.Children() {
		if err := obj.Save(s); err != nil {
			return err
		}
	}
	return s.pop()
}

func (s *saver) Rectangle(r *graphic.Rectangle) error {
	c := r.Corners()
	s.shape(r, element("polygon", "points", points(c[:])))
	return nil
}

func (s *saver) Ellipse(e *graphic.Ellipse) error {
	s.shape(e, element("ellipse", "cx", "0", "cy", "0", "rx", "1", "ry", "1",
		"transform", matrix(e.Trafo()), "vector-effect", "non-scaling-stroke"))
	return nil
}

func (s *saver) PolyLine(pl *graphic.PolyLine) error {
	name := "polyline"
	if pl.IsClosed() {
		name = "polygon"
	}
	s.shape(pl, element(name, "points", points(pl.Points())))
	return nil
}

func (s *saver) shape(obj graphic.Object, n *html.Node) {
	if !isDerived(obj) {
		n.Attr = append([]html.Attribute{{Key: "id", Val: objectID(obj)}}, n.Attr...)
	}
	props := obj.Properties()
	if names := props.DynamicStyleNames(); len(names) > 0 {
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: strings.Join(names, " ")})
	}
	for _, key := range []string{style.FillPattern, style.LinePattern, style.LineWidth,
		style.LineCap, style.LineJoin, style.LineDashes} {
		//
		if k, v := presentation(key, props.Get(key)); k != "" {
			n.Attr = append(n.Attr, html.Attribute{Key: k, Val: v})
		}
	}
	s.top().AppendChild(n)
}

// presentation maps a style property to an SVG presentation attribute.
// It returns an empty key for properties without SVG counterpart.
func presentation(key string, p style.Property) (string, string) {
	switch key {
	case style.FillPattern:
		return "fill", paint(p)
	case style.LinePattern:
		return "stroke", paint(p)
	case style.LineWidth:
		if w, ok := p.Float(); ok {
			return "stroke-width", num(w)
		}
	case style.LineCap:
		if !p.IsEmpty() {
			return "stroke-linecap", p.String()
		}
	case style.LineJoin:
		if !p.IsEmpty() {
			return "stroke-linejoin", p.String()
		}
	case style.LineDashes:
		if d, ok := p.Dashes(); ok && len(d) > 0 {
			dashes := make([]string, len(d))
			for i, x := range d {
				dashes[i] = num(x)
			}
			return "stroke-dasharray", strings.Join(dashes, " ")
		}
	}
	return "", ""
}

func paint(p style.Property) string {
	c, ok := p.Color()
	if !ok {
		return "none"
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// matrix writes t in SVG notation. SVG lists the coefficients column by
// column.
func matrix(t geom.Trafo) string {
	m := t.Matrix()
	return fmt.Sprintf("matrix(%s %s %s %s %s %s)",
		num(m[0]), num(m[3]), num(m[1]), num(m[4]), num(m[2]), num(m[5]))
}

func points(pts []geom.Point) string {
	var b strings.Builder
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(num(p.X))
		b.WriteByte(',')
		b.WriteString(num(p.Y))
	}
	return b.String()
}

func num(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func objectID(obj graphic.Object) string {
	return "obj-" + obj.ID().String()
}

func isDerived(obj graphic.Object) bool {
	_, ok := graphic.Parent(obj).(*graphic.Interpolation)
	return ok
}
