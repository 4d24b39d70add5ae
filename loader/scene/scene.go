package scene

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/vdoc/geom"
	"github.com/npillmayer/vdoc/graphic"
	"github.com/npillmayer/vdoc/style"
)

// ErrScene is returned for scene files which do not describe a valid
// document.
var ErrScene = errors.New("invalid scene")

type sceneFile struct {
	Layout   *layoutSpec          `toml:"layout"`
	Defaults map[string]string    `toml:"defaults"`
	Styles   map[string]styleSpec `toml:"styles"`
	Layers   []layerSpec          `toml:"layers"`
}

type layoutSpec struct {
	Format    string    `toml:"format"`
	Width     dimension `toml:"width"`
	Height    dimension `toml:"height"`
	Landscape bool      `toml:"landscape"`
}

// dimension is a length in points. Scene files give it either as a number
// of points or as a string with a unit, e.g. "210mm" or "8in".
type dimension float64

func (d *dimension) UnmarshalTOML(v any) error {
	switch x := v.(type) {
	case int64:
		*d = dimension(x)
	case float64:
		*d = dimension(x)
	case string:
		s := strings.TrimSpace(x)
		if s != "" && s[len(s)-1] >= '0' && s[len(s)-1] <= '9' {
			s += "bp" // plain numbers are points, not scaled points
		}
		du, percent, err := dimen.Parse(s)
		if err != nil || percent {
			return fmt.Errorf("dimension %q: %w", x, ErrScene)
		}
		*d = dimension(graphic.Points(du))
	default:
		return fmt.Errorf("dimension of type %T: %w", v, ErrScene)
	}
	if *d < 0 {
		return fmt.Errorf("negative dimension %v: %w", v, ErrScene)
	}
	return nil
}

type styleSpec map[string]string

type layerSpec struct {
	Name    string       `toml:"name"`
	Hidden  bool         `toml:"hidden"`
	Objects []objectSpec `toml:"objects"`
}

type objectSpec struct {
	Type       string            `toml:"type"`
	X          float64           `toml:"x"`
	Y          float64           `toml:"y"`
	Width      float64           `toml:"width"`
	Height     float64           `toml:"height"`
	RX         float64           `toml:"rx"`
	RY         float64           `toml:"ry"`
	Trafo      []float64         `toml:"trafo"`
	Points     [][]float64       `toml:"points"`
	Styles     []string          `toml:"styles"`
	Properties map[string]string `toml:"properties"`
	Steps      []int             `toml:"steps"`
	Children   []objectSpec      `toml:"children"`
}

// LoadFile loads a document from a scene file.
func LoadFile(path string, opts ...graphic.Option) (*graphic.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Load reads a scene from r and builds a document. Options are passed on
// to the document.
func Load(r io.Reader, opts ...graphic.Option) (*graphic.Document, error) {
	var scene sceneFile
	md, err := toml.NewDecoder(r).Decode(&scene)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScene, err)
	}
	for _, key := range md.Undecoded() {
		tracer().Infof("scene: ignoring unknown key %s", key)
	}
	b := graphic.NewBuilder(opts...)
	if scene.Layout != nil {
		l, err := scene.Layout.layout()
		if err != nil {
			return nil, err
		}
		b.SetLayoutDefaults(l)
	}
	defaults, err := properties(scene.Defaults)
	if err != nil {
		return nil, err
	}
	for _, kv := range defaults {
		b.SetDefault(kv.Key, kv.Value)
	}
	for _, name := range sortedKeys(scene.Styles) {
		kv, err := properties(scene.Styles[name])
		if err != nil {
			return nil, fmt.Errorf("style %q: %w", name, err)
		}
		b.DefineStyle(name, kv...)
	}
	for i, ls := range scene.Layers {
		name := ls.Name
		if name == "" {
			name = fmt.Sprintf("Layer %d", i+1)
		}
		l := b.BeginLayer(name)
		if l != nil && ls.Hidden {
			l.SetVisible(false)
		}
		for j := range ls.Objects {
			if err := build(b, &ls.Objects[j]); err != nil {
				return nil, fmt.Errorf("layer %q, object #%d: %w", name, j, err)
			}
		}
		b.EndLayer()
	}
	doc, err := b.Done()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScene, err)
	}
	tracer().Debugf("scene: loaded %d layers", len(doc.Layers()))
	return doc, nil
}

func (ls *layoutSpec) layout() (graphic.Layout, error) {
	l := graphic.Layout{Format: ls.Format, Width: float64(ls.Width), Height: float64(ls.Height)}
	if l.Format == "" {
		l.Format = "Custom"
	}
	if l.Width == 0 || l.Height == 0 {
		f, ok := graphic.PageFormat(l.Format)
		if !ok {
			return l, fmt.Errorf("%w: unknown page format %q", ErrScene, l.Format)
		}
		l.Width, l.Height = f.Width, f.Height
	}
	l.Landscape = ls.Landscape
	return l, nil
}

// build appends the object described by spec to the current compound of b.
func build(b *graphic.Builder, spec *objectSpec) error {
	switch t := strings.ToLower(spec.Type); t {
	case "group":
		b.BeginGroup()
		for i := range spec.Children {
			if err := build(b, &spec.Children[i]); err != nil {
				return err
			}
		}
		b.EndGroup()
	case "blend":
		return buildBlend(b, spec)
	default:
		obj, err := primitive(b, spec)
		if err != nil {
			return err
		}
		b.AppendChild(obj)
	}
	return b.Err()
}

func buildBlend(b *graphic.Builder, spec *objectSpec) error {
	n := len(spec.Children)
	if n < 2 {
		return fmt.Errorf("%w: blend with %d controls", ErrScene, n)
	}
	if len(spec.Steps) != 1 && len(spec.Steps) != n-1 {
		return fmt.Errorf("%w: blend of %d controls with %d step counts", ErrScene, n, len(spec.Steps))
	}
	b.BeginBlendGroup()
	for i := range spec.Children {
		if i > 0 {
			steps := spec.Steps[0]
			if len(spec.Steps) > 1 {
				steps = spec.Steps[i-1]
			}
			b.AppendInterpolation(steps)
		}
		if err := build(b, &spec.Children[i]); err != nil {
			return err
		}
	}
	b.EndGroup()
	return b.Err()
}

func primitive(b *graphic.Builder, spec *objectSpec) (graphic.Object, error) {
	props, err := cascade(b, spec)
	if err != nil {
		return nil, err
	}
	t, hasTrafo, err := spec.trafo()
	if err != nil {
		return nil, err
	}
	switch typ := strings.ToLower(spec.Type); typ {
	case "rectangle":
		if hasTrafo {
			return graphic.NewRectangleTrafo(t, props), nil
		}
		return graphic.NewRectangle(spec.X, spec.Y, spec.Width, spec.Height, props), nil
	case "ellipse":
		if hasTrafo {
			return graphic.NewEllipseTrafo(t, props), nil
		}
		return graphic.NewEllipse(spec.X, spec.Y, spec.RX, spec.RY, props), nil
	case "polyline", "polygon":
		points := make([]geom.Point, len(spec.Points))
		for i, p := range spec.Points {
			if len(p) != 2 {
				return nil, fmt.Errorf("%w: point #%d has %d coordinates", ErrScene, i, len(p))
			}
			points[i] = t.Apply(geom.Pt(p[0], p[1]))
		}
		return graphic.NewPolyLine(points, typ == "polygon", props), nil
	}
	return nil, fmt.Errorf("%w: unknown object type %q", ErrScene, spec.Type)
}

func (spec *objectSpec) trafo() (geom.Trafo, bool, error) {
	switch len(spec.Trafo) {
	case 0:
		return geom.Identity, false, nil
	case 6:
		m := spec.Trafo
		return geom.NewTrafo(m[0], m[1], m[2], m[3], m[4], m[5]), true, nil
	}
	return geom.Identity, false, fmt.Errorf("%w: trafo needs 6 coefficients, have %d",
		ErrScene, len(spec.Trafo))
}

// cascade creates the property cascade of a primitive: the properties of
// spec on top of its named styles, the first named style being most
// specific, on top of the document defaults.
func cascade(b *graphic.Builder, spec *objectSpec) (*style.Cascade, error) {
	c := b.Registry().NewCascade()
	for i := len(spec.Styles) - 1; i >= 0; i-- {
		l := b.Style(spec.Styles[i])
		if l == nil {
			return nil, b.Err()
		}
		c.AddStyle(l)
	}
	kv, err := properties(spec.Properties)
	if err != nil {
		return nil, err
	}
	if len(kv) > 0 {
		c.SetProperties(kv...)
	}
	return c, nil
}

// properties converts a property table, splitting shorthand properties
// like "line = '2 red'".
func properties(m map[string]string) ([]style.KeyValue, error) {
	var kv []style.KeyValue
	for _, key := range sortedKeys(m) {
		split, err := style.ExpandProperty(key, style.Property(m[key]))
		if err != nil {
			return nil, fmt.Errorf("%w: property %q: %w", ErrScene, key, err)
		}
		kv = append(kv, split...)
	}
	return kv, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
