package svg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/vdoc/geom"
	"github.com/npillmayer/vdoc/graphic"
	"github.com/npillmayer/vdoc/style"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func elements(n *html.Node, name string) []*html.Node {
	var r []*html.Node
	var visit func(*html.Node)
	visit = func(h *html.Node) {
		if h.Type == html.ElementNode && h.Data == name {
			r = append(r, h)
		}
		for c := h.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return r
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func TestEncode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vdoc.saver")
	defer teardown()
	//
	doc := graphic.NewDocument()
	thick, err := doc.DefineStyle("thick", style.KeyValue{Key: style.LineWidth, Value: "3"})
	require.NoError(t, err)
	r := graphic.NewRectangle(0, 0, 10, 10, style.NewCascade(thick))
	e := graphic.NewEllipse(50, 50, 20, 10, nil)
	e.SetProperties(style.KeyValue{Key: style.FillPattern, Value: "red"})
	pl := graphic.NewPolyLine([]geom.Point{geom.Pt(0, 0), geom.Pt(5, 5)}, false, nil)
	a := graphic.NewRectangle(0, 100, 10, 10, nil)
	b := graphic.NewRectangle(100, 100, 10, 10, nil)
	bg, err := graphic.NewBlendGroup(a, b, 2)
	require.NoError(t, err)
	_, err = doc.Insert([]graphic.Object{r, e, pl, bg}, nil)
	require.NoError(t, err)
	//
	root, err := Encode(doc)
	require.NoError(t, err)
	require.Equal(t, "svg", root.Data)
	require.Equal(t, "0 0 595.275 841.888", attr(root, "viewBox"))
	polygons := elements(root, "polygon")
	require.Len(t, polygons, 4) // r, a, b and the interpolated rectangle
	require.Equal(t, "0,0 10,0 10,10 0,10", attr(polygons[0], "points"))
	require.Equal(t, "thick", attr(polygons[0], "class"))
	require.Equal(t, "3", attr(polygons[0], "stroke-width"))
	require.Equal(t, "obj-"+r.ID().String(), attr(polygons[0], "id"))
	require.Empty(t, attr(polygons[2], "id"), "interpolated objects carry no id")
	ellipses := elements(root, "ellipse")
	require.Len(t, ellipses, 1)
	require.Equal(t, "#ff0000", attr(ellipses[0], "fill"))
	require.Equal(t, "matrix(20 0 0 10 50 50)", attr(ellipses[0], "transform"))
	require.Len(t, elements(root, "polyline"), 1)
	require.Len(t, elements(root, "style"), 1)
	//
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc))
	out := buf.String()
	require.True(t, strings.HasPrefix(out, "<?xml"))
	require.Contains(t, out, ".thick { stroke-width: 3 }")
	require.Contains(t, out, `class="interpolation"`)
}

func TestHiddenLayer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vdoc.saver")
	defer teardown()
	//
	doc := graphic.NewDocument(graphic.WithLayerName("Sketch"))
	l, err := doc.Layer(0)
	require.NoError(t, err)
	l.SetVisible(false)
	root, err := Encode(doc)
	require.NoError(t, err)
	groups := elements(root, "g")
	require.Len(t, groups, 2) // page and layer
	require.Equal(t, "none", attr(groups[1], "display"))
	require.Equal(t, "Sketch", attr(groups[1], "data-layer"))
	require.Empty(t, elements(root, "style"), "no style element without named styles")
}
