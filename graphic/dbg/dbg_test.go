package dbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/vdoc/graphic"
	"github.com/stretchr/testify/require"
)

func TestToGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vdoc.graphic")
	defer teardown()
	//
	doc := graphic.NewDocument()
	a := graphic.NewRectangle(0, 0, 10, 10, nil)
	b := graphic.NewRectangle(100, 0, 10, 10, nil)
	bg, err := graphic.NewBlendGroup(a, b, 3)
	require.NoError(t, err)
	_, err = doc.Insert([]graphic.Object{bg, graphic.NewEllipse(0, 0, 5, 5, nil)}, nil)
	require.NoError(t, err)
	//
	var buf bytes.Buffer
	require.NoError(t, ToGraphViz(doc, &buf, nil))
	dot := buf.String()
	require.True(t, strings.HasPrefix(dot, "digraph g {"))
	require.True(t, strings.HasSuffix(dot, "}\n"))
	// root → layer → {blend group, ellipse}, blend group → 3 children,
	// interpolation → 2 objects
	require.Equal(t, 8, strings.Count(dot, "[weight=1]"))
	require.Contains(t, dot, "blendgroup")
	require.Contains(t, dot, "line-width:")
	// 5 primitives with a fill and a line group each
	require.Equal(t, 10, strings.Count(dot, "Mrecord"))
}
