package scene

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/vdoc/geom"
	"github.com/npillmayer/vdoc/graphic"
	"github.com/npillmayer/vdoc/style"
	"github.com/stretchr/testify/require"
)

const sample = `
[layout]
format = "Letter"
landscape = true

[defaults]
line-width = "0.5"

[styles.thick]
line = "3 red"

[[layers]]
name = "Background"
hidden = true

  [[layers.objects]]
  type = "rectangle"
  x = 10
  y = 10
  width = 100
  height = 50
  styles = ["thick"]
  properties = { fill-pattern = "yellow" }

  [[layers.objects]]
  type = "group"

    [[layers.objects.children]]
    type = "polygon"
    points = [[0, 0], [10, 0], [5, 5]]

    [[layers.objects.children]]
    type = "ellipse"
    trafo = [2, 0, 50, 0, 1, 60]

[[layers]]

  [[layers.objects]]
  type = "blend"
  steps = [4, 2]

    [[layers.objects.children]]
    type = "rectangle"
    width = 10
    height = 10

    [[layers.objects.children]]
    type = "rectangle"
    x = 100
    width = 10
    height = 10

    [[layers.objects.children]]
    type = "rectangle"
    x = 100
    y = 100
    width = 10
    height = 10
`

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vdoc.loader")
	defer teardown()
	//
	doc, err := Load(strings.NewReader(sample), graphic.WithUndoLimit(3))
	require.NoError(t, err)
	require.False(t, doc.CanUndo())
	w, h := doc.Layout().Size()
	require.Equal(t, 792.0, w)
	require.Equal(t, 612.0, h)
	require.Len(t, doc.Layers(), 2)
	//
	bg := doc.Layers()[0]
	require.Equal(t, "Background", bg.Name())
	require.False(t, bg.IsVisible())
	require.Equal(t, 2, bg.Len())
	r := bg.Child(0).(*graphic.Rectangle)
	require.Equal(t, style.Property("yellow"), r.Properties().Get(style.FillPattern))
	require.Equal(t, style.Property("3"), r.Properties().Get(style.LineWidth))
	require.Equal(t, style.Property("red"), r.Properties().Get(style.LinePattern))
	require.Equal(t, []string{"thick"}, r.Properties().DynamicStyleNames())
	g := bg.Child(1).(*graphic.Group)
	pl := g.Child(0).(*graphic.PolyLine)
	require.True(t, pl.IsClosed())
	require.Equal(t, style.Property("0.5"), pl.Properties().Get(style.LineWidth))
	e := g.Child(1).(*graphic.Ellipse)
	require.Equal(t, geom.Pt(50, 60), e.Center())
	//
	fg := doc.Layers()[1]
	require.Equal(t, "Layer 2", fg.Name())
	blend := fg.Child(0).(*graphic.BlendGroup)
	require.NoError(t, blend.CheckShape())
	ips := blend.Interpolations()
	require.Len(t, ips, 2)
	require.Equal(t, 3, ips[0].Len())
	require.Equal(t, 1, ips[1].Len())
}

func TestLoadErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vdoc.loader")
	defer teardown()
	//
	for _, tc := range []struct {
		name  string
		scene string
		err   error
	}{
		{"syntax", `[[layers`, ErrScene},
		{"format", "[layout]\nformat = \"B7\"", ErrScene},
		{"unit", "[layout]\nwidth = \"12furlong\"\nheight = 10", ErrScene},
		{"percent", "[layout]\nwidth = \"50%\"\nheight = 10", ErrScene},
		{"type", "[[layers]]\n[[layers.objects]]\ntype = \"star\"", ErrScene},
		{"style", "[[layers]]\n[[layers.objects]]\ntype = \"ellipse\"\nstyles = [\"none\"]", style.ErrUnknownStyle},
		{"steps", "[[layers]]\n[[layers.objects]]\ntype = \"blend\"\nsteps = [1]\n" +
			"[[layers.objects.children]]\ntype = \"ellipse\"\n[[layers.objects.children]]\ntype = \"ellipse\"",
			graphic.ErrSteps},
		{"shorthand", "[defaults]\nline = \"a b c d\"", style.ErrCompoundValue},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.scene))
			require.Error(t, err)
			require.True(t, errors.Is(err, tc.err), "expected %v, have %v", tc.err, err)
		})
	}
}

func TestLoadLayoutUnits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vdoc.loader")
	defer teardown()
	//
	doc, err := Load(strings.NewReader("[layout]\nwidth = \"210mm\"\nheight = \"297mm\""))
	require.NoError(t, err)
	require.Equal(t, "Custom", doc.Layout().Format)
	w, h := doc.Layout().Size()
	require.Equal(t, graphic.DefaultLayout.Width, w)
	require.Equal(t, graphic.DefaultLayout.Height, h)
	//
	doc, err = Load(strings.NewReader("[layout]\nwidth = \"8in\"\nheight = \"700\"\nlandscape = true"))
	require.NoError(t, err)
	w, h = doc.Layout().Size()
	require.Equal(t, 700.0, w)
	require.Equal(t, 576.0, h)
	//
	doc, err = Load(strings.NewReader("[layout]\nformat = \"A5\""))
	require.NoError(t, err)
	require.Equal(t, graphic.Points(dimen.DINA5.X), doc.Layout().Width)
	require.Equal(t, graphic.Points(dimen.DINA5.Y), doc.Layout().Height)
}
