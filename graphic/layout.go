package graphic

import (
	"fmt"
	"math"

	"github.com/npillmayer/tyse/core/dimen"
)

// Layout describes the page of a document. Dimensions are in points.
type Layout struct {
	Format    string
	Width     float64
	Height    float64
	Landscape bool
}

// pageFormats holds the page sizes known by name, in portrait orientation.
var pageFormats = map[string]dimen.Point{
	"A3":     {X: 297 * dimen.MM, Y: 420 * dimen.MM},
	"A4":     dimen.DINA4,
	"A5":     dimen.DINA5,
	"Letter": {X: 17 * dimen.IN / 2, Y: 11 * dimen.IN},
	"Legal":  {X: 17 * dimen.IN / 2, Y: 14 * dimen.IN},
}

// DefaultLayout is a portrait A4 page.
var DefaultLayout = Layout{
	Format: "A4",
	Width:  Points(dimen.DINA4.X),
	Height: Points(dimen.DINA4.Y),
}

// PageFormat returns a portrait layout for a named page format, e.g. "A4".
func PageFormat(name string) (Layout, bool) {
	size, ok := pageFormats[name]
	if !ok {
		return Layout{}, false
	}
	return Layout{Format: name, Width: Points(size.X), Height: Points(size.Y)}, true
}

// Points converts a dimension to points, rounded to 1/1000 pt.
func Points(d dimen.DU) float64 {
	return math.Round(d.Points()*1000) / 1000
}

// Size returns the dimensions of the page, taking orientation into
// account.
func (l Layout) Size() (w, h float64) {
	if l.Landscape {
		return l.Height, l.Width
	}
	return l.Width, l.Height
}

func (l Layout) String() string {
	w, h := l.Size()
	return fmt.Sprintf("%s %.2fx%.2f", l.Format, w, h)
}
