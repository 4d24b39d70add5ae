/*
Package svg writes documents as SVG images.

The saver walks a document with a graphic.Visitor and builds a tree of
html.Node elements, which is then rendered with html.Render. Every layer
becomes an SVG group, as does every group, blend group and interpolation.
Named styles are written as CSS classes into a style element; objects
referencing a named style carry the style name as a class, together with
their effective properties as presentation attributes.

Drawing coordinates have their origin in the lower left corner of the
page, with y pointing upwards. The saver wraps the drawing into a group
flipping the y-axis.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package svg

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'vdoc.saver'.
func tracer() tracing.Trace {
	return tracing.Select("vdoc.saver")
}
