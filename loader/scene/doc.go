/*
Package scene loads documents from TOML scene files.

A scene file describes the page layout, document defaults, named styles
and the layers of a drawing:

    [layout]
    format = "A4"
    landscape = true

    [defaults]
    line-width = "0.5"

    [styles.thick]
    line-width = "3"

    [[layers]]
    name = "Background"

      [[layers.objects]]
      type = "rectangle"
      x = 10
      y = 10
      width = 100
      height = 50
      styles = ["thick"]
      properties = { fill-pattern = "yellow" }

      [[layers.objects]]
      type = "blend"
      steps = [5]

        [[layers.objects.children]]
        type = "ellipse"
        x = 0
        y = 0
        rx = 5
        ry = 5

        [[layers.objects.children]]
        type = "ellipse"
        x = 200
        y = 0
        rx = 20
        ry = 20

Object types are "rectangle", "ellipse", "polyline", "polygon", "group"
and "blend". The children of a blend are its controls; steps lists the
number of steps of the interpolations between them, with a single entry
applying to all of them. Objects may be given a transformation by its
six matrix coefficients (key "trafo") instead of position and size.

The document is created through a graphic.Builder, thus interpolations
are computed while loading and the document starts without undo history.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scene

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'vdoc.loader'.
func tracer() tracing.Trace {
	return tracing.Select("vdoc.loader")
}
