/*
Package style implements style properties for drawing objects.

Every drawing object carries a Cascade of style layers. Looking up a
property walks the layers from most specific to least specific and
returns the first value found, falling back to factory defaults.
Looked-up values are memoized; the memo is invalidated (not eagerly
recomputed) whenever a layer is added, removed, replaced or mutated.

Layers come in two flavours. Private layers belong to a single cascade.
Dynamic layers carry a name and are interned in a document-wide Registry,
thus several cascades may reference the same layer instance. Changing a
property of a dynamic layer in place changes the appearance of every
object referencing it. Setting a property through a cascade will never
write to a dynamic layer: the value goes to a private layer, which is
created if necessary (copy-on-write).

Property values are kept as strings, with conversion functions for the
types a renderer will need, e.g.

    w, _ := cascade.Get(style.LineWidth).Float()
    c, _ := cascade.Get(style.LinePattern).Color()

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'vdoc.style'.
func tracer() tracing.Trace {
	return tracing.Select("vdoc.style")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("vdoc.style: "+msg, msgargs...)
		panic(msg)
	}
}
