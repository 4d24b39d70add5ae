/*
Package selection implements addressing of arbitrary sets of tree nodes.

A selected node is identified by an Entry, holding the path from a root
down to the node together with the node itself. A Selection is a list of
entries in standard representation:

    ▪︎ sorted lexicographically by path
    ▪︎ unique
    ▪︎ prefix-free, i.e. no entry addresses an ancestor of another entry

Sorting a selection by path puts the objects lowest in the stacking
order at the front. Compound objects which re-arrange their children
depend on this, as indices will shift during an operation.

Alternative Representations

Compound objects operate on selections relative to themselves and have
to hand down the parts of a selection concerning a child compound. To
make this easy, there are three alternative representations:

Tree groups entries by the first path component, stripping it. Every
group is a selection relative to the child at this index.

Tree2 is like Tree, but a group consisting of just the child itself
collapses to the bare node.

Sliced is like Tree2, but runs of consecutive child indices which are
selected as a whole are merged into a range [start, end). Bulk operations
iterate over the sliced representation in descending order, thus
processing an item never invalidates the indices of items not yet
processed.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package selection

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'vdoc.selection'.
func tracer() tracing.Trace {
	return tracing.Select("vdoc.selection")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("vdoc.selection: "+msg, msgargs...)
		panic(msg)
	}
}
