/*
Package graphic implements the structural core of vector drawings.

A drawing is a tree of objects. Primitives (rectangles, ellipses,
poly-lines) form the leaves, compound objects own ordered lists of
children. The topmost compound of a Document holds the layers of the
drawing, layers hold groups and primitives.

Every object embeds a tree.Node, with the node's payload set to the object
itself. Objects are addressed by paths of child indices, starting at the
document root, and sets of objects by selections (see package selection).

Structural Operations

Editable compounds (layers and groups) support insertion, removal,
re-ordering, duplication and replacement of children. Each of these
operations

    ▪︎ checks that the selection handed to it still denotes what the
      caller expects,
    ▪︎ performs the change,
    ▪︎ notifies its container once per batch, not once per child,
    ▪︎ returns a new selection together with an undo entry.

Operations on a selection spanning several children process the
children in descending order of their index. If a sub-step fails,
everything already done is undone before the error is returned. To an
observer, every operation either succeeds completely or leaves the
drawing untouched.

Blend Groups

A BlendGroup is a compound whose children alternate between control
objects and interpolations. An interpolation is a pure function of its
two neighbouring controls and a number of steps. Changing a control does
not recompute the interpolations immediately: recomputation is
scheduled with the document and performed at the end of the current
transaction, deeper objects first.

Documents and Transactions

A Document owns the object tree, the registry of named styles and the
undo ledger. Edits are performed within (possibly nested) transactions.
When the outermost transaction ends, deferred work is executed, the
collected undo information is pushed onto the ledger and change
listeners are notified once. If anything fails, the whole transaction is
rolled back.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package graphic

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'vdoc.graphic'.
func tracer() tracing.Trace {
	return tracing.Select("vdoc.graphic")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("vdoc.graphic: "+msg, msgargs...)
		panic(msg)
	}
}
