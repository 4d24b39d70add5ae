/*
Package undo implements reversible commands for editing operations.

Overview

Every mutation of a document hands back an Entry. Applying an Entry
performs the inverse of the mutation which created it, and results in a
new Entry which would re-do the mutation. Applying entries alternately
thus walks a document back and forth between two states:

    e := obj.Translate(offset)   // e will move obj back
    r := undo.Apply(e)           // obj is back at its old position; r redoes the move
    e = undo.Apply(r)            // moved again

Operations built from several sub-operations collect the entries of their
sub-steps and compose them with Compose. The composed entry undoes the
sub-steps in reverse order. The load-bearing rule for all composite
operations is: if a sub-step fails, everything already done has to be
undone before the error is handed to the caller. Type Log helps to
follow this rule with a deferred rollback.

A Ledger holds two bounded stacks of entries, one for undo and one
for redo, and is owned by a document.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package undo

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'vdoc.undo'.
func tracer() tracing.Trace {
	return tracing.Select("vdoc.undo")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("vdoc.undo: "+msg, msgargs...)
		panic(msg)
	}
}
