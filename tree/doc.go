/*
Package tree implements an all-purpose tree type.

Nodes carry a payload of a comparable type. Compound objects of a drawing
embed a node and set the payload to themselves, thus making navigation
within the tree possible without type switches.

Nodes are addressed by paths, i.e. sequences of child indices, starting
at the root of a tree. A path of length 0 addresses the root itself.

Trees are not concurrency-safe. Documents are edited by a single
goroutine at a time.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'vdoc.tree'.
func tracer() tracing.Trace {
	return tracing.Select("vdoc.tree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("vdoc.tree: "+msg, msgargs...)
		panic(msg)
	}
}
