package undo

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// Entry is a unit of undo information: an operation with its arguments
// bound. Entry values are immutable and may be copied freely.
//
// The zero value is Null, the identity entry.
type Entry struct {
	label string
	op    func() Entry // performs the inverse, returns the redo entry
	seq   []Entry      // for composed entries: sub-entries in order of application
}

// Null is an entry which does nothing. Operations return Null if nothing
// has been changed.
var Null = Entry{}

// New creates an entry from an operation. Calling op has to perform the
// inverse of a prior mutation and return an entry which re-does it.
func New(op func() Entry) Entry {
	if op == nil {
		return Null
	}
	return Entry{op: op}
}

// Labeled creates an entry carrying a label, used for menu texts like
// "Undo Move to Top".
func Labeled(label string, e Entry) Entry {
	if e.IsNull() {
		return e
	}
	e.label = label
	return e
}

// IsNull is true for entries which will not change anything.
func (e Entry) IsNull() bool {
	return e.op == nil && len(e.seq) == 0
}

// Label returns the label of an entry, if any.
func (e Entry) Label() string {
	return e.label
}

// Len returns the number of primitive operations an entry consists of.
func (e Entry) Len() int {
	if e.IsNull() {
		return 0
	}
	if len(e.seq) == 0 {
		return 1
	}
	n := 0
	for _, x := range e.seq {
		n += x.Len()
	}
	return n
}

func (e Entry) String() string {
	switch {
	case e.IsNull():
		return "undo(null)"
	case len(e.seq) > 0:
		return fmt.Sprintf("undo(%q, list of %d)", e.label, len(e.seq))
	}
	return fmt.Sprintf("undo(%q)", e.label)
}

// Apply performs an entry and returns the entry to revert this application.
// For composed entries the sub-entries are applied in sequence and the
// resulting redo entry will apply their inverses in reverse order.
//
// A label is carried over to the redo entry.
func Apply(e Entry) Entry {
	var redo Entry
	switch {
	case len(e.seq) > 0:
		r := make([]Entry, 0, len(e.seq))
		for _, x := range e.seq {
			if inv := Apply(x); !inv.IsNull() {
				r = append(r, inv)
			}
		}
		reverse(r)
		redo = fromList(r)
	case e.op == nil:
		return Null
	default:
		redo = e.op()
	}
	if e.label != "" && !redo.IsNull() {
		redo.label = e.label
	}
	return redo
}

// Compose creates a single entry from entries produced, in order, by a
// batch of sub-operations. Applying the result will undo the sub-operations
// in reverse order. Null entries are dropped, nested unlabeled compositions
// are flattened and a single remaining entry is returned as is.
func Compose(entries ...Entry) Entry {
	list := make([]Entry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		switch {
		case e.IsNull():
			continue
		case len(e.seq) > 0 && e.label == "":
			list = append(list, e.seq...)
		default:
			list = append(list, e)
		}
	}
	return fromList(list)
}

// ComposeAfter sequences two entries such that after is applied only once
// main has been applied. The redo entry keeps this order, i.e. after will
// run last in either direction. This is used for follow-up work like cache
// invalidation, which has to see the final state.
func ComposeAfter(main, after Entry) Entry {
	if after.IsNull() {
		return main
	}
	if main.IsNull() {
		return after
	}
	return New(func() Entry {
		r := Apply(main)
		a := Apply(after)
		return ComposeAfter(r, a)
	})
}

func fromList(list []Entry) Entry {
	switch len(list) {
	case 0:
		return Null
	case 1:
		return list[0]
	}
	return Entry{seq: list}
}

func reverse(list []Entry) {
	for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
		list[i], list[j] = list[j], list[i]
	}
}
