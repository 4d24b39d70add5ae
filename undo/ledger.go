package undo

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"math"
)

// Unlimited may be used as a history limit for ledgers which should never
// discard undo information.
const Unlimited = math.MaxInt

// Ledger manages a history of undo and redo information.
//
// A ledger also keeps an undo count, i.e. the number of edits performed
// since the count had last been reset (usually at save time). Adding undo
// information and re-doing increments the count, undoing decrements it.
// A count of zero tells that the document is unmodified.
type Ledger struct {
	undos []Entry // most recent last
	redos []Entry // most recent last
	limit int
	count int
}

// NewLedger creates a ledger holding at most limit undo entries.
// A limit less than 1 is treated as 1.
func NewLedger(limit int) *Ledger {
	l := &Ledger{}
	l.SetLimit(limit)
	return l
}

// SetLimit changes the maximum history depth. If the history is longer than
// the new limit, the oldest entries are discarded.
func (l *Ledger) SetLimit(limit int) {
	if limit < 1 {
		limit = 1
	}
	l.limit = limit
	l.trim()
}

// Limit returns the maximum history depth.
func (l *Ledger) Limit() int {
	return l.limit
}

// Add pushes the undo information of an edit. Null entries are ignored.
// Any redo information will be discarded.
func (l *Ledger) Add(e Entry) {
	l.add(e, true)
}

func (l *Ledger) add(e Entry, clearRedo bool) {
	if e.IsNull() {
		return
	}
	l.undos = append(l.undos, e)
	l.count++
	l.trim()
	if clearRedo {
		l.redos = l.redos[:0]
	}
}

func (l *Ledger) trim() {
	if over := len(l.undos) - l.limit; over > 0 {
		tracer().Debugf("undo ledger: discarding %d oldest entries", over)
		l.undos = append(l.undos[:0], l.undos[over:]...)
	}
}

// CanUndo is true if undo information is available.
func (l *Ledger) CanUndo() bool {
	return len(l.undos) > 0
}

// CanRedo is true if redo information is available.
func (l *Ledger) CanRedo() bool {
	return len(l.redos) > 0
}

// Undo performs the most recent undo entry and moves its inverse to the
// redo stack. It returns false if there was nothing to undo.
func (l *Ledger) Undo() bool {
	if len(l.undos) == 0 {
		return false
	}
	e := l.undos[len(l.undos)-1]
	l.undos = l.undos[:len(l.undos)-1]
	l.count--
	if r := Apply(e); !r.IsNull() {
		l.redos = append(l.redos, r)
	}
	return true
}

// Redo performs the most recent redo entry and moves its inverse to the
// undo stack. It returns false if there was nothing to redo.
func (l *Ledger) Redo() bool {
	if len(l.redos) == 0 {
		return false
	}
	e := l.redos[len(l.redos)-1]
	l.redos = l.redos[:len(l.redos)-1]
	l.add(Apply(e), false)
	return true
}

// UndoText returns a menu text for the operation which would be undone next.
func (l *Ledger) UndoText() string {
	if len(l.undos) > 0 {
		if label := l.undos[len(l.undos)-1].Label(); label != "" {
			return fmt.Sprintf("Undo %s", label)
		}
	}
	return "Undo"
}

// RedoText returns a menu text for the operation which would be re-done next.
func (l *Ledger) RedoText() string {
	if len(l.redos) > 0 {
		if label := l.redos[len(l.redos)-1].Label(); label != "" {
			return fmt.Sprintf("Redo %s", label)
		}
	}
	return "Redo"
}

// Len returns the number of undo and redo entries held.
func (l *Ledger) Len() (undos int, redos int) {
	return len(l.undos), len(l.redos)
}

// Count returns the undo count. See type Ledger.
func (l *Ledger) Count() int {
	return l.count
}

// ResetCount sets the undo count to zero, usually after saving.
func (l *Ledger) ResetCount() {
	l.count = 0
}

// Reset forgets all undo and redo information.
func (l *Ledger) Reset() {
	l.undos = nil
	l.redos = nil
	l.count = 0
}
