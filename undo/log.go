package undo

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Log collects the entries of a multi-step operation. It acts as a scope
// guard: unless the log has been committed, Rollback will undo every entry
// collected so far. The usual pattern is
//
//     log := undo.NewLog()
//     defer log.Rollback()
//     …
//     log.Add(step1())
//     if err := step2(); err != nil {
//         return err         // step1 will be undone
//     }
//     return log.Commit()
//
// Rollback is a no-op after Commit, so deferring it is always safe.
type Log struct {
	entries []Entry
	closed  bool
}

// NewLog creates an empty log.
func NewLog() *Log {
	return &Log{}
}

// Add appends the entry of a completed sub-step.
func (l *Log) Add(e Entry) {
	assertThat(!l.closed, "add to a closed undo log")
	l.entries = append(l.entries, e)
}

// Len returns the number of entries collected, including Null entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Changed is true if at least one non-null entry has been collected.
func (l *Log) Changed() bool {
	for _, e := range l.entries {
		if !e.IsNull() {
			return true
		}
	}
	return false
}

// Commit closes the log and returns the composition of its entries.
func (l *Log) Commit() Entry {
	if l.closed {
		return Null
	}
	l.closed = true
	return Compose(l.entries...)
}

// Rollback undoes all entries collected so far, in reverse order, and
// closes the log. It does nothing if the log has already been closed.
func (l *Log) Rollback() {
	if l.closed {
		return
	}
	l.closed = true
	if len(l.entries) > 0 {
		tracer().Debugf("undo log: rolling back %d entries", len(l.entries))
		Apply(Compose(l.entries...))
	}
	l.entries = nil
}
