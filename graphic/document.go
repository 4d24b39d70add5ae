package graphic

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/vdoc/style"
	"github.com/npillmayer/vdoc/undo"
)

// Document is a drawing: a tree of layers and objects, named styles, the
// page layout and the undo history.
//
// A Document is not safe for concurrent use.
type Document struct {
	root      *Root
	registry  *style.Registry
	ledger    *undo.Ledger
	layout    Layout
	queue     afterQueue
	tx        transaction
	listeners []func(*Document)
}

type transaction struct {
	depth   int
	label   string
	undos   []undo.Entry
	aborted bool
	changed bool
}

type config struct {
	undoLimit int
	registry  *style.Registry
	layerName string
}

// Option configures a new document.
type Option func(*config)

// WithUndoLimit sets the maximum number of undo steps kept by the
// document. The default is 10.
func WithUndoLimit(n int) Option {
	return func(c *config) { c.undoLimit = n }
}

// WithRegistry lets the document use a given registry of named styles.
func WithRegistry(r *style.Registry) Option {
	return func(c *config) { c.registry = r }
}

// WithLayerName sets the name of the initial layer. An empty name creates
// the document without any layer.
func WithLayerName(name string) Option {
	return func(c *config) { c.layerName = name }
}

// NewDocument creates an empty document with a single layer.
func NewDocument(opts ...Option) *Document {
	c := config{undoLimit: 10, layerName: "Layer 1"}
	for _, opt := range opts {
		opt(&c)
	}
	if c.registry == nil {
		c.registry = style.NewRegistry()
	}
	d := &Document{
		registry: c.registry,
		ledger:   undo.NewLedger(c.undoLimit),
		layout:   DefaultLayout,
	}
	d.root = newRoot(d)
	if c.layerName != "" {
		d.root.insertAt(0, NewLayer(c.layerName))
	}
	return d
}

// Root returns the topmost compound, holding the layers.
func (d *Document) Root() *Root { return d.root }

// Layers returns the layers of the document, bottom-most first.
func (d *Document) Layers() []*Layer { return d.root.Layers() }

// Layer returns the layer at position i.
func (d *Document) Layer(i int) (*Layer, error) {
	if i < 0 || i >= d.root.Len() {
		return nil, fmt.Errorf("layer #%d: %w", i, ErrNoLayer)
	}
	l, ok := d.root.Child(i).(*Layer)
	if !ok {
		return nil, fmt.Errorf("child #%d of root: %w", i, ErrNoLayer)
	}
	return l, nil
}

// Registry returns the registry of named styles.
func (d *Document) Registry() *style.Registry { return d.registry }

// Layout returns the page layout.
func (d *Document) Layout() Layout { return d.layout }

// OnChange registers a listener. Listeners are called once at the end of
// every transaction which changed the document.
func (d *Document) OnChange(f func(*Document)) {
	d.listeners = append(d.listeners, f)
}

func (d *Document) rootChanged() {
	if d.tx.depth > 0 {
		d.tx.changed = true
		return
	}
	d.notifyListeners()
}

func (d *Document) notifyListeners() {
	for _, f := range d.listeners {
		f(d)
	}
}

// Save walks the document with a visitor.
func (d *Document) Save(v Visitor) error {
	if err := v.BeginDocument(d); err != nil {
		return err
	}
	for _, name := range d.registry.Names() {
		l, _ := d.registry.Lookup(name)
		if err := v.Style(name, l); err != nil {
			return err
		}
	}
	if err := d.root.Save(v); err != nil {
		return err
	}
	return v.EndDocument(d)
}

// --- Transactions ----------------------------------------------------------

// Begin starts a transaction. Transactions nest; only the outermost
// transaction's label is used for the undo history.
func (d *Document) Begin(label string) {
	if d.tx.depth == 0 {
		d.tx = transaction{label: label}
	}
	d.tx.depth++
}

// InTransaction is true between Begin and the matching End.
func (d *Document) InTransaction() bool {
	return d.tx.depth > 0
}

// AddUndo records undo information for the current transaction.
func (d *Document) AddUndo(e undo.Entry) {
	assertThat(d.tx.depth > 0, "AddUndo outside of a transaction")
	if !e.IsNull() {
		d.tx.undos = append(d.tx.undos, e)
	}
}

// Abort marks the current transaction as failed. The outermost End will
// roll back all changes recorded so far.
func (d *Document) Abort() {
	assertThat(d.tx.depth > 0, "Abort outside of a transaction")
	d.tx.aborted = true
}

// End ends a transaction. At the end of the outermost transaction, after
// handlers are run, the undo information is pushed onto the undo history
// and listeners are notified.
//
// If the transaction has been aborted, or an after handler fails, all
// changes of the transaction are undone and an error is returned.
func (d *Document) End() error {
	assertThat(d.tx.depth > 0, "End without Begin")
	if d.tx.depth > 1 {
		d.tx.depth--
		return nil
	}
	var err error
	if d.tx.aborted {
		err = fmt.Errorf("%q: %w", d.tx.label, ErrAborted)
	} else {
		err = d.runAfterHandlers()
	}
	if err != nil {
		d.rollback()
		d.tx = transaction{}
		return err
	}
	tx := d.tx
	d.tx = transaction{}
	e := undo.Labeled(tx.label, undo.Compose(tx.undos...))
	d.ledger.Add(e)
	if !e.IsNull() {
		tracer().Infof("document: commit %q", tx.label)
	}
	if tx.changed {
		d.notifyListeners()
	}
	return nil
}

// Edit runs f as a transaction named label. If f fails, the transaction is
// rolled back and f's error is returned.
func (d *Document) Edit(label string, f func() (undo.Entry, error)) error {
	d.Begin(label)
	u, err := f()
	if err != nil {
		d.Abort()
		_ = d.End()
		return err
	}
	d.AddUndo(u)
	return d.End()
}

// AddAfterHandler schedules f to run at the end of the outermost
// transaction. Handlers of deeper objects run first. A handler scheduled
// again under the same key replaces the earlier one. Outside of a
// transaction, f is run at once.
func (d *Document) AddAfterHandler(key any, depth int, f func() error) {
	d.queue.add(key, depth, f)
	if d.tx.depth == 0 {
		d.Begin("")
		if err := d.End(); err != nil {
			tracer().Errorf("document: after handler: %v", err)
		}
	}
}

func (d *Document) runAfterHandlers() error {
	for {
		ah, ok := d.queue.next()
		if !ok {
			return nil
		}
		if err := ah.fn(); err != nil {
			d.queue.clear()
			return err
		}
	}
}

// rollback undoes the current transaction. Work scheduled by the undo is
// run on a best-effort basis.
func (d *Document) rollback() {
	u := undo.Compose(d.tx.undos...)
	d.tx.undos = nil
	d.queue.clear()
	tracer().Infof("document: rolling back %q", d.tx.label)
	undo.Apply(u)
	for {
		ah, ok := d.queue.next()
		if !ok {
			break
		}
		if err := ah.fn(); err != nil {
			tracer().Errorf("document: rollback of %q: %v", d.tx.label, err)
		}
	}
}

// --- Undo history ----------------------------------------------------------

// Undo reverts the most recent transaction.
func (d *Document) Undo() error {
	if !d.ledger.CanUndo() {
		return nil
	}
	d.Begin("")
	d.ledger.Undo()
	return d.End()
}

// Redo re-does the most recently undone transaction.
func (d *Document) Redo() error {
	if !d.ledger.CanRedo() {
		return nil
	}
	d.Begin("")
	d.ledger.Redo()
	return d.End()
}

// CanUndo is true if there is something to undo.
func (d *Document) CanUndo() bool { return d.ledger.CanUndo() }

// CanRedo is true if there is something to redo.
func (d *Document) CanRedo() bool { return d.ledger.CanRedo() }

// UndoText returns the menu text for Undo.
func (d *Document) UndoText() string { return d.ledger.UndoText() }

// RedoText returns the menu text for Redo.
func (d *Document) RedoText() string { return d.ledger.RedoText() }

// SetUndoLimit changes the maximum number of undo steps.
func (d *Document) SetUndoLimit(n int) { d.ledger.SetLimit(n) }

// WasEdited is true if the document changed since it has been loaded or
// saved.
func (d *Document) WasEdited() bool { return d.ledger.Count() != 0 }

// ClearEdited marks the document as unchanged.
func (d *Document) ClearEdited() { d.ledger.ResetCount() }

// ResetUndo discards the undo history.
func (d *Document) ResetUndo() { d.ledger.Reset() }
