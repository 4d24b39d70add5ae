package style

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/vdoc/undo"
)

func TestRegistry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vdoc.style")
	defer teardown()
	//
	r := NewRegistry()
	l, u, err := r.Define("thin", KeyValue{LineWidth, "0.5"})
	if err != nil {
		t.Fatal(err)
	}
	if !l.IsDynamic() || l.Name() != "thin" {
		t.Errorf("expected dynamic layer 'thin', got %v", l)
	}
	if _, _, err = r.Define("thin"); !errors.Is(err, ErrDuplicateStyle) {
		t.Errorf("expected duplicate name to be rejected, got %v", err)
	}
	if _, _, err = r.Define(""); !errors.Is(err, ErrUnnamedStyle) {
		t.Errorf("expected empty name to be rejected, got %v", err)
	}
	redo := undo.Apply(u)
	if _, ok := r.Lookup("thin"); ok {
		t.Error("expected undo to remove style 'thin'")
	}
	undo.Apply(redo)
	if x, ok := r.Lookup("thin"); !ok || x != l {
		t.Error("expected redo to restore the very same layer")
	}
	_, u, err = r.Remove("thin")
	if err != nil || r.Len() != 0 {
		t.Errorf("expected style to be removed, err = %v", err)
	}
	undo.Apply(u)
	if names := r.Names(); len(names) != 1 || names[0] != "thin" {
		t.Errorf("expected undo of removal to restore 'thin', have %v", names)
	}
	if _, _, err = r.Remove("thick"); !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("expected removal of unknown style to fail, got %v", err)
	}
}

func TestRegistryDefaults(t *testing.T) {
	r := NewRegistry()
	u, err := r.SetDefault(LineWidth, "1")
	if err != nil {
		t.Fatal(err)
	}
	c := r.NewCascade()
	if c.Get(LineWidth) != "1" {
		t.Errorf("expected new cascade to use document default 1, is %s", c.Get(LineWidth))
	}
	c.Set(LineWidth, "2")
	if p, _ := r.Defaults().Get(LineWidth); p != "1" {
		t.Errorf("expected document defaults to be unaffected, is %s", p)
	}
	undo.Apply(u)
	if r.NewCascade().Get(LineWidth) != "0.283286" {
		t.Errorf("expected factory default after undo")
	}
	if _, err = r.SetDefault("color", "red"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("expected unknown key to be rejected, got %v", err)
	}
}
