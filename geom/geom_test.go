package geom

import (
	"math"
	"testing"
)

func TestTrafoApply(t *testing.T) {
	tr := Translation(Pt(10, 5))
	if p := tr.Apply(Pt(1, 1)); !p.Near(Pt(11, 6)) {
		t.Errorf("expected (11,6), got %v", p)
	}
	if p := tr.ApplyVector(Pt(1, 1)); !p.Near(Pt(1, 1)) {
		t.Errorf("expected vector to stay (1,1), got %v", p)
	}
	rot := Rotation(math.Pi / 2)
	if p := rot.Apply(Pt(1, 0)); !p.Near(Pt(0, 1)) {
		t.Errorf("expected rotation to map (1,0) to (0,1), got %v", p)
	}
}

func TestTrafoThen(t *testing.T) {
	tr := Scaling(2, 2).Then(Translation(Pt(1, 0)))
	if p := tr.Apply(Pt(1, 1)); !p.Near(Pt(3, 2)) {
		t.Errorf("expected scale-then-translate to map (1,1) to (3,2), got %v", p)
	}
	inv, ok := tr.Inverse()
	if !ok {
		t.Fatal("expected transformation to be invertible")
	}
	if !tr.Then(inv).Near(Identity) {
		t.Errorf("expected t·t⁻¹ to be identity, is %v", tr.Then(inv))
	}
	if _, ok := Scaling(0, 1).Inverse(); ok {
		t.Error("expected singular transformation to have no inverse")
	}
}

func TestBlend(t *testing.T) {
	p := Pt(0, 0).Blend(Pt(10, 20), 0.75, 0.25)
	if !p.Near(Pt(2.5, 5)) {
		t.Errorf("expected (2.5,5), got %v", p)
	}
	tr := Identity.Blend(Translation(Pt(8, 0)), 0.5, 0.5)
	if !tr.Near(Translation(Pt(4, 0))) {
		t.Errorf("expected half-way translation by 4, got %v", tr)
	}
}
