package layer

import (
	"testing"

	"fhecore/seed"
)

func TestNewBaseIsBase(t *testing.T) {
	l := NewBase(seed.RSeed{ZTag: 7})
	if !l.IsBase() || l.IsProd() {
		t.Fatal("expected base layer")
	}
	if l.Seed.ZTag != 7 {
		t.Fatalf("seed not preserved, got %d", l.Seed.ZTag)
	}
}

func TestNewProdReferencesParents(t *testing.T) {
	l := NewProd(2, 3, seed.RSeed{})
	if !l.IsProd() || l.IsBase() {
		t.Fatal("expected prod layer")
	}
	if l.ParentA != 2 || l.ParentB != 3 {
		t.Fatalf("parents not preserved: %d %d", l.ParentA, l.ParentB)
	}
}
