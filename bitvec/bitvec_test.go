package bitvec

import "testing"

func TestZeroIsEmpty(t *testing.T) {
	v := Make(128)
	if v.Popcount() != 0 {
		t.Fatalf("zero vector has popcount %d", v.Popcount())
	}
}

func TestXorSelfInverse(t *testing.T) {
	a := Make(64)
	a.Set(3)
	a.Set(10)
	b := a.Clone()
	a.XorWith(b)
	if a.Popcount() != 0 {
		t.Fatalf("a xor a != 0, popcount=%d", a.Popcount())
	}
}

func TestXorAccumulates(t *testing.T) {
	a := Make(8)
	a.Set(0)
	b := Make(8)
	b.Set(1)
	a.XorWith(b)
	if a.Popcount() != 2 {
		t.Fatalf("expected popcount 2, got %d", a.Popcount())
	}
	if !a.Test(0) || !a.Test(1) {
		t.Fatal("expected bits 0 and 1 set")
	}
}

func TestFromBytes(t *testing.T) {
	v := FromBytes(8, []byte{0b10000001})
	if !v.Test(0) || !v.Test(7) {
		t.Fatal("expected bits 0 and 7 set")
	}
	if v.Popcount() != 2 {
		t.Fatalf("expected popcount 2, got %d", v.Popcount())
	}
}

func TestCloneIndependence(t *testing.T) {
	a := Make(8)
	a.Set(1)
	b := a.Clone()
	b.Set(2)
	if a.Test(2) {
		t.Fatal("mutating clone affected original")
	}
}
