package edge

import (
	"testing"

	"fhecore/fp"
)

func TestBucketIdentity(t *testing.T) {
	e := Edge{LayerID: 1, Idx: 5, Ch: P, W: fp.FromUint64(3)}
	b := e.Bucket()
	if b.LayerID != 1 || b.Idx != 5 || b.Ch != P {
		t.Fatalf("unexpected bucket: %+v", b)
	}
}

func TestSignedWeight(t *testing.T) {
	w := fp.FromUint64(9)
	ep := Edge{Ch: P, W: w}
	em := Edge{Ch: M, W: w}
	if !ep.SignedWeight().Equal(w) {
		t.Fatal("P edge should keep weight unsigned")
	}
	if !em.SignedWeight().Equal(w.Neg()) {
		t.Fatal("M edge should negate weight")
	}
}

func TestOppositeAndSignOf(t *testing.T) {
	if SignOf(true) != P || SignOf(false) != M {
		t.Fatal("SignOf mapping wrong")
	}
	if P.Opposite() != M || M.Opposite() != P {
		t.Fatal("Opposite mapping wrong")
	}
	if P.Int() != 1 || M.Int() != -1 {
		t.Fatal("Int mapping wrong")
	}
}
