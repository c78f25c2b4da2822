package prf

import (
	"testing"

	"fhecore/edge"
	"fhecore/params"
	"fhecore/seed"
)

func testKeys() (*params.PublicKey, *params.SecretKey) {
	pk := &params.PublicKey{
		Prm: &params.Prm{MBits: 128},
		ID:  []byte("test-public-key"),
	}
	sk := &params.SecretKey{Key: []byte("test-secret-key")}
	return pk, sk
}

func TestPrfRDeterministic(t *testing.T) {
	pk, sk := testKeys()
	s := seed.RSeed{Nonce: seed.Nonce128{Hi: 1, Lo: 2}, ZTag: 3}
	a := PrfR(pk, sk, s)
	b := PrfR(pk, sk, s)
	if !a.Equal(b) {
		t.Fatal("PrfR not deterministic for identical inputs")
	}
}

func TestPrfRSensitiveToSeed(t *testing.T) {
	pk, sk := testKeys()
	s1 := seed.RSeed{Nonce: seed.Nonce128{Hi: 1, Lo: 2}, ZTag: 3}
	s2 := seed.RSeed{Nonce: seed.Nonce128{Hi: 1, Lo: 2}, ZTag: 4}
	if PrfR(pk, sk, s1).Equal(PrfR(pk, sk, s2)) {
		t.Fatal("PrfR ignored ztag change")
	}
}

func TestPrgLayerZTagDeterministic(t *testing.T) {
	nonce := seed.Nonce128{Hi: 9, Lo: 10}
	if PrgLayerZTag(42, nonce) != PrgLayerZTag(42, nonce) {
		t.Fatal("PrgLayerZTag not deterministic")
	}
	if PrgLayerZTag(42, nonce) == PrgLayerZTag(43, nonce) {
		t.Fatal("PrgLayerZTag ignored canonTag change (extremely unlikely collision)")
	}
}

func TestSigmaFromHWidth(t *testing.T) {
	pk, _ := testKeys()
	nonce := seed.Nonce128{Hi: 1, Lo: 1}
	v := SigmaFromH(pk, 7, nonce, 3, edge.P, 99)
	if v.Len() != 128 {
		t.Fatalf("expected width 128, got %d", v.Len())
	}
}

func TestPrfNoiseDeltaDistinctByGroup(t *testing.T) {
	pk, sk := testKeys()
	base := seed.RSeed{Nonce: seed.Nonce128{Hi: 1, Lo: 1}, ZTag: 1}
	d0 := PrfNoiseDelta(pk, sk, base, 0, 0)
	d1 := PrfNoiseDelta(pk, sk, base, 1, 0)
	if d0.Equal(d1) {
		t.Fatal("PrfNoiseDelta ignored group id")
	}
}

func TestCsprngU64NotConstant(t *testing.T) {
	a := CsprngU64()
	b := CsprngU64()
	if a == b {
		t.Skip("extremely unlikely but not impossible collision; not a hard failure")
	}
}

func TestMakeNonce128Fresh(t *testing.T) {
	a := MakeNonce128()
	b := MakeNonce128()
	if a == b {
		t.Fatal("MakeNonce128 returned identical nonces")
	}
}
