package payload

import (
	"testing"

	"fhecore/edge"
	"fhecore/fp"
	"fhecore/params"
	"fhecore/prf"
	"fhecore/rng"
)

func testPK() (*params.PublicKey, *params.SecretKey) {
	g := fp.FromUint64(5)
	prm := &params.Prm{B: 64, MBits: 32, EdgeBudget: 1000, CanonTag: 0xabc}
	prm.PowG = params.BuildPowG(g, prm.B)
	return &params.PublicKey{Prm: prm, ID: []byte("test-pk")}, &params.SecretKey{Key: []byte("test-sk")}
}

// Property 1 (spec.md §8): for any v, after payload generation the signed
// sum of weights is zero and the signed, generator-weighted sum is v —
// both *before* the R scaling applied to each emitted edge's weight.
func TestGeneratePayloadBalance(t *testing.T) {
	pk, sk := testPK()
	for seedN := int64(0); seedN < 40; seedN++ {
		v := fp.FromUint64(uint64(seedN)*97 + 3)
		src := rng.NewSeeded(seedN)
		c := Generate(pk, sk, v, src)

		if len(c.L) != 1 || !c.L[0].IsBase() {
			t.Fatalf("seed %d: expected exactly one BASE layer", seedN)
		}
		if len(c.E) != edgeCount {
			t.Fatalf("seed %d: expected %d edges, got %d", seedN, edgeCount, len(c.E))
		}

		r := prf.PrfR(pk, sk, c.L[0].Seed)
		rInv := r.Inv()

		seen := map[uint16]bool{}
		sum1 := fp.Zero()
		sumg := fp.Zero()
		for _, e := range c.E {
			if seen[e.Idx] {
				t.Fatalf("seed %d: duplicate column index %d among payload edges", seedN, e.Idx)
			}
			seen[e.Idx] = true

			unscaled := e.W.Mul(rInv)
			signed := unscaled
			if e.Ch == edge.M {
				signed = unscaled.Neg()
			}
			sum1 = sum1.Add(signed)
			sumg = sumg.Add(signed.Mul(pk.Prm.PowGAt(int(e.Idx))))
		}

		if !sum1.Equal(fp.Zero()) {
			t.Fatalf("seed %d: weight constraint violated, sum1=%s", seedN, sum1.String())
		}
		if !sumg.Equal(v) {
			t.Fatalf("seed %d: value constraint violated, want %s got %s", seedN, v.String(), sumg.String())
		}
	}
}

func TestBuildBaseLayerFreshAcrossCalls(t *testing.T) {
	pk, sk := testPK()
	s1, r1 := BuildBaseLayer(pk, sk)
	// Independent draws must use fresh nonces, so seeds (and thus R) should
	// differ across calls with overwhelming probability.
	s2, r2 := BuildBaseLayer(pk, sk)
	if s1 == s2 {
		t.Fatal("expected distinct nonces across independent base layer draws")
	}
	if r1.Equal(r2) {
		t.Fatal("expected distinct R across independent base layer draws")
	}
}
