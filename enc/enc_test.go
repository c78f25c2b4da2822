package enc

import (
	"testing"

	"fhecore/edge"
	"fhecore/fp"
	"fhecore/params"
	"fhecore/prf"
	"fhecore/rng"
)

func testPK(edgeBudget int) (*params.PublicKey, *params.SecretKey) {
	g := fp.FromUint64(3)
	prm := &params.Prm{
		B: 64, MBits: 32, EdgeBudget: edgeBudget,
		NoiseEntropyBits: 40, DepthSlopeBits: 5, Tuple2Fraction: 0.6,
		CanonTag: 0x1234,
	}
	prm.PowG = params.BuildPowG(g, prm.B)
	return &params.PublicKey{Prm: prm, ID: []byte("enc-pk")}, &params.SecretKey{Key: []byte("enc-sk")}
}

func TestEncFpDepthWiresPayloadAndNoise(t *testing.T) {
	pk, sk := testPK(1000)
	src := rng.NewSeeded(7)
	v := fp.FromUint64(42)
	c := EncFpDepth(pk, sk, v, 0, src)

	if len(c.L) != 1 {
		t.Fatalf("expected 1 layer, got %d", len(c.L))
	}
	if len(c.E) < 8 {
		t.Fatalf("expected at least 8 payload edges, got %d", len(c.E))
	}
	if len(c.E) > pk.Prm.EdgeBudget {
		t.Fatalf("edge budget violated: %d > %d", len(c.E), pk.Prm.EdgeBudget)
	}
}

// S1: zero noise budget encrypts to exactly 8 edges.
func TestEncFpDepthS1NoNoiseYieldsEightEdges(t *testing.T) {
	g := fp.FromUint64(3)
	prm := &params.Prm{B: 64, MBits: 128, EdgeBudget: 1000, NoiseEntropyBits: 0, DepthSlopeBits: 0, CanonTag: 9}
	prm.PowG = params.BuildPowG(g, prm.B)
	pk := &params.PublicKey{Prm: prm, ID: []byte("s1")}
	sk := &params.SecretKey{Key: []byte("s1sk")}

	src := rng.NewSeeded(11)
	c := EncFpDepth(pk, sk, fp.FromUint64(42), 0, src)
	if len(c.E) != 8 {
		t.Fatalf("S1: expected exactly 8 edges, got %d", len(c.E))
	}
}

// S4: encrypting v=0 via EncZeroDepth yields two layers whose payload
// values (mask, -mask), reconstructed from their respective R, sum to 0.
func TestEncZeroDepthS4MaskPairSumsToZero(t *testing.T) {
	pk, sk := testPK(1000)
	src := rng.NewSeeded(21)
	c := EncZeroDepth(pk, sk, 0, src)

	if len(c.L) != 2 {
		t.Fatalf("expected 2 layers before any layer drop, got %d", len(c.L))
	}

	total := fp.Zero()
	for layerID, l := range c.L {
		r := prf.PrfR(pk, sk, l.Seed)
		rInv := r.Inv()
		layerSum := fp.Zero()
		for _, e := range c.E {
			if int(e.LayerID) != layerID {
				continue
			}
			term := e.W.Mul(rInv).Mul(pk.Prm.PowGAt(int(e.Idx)))
			if e.Ch == edge.M {
				term = term.Neg()
			}
			layerSum = layerSum.Add(term)
		}
		total = total.Add(layerSum)
	}

	if !total.Equal(fp.Zero()) {
		t.Fatalf("expected mask pair to sum to 0, got %s", total.String())
	}
}

func TestSigmaDensityOfFreshCipherInRange(t *testing.T) {
	pk, sk := testPK(1000)
	src := rng.NewSeeded(31)
	c := EncValue(pk, sk, 99, src)
	d := SigmaDensity(pk, c)
	if d < 0 || d > 1 {
		t.Fatalf("density out of range: %f", d)
	}
	if d == 0 {
		t.Fatal("expected nonzero density for a nonempty cipher")
	}
}

// End-to-end smoke test wiring every package together.
func TestEncValueDepthEndToEnd(t *testing.T) {
	pk, sk := testPK(1000)
	src := rng.NewSeeded(41)
	c := EncValueDepth(pk, sk, 7, 2, src)

	if len(c.L) == 0 {
		t.Fatal("expected at least one surviving layer")
	}
	for _, e := range c.E {
		if int(e.LayerID) >= len(c.L) {
			t.Fatalf("edge references out-of-range layer %d (have %d layers)", e.LayerID, len(c.L))
		}
	}
}
