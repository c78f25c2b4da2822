// Package payload implements the base-layer builder and the 8-edge
// payload generator (spec.md §4.2): the one part of the core that solves a
// 2-unknowns-in-2-equations linear system over Fp to make the edge
// multiset simultaneously balance to zero and encode the plaintext.
package payload

import (
	"fhecore/cipher"
	"fhecore/edge"
	"fhecore/fp"
	"fhecore/layer"
	"fhecore/params"
	"fhecore/prf"
	"fhecore/rng"
	"fhecore/seed"
)

// edgeCount is S, the fixed payload width spec.md §4.2 requires.
const edgeCount = 8

// BuildBaseLayer allocates a fresh BASE layer keyed by a random nonce,
// deriving its z-tag and masking scalar R, per spec.md §4.2 "Base layer".
func BuildBaseLayer(pk *params.PublicKey, sk *params.SecretKey) (s seed.RSeed, r fp.Elem) {
	nonce := prf.MakeNonce128()
	ztag := prf.PrgLayerZTag(pk.Prm.CanonTag, nonce)
	s = seed.RSeed{Nonce: nonce, ZTag: ztag}
	r = prf.PrfR(pk, sk, s)
	return s, r
}

// Generate builds a Cipher with exactly one BASE layer and exactly 8
// payload edges whose signed weights and generator-weighted sum encode v
// under the layer's masking scalar R, per spec.md §4.2.
func Generate(pk *params.PublicKey, sk *params.SecretKey, v fp.Elem, src rng.Source) *cipher.Cipher {
	s, r := BuildBaseLayer(pk, sk)
	if src == nil {
		src = rng.Default()
	}

	c := cipher.New()
	layerID := c.AppendLayer(layer.NewBase(s))

	idx := rng.DistinctIndices(src, pk.Prm.B, edgeCount)
	signs := make([]edge.Sign, edgeCount)
	for j := range signs {
		signs[j] = edge.SignOf(rng.Bit(src))
	}

	weights := make([]fp.Elem, edgeCount)
	sum1 := fp.Zero()
	sumg := fp.Zero()
	for j := 0; j < edgeCount-2; j++ {
		rj := rng.FpNonzero(src)
		weights[j] = rj
		term := rj
		if signs[j] == edge.M {
			term = term.Neg()
		}
		sum1 = sum1.Add(term)
		sumg = sumg.Add(term.Mul(pk.Prm.PowGAt(idx[j])))
	}

	ra, rb := solveLastTwo(pk, v, sum1, sumg, idx[edgeCount-2], idx[edgeCount-1], signs[edgeCount-2], signs[edgeCount-1])
	weights[edgeCount-2] = ra
	weights[edgeCount-1] = rb

	for j := 0; j < edgeCount; j++ {
		salt := src.Uint64()
		sigma := prf.SigmaFromH(pk, s.ZTag, s.Nonce, uint16(idx[j]), signs[j], salt)
		c.AppendEdge(edge.Edge{
			LayerID: layerID,
			Idx:     uint16(idx[j]),
			Ch:      signs[j],
			W:       weights[j].Mul(r),
			S:       sigma,
		})
	}
	return c
}

// solveLastTwo computes r[6], r[7] so that the full 8-edge system
// satisfies both the weight constraint (signed sum = 0) and the value
// constraint (signed, generator-weighted sum = v), per spec.md §4.2 step
// 5. ga and gb are necessarily distinct because powg_B is injective and
// idx[6] != idx[7]; otherwise the system is singular and Inv panics, the
// fatal arithmetic fault spec.md §7 documents.
func solveLastTwo(pk *params.PublicKey, v, sum1, sumg fp.Elem, idxA, idxB int, sa, sb edge.Sign) (ra, rb fp.Elem) {
	ga := pk.Prm.PowGAt(idxA)
	gb := pk.Prm.PowGAt(idxB)

	vMinusSumg := v.Sub(sumg)
	rhs := sum1.Neg().Mul(ga).Sub(vMinusSumg)
	rbRaw := rhs.Mul(ga.Sub(gb).Inv())

	if sb == edge.P {
		rb = rbRaw
	} else {
		rb = rbRaw.Neg()
	}

	var tmp fp.Elem
	if sb == edge.P {
		tmp = sum1.Neg().Sub(rb)
	} else {
		tmp = sum1.Neg().Add(rb)
	}

	if sa == edge.P {
		ra = tmp
	} else {
		ra = tmp.Neg()
	}
	return ra, rb
}
