// Package noise implements the Z2/Z3 balanced noise edge generator from
// spec.md §4.3: groups of 2 or 3 edges whose signed, generator-weighted
// sum equals a PRF-derived delta, with the last group closing the running
// delta sum to zero.
package noise

import (
	"fhecore/bitvec"
	"fhecore/cipher"
	"fhecore/edge"
	"fhecore/fp"
	"fhecore/params"
	"fhecore/prf"
	"fhecore/rng"
	"fhecore/seed"
)

const (
	kindZ2 uint8 = 0
	kindZ3 uint8 = 1
)

// Generate appends z2 2-edge groups followed by z3 3-edge groups to c,
// each at the given layer, scaled by the layer's masking scalar r. baseSeed
// is the layer's RSeed, the same one prf_noise_delta perturbs per group.
func Generate(pk *params.PublicKey, sk *params.SecretKey, c *cipher.Cipher, layerID uint32, baseSeed seed.RSeed, r fp.Elem, z2, z3 int, src rng.Source) {
	if src == nil {
		src = rng.Default()
	}
	total := uint32(z2 + z3)
	deltaAcc := fp.Zero()

	emit := func(groupID uint32, kind uint8, isLast bool) fp.Elem {
		var delta fp.Elem
		if isLast {
			delta = deltaAcc.Neg()
		} else {
			delta = prf.PrfNoiseDelta(pk, sk, baseSeed, groupID, kind)
			deltaAcc = deltaAcc.Add(delta)
		}
		return delta
	}

	for g := 0; g < z2; g++ {
		gid := uint32(g)
		isLast := total-gid <= 1
		delta := emit(gid, kindZ2, isLast)
		emitZ2Group(pk, layerID, baseSeed, r, delta, c, src)
	}
	for g := 0; g < z3; g++ {
		gid := uint32(z2 + g)
		isLast := total-gid <= 1
		delta := emit(gid, kindZ3, isLast)
		emitZ3Group(pk, layerID, baseSeed, r, delta, c, src)
	}
}

func freshSigma(pk *params.PublicKey, s seed.RSeed, idx int, sign edge.Sign, src rng.Source) bitvec.Vec {
	return prf.SigmaFromH(pk, s.ZTag, s.Nonce, uint16(idx), sign, src.Uint64())
}

// emitZ2Group builds the 2-edge group whose signed, generator-weighted
// contribution equals delta, per spec.md §4.3 "Z2 group (2 edges)".
func emitZ2Group(pk *params.PublicKey, layerID uint32, s seed.RSeed, r, delta fp.Elem, c *cipher.Cipher, src rng.Source) {
	idxs := rng.DistinctIndices(src, pk.Prm.B, 2)
	i, j := idxs[0], idxs[1]

	s1 := edge.SignOf(rng.Bit(src))
	s2 := s1.Opposite()

	var deltaPrime fp.Elem
	if s1 == edge.P {
		deltaPrime = delta
	} else {
		deltaPrime = delta.Neg()
	}

	ri := rng.FpNonzero(src)
	gi := pk.Prm.PowGAt(i)
	gj := pk.Prm.PowGAt(j)
	rj := ri.Mul(gi).Sub(deltaPrime).Mul(gj.Inv())

	c.AppendEdge(edge.Edge{LayerID: layerID, Idx: uint16(i), Ch: s1, W: ri.Mul(r), S: freshSigma(pk, s, i, s1, src)})
	c.AppendEdge(edge.Edge{LayerID: layerID, Idx: uint16(j), Ch: s2, W: rj.Mul(r), S: freshSigma(pk, s, j, s2, src)})
}

// emitZ3Group builds the 3-edge group whose signed, generator-weighted
// contribution equals delta, per spec.md §4.3 "Z3 group (3 edges)".
func emitZ3Group(pk *params.PublicKey, layerID uint32, s seed.RSeed, r, delta fp.Elem, c *cipher.Cipher, src rng.Source) {
	idxs := rng.DistinctIndices(src, pk.Prm.B, 3)
	i, j, k := idxs[0], idxs[1], idxs[2]

	s1 := edge.SignOf(rng.Bit(src))
	s2 := edge.SignOf(rng.Bit(src))
	s3 := edge.SignOf(rng.Bit(src))

	a := rng.FpNonzero(src)
	b := rng.FpNonzero(src)

	term1 := signedMul(s1, a.Mul(pk.Prm.PowGAt(i)))
	term2 := signedMul(s2, b.Mul(pk.Prm.PowGAt(j)))
	gkSigned := signedMul(s3, pk.Prm.PowGAt(k))

	cWeight := delta.Sub(term1).Sub(term2).Mul(gkSigned.Inv())

	c.AppendEdge(edge.Edge{LayerID: layerID, Idx: uint16(i), Ch: s1, W: a.Mul(r), S: freshSigma(pk, s, i, s1, src)})
	c.AppendEdge(edge.Edge{LayerID: layerID, Idx: uint16(j), Ch: s2, W: b.Mul(r), S: freshSigma(pk, s, j, s2, src)})
	c.AppendEdge(edge.Edge{LayerID: layerID, Idx: uint16(k), Ch: s3, W: cWeight.Mul(r), S: freshSigma(pk, s, k, s3, src)})
}

func signedMul(s edge.Sign, x fp.Elem) fp.Elem {
	if s == edge.M {
		return x.Neg()
	}
	return x
}
