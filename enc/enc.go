// Package enc is the orchestration layer: it sequences calls into
// noiseplan, payload, noise, and cipher to expose the encryption core's
// full surface (spec.md §6), containing no algorithmic logic of its own.
package enc

import (
	"fhecore/cipher"
	"fhecore/fp"
	"fhecore/noise"
	"fhecore/noiseplan"
	"fhecore/params"
	"fhecore/payload"
	"fhecore/prf"
	"fhecore/rng"
)

// EncFpDepth builds the payload layer for v, plans the noise budget for
// depth_hint, and appends the resulting Z2/Z3 noise groups, per spec.md
// §4.2-§4.3 (the combined operation spec.md §4.8 calls enc_fp).
func EncFpDepth(pk *params.PublicKey, sk *params.SecretKey, v fp.Elem, depthHint int32, src rng.Source) *cipher.Cipher {
	c := payload.Generate(pk, sk, v, src)
	s := c.L[0].Seed
	r := prf.PrfR(pk, sk, s)

	z2, z3 := noiseplan.Plan(pk.Prm, depthHint)
	noise.Generate(pk, sk, c, 0, s, r, z2, z3, src)

	cipher.GuardBudget(pk, c, "enc_fp_depth")
	return c
}

// EncFp is EncFpDepth with the default depth hint of 0.
func EncFp(pk *params.PublicKey, sk *params.SecretKey, v fp.Elem, src rng.Source) *cipher.Cipher {
	return EncFpDepth(pk, sk, v, 0, src)
}

// EncValueDepth converts v to Fp, draws a uniform nonzero mask, and
// returns combine_ciphers(enc_fp(v+mask, depth_hint), enc_fp(-mask,
// depth_hint)) — pairing with an independent mask ciphertext blinds the
// plaintext at layer granularity even if a single ciphertext leaves any
// structural signal, per spec.md §4.8.
func EncValueDepth(pk *params.PublicKey, sk *params.SecretKey, v uint64, depthHint int32, src rng.Source) *cipher.Cipher {
	if src == nil {
		src = rng.Default()
	}
	vFp := fp.FromUint64(v)
	mask := rng.FpNonzero(src)

	a := EncFpDepth(pk, sk, vFp.Add(mask), depthHint, src)
	b := EncFpDepth(pk, sk, mask.Neg(), depthHint, src)
	return cipher.Combine(pk, a, b)
}

// EncValue is EncValueDepth with the default depth hint of 0.
func EncValue(pk *params.PublicKey, sk *params.SecretKey, v uint64, src rng.Source) *cipher.Cipher {
	return EncValueDepth(pk, sk, v, 0, src)
}

// EncZeroDepth is EncValueDepth specialized to v=0: it encrypts a mask and
// its negation, per spec.md §4.8.
func EncZeroDepth(pk *params.PublicKey, sk *params.SecretKey, depthHint int32, src rng.Source) *cipher.Cipher {
	return EncValueDepth(pk, sk, 0, depthHint, src)
}

// SigmaDensity forwards to cipher.SigmaDensity, the mean ones-ratio of
// edge bit-vector shares, per spec.md §4.8.
func SigmaDensity(pk *params.PublicKey, c *cipher.Cipher) float64 {
	return cipher.SigmaDensity(pk, c)
}
