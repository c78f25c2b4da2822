// Package prf implements the PRF collaborators spec.md §6 lists as
// consumed-but-unspecified: csprng_u64, make_nonce128, prg_layer_ztag,
// prf_R, sigma_from_H, and the Weyl-mixed prf_noise_delta variant from
// §4.3. It is built from three corpus-grounded pieces: golang.org/x/crypto's
// SHAKE (the same hash family DECS/merkle.go uses for its Merkle tree)
// canonicalizes each call's variable-length input into fixed-width words;
// internal/permute's sponge permutation (adapted from the teacher's prf
// package) mixes those words; and github.com/tuneinsight/lattigo/v4/utils's
// PRNG (used the same way credential/challenge.go seeds bounded polynomial
// sampling) backs the raw entropy draws for csprng_u64/make_nonce128.
package prf

import (
	"encoding/binary"
	"sync"

	"golang.org/x/crypto/sha3"

	"fhecore/bitvec"
	"fhecore/edge"
	"fhecore/fp"
	"fhecore/internal/permute"
	"fhecore/params"
	"fhecore/seed"

	lattigoutils "github.com/tuneinsight/lattigo/v4/utils"
)

var (
	defaultParamsOnce sync.Once
	defaultParams     *permute.Params
	defaultParamsErr  error
)

func loadParams() *permute.Params {
	defaultParamsOnce.Do(func() {
		defaultParams, defaultParamsErr = permute.LoadDefaultParams()
	})
	if defaultParamsErr != nil {
		// The permutation parameters ship with the module; a load failure
		// here means the install is broken, an algebraic impossibility in
		// the sense of spec.md §7 rather than a recoverable condition.
		panic("prf: load default permutation params: " + defaultParamsErr.Error())
	}
	return defaultParams
}

// canonicalWords compresses an arbitrary number of byte-string inputs into
// a fixed 8-word (64-byte) block via SHAKE-256, the same construction
// DECS/merkle.go uses (shake16) to compress variable-length leaf/node
// inputs into a fixed digest before further processing.
func canonicalWords(parts ...[]byte) []uint64 {
	h := sha3.NewShake256()
	for _, part := range parts {
		h.Write(part)
	}
	buf := make([]byte, 64)
	if _, err := h.Read(buf); err != nil {
		panic("prf: shake squeeze: " + err.Error())
	}
	words := make([]uint64, 8)
	for i := range words {
		words[i] = binary.BigEndian.Uint64(buf[i*8:])
	}
	return words
}

func u64Bytes(x uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], x)
	return b[:]
}

func u16Bytes(x uint16) []byte {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], x)
	return b[:]
}

func nonceBytes(n seed.Nonce128) []byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[0:8], n.Hi)
	binary.BigEndian.PutUint64(b[8:16], n.Lo)
	return b[:]
}

func seedBytes(s seed.RSeed) []byte {
	return append(nonceBytes(s.Nonce), u64Bytes(s.ZTag)...)
}

// PrfR derives the masking scalar R from the public/secret key and a
// per-layer seed, as used both by the base-layer builder (§4.2) and by
// prf_noise_delta (§4.3).
func PrfR(pk *params.PublicKey, sk *params.SecretKey, s seed.RSeed) fp.Elem {
	words := canonicalWords(pk.ID, sk.Key, seedBytes(s), []byte("prf_R"))
	sp := permute.New(loadParams())
	sp.Absorb(words)
	return fp.SetBytes(sp.SqueezeBytes(16))
}

// PrgLayerZTag derives a layer's z-tag from the public canonical
// domain-separation tag and the layer's nonce.
func PrgLayerZTag(canonTag uint64, nonce seed.Nonce128) uint64 {
	words := canonicalWords(u64Bytes(canonTag), nonceBytes(nonce), []byte("prg_layer_ztag"))
	sp := permute.New(loadParams())
	sp.Absorb(words)
	return sp.SqueezeOne()
}

// SigmaFromH derives an edge's bit-vector share from the public key, the
// layer's z-tag/nonce, the edge's column index and sign, and a fresh
// per-edge salt.
func SigmaFromH(pk *params.PublicKey, ztag uint64, nonce seed.Nonce128, idx uint16, sign edge.Sign, salt uint64) bitvec.Vec {
	words := canonicalWords(pk.ID, u64Bytes(ztag), nonceBytes(nonce), u16Bytes(idx), []byte{byte(sign)}, u64Bytes(salt))
	sp := permute.New(loadParams())
	sp.Absorb(words)
	mBits := pk.Prm.MBits
	raw := sp.SqueezeBytes((mBits + 7) / 8)
	return bitvec.FromBytes(uint(mBits), raw)
}

// Weyl mixing constants for prf_noise_delta, fixed per spec.md §4.3 — any
// implementation must use this exact bit pattern since it participates in
// the PRF input.
const (
	weylLo   = 0x9e3779b97f4a7c15
	weylHi   = 0x94d049bb133111eb
	weylZTag = 0x517cc1b727220a95
)

// mixSeed perturbs base by XOR-mixing groupID and kind into its fields
// with the fixed Weyl constants, per spec.md §4.3.
func mixSeed(base seed.RSeed, groupID uint32, kind uint8) seed.RSeed {
	gid := uint64(groupID)
	k := uint64(kind)
	return seed.RSeed{
		Nonce: seed.Nonce128{
			Lo: base.Nonce.Lo ^ (weylLo * gid) ^ k,
			Hi: base.Nonce.Hi ^ (weylHi * gid) ^ (k << 32),
		},
		ZTag: base.ZTag ^ (weylZTag * gid) ^ (k << 48),
	}
}

// PrfNoiseDelta derives a noise group's target delta by Weyl-mixing the
// group index and kind into the base seed before calling PrfR, per
// spec.md §4.3.
func PrfNoiseDelta(pk *params.PublicKey, sk *params.SecretKey, base seed.RSeed, groupID uint32, kind uint8) fp.Elem {
	return PrfR(pk, sk, mixSeed(base, groupID, kind))
}

// CsprngU64 draws one cryptographically random 64-bit word from lattigo's
// PRNG, the same source credential/challenge.go uses for bounded
// polynomial sampling. An RNG starvation failure is fatal per spec.md §7,
// not retried.
func CsprngU64() uint64 {
	prng, err := lattigoutils.NewPRNG()
	if err != nil {
		panic("prf: csprng: " + err.Error())
	}
	var buf [8]byte
	if _, err := prng.Read(buf[:]); err != nil {
		panic("prf: csprng read: " + err.Error())
	}
	return binary.BigEndian.Uint64(buf[:])
}

// MakeNonce128 draws a fresh 128-bit nonce from the CSPRNG.
func MakeNonce128() seed.Nonce128 {
	return seed.Nonce128{Hi: CsprngU64(), Lo: CsprngU64()}
}
