// Package bitvec implements the fixed-length bit-vector share carried by
// every edge, backed by github.com/bits-and-blooms/bitset rather than a
// hand-rolled bit array — the corpus already reaches for that library
// wherever a dense bit-set is needed (it rides in via the gnark stack
// pulled by the other example repos), so it is the idiomatic choice here
// too.
package bitvec

import "github.com/bits-and-blooms/bitset"

// Vec is an m-bit vector. Each Edge owns its Vec exclusively; XorWith
// mutates the receiver in place.
type Vec struct {
	m  uint
	bs *bitset.BitSet
}

// Make constructs a zero vector of m bits.
func Make(m uint) Vec {
	return Vec{m: m, bs: bitset.New(m)}
}

// Len reports the vector's bit width.
func (v Vec) Len() uint { return v.m }

// Set sets bit i (0-indexed) to 1.
func (v Vec) Set(i uint) {
	v.bs.Set(i)
}

// Test reports the value of bit i.
func (v Vec) Test(i uint) bool {
	return v.bs.Test(i)
}

// XorWith XORs other into the receiver in place.
func (v Vec) XorWith(other Vec) {
	v.bs.InPlaceSymmetricDifference(other.bs)
}

// Popcount returns the number of set bits.
func (v Vec) Popcount() uint {
	return v.bs.Count()
}

// Clone returns an independent copy, preserving exclusive ownership when
// an edge's share must be duplicated (e.g. across combine_ciphers).
func (v Vec) Clone() Vec {
	return Vec{m: v.m, bs: v.bs.Clone()}
}

// FromBytes builds an m-bit vector from a byte slice (MSB-first within
// each byte), used by prf.SigmaFromH to materialize a squeezed PRF output
// as a bit-vector share.
func FromBytes(m uint, raw []byte) Vec {
	v := Make(m)
	for i := uint(0); i < m; i++ {
		byteIdx := i / 8
		if int(byteIdx) >= len(raw) {
			break
		}
		bitIdx := 7 - (i % 8)
		if raw[byteIdx]&(1<<bitIdx) != 0 {
			v.Set(i)
		}
	}
	return v
}
