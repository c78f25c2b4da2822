// Package fp implements arithmetic over the prime field used by the
// encryption core: Fp = Z/pZ with p = 2^127 - 1, a Mersenne prime.
//
// The representation and operations mirror internal/kfield's approach to
// field arithmetic (Fermat-based inverse via square-and-multiply, explicit
// reduce-after-every-op, io.Reader-driven uniform sampling) generalized
// from kfield's uint64-limbed small fields to a single big.Int-backed
// element wide enough for a 127-bit modulus.
package fp

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"
	"math/big"
)

// P is the field modulus, 2^127 - 1.
var P = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))

// byteLen is the fixed-width encoding length for an Elem: 16 bytes covers
// any value below 2^127.
const byteLen = 16

// Elem is an element of Fp, always kept normalized into [0, P).
type Elem struct {
	v *big.Int
}

// Zero returns the additive identity.
func Zero() Elem { return Elem{v: new(big.Int)} }

// One returns the multiplicative identity.
func One() Elem { return Elem{v: big.NewInt(1)} }

// FromUint64 lifts a machine word into Fp.
func FromUint64(x uint64) Elem {
	return Elem{v: new(big.Int).SetUint64(x)}
}

// FromBigInt reduces an arbitrary big.Int into Fp.
func FromBigInt(x *big.Int) Elem {
	return Elem{v: new(big.Int).Mod(x, P)}
}

func (a Elem) big() *big.Int {
	if a.v == nil {
		return new(big.Int)
	}
	return a.v
}

// Add returns a + b in Fp.
func (a Elem) Add(b Elem) Elem {
	sum := new(big.Int).Add(a.big(), b.big())
	return Elem{v: sum.Mod(sum, P)}
}

// Sub returns a - b in Fp.
func (a Elem) Sub(b Elem) Elem {
	diff := new(big.Int).Sub(a.big(), b.big())
	return Elem{v: diff.Mod(diff, P)}
}

// Neg returns -a in Fp.
func (a Elem) Neg() Elem {
	neg := new(big.Int).Neg(a.big())
	return Elem{v: neg.Mod(neg, P)}
}

// Mul returns a * b in Fp.
func (a Elem) Mul(b Elem) Elem {
	prod := new(big.Int).Mul(a.big(), b.big())
	return Elem{v: prod.Mod(prod, P)}
}

// Inv returns the multiplicative inverse of a via Fermat's little theorem
// (a^(p-2) mod p). It panics if a is the zero element, mirroring
// internal/kfield.Field.Inv's behavior on a singular input.
func (a Elem) Inv() Elem {
	if !a.CtIsNonzero() {
		panic("fp: inverse of zero element")
	}
	exp := new(big.Int).Sub(P, big.NewInt(2))
	return Elem{v: new(big.Int).Exp(a.big(), exp, P)}
}

// Equal reports whether a and b represent the same field element.
func (a Elem) Equal(b Elem) bool {
	return a.big().Cmp(b.big()) == 0
}

// CtIsNonzero reports whether a is nonzero using a constant-time byte
// comparison against the zero encoding, as required of the weight-zero
// tests inside compact_edges.
func (a Elem) CtIsNonzero() bool {
	var zero [byteLen]byte
	return subtle.ConstantTimeCompare(a.Bytes(), zero[:]) == 0
}

// Bytes returns the big-endian, fixed-width (16-byte) encoding of a.
func (a Elem) Bytes() []byte {
	out := make([]byte, byteLen)
	a.big().FillBytes(out)
	return out
}

// SetBytes decodes a fixed-width big-endian encoding produced by Bytes.
func SetBytes(b []byte) Elem {
	return Elem{v: new(big.Int).Mod(new(big.Int).SetBytes(b), P)}
}

// RandNonzero draws a uniform element of Fp \ {0} from r, rejecting zero
// and any draw outside [0, P) the same way internal/kfield.FindIrreducible
// rejection-samples candidate polynomials from an io.Reader.
func RandNonzero(r io.Reader) (Elem, error) {
	if r == nil {
		r = rand.Reader
	}
	buf := make([]byte, byteLen)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return Elem{}, fmt.Errorf("fp: read randomness: %w", err)
		}
		cand := new(big.Int).SetBytes(buf)
		if cand.Cmp(P) >= 0 {
			continue
		}
		if cand.Sign() == 0 {
			continue
		}
		return Elem{v: cand}, nil
	}
}

// String implements fmt.Stringer for debug tracing.
func (a Elem) String() string {
	return a.big().String()
}
