// Package rng provides the sampling helpers shared by the payload and
// noise edge generators: uniform index draws, distinct-index rejection
// sampling, sign-bit draws, and uniform-nonzero Fp draws. The Source
// abstraction mirrors ntru/rng.go's RNG (a thin wrapper letting tests
// substitute a seeded math/rand stream for the production CSPRNG) so
// property tests can run many repeatable draws without touching the
// real entropy source.
package rng

import (
	"encoding/binary"
	mrand "math/rand"

	"fhecore/fp"
	"fhecore/prf"
)

// Source is anything that can produce uniform 64-bit words.
type Source interface {
	Uint64() uint64
}

// csprngSource backs Source with the scheme's real CSPRNG collaborator.
type csprngSource struct{}

func (csprngSource) Uint64() uint64 { return prf.CsprngU64() }

// Default returns the production randomness source.
func Default() Source { return csprngSource{} }

// Seeded wraps a deterministic math/rand stream, the same pattern
// ntru/rng.go uses to make sampling reproducible in tests.
type Seeded struct {
	r *mrand.Rand
}

// NewSeeded constructs a deterministic Source from a fixed seed.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{r: mrand.New(mrand.NewSource(seed))}
}

// Uint64 draws the next pseudorandom word.
func (s *Seeded) Uint64() uint64 { return s.r.Uint64() }

func orDefault(src Source) Source {
	if src == nil {
		return Default()
	}
	return src
}

// UniformIndex draws a uniform value in [0, n).
func UniformIndex(src Source, n int) int {
	src = orDefault(src)
	if n <= 0 {
		panic("rng: UniformIndex requires n > 0")
	}
	// Rejection sampling against the largest multiple of n below 2^64 to
	// avoid modulo bias.
	limit := uint64(n)
	bound := (^uint64(0) / limit) * limit
	for {
		v := src.Uint64()
		if v < bound {
			return int(v % limit)
		}
	}
}

// DistinctIndices draws k distinct values uniformly from [0, n) without
// replacement via rejection sampling, per spec.md §4.2 step 1.
func DistinctIndices(src Source, n, k int) []int {
	src = orDefault(src)
	if k > n {
		panic("rng: DistinctIndices requires k <= n")
	}
	seen := make(map[int]struct{}, k)
	out := make([]int, 0, k)
	for len(out) < k {
		idx := UniformIndex(src, n)
		if _, dup := seen[idx]; dup {
			continue
		}
		seen[idx] = struct{}{}
		out = append(out, idx)
	}
	return out
}

// Bit draws a uniform boolean.
func Bit(src Source) bool {
	src = orDefault(src)
	return src.Uint64()&1 == 1
}

// sourceReader adapts a Source to io.Reader by packing successive Uint64
// draws big-endian, so fp.RandNonzero can be driven by the same Source
// abstraction the rest of the sampler uses.
type sourceReader struct {
	src Source
}

func (r sourceReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], r.src.Uint64())
		n += copy(p[n:], buf[:])
	}
	return n, nil
}

// FpNonzero draws a uniform nonzero Fp element from src.
func FpNonzero(src Source) fp.Elem {
	src = orDefault(src)
	e, err := fp.RandNonzero(sourceReader{src: src})
	if err != nil {
		// sourceReader never errors; a failure here is an algebraic
		// impossibility in the sense of spec.md §7.
		panic("rng: FpNonzero: " + err.Error())
	}
	return e
}
