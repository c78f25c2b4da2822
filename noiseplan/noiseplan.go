// Package noiseplan implements the noise planner from spec.md §4.1: a
// pure function choosing how many Z2/Z3 noise groups a ciphertext should
// carry given the noise budget and the caller's depth hint.
package noiseplan

import (
	"math"

	"fhecore/params"
)

// epsilon guards the per-tuple entropy divisions against a degenerate
// zero denominator, per spec.md §4.1.
const epsilon = 1e-6

// Plan returns the number of Z2 (2-edge) and Z3 (3-edge) noise groups to
// emit for the given parameters and depth hint.
func Plan(prm *params.Prm, depthHint int32) (z2, z3 int) {
	depth := float64(depthHint)
	if depth < 0 {
		depth = 0
	}
	budget := prm.NoiseEntropyBits + prm.DepthSlopeBits*depth

	logB := math.Log2(float64(prm.B))
	per2 := 2 * logB
	per3 := 3 * logB

	z2 = int(math.Floor(budget * prm.Tuple2Fraction / maxf(epsilon, per2)))
	z3 = int(math.Floor(budget * (1 - prm.Tuple2Fraction) / maxf(epsilon, per3)))

	if z2 < 0 {
		z2 = 0
	}
	if z3 < 0 {
		z3 = 0
	}

	// Parity rule: a single noise group has no "last group to close the
	// delta sum," so a total of exactly one is forbidden.
	if z2+z3 == 1 {
		switch {
		case z2 != 0:
			z2++
		case z3 != 0:
			z3++
		default:
			z2++
		}
	}
	return z2, z3
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
