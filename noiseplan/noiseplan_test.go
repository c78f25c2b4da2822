package noiseplan

import (
	"testing"

	"fhecore/params"
)

func TestPlanS1ZeroEntropy(t *testing.T) {
	prm := &params.Prm{B: 64, NoiseEntropyBits: 0, DepthSlopeBits: 0, Tuple2Fraction: 0.5}
	z2, z3 := Plan(prm, 0)
	if z2 != 0 || z3 != 0 {
		t.Fatalf("expected (0,0), got (%d,%d)", z2, z3)
	}
}

func TestPlanS2OnlyZ2(t *testing.T) {
	prm := &params.Prm{B: 256, NoiseEntropyBits: 120, DepthSlopeBits: 0, Tuple2Fraction: 1.0}
	z2, z3 := Plan(prm, 0)
	if z3 != 0 {
		t.Fatalf("expected Z3=0, got %d", z3)
	}
	if z2 <= 0 {
		t.Fatalf("expected Z2>0, got %d", z2)
	}
}

func TestPlanNeverTotalOne(t *testing.T) {
	// Sweep a range of parameter combinations and check the total is
	// never exactly 1, per spec.md §8 property 7.
	for b := 4; b <= 512; b *= 2 {
		for entropy := 0.0; entropy <= 40; entropy += 1.3 {
			for frac := 0.0; frac <= 1.0; frac += 0.05 {
				prm := &params.Prm{B: b, NoiseEntropyBits: entropy, DepthSlopeBits: 0.7, Tuple2Fraction: frac}
				for depth := int32(0); depth < 5; depth++ {
					z2, z3 := Plan(prm, depth)
					if z2+z3 == 1 {
						t.Fatalf("planner returned total=1 for B=%d entropy=%f frac=%f depth=%d", b, entropy, frac, depth)
					}
				}
			}
		}
	}
}

func TestPlanNegativeDepthClamped(t *testing.T) {
	prm := &params.Prm{B: 64, NoiseEntropyBits: 50, DepthSlopeBits: 10, Tuple2Fraction: 0.5}
	z2AtNeg, z3AtNeg := Plan(prm, -5)
	z2AtZero, z3AtZero := Plan(prm, 0)
	if z2AtNeg != z2AtZero || z3AtNeg != z3AtZero {
		t.Fatalf("negative depth_hint should clamp to 0: got (%d,%d) vs (%d,%d)", z2AtNeg, z3AtNeg, z2AtZero, z3AtZero)
	}
}
