package cipher

import "fhecore/params"

// SigmaDensity reports the mean ones-ratio of edge bit-vector shares:
// Σ popcount(e.s) / (|E|·m_bits), or 0 when C.E is empty, per spec.md
// §4.8. Callers use it for health monitoring (see cmd/densityreport).
func SigmaDensity(pk *params.PublicKey, c *Cipher) float64 {
	if len(c.E) == 0 {
		return 0
	}
	var ones uint
	for _, e := range c.E {
		ones += e.S.Popcount()
	}
	total := float64(len(c.E)) * float64(pk.Prm.MBits)
	return float64(ones) / total
}
