package cipher

import (
	"fhecore/edge"
	"fhecore/layer"
	"fhecore/params"
)

// Combine disjoint-unions a and b's layer graphs (b's layers and edges are
// relocated by offset=|a.L|), then runs guard_budget and compact_layers,
// per spec.md §4.6. a and b are consumed: callers must not reuse them
// (spec.md §9).
func Combine(pk *params.PublicKey, a, b *Cipher) *Cipher {
	offset := layer.ID(len(a.L))

	out := &Cipher{
		L: make([]layer.Layer, 0, len(a.L)+len(b.L)),
		E: make([]edge.Edge, 0, len(a.E)+len(b.E)),
	}
	out.L = append(out.L, a.L...)
	for _, l := range b.L {
		if l.IsProd() {
			l.ParentA += offset
			l.ParentB += offset
		}
		out.L = append(out.L, l)
	}

	out.E = append(out.E, a.E...)
	for _, e := range b.E {
		e.LayerID += offset
		out.E = append(out.E, e)
	}

	GuardBudget(pk, out, "combine_ciphers")
	CompactLayers(out)
	return out
}
