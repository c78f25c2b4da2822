// Package cipher implements the Cipher aggregate (spec.md §3) and the
// structural operations that grow and compact it: combine_ciphers,
// compact_edges, compact_layers, and guard_budget (spec.md §4.4-§4.7).
package cipher

import (
	"fhecore/edge"
	"fhecore/layer"
)

// Cipher is the ciphertext's layer DAG plus its edge multiset. L and E
// are exclusively owned by the Cipher; combine_ciphers consumes its
// inputs rather than sharing them, per spec.md §9.
type Cipher struct {
	L []layer.Layer
	E []edge.Edge
}

// New returns an empty ciphertext.
func New() *Cipher {
	return &Cipher{}
}

// AppendLayer appends l and returns its new layer.ID.
func (c *Cipher) AppendLayer(l layer.Layer) layer.ID {
	c.L = append(c.L, l)
	return layer.ID(len(c.L) - 1)
}

// AppendEdge appends e to the edge multiset.
func (c *Cipher) AppendEdge(e edge.Edge) {
	c.E = append(c.E, e)
}

// Clone deep-copies L and E so the result can be safely combined or
// mutated without aliasing the receiver — combine_ciphers' inputs must
// not be shared per spec.md §9.
func (c *Cipher) Clone() *Cipher {
	out := &Cipher{
		L: make([]layer.Layer, len(c.L)),
		E: make([]edge.Edge, len(c.E)),
	}
	copy(out.L, c.L)
	for i, e := range c.E {
		out.E[i] = e
		out.E[i].S = e.S.Clone()
	}
	return out
}
