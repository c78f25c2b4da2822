// Package edge implements the signed, per-column contribution record that
// carries both the arithmetic payload/noise weight and the bit-vector
// share, following the {layer_id, idx, ch, w, s} record from spec.md §3.
package edge

import (
	"fhecore/bitvec"
	"fhecore/fp"
	"fhecore/layer"
)

// Sign is the edge's plus/minus channel.
type Sign uint8

const (
	P Sign = iota
	M
)

// Opposite returns the other sign.
func (s Sign) Opposite() Sign {
	if s == P {
		return M
	}
	return P
}

// Int returns +1 for P and -1 for M, used to build signed weights.
func (s Sign) Int() int64 {
	if s == P {
		return 1
	}
	return -1
}

// SignOf maps a boolean coin flip to a Sign.
func SignOf(bit bool) Sign {
	if bit {
		return P
	}
	return M
}

// Bucket is the (layer_id, idx, ch) identity an edge coalesces under
// during compaction.
type Bucket struct {
	LayerID layer.ID
	Idx     uint16
	Ch      Sign
}

// Edge is a signed contribution at a specific (layer, column).
type Edge struct {
	LayerID layer.ID
	Idx     uint16
	Ch      Sign
	W       fp.Elem
	S       bitvec.Vec
}

// Bucket returns e's bucket identity.
func (e Edge) Bucket() Bucket {
	return Bucket{LayerID: e.LayerID, Idx: e.Idx, Ch: e.Ch}
}

// SignedWeight returns w scaled by the edge's sign (+w or -w).
func (e Edge) SignedWeight() fp.Elem {
	if e.Ch == P {
		return e.W
	}
	return e.W.Neg()
}
