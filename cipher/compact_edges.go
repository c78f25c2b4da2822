package cipher

import (
	"sort"

	"fhecore/bitvec"
	"fhecore/edge"
	"fhecore/fp"
	"fhecore/params"
)

// bucketAccum is the per-(layer,idx,sign) accumulator compact_edges folds
// every matching input edge into before deciding whether it survives.
type bucketAccum struct {
	bucket edge.Bucket
	weight fp.Elem
	share  bitvec.Vec
}

// CompactEdges coalesces all edges sharing (layer_id, idx, sign) by
// field-adding their weights and XOR-merging their bit-vector shares,
// dropping any bucket whose combined weight and share are both zero, per
// spec.md §4.4. Emission is ordered (layer_id, idx, sign∈{P,M}) so two
// semantically equal edge multisets always compact to the same sequence.
func CompactEdges(pk *params.PublicKey, c *Cipher) {
	order := make([]edge.Bucket, 0, len(c.E))
	accum := make(map[edge.Bucket]*bucketAccum, len(c.E))

	for _, e := range c.E {
		b := e.Bucket()
		a, ok := accum[b]
		if !ok {
			a = &bucketAccum{
				bucket: b,
				weight: fp.Zero(),
				share:  bitvec.Make(uint(pk.Prm.MBits)),
			}
			accum[b] = a
			order = append(order, b)
		}
		a.weight = a.weight.Add(e.SignedWeight())
		a.share.XorWith(e.S)
	}

	sort.Slice(order, func(i, j int) bool {
		return bucketLess(order[i], order[j])
	})

	out := make([]edge.Edge, 0, len(order))
	for _, b := range order {
		a := accum[b]
		// Weight-zero test must be constant-time (spec.md §5); popcount
		// leaks only the publicly-observable bit-vector length.
		if !a.weight.CtIsNonzero() && a.share.Popcount() == 0 {
			continue
		}
		w := a.weight
		if b.Ch == edge.M {
			w = w.Neg()
		}
		out = append(out, edge.Edge{
			LayerID: b.LayerID,
			Idx:     b.Idx,
			Ch:      b.Ch,
			W:       w,
			S:       a.share,
		})
	}
	c.E = out
}

// bucketLess orders buckets (layer_id, idx, sign) with P before M, the
// canonical order spec.md §4.4 requires.
func bucketLess(a, b edge.Bucket) bool {
	if a.LayerID != b.LayerID {
		return a.LayerID < b.LayerID
	}
	if a.Idx != b.Idx {
		return a.Idx < b.Idx
	}
	return a.Ch == edge.P && b.Ch == edge.M
}
