package cipher

import "fhecore/layer"

// CompactLayers drops layers unreachable from any edge (directly or
// transitively through PROD parent references) and renumbers the
// survivors, per spec.md §4.5. If nothing is dropped, L and E are left
// unchanged.
func CompactLayers(c *Cipher) {
	n := len(c.L)
	used := make([]bool, n)
	for _, e := range c.E {
		used[e.LayerID] = true
	}

	// Fixed-point closure: a used PROD layer marks both parents used.
	for changed := true; changed; {
		changed = false
		for id, l := range c.L {
			if !used[id] || !l.IsProd() {
				continue
			}
			if !used[l.ParentA] {
				used[l.ParentA] = true
				changed = true
			}
			if !used[l.ParentB] {
				used[l.ParentB] = true
				changed = true
			}
		}
	}

	dropped := false
	for _, u := range used {
		if !u {
			dropped = true
			break
		}
	}
	if !dropped {
		return
	}

	remap := make([]layer.ID, n)
	newLayers := make([]layer.Layer, 0, n)
	for id := 0; id < n; id++ {
		if !used[id] {
			continue
		}
		remap[id] = layer.ID(len(newLayers))
		newLayers = append(newLayers, c.L[id])
	}
	for i := range newLayers {
		if newLayers[i].IsProd() {
			newLayers[i].ParentA = remap[newLayers[i].ParentA]
			newLayers[i].ParentB = remap[newLayers[i].ParentB]
		}
	}
	for i := range c.E {
		c.E[i].LayerID = remap[c.E[i].LayerID]
	}
	c.L = newLayers
}
