package cipher

import (
	"fhecore/params"
	"fhecore/trace"
)

// GuardBudget runs CompactEdges if C.E exceeds the parameter block's edge
// budget; otherwise it is a no-op. site_tag is an ASCII label used only
// for debug tracing, per spec.md §4.7.
func GuardBudget(pk *params.PublicKey, c *Cipher, siteTag string) {
	if len(c.E) <= pk.Prm.EdgeBudget {
		return
	}
	trace.Record(siteTag, len(c.E), pk.Prm.EdgeBudget)
	CompactEdges(pk, c)
}
