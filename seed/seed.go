// Package seed defines the per-layer nonce/tag material that keys the
// scheme's PRFs, grounded on the plain-record style of
// credential/types.go (exported fields, no accessors, value semantics).
package seed

// Nonce128 is a 128-bit nonce split into two machine words so PrfNoiseDelta
// can Weyl-mix a group counter into it one half at a time, as spec.md
// §4.3 requires.
type Nonce128 struct {
	Hi uint64
	Lo uint64
}

// RSeed is the {nonce, ztag} pair used to key per-layer PRFs.
type RSeed struct {
	Nonce Nonce128
	ZTag  uint64
}
