// Package layer implements the ciphertext DAG node: a tagged union of a
// leaf BASE layer and a multiplicative PROD layer, following spec.md's
// guidance (§9) to use a sum type rather than class inheritance, in the
// teacher's plain-record idiom (credential/types.go).
package layer

import "fhecore/seed"

// Kind discriminates the two Layer variants.
type Kind uint8

const (
	Base Kind = iota
	Prod
)

// ID indexes a Layer within a Cipher's layer sequence.
type ID = uint32

// Layer is either a BASE leaf (Kind == Base, only Seed meaningful) or a
// PROD node (Kind == Prod, ParentA/ParentB reference earlier layers).
// The core only ever constructs Base layers itself; Prod layers arrive
// pre-built from homomorphic multiplication and must be preserved as-is
// by combine_ciphers/compact_layers.
type Layer struct {
	Kind    Kind
	Seed    seed.RSeed
	ParentA ID
	ParentB ID
}

// NewBase constructs a leaf layer with the given seed.
func NewBase(s seed.RSeed) Layer {
	return Layer{Kind: Base, Seed: s}
}

// NewProd constructs a multiplicative layer referencing two parents.
func NewProd(pa, pb ID, s seed.RSeed) Layer {
	return Layer{Kind: Prod, Seed: s, ParentA: pa, ParentB: pb}
}

// IsBase reports whether l is a leaf layer.
func (l Layer) IsBase() bool { return l.Kind == Base }

// IsProd reports whether l is a multiplicative layer.
func (l Layer) IsProd() bool { return l.Kind == Prod }
