// Package params holds the public parameters and key shapes the core
// consumes as collaborator interfaces (spec.md §3 "Public parameters Prm"
// and §6's public/secret key shapes), grounded on credential/params.go's
// JSON-backed Params type and its fallback-path file reader.
package params

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	"fhecore/fp"
)

// Prm holds the fixed public knobs consumed by the encryption core.
type Prm struct {
	B                int       // column count
	MBits            int       // bit-vector width
	EdgeBudget       int       // edge budget triggering compaction
	NoiseEntropyBits float64   // base noise entropy budget
	DepthSlopeBits   float64   // additional entropy per unit of depth_hint
	Tuple2Fraction   float64   // fraction of noise budget spent on Z2 groups
	CanonTag         uint64    // domain-separation tag fed to prg_layer_ztag
	PowG             []fp.Elem // public generator table, PowG[i] = g^i
}

// PowGAt returns powg_B[i], the public generator raised to i.
func (p *Prm) PowGAt(i int) fp.Elem {
	return p.PowG[i]
}

// BuildPowG materializes the generator table g^0 .. g^(B-1).
func BuildPowG(g fp.Elem, b int) []fp.Elem {
	table := make([]fp.Elem, b)
	acc := fp.One()
	for i := 0; i < b; i++ {
		table[i] = acc
		acc = acc.Mul(g)
	}
	return table
}

// PublicKey bundles the parameter block with any public identifier the
// PRF collaborators fold in for domain separation.
type PublicKey struct {
	Prm *Prm
	ID  []byte
}

// SecretKey carries the scheme's PRF key material.
type SecretKey struct {
	Key []byte
}

// prmFile mirrors the on-disk JSON schema, analogous to credential's
// paramsFile: small JSON in, larger derived structure out (here the
// generator table is expanded from a single decimal-string generator).
type prmFile struct {
	B                int     `json:"B"`
	MBits            int     `json:"MBits"`
	EdgeBudget       int     `json:"EdgeBudget"`
	NoiseEntropyBits float64 `json:"NoiseEntropyBits"`
	DepthSlopeBits   float64 `json:"DepthSlopeBits"`
	Tuple2Fraction   float64 `json:"Tuple2Fraction"`
	CanonTag         uint64  `json:"CanonTag"`
	Generator        string  `json:"Generator"`
}

// LoadPrmFromFile reads a JSON parameter file and expands it into a Prm,
// using the same candidate-path fallback (path, ../path, ../../path) that
// credential.readFileWithFallback uses to locate files regardless of the
// caller's working directory.
func LoadPrmFromFile(path string) (*Prm, error) {
	raw, err := readFileWithFallback(path)
	if err != nil {
		return nil, err
	}
	var pf prmFile
	if err := json.Unmarshal(raw, &pf); err != nil {
		return nil, fmt.Errorf("params: parse %s: %w", path, err)
	}
	if pf.B <= 0 {
		return nil, fmt.Errorf("params: B must be > 0")
	}
	if pf.MBits <= 0 {
		return nil, fmt.Errorf("params: MBits must be > 0")
	}
	if pf.EdgeBudget <= 0 {
		return nil, fmt.Errorf("params: EdgeBudget must be > 0")
	}
	if pf.Generator == "" {
		return nil, fmt.Errorf("params: Generator required")
	}
	gBig, ok := new(big.Int).SetString(pf.Generator, 10)
	if !ok {
		return nil, fmt.Errorf("params: Generator %q is not a valid decimal integer", pf.Generator)
	}
	g := fp.FromBigInt(gBig)
	return &Prm{
		B:                pf.B,
		MBits:            pf.MBits,
		EdgeBudget:       pf.EdgeBudget,
		NoiseEntropyBits: pf.NoiseEntropyBits,
		DepthSlopeBits:   pf.DepthSlopeBits,
		Tuple2Fraction:   pf.Tuple2Fraction,
		CanonTag:         pf.CanonTag,
		PowG:             BuildPowG(g, pf.B),
	}, nil
}

func readFileWithFallback(path string) ([]byte, error) {
	candidates := []string{path}
	if !filepath.IsAbs(path) {
		candidates = append(candidates, filepath.Join("..", path), filepath.Join("..", "..", path))
	}
	var lastErr error
	for _, p := range candidates {
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("params: read %s: %w", path, lastErr)
}
