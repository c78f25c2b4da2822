package permute

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// Params holds the sponge permutation's public parameters: the modulus,
// S-box exponent, round schedule, MDS matrices and round constants.
// Adapted from prf/params.go, generalized from a fixed key/nonce/tag split
// to a single state width T used uniformly for absorption and squeezing.
type Params struct {
	Q    uint64     // field modulus
	D    uint64     // S-box exponent
	Rate int        // absorption/squeeze rate (elements per block)
	Cap  int        // capacity (elements never exposed in the squeeze)
	RF   int        // external rounds (must be even)
	RP   int        // internal rounds
	ME   [][]uint64 // external round MDS matrix (t x t)
	MI   [][]uint64 // internal round MDS matrix (t x t)
	CExt [][]uint64 // external round constants [RF][t]
	CInt []uint64   // internal round constants [RP]
}

// T returns the sponge's full state width (rate + capacity).
func (p *Params) T() int {
	return p.Rate + p.Cap
}

// Validate performs basic consistency checks, mirroring
// prf.Params.Validate's structure.
func (p *Params) Validate() error {
	if p == nil {
		return fmt.Errorf("permute: nil params")
	}
	if p.Q == 0 {
		return fmt.Errorf("permute: q must be > 0")
	}
	if p.D < 3 {
		return fmt.Errorf("permute: d must be >= 3")
	}
	if p.Rate <= 0 || p.Cap <= 0 {
		return fmt.Errorf("permute: rate and cap must be > 0")
	}
	if p.RF <= 0 || p.RF%2 != 0 {
		return fmt.Errorf("permute: RF must be even and > 0")
	}
	if p.RP <= 0 {
		return fmt.Errorf("permute: RP must be > 0")
	}
	t := p.T()
	if err := checkMatrix(p.ME, t); err != nil {
		return fmt.Errorf("permute: ME: %w", err)
	}
	if err := checkMatrix(p.MI, t); err != nil {
		return fmt.Errorf("permute: MI: %w", err)
	}
	if len(p.CExt) != p.RF {
		return fmt.Errorf("permute: CExt rows=%d want RF=%d", len(p.CExt), p.RF)
	}
	for i, row := range p.CExt {
		if len(row) != t {
			return fmt.Errorf("permute: CExt[%d] len=%d want %d", i, len(row), t)
		}
	}
	if len(p.CInt) != p.RP {
		return fmt.Errorf("permute: CInt len=%d want RP=%d", len(p.CInt), p.RP)
	}
	return nil
}

func checkMatrix(m [][]uint64, t int) error {
	if len(m) != t {
		return fmt.Errorf("rows=%d want %d", len(m), t)
	}
	for i := range m {
		if len(m[i]) != t {
			return fmt.Errorf("row %d len=%d want %d", i, len(m[i]), t)
		}
	}
	return nil
}

// LoadParams decodes parameters from JSON and validates them.
func LoadParams(r io.Reader) (*Params, error) {
	dec := json.NewDecoder(r)
	var p Params
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("permute: decode params: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadParamsFromFile opens path, decodes JSON parameters, and validates them.
func LoadParamsFromFile(path string) (*Params, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("permute: open params file: %w", err)
	}
	defer f.Close()
	return LoadParams(f)
}

// LoadDefaultParams loads permute_params.json from this package's
// directory, exactly as prf.LoadDefaultParams locates prf_params.json.
func LoadDefaultParams() (*Params, error) {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return nil, fmt.Errorf("permute: runtime.Caller failed")
	}
	dir := filepath.Dir(file)
	path := filepath.Join(dir, "permute_params.json")
	return LoadParamsFromFile(path)
}
