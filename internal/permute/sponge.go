package permute

import "encoding/binary"

// Sponge wraps the permutation in an absorb/squeeze duplex, generalizing
// prf.Tag (which only ever absorbed one fixed key||nonce block and
// squeezed one fixed-width tag) into a reusable primitive that backs
// every PRF the core consumes: a variable number of u64 words can be
// absorbed, and an arbitrary number of u64 words or raw bytes can be
// squeezed back out.
type Sponge struct {
	params *Params
	state  []Elem
}

// New constructs a fresh, zeroed sponge for the given parameters.
func New(params *Params) *Sponge {
	return &Sponge{params: params, state: make([]Elem, params.T())}
}

// Absorb folds words into the sponge's rate portion of the state,
// permuting after every full rate-sized block.
func (s *Sponge) Absorb(words []uint64) {
	f := NewField(s.params.Q)
	rate := s.params.Rate
	for len(words) > 0 {
		n := rate
		if n > len(words) {
			n = len(words)
		}
		for i := 0; i < n; i++ {
			s.state[i] = f.add(s.state[i], Elem(words[i]%f.Q()))
		}
		InPlace(s.state, s.params)
		words = words[n:]
	}
}

// Squeeze draws n words from the rate portion of the state, permuting
// between blocks as needed.
func (s *Sponge) Squeeze(n int) []uint64 {
	rate := s.params.Rate
	out := make([]uint64, 0, n)
	for len(out) < n {
		for i := 0; i < rate && len(out) < n; i++ {
			out = append(out, uint64(s.state[i]))
		}
		if len(out) < n {
			InPlace(s.state, s.params)
		}
	}
	return out
}

// SqueezeOne draws a single word.
func (s *Sponge) SqueezeOne() uint64 {
	return s.Squeeze(1)[0]
}

// SqueezeBytes draws nBytes of output, packing each squeezed word
// big-endian.
func (s *Sponge) SqueezeBytes(nBytes int) []byte {
	nWords := (nBytes + 7) / 8
	words := s.Squeeze(nWords)
	out := make([]byte, nWords*8)
	for i, w := range words {
		binary.BigEndian.PutUint64(out[i*8:], w)
	}
	return out[:nBytes]
}
