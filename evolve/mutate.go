package evolve

import "math/rand"

// Mutator applies per-position point mutation: each character is replaced,
// independently with probability Rate, by a uniformly random character from
// the alphabet. The output always has the same rune length as the input.
// The RNG is injected so runs are reproducible from a seed.
type Mutator struct {
	alphabet Alphabet
	rate     float64
	rng      *rand.Rand
}

// NewMutator creates a mutator drawing from alphabet at the given
// per-character rate. Rate is expected in [0,1]; 0 is the identity.
func NewMutator(alphabet Alphabet, rate float64, rng *rand.Rand) *Mutator {
	return &Mutator{alphabet: alphabet, rate: rate, rng: rng}
}

// Rate returns the configured per-character mutation probability.
func (m *Mutator) Rate() float64 {
	return m.rate
}

// Mutate produces a mutated copy of c. The parent candidate is untouched.
func (m *Mutator) Mutate(c Candidate) Candidate {
	runes := []rune(c.Text)
	for i := range runes {
		if m.rng.Float64() < m.rate {
			runes[i] = m.alphabet.Random(m.rng)
		}
	}
	return Candidate{Text: string(runes)}
}
