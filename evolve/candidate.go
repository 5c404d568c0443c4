// Package evolve implements the core evolutionary loop: candidate strings,
// the per-position mutation operator, positional fitness scoring, greedy
// (1+1) per-slot selection, and the tick driver that advances one
// generation at a time.
package evolve

import "math/rand"

// Candidate is a single evolving string plus its cached fitness score.
// Candidates are value objects: mutation produces new Candidates rather
// than editing in place, so prior generations stay inspectable.
type Candidate struct {
	Text    string
	Fitness int
}

// Alphabet is the legal character set mutations may draw from.
type Alphabet []rune

// ParseAlphabet builds an Alphabet from a string, dropping duplicate runes
// while preserving first-seen order.
func ParseAlphabet(s string) Alphabet {
	seen := make(map[rune]bool, len(s))
	letters := make(Alphabet, 0, len(s))
	for _, r := range s {
		if seen[r] {
			continue
		}
		seen[r] = true
		letters = append(letters, r)
	}
	return letters
}

// Random returns a uniformly random rune from the alphabet.
func (a Alphabet) Random(rng *rand.Rand) rune {
	return a[rng.Intn(len(a))]
}

// Contains reports whether r is a member of the alphabet.
func (a Alphabet) Contains(r rune) bool {
	for _, l := range a {
		if l == r {
			return true
		}
	}
	return false
}

// RandomText returns a random string of length n drawn from the alphabet.
func (a Alphabet) RandomText(rng *rand.Rand, n int) string {
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = a.Random(rng)
	}
	return string(runes)
}

func (a Alphabet) String() string {
	return string(a)
}
