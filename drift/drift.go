// Package drift implements the undirected-mutation simulation: a pool of
// words grows from a single progenitor by random point, insertion, and
// deletion edits, and every generation the dictionary culls offspring that
// are not real words. Selection is pass/fail membership rather than a
// distance score, so word lengths wander freely.
package drift

import (
	"math/rand"
	"sort"
	"unicode/utf8"

	"github.com/pthm-cable/evolvewords/evolve"
	"github.com/pthm-cable/evolvewords/words"
)

// Status is the pool lifecycle state.
type Status int

const (
	// Growing means the pool is still below the target size.
	Growing Status = iota
	// Complete means the pool reached the target size.
	Complete
	// Collapsed means every member was culled.
	Collapsed
)

func (s Status) String() string {
	switch s {
	case Growing:
		return "growing"
	case Complete:
		return "complete"
	case Collapsed:
		return "collapsed"
	default:
		return "unknown"
	}
}

// Pool is a drift-mode population.
type Pool struct {
	dict       *words.List
	alphabet   evolve.Alphabet
	rng        *rand.Rand
	targetSize int

	progenitor string
	members    []string
	generation int
	lastCull   int
	survival   []float64
}

// NewPool starts a pool from a single progenitor word. The run ends when
// the pool reaches targetSize members or collapses to zero.
func NewPool(dict *words.List, alphabet evolve.Alphabet, progenitor string, targetSize int, rng *rand.Rand) *Pool {
	return &Pool{
		dict:       dict,
		alphabet:   alphabet,
		rng:        rng,
		targetSize: targetSize,
		progenitor: progenitor,
		members:    []string{progenitor},
	}
}

// Step advances one generation: every member spawns one offspring via a
// random edit, then the whole pool is culled against the dictionary and
// the survival percentage is recorded. Stepping a finished pool is a
// no-op.
func (p *Pool) Step() {
	if p.Status() != Growing {
		return
	}

	offspring := make([]string, 0, len(p.members))
	for _, w := range p.members {
		offspring = append(offspring, p.mutate(w))
	}
	p.members = append(p.members, offspring...)

	before := len(p.members)
	survivors := p.members[:0]
	for _, w := range p.members {
		if p.dict.Contains(w) {
			survivors = append(survivors, w)
		}
	}
	p.members = survivors
	p.lastCull = before - len(p.members)

	if len(p.members) > 0 {
		p.survival = append(p.survival, 100/float64(before)*float64(len(p.members)))
	} else {
		p.survival = append(p.survival, 0)
	}
	p.generation++
}

// mutate applies one of the three edit operators, chosen uniformly.
func (p *Pool) mutate(word string) string {
	switch p.rng.Intn(3) {
	case 0:
		return p.point(word)
	case 1:
		return p.deletion(word)
	default:
		return p.insertion(word)
	}
}

// point replaces one random character.
func (p *Pool) point(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[p.rng.Intn(len(runes))] = p.alphabet.Random(p.rng)
	return string(runes)
}

// deletion removes one random character.
func (p *Pool) deletion(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	i := p.rng.Intn(len(runes))
	return string(runes[:i]) + string(runes[i+1:])
}

// insertion inserts one random character before a random position.
func (p *Pool) insertion(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	i := p.rng.Intn(len(runes))
	return string(runes[:i]) + string(p.alphabet.Random(p.rng)) + string(runes[i:])
}

// Status reports whether the pool is still growing, reached the target
// size, or collapsed.
func (p *Pool) Status() Status {
	switch {
	case len(p.members) == 0:
		return Collapsed
	case len(p.members) >= p.targetSize:
		return Complete
	default:
		return Growing
	}
}

// Snapshot is the immutable per-generation view for display.
type Snapshot struct {
	Generation     int
	Status         Status
	Progenitor     string
	PopulationSize int
	UniqueWords    []string
	LastCull       int
	Survival       []float64
	LengthCounts   map[int]int
}

// Snapshot returns the current state for the presentation layer. Unique
// words come back sorted; the survival history is a copy.
func (p *Pool) Snapshot() Snapshot {
	unique := make(map[string]bool, len(p.members))
	for _, w := range p.members {
		unique[w] = true
	}
	sorted := make([]string, 0, len(unique))
	lengths := make(map[int]int, 8)
	for w := range unique {
		sorted = append(sorted, w)
		lengths[utf8.RuneCountInString(w)]++
	}
	sort.Strings(sorted)

	survival := make([]float64, len(p.survival))
	copy(survival, p.survival)

	return Snapshot{
		Generation:     p.generation,
		Status:         p.Status(),
		Progenitor:     p.progenitor,
		PopulationSize: len(p.members),
		UniqueWords:    sorted,
		LastCull:       p.lastCull,
		Survival:       survival,
		LengthCounts:   lengths,
	}
}

// Generation returns the generation counter.
func (p *Pool) Generation() int { return p.generation }
