package evolve

import "math/rand"

// State is the population lifecycle state.
type State int

const (
	// Running means the best candidate has not yet matched the target.
	Running State = iota
	// Converged is terminal: the best candidate equals the target exactly.
	Converged
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Converged:
		return "converged"
	default:
		return "unknown"
	}
}

// Population holds one generation of candidates and drives the
// mutate/score/replace cycle. Topology: a true N-member population where
// every slot runs its own independent (1+1) greedy lineage; slots never
// exchange material.
type Population struct {
	slots   []Candidate
	mutator *Mutator
	eval    Evaluator

	generation     int
	best           Candidate
	bestGeneration int
	state          State
}

// NewPopulation seeds size slots and scores them. size must be at least 1;
// NewDriver validates this for callers going through Params. If seed is
// non-empty it is broadcast to every slot, otherwise each slot starts as a
// random string of the target's length. The initial best is the first-seen
// top scorer of generation 0.
func NewPopulation(target string, alphabet Alphabet, size int, rate float64, seed string, rng *rand.Rand) *Population {
	eval := NewEvaluator(target)
	slots := make([]Candidate, size)
	for i := range slots {
		text := seed
		if text == "" {
			text = alphabet.RandomText(rng, eval.Max())
		}
		slots[i] = Candidate{Text: text, Fitness: eval.Score(text)}
	}

	p := &Population{
		slots:   slots,
		mutator: NewMutator(alphabet, rate, rng),
		eval:    eval,
	}
	p.best = p.generationBest()
	p.checkConvergence()
	return p
}

// Tick advances the population by exactly one generation: every slot
// produces one mutated offspring, and the offspring replaces the parent
// unless it scores strictly worse (the ratchet rule). Calling Tick on a
// converged population is a no-op.
func (p *Population) Tick() {
	if p.state == Converged {
		return
	}

	for i, parent := range p.slots {
		offspring := p.mutator.Mutate(parent)
		offspring.Fitness = p.eval.Score(offspring.Text)
		if offspring.Fitness >= parent.Fitness {
			p.slots[i] = offspring
		}
	}
	p.generation++

	// Best-ever only moves on strict improvement, so ties keep the
	// first-seen candidate and best fitness is monotone.
	if genBest := p.generationBest(); genBest.Fitness > p.best.Fitness {
		p.best = genBest
		p.bestGeneration = p.generation
	}
	p.checkConvergence()
}

// generationBest returns the first-seen top scorer of the current slots.
func (p *Population) generationBest() Candidate {
	best := p.slots[0]
	for _, c := range p.slots[1:] {
		if c.Fitness > best.Fitness {
			best = c
		}
	}
	return best
}

func (p *Population) checkConvergence() {
	if p.best.Fitness == p.eval.Max() {
		p.state = Converged
	}
}

// Generation returns the monotonic generation counter, starting at 0.
func (p *Population) Generation() int { return p.generation }

// Best returns the best candidate seen so far across all generations.
func (p *Population) Best() Candidate { return p.best }

// BestGeneration returns the generation index at which the best candidate
// last improved.
func (p *Population) BestGeneration() int { return p.bestGeneration }

// State returns Running or Converged.
func (p *Population) State() State { return p.state }

// Evaluator exposes the population's fitness evaluator.
func (p *Population) Evaluator() Evaluator { return p.eval }

// Candidates returns a copy of the current generation's slots.
func (p *Population) Candidates() []Candidate {
	out := make([]Candidate, len(p.slots))
	copy(out, p.slots)
	return out
}
