package main

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/evolvewords/evolve"
)

// giveUpPenalty multiplies the generation cap for runs that never
// converge, so failed settings always rank behind slow ones.
const giveUpPenalty = 2.0

// FitnessEvaluator runs headless target-mode simulations and scores a
// parameter vector by the mean generations needed to converge. Lower is
// better. Seeds are evaluated sequentially; the simulation core is
// single-threaded by contract.
type FitnessEvaluator struct {
	params         *ParamVector
	target         string
	alphabet       evolve.Alphabet
	maxGenerations int
	seeds          []int64

	lastConverged float64 // fraction of seeds that converged in the most recent Evaluate
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, target string, alphabet evolve.Alphabet,
	maxGenerations int, seeds []int64) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:         params,
		target:         target,
		alphabet:       alphabet,
		maxGenerations: maxGenerations,
		seeds:          seeds,
	}
}

// LastConverged returns the converged fraction from the most recent
// evaluation.
func (fe *FitnessEvaluator) LastConverged() float64 {
	return fe.lastConverged
}

// Evaluate computes fitness for a parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(raw []float64) float64 {
	clamped := fe.params.Clamp(raw)
	rate := clamped[0]
	popSize := int(math.Round(clamped[1]))

	total := 0.0
	converged := 0
	for _, seed := range fe.seeds {
		generations, ok := fe.runSimulation(rate, popSize, seed)
		if ok {
			converged++
		}
		total += generations
	}

	fe.lastConverged = float64(converged) / float64(len(fe.seeds))
	return total / float64(len(fe.seeds))
}

// runSimulation runs one seeded run to termination and returns the
// generation count, penalized if the run gave up.
func (fe *FitnessEvaluator) runSimulation(rate float64, popSize int, seed int64) (float64, bool) {
	rng := rand.New(rand.NewSource(seed))
	driver, err := evolve.NewDriver(evolve.Params{
		Target:         fe.target,
		Alphabet:       fe.alphabet,
		PopulationSize: popSize,
		MutationRate:   rate,
		MaxGenerations: fe.maxGenerations,
	}, rng)
	if err != nil {
		// Clamped parameters can't trip validation; treat as worst case.
		return float64(fe.maxGenerations) * giveUpPenalty, false
	}

	for !driver.Done() {
		driver.Tick()
	}

	snap := driver.Snapshot()
	if snap.Status != evolve.StatusConverged {
		return float64(fe.maxGenerations) * giveUpPenalty, false
	}
	return float64(snap.Generation), true
}
