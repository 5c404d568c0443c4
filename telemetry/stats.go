// Package telemetry accumulates per-generation statistics for both
// simulation modes and writes run output: CSV history, a fitness chart,
// and a config snapshot.
package telemetry

import (
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/evolvewords/evolve"
)

// GenerationStats is one target-mode history row.
type GenerationStats struct {
	Generation     int     `csv:"generation"`
	BestFitness    int     `csv:"best_fitness"`
	BestNormalized float64 `csv:"best_norm"`
	MeanFitness    float64 `csv:"mean_fitness"`
	StdDevFitness  float64 `csv:"stddev_fitness"`
	Improved       bool    `csv:"improved"`
	BestText       string  `csv:"best"`
}

// ComputeGenerationStats reduces a snapshot to a history row. improved is
// supplied by the caller, which tracks the previous best across ticks.
func ComputeGenerationStats(snap evolve.Snapshot, improved bool) GenerationStats {
	fitnesses := make([]float64, len(snap.Candidates))
	for i, c := range snap.Candidates {
		fitnesses[i] = float64(c.Fitness)
	}

	mean := stat.Mean(fitnesses, nil)
	stddev := 0.0
	if len(fitnesses) > 1 {
		stddev = stat.StdDev(fitnesses, nil)
	}

	return GenerationStats{
		Generation:     snap.Generation,
		BestFitness:    snap.Best.Fitness,
		BestNormalized: snap.BestNormalized,
		MeanFitness:    mean,
		StdDevFitness:  stddev,
		Improved:       improved,
		BestText:       snap.Best.Text,
	}
}

// DriftStats is one drift-mode history row.
type DriftStats struct {
	Generation     int     `csv:"generation"`
	PopulationSize int     `csv:"population"`
	UniqueWords    int     `csv:"unique_words"`
	LastCull       int     `csv:"culled"`
	SurvivalPct    float64 `csv:"survival_pct"`
}
