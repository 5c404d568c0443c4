package telemetry

import (
	"log/slog"

	"github.com/pthm-cable/evolvewords/drift"
	"github.com/pthm-cable/evolvewords/evolve"
)

// Collector observes a target-mode run and keeps the full per-generation
// history in memory for the sparkline, the chart, and CSV export. It
// implements evolve.Observer. When an OutputManager is attached, rows are
// also written through as they arrive.
type Collector struct {
	history  []GenerationStats
	lastBest int
	seen     bool
	output   *OutputManager
}

// NewCollector creates a collector. output may be nil.
func NewCollector(output *OutputManager) *Collector {
	return &Collector{output: output}
}

// OnTick records one generation.
func (c *Collector) OnTick(snap evolve.Snapshot) {
	improved := c.seen && snap.Best.Fitness > c.lastBest
	c.lastBest = snap.Best.Fitness
	c.seen = true

	row := ComputeGenerationStats(snap, improved)
	c.history = append(c.history, row)
	if err := c.output.WriteGeneration(row); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
}

// History returns the recorded rows. The slice is owned by the collector;
// callers must not modify it.
func (c *Collector) History() []GenerationStats {
	return c.history
}

// BestSeries returns best fitness per generation, for plotting.
func (c *Collector) BestSeries() []float64 {
	out := make([]float64, len(c.history))
	for i, row := range c.history {
		out[i] = float64(row.BestFitness)
	}
	return out
}

// MeanSeries returns mean population fitness per generation.
func (c *Collector) MeanSeries() []float64 {
	out := make([]float64, len(c.history))
	for i, row := range c.history {
		out[i] = row.MeanFitness
	}
	return out
}

// DriftCollector records drift-mode generations. Same shape as Collector
// but fed from pool snapshots, since drift has no evolve.Snapshot.
type DriftCollector struct {
	history []DriftStats
	output  *OutputManager
}

// NewDriftCollector creates a drift collector. output may be nil.
func NewDriftCollector(output *OutputManager) *DriftCollector {
	return &DriftCollector{output: output}
}

// Record captures one drift generation.
func (c *DriftCollector) Record(snap drift.Snapshot) {
	survival := 0.0
	if n := len(snap.Survival); n > 0 {
		survival = snap.Survival[n-1]
	}
	row := DriftStats{
		Generation:     snap.Generation,
		PopulationSize: snap.PopulationSize,
		UniqueWords:    len(snap.UniqueWords),
		LastCull:       snap.LastCull,
		SurvivalPct:    survival,
	}
	c.history = append(c.history, row)
	if err := c.output.WriteDrift(row); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
}

// History returns the recorded rows.
func (c *DriftCollector) History() []DriftStats {
	return c.history
}

// SurvivalSeries returns the survival percentage per generation.
func (c *DriftCollector) SurvivalSeries() []float64 {
	out := make([]float64, len(c.history))
	for i, row := range c.history {
		out[i] = row.SurvivalPct
	}
	return out
}
