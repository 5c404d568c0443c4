package main

import (
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/pthm-cable/evolvewords/config"
	"github.com/pthm-cable/evolvewords/drift"
	"github.com/pthm-cable/evolvewords/evolve"
	"github.com/pthm-cable/evolvewords/telemetry"
	"github.com/pthm-cable/evolvewords/ui"
	"github.com/pthm-cable/evolvewords/words"
)

// fallbackCap bounds headless runs when the config disables the
// generation cap, so unreachable targets still terminate.
const fallbackCap = 100000

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without the terminal UI")
	mode := flag.String("mode", "", "Simulation mode: target or drift (overrides config)")
	target := flag.String("target", "", "Target word (overrides config; empty = pick from word list)")
	wordsPath := flag.String("words", "", "Word list file (overrides config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs, charts, and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxGenerations := flag.Int("max-generations", -1, "Generation cap (-1 = use config)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// CLI overrides
	if *mode != "" {
		cfg.Simulation.Mode = *mode
	}
	if *target != "" {
		cfg.Target.Word = *target
	}
	if *wordsPath != "" {
		cfg.Words.Path = *wordsPath
	}
	if *outputDir != "" {
		cfg.Telemetry.OutputDir = *outputDir
	}
	if *maxGenerations >= 0 {
		cfg.Simulation.MaxGenerations = *maxGenerations
	}
	if *seed != 0 {
		cfg.Simulation.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Set up seed
	rngSeed := cfg.Simulation.Seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	// Set up slog (JSON to stderr so the UI owns stdout)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	alphabet := evolve.ParseAlphabet(cfg.Alphabet.Letters)

	// The word list backs drift fitness and random target selection; an
	// explicit target word in target mode needs no dictionary.
	var list *words.List
	if cfg.Simulation.Mode == config.ModeDrift || cfg.Target.Word == "" {
		var err error
		list, err = words.Load(cfg.Words.Path)
		if err != nil {
			slog.Error("failed to load word list", "error", err)
			os.Exit(1)
		}
		slog.Info("word list loaded", "words", list.Len())
	}

	output, err := telemetry.NewOutputManager(cfg.Telemetry.OutputDir)
	if err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		slog.Warn("failed to write config snapshot", "error", err)
	}

	switch cfg.Simulation.Mode {
	case config.ModeTarget:
		runTarget(cfg, alphabet, list, rng, rngSeed, output, *headless)
	case config.ModeDrift:
		runDrift(cfg, alphabet, list, rng, rngSeed, output, *headless)
	}
}

// newTargetRun builds a driver/collector pair from the config.
func newTargetRun(cfg *config.Config, alphabet evolve.Alphabet, list *words.List,
	rng *rand.Rand, output *telemetry.OutputManager, genCap int) (*evolve.Driver, *telemetry.Collector, error) {

	word := cfg.Target.Word
	if word == "" {
		word = list.PickTarget(rng, cfg.Target.Length)
	}

	driver, err := evolve.NewDriver(evolve.Params{
		Target:         word,
		Alphabet:       alphabet,
		PopulationSize: cfg.Population.Size,
		MutationRate:   cfg.Mutation.Rate,
		MaxGenerations: genCap,
		Seed:           cfg.Target.SeedText,
	}, rng)
	if err != nil {
		return nil, nil, err
	}

	collector := telemetry.NewCollector(output)
	driver.AddObserver(collector)
	return driver, collector, nil
}

func runTarget(cfg *config.Config, alphabet evolve.Alphabet, list *words.List,
	rng *rand.Rand, rngSeed int64, output *telemetry.OutputManager, headless bool) {

	genCap := cfg.Simulation.MaxGenerations
	if headless && genCap == 0 {
		genCap = fallbackCap
	}

	driver, collector, err := newTargetRun(cfg, alphabet, list, rng, output, genCap)
	if err != nil {
		slog.Error("failed to start run", "error", err)
		os.Exit(1)
	}
	params := driver.Params()

	slog.Info("starting run",
		"mode", config.ModeTarget,
		"target", params.Target,
		"population", params.PopulationSize,
		"rate", params.MutationRate,
		"seed", rngSeed,
		"max_generations", genCap,
	)

	if headless {
		for !driver.Done() {
			snap := driver.Tick()
			if snap.Generation%cfg.Telemetry.LogEvery == 0 || driver.Done() {
				slog.Info("generation",
					"generation", snap.Generation,
					"best", snap.Best.Text,
					"fitness", snap.Best.Fitness,
					"of", snap.MaxFitness,
				)
			}
		}
		final := driver.Snapshot()
		slog.Info("run finished",
			"status", final.Status.String(),
			"generation", final.Generation,
			"best", final.Best.Text,
			"fitness", final.Best.Fitness,
			"of", final.MaxFitness,
		)
	} else {
		app, err := ui.New(time.Duration(cfg.Simulation.TickMS) * time.Millisecond)
		if err != nil {
			slog.Error("failed to initialize terminal", "error", err)
			os.Exit(1)
		}
		defer app.Close()

		collector, err = app.RunTarget(ui.TargetRun{
			Driver:    driver,
			Collector: collector,
			NewRun: func() (*evolve.Driver, *telemetry.Collector, error) {
				return newTargetRun(cfg, alphabet, list, rng, output, cfg.Simulation.MaxGenerations)
			},
		})
		if err != nil {
			slog.Error("run failed", "error", err)
			os.Exit(1)
		}
	}

	if err := output.WriteFitnessPlot(collector.BestSeries(), collector.MeanSeries()); err != nil {
		slog.Warn("failed to write fitness plot", "error", err)
	}
}

func runDrift(cfg *config.Config, alphabet evolve.Alphabet, list *words.List,
	rng *rand.Rand, rngSeed int64, output *telemetry.OutputManager, headless bool) {

	newRun := func() (*drift.Pool, *telemetry.DriftCollector, error) {
		progenitor := list.Progenitor(rng)
		pool := drift.NewPool(list, alphabet, progenitor, cfg.Population.TargetSize, rng)
		return pool, telemetry.NewDriftCollector(output), nil
	}

	pool, collector, _ := newRun()
	snap := pool.Snapshot()

	slog.Info("starting run",
		"mode", config.ModeDrift,
		"progenitor", snap.Progenitor,
		"target_size", cfg.Population.TargetSize,
		"seed", rngSeed,
	)

	if headless {
		for pool.Status() == drift.Growing {
			pool.Step()
			collector.Record(pool.Snapshot())

			snap = pool.Snapshot()
			if snap.Generation%cfg.Telemetry.LogEvery == 0 {
				slog.Info("generation",
					"generation", snap.Generation,
					"population", snap.PopulationSize,
					"unique", len(snap.UniqueWords),
					"culled", snap.LastCull,
				)
			}
		}
		snap = pool.Snapshot()
		slog.Info("run finished",
			"status", snap.Status.String(),
			"generation", snap.Generation,
			"population", snap.PopulationSize,
			"unique", len(snap.UniqueWords),
		)
	} else {
		app, err := ui.New(time.Duration(cfg.Simulation.TickMS) * time.Millisecond)
		if err != nil {
			slog.Error("failed to initialize terminal", "error", err)
			os.Exit(1)
		}
		defer app.Close()

		collector, err = app.RunDrift(ui.DriftRun{
			Pool:      pool,
			Collector: collector,
			NewRun:    newRun,
		})
		if err != nil {
			slog.Error("run failed", "error", err)
			os.Exit(1)
		}
	}

	if err := output.WriteSurvivalPlot(collector.SurvivalSeries()); err != nil {
		slog.Warn("failed to write survival plot", "error", err)
	}
}
