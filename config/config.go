// Package config provides configuration loading and access for the
// simulation. Defaults are embedded; a user YAML file overrides only the
// fields it names.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid wraps every configuration validation failure. These are
// fatal: they surface once at startup and are never retried.
var ErrInvalid = errors.New("invalid configuration")

// Simulation modes.
const (
	ModeTarget = "target"
	ModeDrift  = "drift"
)

// Config holds all simulation configuration parameters.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Population PopulationConfig `yaml:"population"`
	Mutation   MutationConfig   `yaml:"mutation"`
	Target     TargetConfig     `yaml:"target"`
	Alphabet   AlphabetConfig   `yaml:"alphabet"`
	Words      WordsConfig      `yaml:"words"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// SimulationConfig holds run-level parameters.
type SimulationConfig struct {
	// Mode selects the simulation: "target" (evolve toward a fixed word)
	// or "drift" (dictionary-culled growth from a progenitor).
	Mode string `yaml:"mode"`
	// Seed seeds the RNG; 0 means derive from the wall clock.
	Seed int64 `yaml:"seed"`
	// MaxGenerations caps a target-mode run so unreachable targets still
	// terminate; 0 disables the cap (UI mode only).
	MaxGenerations int `yaml:"max_generations"`
	// TickMS is the UI tick interval in milliseconds.
	TickMS int `yaml:"tick_ms"`
}

// PopulationConfig holds population sizing.
type PopulationConfig struct {
	// Size is the slot count N for target mode.
	Size int `yaml:"size"`
	// TargetSize ends a drift run once the pool reaches this many words.
	TargetSize int `yaml:"target_size"`
}

// MutationConfig holds the mutation operator tunables.
type MutationConfig struct {
	// Rate is the per-character mutation probability in [0,1].
	Rate float64 `yaml:"rate"`
}

// TargetConfig selects the evolution target.
type TargetConfig struct {
	// Word is the explicit target; empty means pick one from the word
	// list at random.
	Word string `yaml:"word"`
	// Length filters the random pick by rune length; 0 means any.
	Length int `yaml:"length"`
	// SeedText optionally broadcasts a starting string to every slot.
	SeedText string `yaml:"seed_text"`
}

// AlphabetConfig defines the character set mutations draw from.
type AlphabetConfig struct {
	Letters string `yaml:"letters"`
}

// WordsConfig locates the word list.
type WordsConfig struct {
	// Path to a newline-delimited word list; empty means probe the
	// well-known system locations.
	Path string `yaml:"path"`
}

// TelemetryConfig controls run output.
type TelemetryConfig struct {
	// OutputDir receives history.csv, fitness.png, and a config
	// snapshot; empty disables output.
	OutputDir string `yaml:"output_dir"`
	// LogEvery is the headless progress log interval in generations.
	LogEvery int `yaml:"log_every"`
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults
// if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults, and validates the result. If path is empty, only embedded
// defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into the same struct - only overwrites fields
		// present in the file.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every precondition the simulation relies on.
func (c *Config) Validate() error {
	if c.Simulation.Mode != ModeTarget && c.Simulation.Mode != ModeDrift {
		return fmt.Errorf("%w: simulation.mode must be %q or %q, got %q",
			ErrInvalid, ModeTarget, ModeDrift, c.Simulation.Mode)
	}
	if c.Simulation.MaxGenerations < 0 {
		return fmt.Errorf("%w: simulation.max_generations must be >= 0, got %d",
			ErrInvalid, c.Simulation.MaxGenerations)
	}
	if c.Simulation.TickMS < 1 {
		return fmt.Errorf("%w: simulation.tick_ms must be >= 1, got %d",
			ErrInvalid, c.Simulation.TickMS)
	}
	if c.Population.Size < 1 {
		return fmt.Errorf("%w: population.size must be >= 1, got %d",
			ErrInvalid, c.Population.Size)
	}
	if c.Population.TargetSize < 1 {
		return fmt.Errorf("%w: population.target_size must be >= 1, got %d",
			ErrInvalid, c.Population.TargetSize)
	}
	if c.Mutation.Rate < 0 || c.Mutation.Rate > 1 {
		return fmt.Errorf("%w: mutation.rate must be in [0,1], got %g",
			ErrInvalid, c.Mutation.Rate)
	}
	if c.Alphabet.Letters == "" {
		return fmt.Errorf("%w: alphabet.letters must not be empty", ErrInvalid)
	}
	if c.Telemetry.LogEvery < 1 {
		return fmt.Errorf("%w: telemetry.log_every must be >= 1, got %d",
			ErrInvalid, c.Telemetry.LogEvery)
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
