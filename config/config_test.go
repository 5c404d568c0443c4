package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Simulation.Mode != ModeTarget {
		t.Errorf("default mode = %q", cfg.Simulation.Mode)
	}
	if cfg.Population.Size < 1 {
		t.Errorf("default population size = %d", cfg.Population.Size)
	}
	if cfg.Mutation.Rate <= 0 || cfg.Mutation.Rate >= 1 {
		t.Errorf("default mutation rate = %g", cfg.Mutation.Rate)
	}
	if cfg.Alphabet.Letters == "" {
		t.Error("default alphabet is empty")
	}
}

func TestLoadOverridesOnlyNamedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "mutation:\n  rate: 0.25\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Mutation.Rate != 0.25 {
		t.Errorf("rate = %g, want 0.25", cfg.Mutation.Rate)
	}
	// Everything else keeps the embedded defaults.
	if cfg.Simulation.Mode != ModeTarget || cfg.Population.Size < 1 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Load("")
		if err != nil {
			t.Fatal(err)
		}
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad mode", func(c *Config) { c.Simulation.Mode = "exhaustive" }},
		{"negative cap", func(c *Config) { c.Simulation.MaxGenerations = -1 }},
		{"zero tick", func(c *Config) { c.Simulation.TickMS = 0 }},
		{"zero population", func(c *Config) { c.Population.Size = 0 }},
		{"zero target size", func(c *Config) { c.Population.TargetSize = 0 }},
		{"rate above one", func(c *Config) { c.Mutation.Rate = 1.5 }},
		{"negative rate", func(c *Config) { c.Mutation.Rate = -0.1 }},
		{"empty alphabet", func(c *Config) { c.Alphabet.Letters = "" }},
		{"zero log interval", func(c *Config) { c.Telemetry.LogEvery = 0 }},
	}

	for _, tt := range tests {
		cfg := valid()
		tt.mutate(cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: got %v, want ErrInvalid", tt.name, err)
		}
	}

	if err := valid().Validate(); err != nil {
		t.Errorf("defaults failed validation: %v", err)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Target.Word = "weasel"
	cfg.Mutation.Rate = 0.07

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Target.Word != "weasel" || loaded.Mutation.Rate != 0.07 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}
