package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/evolvewords/config"
)

// OutputManager handles structured run output with CSV logging. All
// methods are nil-safe so callers can hold a nil manager when output is
// disabled.
type OutputManager struct {
	dir         string
	historyFile *os.File
	driftFile   *os.File

	// Track if headers have been written
	historyHeaderWritten bool
	driftHeaderWritten   bool
}

// NewOutputManager creates a new output manager and initializes the
// output directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	historyPath := filepath.Join(dir, "history.csv")
	f, err := os.Create(historyPath)
	if err != nil {
		return nil, fmt.Errorf("creating history.csv: %w", err)
	}
	om.historyFile = f

	driftPath := filepath.Join(dir, "drift.csv")
	f, err = os.Create(driftPath)
	if err != nil {
		om.historyFile.Close()
		return nil, fmt.Errorf("creating drift.csv: %w", err)
	}
	om.driftFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	configPath := filepath.Join(om.dir, "config.yaml")
	return cfg.WriteYAML(configPath)
}

// WriteGeneration appends a target-mode history row to history.csv.
func (om *OutputManager) WriteGeneration(row GenerationStats) error {
	if om == nil {
		return nil
	}

	records := []GenerationStats{row}

	if !om.historyHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.historyFile); err != nil {
			return fmt.Errorf("writing history: %w", err)
		}
		om.historyHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.historyFile); err != nil {
			return fmt.Errorf("writing history: %w", err)
		}
	}

	return nil
}

// WriteDrift appends a drift-mode history row to drift.csv.
func (om *OutputManager) WriteDrift(row DriftStats) error {
	if om == nil {
		return nil
	}

	records := []DriftStats{row}

	if !om.driftHeaderWritten {
		if err := gocsv.Marshal(records, om.driftFile); err != nil {
			return fmt.Errorf("writing drift history: %w", err)
		}
		om.driftHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.driftFile); err != nil {
			return fmt.Errorf("writing drift history: %w", err)
		}
	}

	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error

	if om.historyFile != nil {
		if err := om.historyFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if om.driftFile != nil {
		if err := om.driftFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
