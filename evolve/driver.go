package evolve

import (
	"errors"
	"fmt"
	"math/rand"
	"unicode/utf8"
)

// Configuration errors surfaced at construction time.
var (
	ErrEmptyTarget    = errors.New("target must not be empty")
	ErrEmptyAlphabet  = errors.New("alphabet must not be empty")
	ErrPopulationSize = errors.New("population size must be at least 1")
	ErrMutationRate   = errors.New("mutation rate must be in [0,1]")
	ErrSeedLength     = errors.New("seed text must match target length")
)

// Status is the run status reported to observers.
type Status int

const (
	// StatusRunning means the run is still advancing.
	StatusRunning Status = iota
	// StatusConverged means the best candidate equals the target.
	StatusConverged
	// StatusGaveUp means the generation cap was hit before convergence.
	StatusGaveUp
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusConverged:
		return "converged"
	case StatusGaveUp:
		return "gave up"
	default:
		return "unknown"
	}
}

// Params configures a run. The zero value is not usable; populate every
// field and pass it to NewDriver, which validates up front.
type Params struct {
	// Target is the fixed string candidates evolve toward.
	Target string
	// Alphabet is the character set mutations draw from. A target
	// containing characters outside the alphabet is not an error; the run
	// simply can never reach full fitness and ends via MaxGenerations.
	Alphabet Alphabet
	// PopulationSize is the number of independent (1+1) slots.
	PopulationSize int
	// MutationRate is the per-character mutation probability in [0,1].
	MutationRate float64
	// MaxGenerations caps the run; 0 means no cap. Unreachable targets
	// rely on this cap to terminate, so headless callers should set one.
	MaxGenerations int
	// Seed optionally broadcasts a starting string to every slot. Empty
	// means random initialization. Must match the target's rune length.
	Seed string
}

// Validate checks the parameter preconditions.
func (p Params) Validate() error {
	if p.Target == "" {
		return ErrEmptyTarget
	}
	if len(p.Alphabet) == 0 {
		return ErrEmptyAlphabet
	}
	if p.PopulationSize < 1 {
		return fmt.Errorf("%w, got %d", ErrPopulationSize, p.PopulationSize)
	}
	if p.MutationRate < 0 || p.MutationRate > 1 {
		return fmt.Errorf("%w, got %g", ErrMutationRate, p.MutationRate)
	}
	if p.Seed != "" && utf8.RuneCountInString(p.Seed) != utf8.RuneCountInString(p.Target) {
		return fmt.Errorf("%w: seed %q, target %q", ErrSeedLength, p.Seed, p.Target)
	}
	return nil
}

// Snapshot is the immutable per-tick view handed to the presentation
// layer: everything needed for live rendering and for plotting fitness
// over time.
type Snapshot struct {
	Generation     int
	Status         Status
	Target         string
	Best           Candidate
	BestNormalized float64
	BestGeneration int
	MaxFitness     int
	Candidates     []Candidate
}

// Observer receives a snapshot after every tick. Implementations must not
// retain the Candidates slice beyond the call if they mutate it.
type Observer interface {
	OnTick(Snapshot)
}

// Driver is the outward-facing simulation handle. It owns the population
// and the injected RNG, advances exactly one generation per Tick call, and
// performs no I/O and no concurrency of its own. Pacing belongs to the
// caller's event loop; ticks must not overlap.
type Driver struct {
	params    Params
	pop       *Population
	observers []Observer
	stopped   bool
}

// NewDriver validates params and creates a run with its initial
// generation seeded from rng.
func NewDriver(params Params, rng *rand.Rand) (*Driver, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	pop := NewPopulation(params.Target, params.Alphabet, params.PopulationSize,
		params.MutationRate, params.Seed, rng)
	return &Driver{params: params, pop: pop}, nil
}

// AddObserver registers an observer notified after every Tick.
func (d *Driver) AddObserver(o Observer) {
	d.observers = append(d.observers, o)
}

// Tick advances one generation and returns the resulting snapshot.
// Once the run is terminal (converged, gave up, or stopped) Tick no
// longer advances and returns the final state unchanged.
func (d *Driver) Tick() Snapshot {
	if !d.Done() {
		d.pop.Tick()
		snap := d.Snapshot()
		for _, o := range d.observers {
			o.OnTick(snap)
		}
		return snap
	}
	return d.Snapshot()
}

// Done reports whether the run has reached a terminal state.
func (d *Driver) Done() bool {
	return d.stopped || d.Status() != StatusRunning
}

// Status derives the run status from the population state and the
// generation cap.
func (d *Driver) Status() Status {
	if d.pop.State() == Converged {
		return StatusConverged
	}
	if d.params.MaxGenerations > 0 && d.pop.Generation() >= d.params.MaxGenerations {
		return StatusGaveUp
	}
	return StatusRunning
}

// Snapshot returns the current state without advancing.
func (d *Driver) Snapshot() Snapshot {
	best := d.pop.Best()
	return Snapshot{
		Generation:     d.pop.Generation(),
		Status:         d.Status(),
		Target:         d.params.Target,
		Best:           best,
		BestNormalized: d.pop.Evaluator().Normalized(best.Fitness),
		BestGeneration: d.pop.BestGeneration(),
		MaxFitness:     d.pop.Evaluator().Max(),
		Candidates:     d.pop.Candidates(),
	}
}

// Params returns the parameters the run was started with.
func (d *Driver) Params() Params {
	return d.params
}

// Stop marks the run terminal. Further Tick calls are no-ops; no
// resources need releasing beyond this.
func (d *Driver) Stop() {
	d.stopped = true
}
