package evolve

import (
	"errors"
	"math/rand"
	"testing"
)

func validParams() Params {
	return Params{
		Target:         "cat",
		Alphabet:       ParseAlphabet("abcdefghijklmnopqrstuvwxyz"),
		PopulationSize: 4,
		MutationRate:   0.1,
		MaxGenerations: 1000,
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
		want   error
	}{
		{"empty target", func(p *Params) { p.Target = "" }, ErrEmptyTarget},
		{"empty alphabet", func(p *Params) { p.Alphabet = nil }, ErrEmptyAlphabet},
		{"zero population", func(p *Params) { p.PopulationSize = 0 }, ErrPopulationSize},
		{"negative rate", func(p *Params) { p.MutationRate = -0.1 }, ErrMutationRate},
		{"rate above one", func(p *Params) { p.MutationRate = 1.5 }, ErrMutationRate},
		{"seed length mismatch", func(p *Params) { p.Seed = "kitten" }, ErrSeedLength},
	}

	for _, tt := range tests {
		p := validParams()
		tt.mutate(&p)
		if _, err := NewDriver(p, rand.New(rand.NewSource(1))); !errors.Is(err, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, err, tt.want)
		}
	}

	if _, err := NewDriver(validParams(), rand.New(rand.NewSource(1))); err != nil {
		t.Errorf("valid params rejected: %v", err)
	}
}

func TestDriverConvergesOnSmallTarget(t *testing.T) {
	// target "cat", alphabet {a,c,t}, one slot, rate 0.5: the ratchet
	// should find the target well inside 200 generations.
	driver, err := NewDriver(Params{
		Target:         "cat",
		Alphabet:       ParseAlphabet("act"),
		PopulationSize: 1,
		MutationRate:   0.5,
		MaxGenerations: 200,
	}, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatal(err)
	}

	var snap Snapshot
	for !driver.Done() {
		snap = driver.Tick()
	}

	if snap.Status != StatusConverged {
		t.Fatalf("status = %v after %d generations, best %q", snap.Status, snap.Generation, snap.Best.Text)
	}
	if snap.Best.Text != "cat" {
		t.Errorf("best = %q, want %q", snap.Best.Text, "cat")
	}
	if snap.Generation > 200 {
		t.Errorf("took %d generations, cap was 200", snap.Generation)
	}
}

func TestDriverGivesUpOnUnreachableTarget(t *testing.T) {
	// 'c' is outside the alphabet, so full fitness is unreachable and the
	// run must end at the cap rather than loop forever.
	driver, err := NewDriver(Params{
		Target:         "cat",
		Alphabet:       ParseAlphabet("at"),
		PopulationSize: 4,
		MutationRate:   0.5,
		MaxGenerations: 300,
	}, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatal(err)
	}

	var snap Snapshot
	for !driver.Done() {
		snap = driver.Tick()
	}

	if snap.Status != StatusGaveUp {
		t.Fatalf("status = %v, want gave up", snap.Status)
	}
	if snap.Generation != 300 {
		t.Errorf("stopped at generation %d, want 300", snap.Generation)
	}
	if snap.Best.Fitness >= snap.MaxFitness {
		t.Errorf("best fitness %d reached the unreachable max %d", snap.Best.Fitness, snap.MaxFitness)
	}
}

func TestDriverRateZeroNeverImproves(t *testing.T) {
	driver, err := NewDriver(Params{
		Target:         "cat",
		Alphabet:       ParseAlphabet("act"),
		PopulationSize: 3,
		MutationRate:   0,
		MaxGenerations: 50,
		Seed:           "ttt",
	}, rand.New(rand.NewSource(6)))
	if err != nil {
		t.Fatal(err)
	}

	initial := driver.Snapshot().Best
	var snap Snapshot
	for !driver.Done() {
		snap = driver.Tick()
	}

	if snap.Status != StatusGaveUp {
		t.Fatalf("status = %v, want gave up", snap.Status)
	}
	if snap.Best != initial {
		t.Errorf("best changed with rate 0: %+v -> %+v", initial, snap.Best)
	}
}

type tickCounter struct {
	snaps []Snapshot
}

func (tc *tickCounter) OnTick(snap Snapshot) {
	tc.snaps = append(tc.snaps, snap)
}

func TestDriverNotifiesObserverEachTick(t *testing.T) {
	driver, err := NewDriver(validParams(), rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}

	counter := &tickCounter{}
	driver.AddObserver(counter)

	for i := 0; i < 10 && !driver.Done(); i++ {
		driver.Tick()
	}

	if len(counter.snaps) == 0 {
		t.Fatal("observer never notified")
	}
	for i, snap := range counter.snaps {
		if snap.Generation != i+1 {
			t.Errorf("snapshot %d has generation %d", i, snap.Generation)
		}
	}
}

func TestDriverSnapshotIsACopy(t *testing.T) {
	driver, err := NewDriver(validParams(), rand.New(rand.NewSource(8)))
	if err != nil {
		t.Fatal(err)
	}

	snap := driver.Snapshot()
	snap.Candidates[0] = Candidate{Text: "xxx", Fitness: -1}

	if got := driver.Snapshot().Candidates[0]; got.Text == "xxx" {
		t.Error("mutating a snapshot leaked into the population")
	}
}

func TestDriverStop(t *testing.T) {
	driver, err := NewDriver(validParams(), rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatal(err)
	}

	driver.Tick()
	gen := driver.Snapshot().Generation
	driver.Stop()

	if !driver.Done() {
		t.Fatal("Done() false after Stop")
	}
	if got := driver.Tick().Generation; got != gen {
		t.Errorf("Tick after Stop advanced generation %d -> %d", gen, got)
	}
}
