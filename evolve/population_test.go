package evolve

import (
	"math/rand"
	"testing"
)

func TestPopulationSlotFitnessNeverDecreases(t *testing.T) {
	alphabet := ParseAlphabet("abcdefghijklmnopqrstuvwxyz")
	rng := rand.New(rand.NewSource(11))
	p := NewPopulation("selection", alphabet, 20, 0.2, "", rng)

	for tick := 0; tick < 100; tick++ {
		before := p.Candidates()
		p.Tick()
		after := p.Candidates()

		for i := range after {
			if after[i].Fitness < before[i].Fitness {
				t.Fatalf("tick %d slot %d: fitness dropped %d -> %d",
					tick, i, before[i].Fitness, after[i].Fitness)
			}
		}
	}
}

func TestPopulationBestNeverDecreases(t *testing.T) {
	alphabet := ParseAlphabet("abcdefghijklmnopqrstuvwxyz")
	rng := rand.New(rand.NewSource(12))
	p := NewPopulation("monotone", alphabet, 10, 0.1, "", rng)

	last := p.Best().Fitness
	for tick := 0; tick < 300; tick++ {
		p.Tick()
		if p.Best().Fitness < last {
			t.Fatalf("tick %d: best fitness dropped %d -> %d", tick, last, p.Best().Fitness)
		}
		last = p.Best().Fitness
	}
}

func TestPopulationGenerationCounter(t *testing.T) {
	alphabet := ParseAlphabet("ab")
	rng := rand.New(rand.NewSource(13))
	p := NewPopulation("abba", alphabet, 4, 0.3, "", rng)

	if p.Generation() != 0 {
		t.Fatalf("initial generation = %d, want 0", p.Generation())
	}
	for i := 1; i <= 10; i++ {
		if p.State() == Converged {
			break
		}
		p.Tick()
		if p.Generation() != i {
			t.Fatalf("after %d ticks generation = %d", i, p.Generation())
		}
	}
}

func TestPopulationSeedBroadcast(t *testing.T) {
	alphabet := ParseAlphabet("abc")
	rng := rand.New(rand.NewSource(14))
	p := NewPopulation("cab", alphabet, 5, 0.5, "bbb", rng)

	for i, c := range p.Candidates() {
		if c.Text != "bbb" {
			t.Errorf("slot %d seeded with %q, want %q", i, c.Text, "bbb")
		}
	}
}

func TestPopulationConvergedTickIsNoOp(t *testing.T) {
	alphabet := ParseAlphabet("abc")
	rng := rand.New(rand.NewSource(15))
	p := NewPopulation("cab", alphabet, 3, 0.5, "cab", rng)

	if p.State() != Converged {
		t.Fatalf("seeding with the target should converge immediately, state %v", p.State())
	}
	gen := p.Generation()
	p.Tick()
	if p.Generation() != gen {
		t.Errorf("converged Tick advanced generation %d -> %d", gen, p.Generation())
	}
}
