package words

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func writeList(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words")
	if err := os.WriteFile(path, []byte(lines), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadLowercasesAndDeduplicates(t *testing.T) {
	path := writeList(t, "Cat\ncat\nDOG\n\n  bird  \n")
	list, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if list.Len() != 3 {
		t.Errorf("Len() = %d, want 3", list.Len())
	}
	for _, w := range []string{"cat", "dog", "bird"} {
		if !list.Contains(w) {
			t.Errorf("missing %q", w)
		}
	}
	if list.Contains("Cat") {
		t.Error("Contains should match the lowercased form only")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeList(t, "\n\n")
	if _, err := Load(path); !errors.Is(err, ErrNoWordList) {
		t.Errorf("got %v, want ErrNoWordList", err)
	}
}

func TestProgenitorPicksOneLetterWord(t *testing.T) {
	path := writeList(t, "a\ni\ncat\nhouse\n")
	list, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		w := list.Progenitor(rng)
		if w != "a" && w != "i" {
			t.Fatalf("Progenitor() = %q, want a one-letter word", w)
		}
	}
}

func TestProgenitorFallsBackToShortest(t *testing.T) {
	path := writeList(t, "house\nat\ncat\n")
	list, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if w := list.Progenitor(rand.New(rand.NewSource(2))); w != "at" {
		t.Errorf("Progenitor() = %q, want %q", w, "at")
	}
}

func TestPickTarget(t *testing.T) {
	path := writeList(t, "a\ncat\ndog\nhouse\n")
	list, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 20; i++ {
		w := list.PickTarget(rng, 3)
		if w != "cat" && w != "dog" {
			t.Fatalf("PickTarget(3) = %q", w)
		}
	}

	if w := list.PickTarget(rng, 0); !list.Contains(w) {
		t.Errorf("PickTarget(0) = %q, not in list", w)
	}

	if w := list.PickTarget(rng, 9); w != "" {
		t.Errorf("PickTarget(9) = %q, want empty", w)
	}
}

func TestFindProbesSystemPaths(t *testing.T) {
	// Find depends on the host having a dictionary installed; just check
	// that a successful result is one of the well-known paths.
	path, err := Find()
	if err != nil {
		if !errors.Is(err, ErrNoWordList) {
			t.Errorf("unexpected error: %v", err)
		}
		return
	}
	if path != systemPaths[0] && path != systemPaths[1] {
		t.Errorf("Find() = %q, not a system path", path)
	}
}
