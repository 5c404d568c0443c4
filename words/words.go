// Package words loads the newline-delimited word list that supplies
// evolution targets, drift-mode fitness, and the starting progenitor.
package words

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"unicode/utf8"
)

// Well-known system word list locations, probed in order.
var systemPaths = []string{
	"/usr/share/dict/words",
	"/usr/dict/words",
}

// ErrNoWordList is returned when no word list can be located.
var ErrNoWordList = errors.New("no word list found")

// List is a loaded word list. Words are lowercased and de-duplicated;
// Ordered preserves load order for deterministic random picks from a
// seeded RNG.
type List struct {
	members map[string]bool
	ordered []string
}

// Find returns the first system word list that exists, or ErrNoWordList.
func Find() (string, error) {
	for _, path := range systemPaths {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", ErrNoWordList
}

// Load reads a newline-delimited word list from path. An empty path means
// probe the well-known system locations.
func Load(path string) (*List, error) {
	if path == "" {
		found, err := Find()
		if err != nil {
			return nil, err
		}
		path = found
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()

	list := &List{members: make(map[string]bool)}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || list.members[word] {
			continue
		}
		list.members[word] = true
		list.ordered = append(list.ordered, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	if len(list.ordered) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrNoWordList, path)
	}
	return list, nil
}

// Contains reports whether word is in the list. Lookup is by the
// lowercased form, matching how the list was loaded.
func (l *List) Contains(word string) bool {
	return l.members[word]
}

// Len returns the number of unique words.
func (l *List) Len() int {
	return len(l.ordered)
}

// Progenitor picks a random one-letter word to seed a drift run. Falls
// back to the shortest word available if the list has no one-letter words.
func (l *List) Progenitor(rng *rand.Rand) string {
	if w := l.pick(rng, 1); w != "" {
		return w
	}
	shortest := l.ordered[0]
	for _, w := range l.ordered[1:] {
		if utf8.RuneCountInString(w) < utf8.RuneCountInString(shortest) {
			shortest = w
		}
	}
	return shortest
}

// PickTarget picks a random word of the given rune length to evolve
// toward; length 0 means any word. Returns "" when no word qualifies.
func (l *List) PickTarget(rng *rand.Rand, length int) string {
	if length == 0 {
		return l.ordered[rng.Intn(len(l.ordered))]
	}
	return l.pick(rng, length)
}

func (l *List) pick(rng *rand.Rand, length int) string {
	matching := make([]string, 0, 64)
	for _, w := range l.ordered {
		if utf8.RuneCountInString(w) == length {
			matching = append(matching, w)
		}
	}
	if len(matching) == 0 {
		return ""
	}
	return matching[rng.Intn(len(matching))]
}
