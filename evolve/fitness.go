package evolve

// Evaluator scores candidate strings against a fixed target by counting
// matching character positions. Higher is better; the maximum score is the
// target length in runes. Scoring is a pure function of (text, target).
type Evaluator struct {
	target []rune
}

// NewEvaluator creates an evaluator for the given target string.
func NewEvaluator(target string) Evaluator {
	return Evaluator{target: []rune(target)}
}

// Score counts positions where text matches the target. Positions beyond
// the shorter of the two strings never match.
func (e Evaluator) Score(text string) int {
	score := 0
	for i, r := range []rune(text) {
		if i >= len(e.target) {
			break
		}
		if r == e.target[i] {
			score++
		}
	}
	return score
}

// Max returns the best achievable score: the target length in runes.
func (e Evaluator) Max() int {
	return len(e.target)
}

// Normalized maps a raw score onto [0,1] for display.
func (e Evaluator) Normalized(score int) float64 {
	if len(e.target) == 0 {
		return 0
	}
	return float64(score) / float64(len(e.target))
}
