package solver

// FreqEntry pairs a dictionary word with its averaged corpus frequency.
type FreqEntry struct {
	Word Word
	Freq float64
}

// Candidates maps every word the secret could still be to its
// plausibility likelihood. The set only ever shrinks: entries are removed
// by Narrow and never re-admitted.
type Candidates map[Word]float64

// NewCandidates builds the initial candidate set from the dictionary,
// admitting every entry whose likelihood under curve is strictly positive.
// The sigmoid's open range makes the check near-vacuous today; it is kept
// as the admission point for a future stricter threshold.
func NewCandidates(entries []FreqEntry, curve Curve) Candidates {
	cands := make(Candidates, len(entries))
	for _, e := range entries {
		if likelihood := curve.Likelihood(e.Freq); likelihood > 0 {
			cands[e.Word] = likelihood
		}
	}
	return cands
}

// Narrow removes every candidate that would not have produced the
// observed feedback for the given guess. Narrowing with the same
// observation twice is a no-op the second time; narrowing to an empty set
// is a valid terminal state.
func (c Candidates) Narrow(guess Word, observed Score) {
	for cand := range c {
		if ScoreGuess(guess, cand) != observed {
			delete(c, cand)
		}
	}
}

// Words returns the surviving candidate words in map order.
func (c Candidates) Words() []Word {
	words := make([]Word, 0, len(c))
	for w := range c {
		words = append(words, w)
	}
	return words
}
