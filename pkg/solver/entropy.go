package solver

import (
	"math"
	"sort"
)

// Distribution counts, for a hypothetical guess, how the current
// candidate set splits across the 243 possible feedback outcomes.
type Distribution [NumOutcomes]int

// GuessEntropy is one ranked suggestion: a dictionary word and the
// expected information (bits) guessing it would reveal.
type GuessEntropy struct {
	Word    Word
	Entropy float64
}

// Outcomes scores guess against every surviving candidate and buckets
// the results. Read-only over the candidate set.
func Outcomes(guess Word, cands Candidates) Distribution {
	var dist Distribution
	for cand := range cands {
		dist[ScoreGuess(guess, cand)]++
	}
	return dist
}

// EntropyBits converts an outcome distribution into Shannon entropy,
// -sum(p*log2(p)) with p = count/total. Probabilities are raw candidate
// counts over the set size; the tracked likelihoods are deliberately not
// used as weights here (uniform prior over survivors). Empty buckets
// contribute zero, and total == 0 yields zero outright.
func EntropyBits(dist Distribution, total int) float64 {
	if total == 0 {
		return 0
	}
	entropy := 0.0
	for _, count := range dist {
		if count == 0 {
			continue
		}
		p := float64(count) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// GuessPower is the entropy a single guess would extract from the
// current candidate set.
func GuessPower(guess Word, cands Candidates) float64 {
	return EntropyBits(Outcomes(guess, cands), len(cands))
}

// RankGuesses scores every dictionary word against the candidate set and
// returns the informative ones sorted ascending by entropy, so the
// strongest suggestion is read last. Guesses are drawn from the whole
// dictionary, not just surviving candidates: a word that cannot be the
// secret can still split the set well. Zero-entropy guesses are dropped.
func RankGuesses(dict []FreqEntry, cands Candidates) []GuessEntropy {
	var ranked []GuessEntropy
	for _, entry := range dict {
		power := GuessPower(entry.Word, cands)
		if power > 0 {
			ranked = append(ranked, GuessEntropy{Word: entry.Word, Entropy: power})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].Entropy < ranked[j].Entropy
	})
	return ranked
}
