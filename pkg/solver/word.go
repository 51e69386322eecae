/*
Package solver implements the scoring and entropy-ranking engine for
five-letter feedback puzzles.

A guess scored against a candidate yields one of 243 feedback patterns
(absent/present/correct per position, duplicate-aware). The solver keeps a
candidate set of plausible secrets, narrows it after every observed
guess/feedback pair, and ranks the full dictionary by the Shannon entropy of
the feedback distribution each guess would induce over the surviving set.
*/
package solver

import "fmt"

// WordLen is the fixed word length the solver operates on.
const WordLen = 5

// Word is a fixed five-letter lowercase ASCII word. It is a value type:
// copies never alias and equality is positional byte equality.
type Word [WordLen]byte

// ParseWord validates and converts s into a Word.
// s must be exactly five lowercase ASCII letters.
func ParseWord(s string) (Word, error) {
	var w Word
	if len(s) != WordLen {
		return w, fmt.Errorf("word %q must be %d letters, got %d", s, WordLen, len(s))
	}
	for i := 0; i < WordLen; i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			return w, fmt.Errorf("word %q contains invalid letter %q at position %d", s, c, i)
		}
		w[i] = c
	}
	return w, nil
}

// MustWord is ParseWord for known-good literals; it panics on invalid input.
// Intended for tests and fixed first-guess tables only.
func MustWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

func (w Word) String() string {
	return string(w[:])
}
