package solver

// Sentinels written into the scratch copies when a position is consumed.
// They are outside the a-z alphabet and distinct from each other, so a
// consumed guess slot can never match a consumed candidate slot.
const (
	consumedGuess     = 0x00
	consumedCandidate = 0xff
)

// ScoreGuess computes the feedback pattern guess would receive if the
// secret were candidate.
//
// Two passes over local scratch copies implement the duplicate-letter
// rules: the first pass marks exact positional matches as Correct and
// consumes both slots; the second scans the candidate's unconsumed slots
// left-to-right for each remaining guess letter, consuming the first hit
// and marking Present. A candidate letter is therefore never counted more
// times than it occurs.
func ScoreGuess(guess, candidate Word) Score {
	g := guess
	c := candidate
	var score Score

	for i := 0; i < WordLen; i++ {
		if g[i] == c[i] {
			g[i] = consumedGuess
			c[i] = consumedCandidate
			score += pow3[i] * Score(Correct)
		}
	}
	for i := 0; i < WordLen; i++ {
		for j := 0; j < WordLen; j++ {
			if c[j] == g[i] {
				c[j] = consumedCandidate
				score += pow3[i] * Score(Present)
				break
			}
		}
	}
	return score
}
