package solver

import "fmt"

// Digit is a single position's feedback classification.
type Digit uint8

const (
	// Absent - the letter does not appear (or its duplicates are used up).
	Absent Digit = 0
	// Present - the letter appears elsewhere in the word.
	Present Digit = 1
	// Correct - right letter, right position.
	Correct Digit = 2
)

// NumOutcomes is the number of distinct feedback patterns: 3^WordLen.
const NumOutcomes = 243

// Score is a full feedback pattern packed into a single base-3 integer.
// The leftmost letter is the most significant digit, so scores range
// over [0, NumOutcomes).
type Score uint16

// pow3 holds 3^(WordLen-1-i) for position i, the per-position digit weight.
var pow3 = [WordLen]Score{81, 27, 9, 3, 1}

// EncodeDigits packs five feedback digits into a Score, MSB first.
func EncodeDigits(digits [WordLen]Digit) Score {
	var s Score
	for _, d := range digits {
		s = s*3 + Score(d)
	}
	return s
}

// Digits unpacks the Score back into its five feedback digits.
// Exact inverse of EncodeDigits for every valid Score.
func (s Score) Digits() [WordLen]Digit {
	var digits [WordLen]Digit
	for i := WordLen - 1; i >= 0; i-- {
		digits[i] = Digit(s % 3)
		s /= 3
	}
	return digits
}

// ParseMarks converts a five-character marks string over {b,y,g}
// (absent, present, correct) into a Score. This is the boundary format
// used by the CLI, the IPC server, and diagnostics.
func ParseMarks(marks string) (Score, error) {
	if len(marks) != WordLen {
		return 0, fmt.Errorf("marks %q must be %d characters, got %d", marks, WordLen, len(marks))
	}
	var s Score
	for i := 0; i < WordLen; i++ {
		var d Digit
		switch marks[i] {
		case 'b':
			d = Absent
		case 'y':
			d = Present
		case 'g':
			d = Correct
		default:
			return 0, fmt.Errorf("marks %q contains invalid mark %q at position %d (want b, y or g)", marks, marks[i], i)
		}
		s = s*3 + Score(d)
	}
	return s, nil
}

// Marks renders the Score as its five-character b/y/g string.
func (s Score) Marks() string {
	var out [WordLen]byte
	for i, d := range s.Digits() {
		switch d {
		case Present:
			out[i] = 'y'
		case Correct:
			out[i] = 'g'
		default:
			out[i] = 'b'
		}
	}
	return string(out[:])
}
