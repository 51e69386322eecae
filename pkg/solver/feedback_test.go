package solver

import "testing"

// Every one of the 243 scores must decode to digits that encode back to
// the same score: the packing is a bijection.
func TestScoreDigitsRoundTrip(t *testing.T) {
	for s := Score(0); s < NumOutcomes; s++ {
		if got := EncodeDigits(s.Digits()); got != s {
			t.Errorf("round trip broke at %d: got %d", s, got)
		}
	}
}

func TestParseMarks(t *testing.T) {
	testCases := []struct {
		marks   string
		want    Score
		wantErr bool
	}{
		{"bbbbb", 0, false},
		{"ggggg", 242, false},
		{"bbbbg", 2, false},
		{"gbbbb", 162, false},
		{"bybyb", 30, false}, // 1*27 + 1*3
		{"ybbbb", 81, false},

		// malformed
		{"", 0, true},
		{"byb", 0, true},
		{"bybybg", 0, true},
		{"bxbyb", 0, true},
		{"BYBYG", 0, true},
	}

	for _, tc := range testCases {
		got, err := ParseMarks(tc.marks)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseMarks(%q) expected error, got %d", tc.marks, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMarks(%q) unexpected error: %v", tc.marks, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMarks(%q) = %d, want %d", tc.marks, got, tc.want)
		}
	}
}

// Marks must render back to the string it was parsed from for every score.
func TestMarksRoundTrip(t *testing.T) {
	for s := Score(0); s < NumOutcomes; s++ {
		parsed, err := ParseMarks(s.Marks())
		if err != nil {
			t.Fatalf("Marks(%d) produced unparsable %q: %v", s, s.Marks(), err)
		}
		if parsed != s {
			t.Errorf("marks round trip broke at %d: rendered %q, parsed %d", s, s.Marks(), parsed)
		}
	}
}

func TestParseWord(t *testing.T) {
	testCases := []struct {
		input   string
		wantErr bool
	}{
		{"tares", false},
		{"psych", false},
		{"", true},
		{"tare", true},
		{"taress", true},
		{"Tares", true},
		{"tar3s", true},
		{"tar s", true},
	}

	for _, tc := range testCases {
		w, err := ParseWord(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseWord(%q) expected error, got %v", tc.input, w)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseWord(%q) unexpected error: %v", tc.input, err)
			continue
		}
		if w.String() != tc.input {
			t.Errorf("ParseWord(%q).String() = %q", tc.input, w.String())
		}
	}
}
