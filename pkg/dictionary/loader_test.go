package dictionary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tobrh/wordgain/pkg/solver"
)

func writeCorpus(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		t.Fatalf("writing corpus: %v", err)
	}
	return path
}

func TestLoadTextAveragesSampleWindow(t *testing.T) {
	path := writeCorpus(t,
		"tares 0.5",
		"colin 1.0 2.0 3.0",
		// seven samples: only the trailing five count
		"decay 100 100 1.0 2.0 3.0 4.0 5.0",
	)

	dict, err := LoadText(path, 5)
	if err != nil {
		t.Fatalf("LoadText: %v", err)
	}
	if dict.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", dict.Len())
	}

	want := map[string]float64{
		"tares": 0.5,
		"colin": 2.0,
		"decay": 3.0,
	}
	for _, e := range dict.Entries {
		if got := want[e.Word.String()]; e.Freq != got {
			t.Errorf("entry %q has freq %v, want %v", e.Word, e.Freq, got)
		}
	}
}

func TestLoadTextSortsAscending(t *testing.T) {
	path := writeCorpus(t,
		"colin 9.0",
		"tares 1.0",
		"decay 4.0",
	)

	dict, err := LoadText(path, 5)
	if err != nil {
		t.Fatalf("LoadText: %v", err)
	}
	for i := 1; i < dict.Len(); i++ {
		if dict.Entries[i-1].Freq > dict.Entries[i].Freq {
			t.Fatalf("entries not ascending at %d: %v > %v", i, dict.Entries[i-1].Freq, dict.Entries[i].Freq)
		}
	}
}

// Malformed corpus lines are loader errors; the solver core never sees
// them.
func TestLoadTextMalformedLines(t *testing.T) {
	testCases := []struct {
		line string
		desc string
	}{
		{"tare 1.0", "word too short"},
		{"taress 1.0", "word too long"},
		{"tar3s 1.0", "word with digit"},
		{"tares", "no frequency samples"},
		{"tares 1.0 banana", "unparsable sample"},
	}

	for _, tc := range testCases {
		path := writeCorpus(t, tc.line)
		if _, err := LoadText(path, 5); err == nil {
			t.Errorf("%s: expected error for line %q", tc.desc, tc.line)
		}
	}
}

func TestLoadFileDispatch(t *testing.T) {
	if _, err := LoadFile("words.csv", 5); err == nil {
		t.Error("expected error for unsupported extension")
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt"), 5); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCompiledRoundTrip(t *testing.T) {
	textPath := writeCorpus(t,
		"tares 1.0",
		"colin 2.0 4.0",
		"decay 9.0",
	)
	dict, err := LoadText(textPath, 5)
	if err != nil {
		t.Fatalf("LoadText: %v", err)
	}

	binPath := filepath.Join(t.TempDir(), "words.bin")
	if err := SaveCompiled(dict, binPath); err != nil {
		t.Fatalf("SaveCompiled: %v", err)
	}

	loaded, err := LoadFile(binPath, 5)
	if err != nil {
		t.Fatalf("LoadFile(.bin): %v", err)
	}
	if loaded.Len() != dict.Len() {
		t.Fatalf("compiled entries %d, want %d", loaded.Len(), dict.Len())
	}
	for i := range dict.Entries {
		if loaded.Entries[i] != dict.Entries[i] {
			t.Errorf("entry %d differs after round trip: %v vs %v", i, loaded.Entries[i], dict.Entries[i])
		}
	}
}

func TestLoadCompiledRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.bin")
	if err := os.WriteFile(path, []byte("not msgpack at all"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCompiled(path); err == nil {
		t.Error("expected error for non-msgpack snapshot")
	}
}

func TestIndex(t *testing.T) {
	path := writeCorpus(t,
		"tares 1.0",
		"tarot 2.0",
		"taken 3.0",
		"colin 4.0",
	)
	dict, err := LoadText(path, 5)
	if err != nil {
		t.Fatalf("LoadText: %v", err)
	}
	ix := dict.Index()

	if !ix.Contains(solver.MustWord("tares")) {
		t.Error("Contains missed a dictionary word")
	}
	if ix.Contains(solver.MustWord("zzzzz")) {
		t.Error("Contains matched an unknown word")
	}

	hints := ix.SimilarPrefix(solver.MustWord("tarts"), 10)
	if len(hints) != 3 {
		t.Fatalf("expected 3 words sharing prefix 'ta', got %v", hints)
	}
	if capped := ix.SimilarPrefix(solver.MustWord("tarts"), 2); len(capped) != 2 {
		t.Errorf("hint limit not applied: got %v", capped)
	}
}
