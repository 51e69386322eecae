package dictionary

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/tobrh/wordgain/pkg/solver"
)

// compiledVersion is bumped whenever the snapshot layout changes.
// Loading rejects snapshots from other versions instead of guessing.
const compiledVersion = 1

// compiledEntry is the on-disk form of one averaged frequency entry.
type compiledEntry struct {
	Word string  `msgpack:"w"`
	Freq float64 `msgpack:"f"`
}

// compiledDict is the msgpack snapshot of a fully parsed and averaged
// text corpus. Compiling skips the per-line parsing and window averaging
// on subsequent startups.
type compiledDict struct {
	Version int             `msgpack:"v"`
	Entries []compiledEntry `msgpack:"e"`
}

// SaveCompiled writes the dictionary as a msgpack snapshot at path.
func SaveCompiled(d *Dictionary, path string) error {
	snapshot := compiledDict{
		Version: compiledVersion,
		Entries: make([]compiledEntry, len(d.Entries)),
	}
	for i, e := range d.Entries {
		snapshot.Entries[i] = compiledEntry{Word: e.Word.String(), Freq: e.Freq}
	}

	data, err := msgpack.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode compiled dictionary: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write compiled dictionary %s: %w", path, err)
	}
	log.Debugf("Compiled %d entries to %s (%d bytes)", len(d.Entries), path, len(data))
	return nil
}

// LoadCompiled reads a msgpack snapshot written by SaveCompiled.
func LoadCompiled(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read compiled dictionary %s: %w", path, err)
	}

	var snapshot compiledDict
	if err := msgpack.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode compiled dictionary %s: %w", path, err)
	}
	if snapshot.Version != compiledVersion {
		return nil, fmt.Errorf("compiled dictionary %s has version %d, want %d (recompile from text)",
			path, snapshot.Version, compiledVersion)
	}

	entries := make([]solver.FreqEntry, 0, len(snapshot.Entries))
	for _, e := range snapshot.Entries {
		word, err := solver.ParseWord(e.Word)
		if err != nil {
			return nil, fmt.Errorf("compiled dictionary %s: %w", path, err)
		}
		entries = append(entries, solver.FreqEntry{Word: word, Freq: e.Freq})
	}

	sortByFrequency(entries)
	log.Debugf("Loaded %d compiled entries from %s", len(entries), path)
	return newDictionary(entries), nil
}
