// Package dictionary loads word-frequency corpora for the solver.
//
// The canonical source format is plain text, one word per line followed by
// one or more frequency samples. Loaded corpora can be compiled into a
// msgpack snapshot for faster startup (see formats.go).
package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/tobrh/wordgain/pkg/solver"
)

// DefaultSampleWindow bounds how many trailing frequency samples per line
// contribute to the averaged frequency.
const DefaultSampleWindow = 5

// Dictionary is the loaded corpus: averaged frequency entries sorted
// ascending by frequency, plus a prefix index over the words. Read-only
// after construction.
type Dictionary struct {
	Entries []solver.FreqEntry
	index   *Index
}

// LoadFile loads a dictionary from path, dispatching on extension:
// .txt is parsed as the text corpus format, .bin as a compiled snapshot.
func LoadFile(path string, window int) (*Dictionary, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt":
		return LoadText(path, window)
	case ".bin":
		return LoadCompiled(path)
	default:
		return nil, fmt.Errorf("unsupported dictionary extension %q for %s", ext, path)
	}
}

// LoadText parses the text corpus format. Each line is a word followed by
// whitespace-separated frequency samples; the entry frequency is the mean
// of the last window samples. Malformed lines are errors: the solver core
// assumes well-formed input, so problems must surface here.
func LoadText(path string, window int) (*Dictionary, error) {
	if window <= 0 {
		window = DefaultSampleWindow
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary %s: %w", path, err)
	}
	defer file.Close()

	var entries []solver.FreqEntry
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		entry, err := parseLine(line, window)
		if err != nil {
			return nil, fmt.Errorf("dictionary %s line %d: %w", path, lineNo, err)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}

	sortByFrequency(entries)
	log.Debugf("Loaded %d dictionary entries from %s", len(entries), path)
	return newDictionary(entries), nil
}

// parseLine splits one corpus line into a word and its averaged frequency.
func parseLine(line string, window int) (solver.FreqEntry, error) {
	fields := strings.Fields(line)
	word, err := solver.ParseWord(fields[0])
	if err != nil {
		return solver.FreqEntry{}, err
	}
	samples := fields[1:]
	if len(samples) == 0 {
		return solver.FreqEntry{}, fmt.Errorf("word %q has no frequency samples", fields[0])
	}
	// Only the trailing window of samples counts.
	if len(samples) > window {
		samples = samples[len(samples)-window:]
	}
	sum := 0.0
	for _, s := range samples {
		freq, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return solver.FreqEntry{}, fmt.Errorf("word %q has unparsable frequency sample %q: %w", fields[0], s, err)
		}
		sum += freq
	}
	return solver.FreqEntry{Word: word, Freq: sum / float64(len(samples))}, nil
}

// sortByFrequency orders entries ascending by averaged frequency.
// Presentation order only; nothing downstream depends on it semantically.
func sortByFrequency(entries []solver.FreqEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Freq < entries[j].Freq
	})
}

func newDictionary(entries []solver.FreqEntry) *Dictionary {
	return &Dictionary{
		Entries: entries,
		index:   NewIndex(entries),
	}
}

// Index returns the prefix index over the dictionary words.
func (d *Dictionary) Index() *Index {
	return d.index
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return len(d.Entries)
}
