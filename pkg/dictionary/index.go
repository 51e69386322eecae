package dictionary

import (
	"errors"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/tobrh/wordgain/pkg/solver"
)

// errEnough stops a trie walk once the hint budget is filled.
var errEnough = errors.New("enough hints")

// Index is a patricia-trie membership and prefix index over the
// dictionary words. The CLI uses it to flag guesses that are not
// dictionary words and to offer nearby spellings.
type Index struct {
	trie *patricia.Trie
}

// NewIndex builds the index from loaded entries.
func NewIndex(entries []solver.FreqEntry) *Index {
	trie := patricia.NewTrie()
	for _, e := range entries {
		trie.Insert(patricia.Prefix(e.Word.String()), e.Freq)
	}
	return &Index{trie: trie}
}

// Contains reports whether word is in the dictionary.
func (ix *Index) Contains(word solver.Word) bool {
	return ix.trie.Get(patricia.Prefix(word.String())) != nil
}

// SimilarPrefix returns up to limit dictionary words sharing the first
// two letters of word, as hint material for a mistyped guess.
func (ix *Index) SimilarPrefix(word solver.Word, limit int) []string {
	if limit <= 0 {
		return nil
	}
	var hints []string
	err := ix.trie.VisitSubtree(patricia.Prefix(word.String()[:2]), func(p patricia.Prefix, item patricia.Item) error {
		hints = append(hints, string(p))
		if len(hints) >= limit {
			return errEnough
		}
		return nil
	})
	if err != nil && err != errEnough {
		return nil
	}
	return hints
}
