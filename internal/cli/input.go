// Package cli runs the interactive solving session for testing and real play.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/tobrh/wordgain/internal/logger"
	"github.com/tobrh/wordgain/pkg/dictionary"
	"github.com/tobrh/wordgain/pkg/solver"
)

// clog prefixes everything the session prints; stdout stays free for
// scripted capture of the solver output.
var clog = logger.New("session")

// InputHandler reads "<guess> <marks>" observations from stdin, narrowing
// the session's candidate set after each one and printing the surviving
// candidates plus the entropy-ranked next guesses.
type InputHandler struct {
	dict         *dictionary.Dictionary
	curve        solver.Curve
	cands        solver.Candidates
	suggestLimit int
	hintLimit    int
	observations int
}

// NewInputHandler builds a session over the loaded dictionary.
// limit caps the printed suggestions (0 shows all); hintLimit caps the
// "similar words" hints offered for guesses missing from the dictionary.
func NewInputHandler(dict *dictionary.Dictionary, curve solver.Curve, limit, hintLimit int) *InputHandler {
	return &InputHandler{
		dict:         dict,
		curve:        curve,
		cands:        solver.NewCandidates(dict.Entries, curve),
		suggestLimit: limit,
		hintLimit:    hintLimit,
	}
}

// Start begins the interface loop.
// Each line is an observation: the guessed word and the five b/y/g marks
// the puzzle answered with. 'reset' restores the full candidate set,
// 'quit' exits. The loop ends when stdin does.
func (h *InputHandler) Start() error {
	clog.Print("wordgain session")
	clog.Printf("%d dictionary words, %d initial candidates", h.dict.Len(), len(h.cands))
	clog.Print("enter '<guess> <marks>' (marks: b=absent y=present g=correct), 'reset', or 'quit':")
	reader := bufio.NewReader(os.Stdin)

	for {
		clog.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil
		}
		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "quit":
			return nil
		case "reset":
			h.cands = solver.NewCandidates(h.dict.Entries, h.curve)
			h.observations = 0
			clog.Printf("Session reset: %d candidates", len(h.cands))
			continue
		}
		h.handleObservation(line)
	}
}

// handleObservation applies one guess/marks pair and reports the result.
func (h *InputHandler) handleObservation(line string) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		clog.Errorf("Expected '<guess> <marks>', got %q", line)
		return
	}

	guess, err := solver.ParseWord(fields[0])
	if err != nil {
		clog.Errorf("Bad guess: %v", err)
		return
	}
	observed, err := solver.ParseMarks(fields[1])
	if err != nil {
		clog.Errorf("Bad marks: %v", err)
		return
	}

	if !h.dict.Index().Contains(guess) {
		clog.Warnf("%q is not a dictionary word; narrowing anyway", guess)
		if hints := h.dict.Index().SimilarPrefix(guess, h.hintLimit); len(hints) > 0 {
			clog.Printf("similar words: %s", strings.Join(hints, ", "))
		}
	}

	before := len(h.cands)
	h.cands.Narrow(guess, observed)
	h.observations++
	clog.Printf("Observation %d: %s %s narrowed %d -> %d candidates",
		h.observations, guess, observed.Marks(), before, len(h.cands))

	h.printCandidates()
	h.printSuggestions()
}

// printCandidates lists every surviving candidate, then a separator.
func (h *InputHandler) printCandidates() {
	for _, w := range h.cands.Words() {
		clog.Printf("%s", w)
	}
	clog.Print("***")
}

// printSuggestions ranks the whole dictionary against the surviving set
// and prints ascending by entropy: read from the bottom, the best guess
// comes last.
func (h *InputHandler) printSuggestions() {
	ranked := solver.RankGuesses(h.dict.Entries, h.cands)
	if len(ranked) == 0 {
		clog.Warn("No informative guesses remain")
		return
	}
	if h.suggestLimit > 0 && len(ranked) > h.suggestLimit {
		ranked = ranked[len(ranked)-h.suggestLimit:]
	}
	for _, g := range ranked {
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", g.Word)
		clog.Printf("%.6f %s", g.Entropy, clWord)
	}
}
