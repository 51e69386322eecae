package server

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/tobrh/wordgain/internal/logger"
	"github.com/tobrh/wordgain/pkg/dictionary"
	"github.com/tobrh/wordgain/pkg/solver"
)

// slog keeps diagnostics on stderr; stdout belongs to the protocol.
var slog = logger.New("ipc")

// Server handles the IPC for solve requests.
type Server struct {
	dict     *dictionary.Dictionary
	curve    solver.Curve
	maxLimit int
	dec      *msgpack.Decoder
	enc      *msgpack.Encoder
}

// NewServer creates a solve server using stdin/stdout for IPC.
// maxLimit caps per-request suggestion limits; 0 leaves them uncapped.
func NewServer(dict *dictionary.Dictionary, curve solver.Curve, maxLimit int) *Server {
	return newServer(dict, curve, maxLimit, os.Stdin, os.Stdout)
}

func newServer(dict *dictionary.Dictionary, curve solver.Curve, maxLimit int, r io.Reader, w io.Writer) *Server {
	return &Server{
		dict:     dict,
		curve:    curve,
		maxLimit: maxLimit,
		dec:      msgpack.NewDecoder(r),
		enc:      msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. Returns nil on EOF.
func (s *Server) Start() error {
	slog.Debug("Starting solve server")

	for {
		var request SolveRequest
		if err := s.dec.Decode(&request); err != nil {
			if err == io.EOF {
				return nil
			}
			slog.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleSolve(request)
	}
}

// handleSolve rebuilds the candidate set, replays the request's history
// and responds with survivors plus ranked suggestions.
func (s *Server) handleSolve(request SolveRequest) {
	start := time.Now()

	cands := solver.NewCandidates(s.dict.Entries, s.curve)
	for i, obs := range request.History {
		guess, err := solver.ParseWord(obs.Guess)
		if err != nil {
			s.sendError(request.ID, fmt.Sprintf("history[%d]: bad guess: %v", i, err), 400)
			return
		}
		observed, err := solver.ParseMarks(obs.Marks)
		if err != nil {
			s.sendError(request.ID, fmt.Sprintf("history[%d]: bad marks: %v", i, err), 400)
			return
		}
		cands.Narrow(guess, observed)
	}

	ranked := solver.RankGuesses(s.dict.Entries, cands)
	limit := request.Limit
	if s.maxLimit > 0 && (limit <= 0 || limit > s.maxLimit) {
		limit = s.maxLimit
	}
	if limit > 0 && len(ranked) > limit {
		// Ascending order: the strongest suggestions are the tail.
		ranked = ranked[len(ranked)-limit:]
	}

	response := SolveResponse{
		ID:          request.ID,
		Candidates:  make([]string, 0, len(cands)),
		Suggestions: make([]Suggestion, 0, len(ranked)),
		Count:       len(cands),
		TimeTaken:   time.Since(start).Microseconds(),
	}
	for _, w := range cands.Words() {
		response.Candidates = append(response.Candidates, w.String())
	}
	for _, g := range ranked {
		response.Suggestions = append(response.Suggestions, Suggestion{
			Word:    g.Word.String(),
			Entropy: g.Entropy,
		})
	}
	s.sendResponse(response)
}

// sendResponse encodes any message onto stdout.
func (s *Server) sendResponse(response any) {
	if err := s.enc.Encode(response); err != nil {
		slog.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error message for the given request ID.
func (s *Server) sendError(id, message string, code int) {
	slog.Debugf("Request %s failed: %s", id, message)
	s.sendResponse(SolveError{ID: id, Error: message, Code: code})
}
