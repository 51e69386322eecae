/*
Package server implements msgpack IPC for the solver.

The protocol is request/response over stdin/stdout: clients send a solve
request carrying the full observation history and receive the surviving
candidates plus entropy-ranked suggestions. Every message carries an ID so
clients can pipeline requests.

A solve request:

	{"id": "req_001", "h": [{"g": "tares", "m": "bybyb"}], "l": 20}

and its response, suggestions sorted ascending by entropy:

	{"id": "req_001", "cand": ["colin", ...], "s": [{"w": "psych", "e": 2.1}, ...], "c": 2, "t": 145}

Requests are stateless: the server rebuilds the initial candidate set and
replays the history on every call, so clients own their session state and
a lost response never desynchronises anything.

Malformed guesses or marks produce an error message, never a dropped
connection:

	{"id": "req_001", "e": "bad guess ...", "c": 400}
*/
package server

// Observation is one historical guess and the marks it received.
type Observation struct {
	Guess string `msgpack:"g"`
	Marks string `msgpack:"m"`
}

// SolveRequest - solve request with full observation history
type SolveRequest struct {
	ID      string        `msgpack:"id"`
	History []Observation `msgpack:"h"`
	Limit   int           `msgpack:"l,omitempty"`
}

// Suggestion - one ranked next guess
type Suggestion struct {
	Word    string  `msgpack:"w"`
	Entropy float64 `msgpack:"e"`
}

// SolveResponse - solve response
type SolveResponse struct {
	ID          string       `msgpack:"id"`
	Candidates  []string     `msgpack:"cand"`
	Suggestions []Suggestion `msgpack:"s"`
	Count       int          `msgpack:"c"`
	TimeTaken   int64        `msgpack:"t"`
}

// SolveError holds basic error information for solve requests
type SolveError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
