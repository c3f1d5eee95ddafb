package search

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned for an unrecognised algorithm name or value.
var ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

// Algorithm names one of the search strategies.
type Algorithm int

const (
	BFS Algorithm = iota
	DFS
	UCS
	DLS
	IDDFS
	Bidirectional
)

var algorithmNames = [...]string{
	BFS:           "bfs",
	DFS:           "dfs",
	UCS:           "ucs",
	DLS:           "dls",
	IDDFS:         "iddfs",
	Bidirectional: "bidirectional",
}

// Algorithms lists every Algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{BFS, DFS, UCS, DLS, IDDFS, Bidirectional}
}

// String returns the lower-case name, e.g. "iddfs".
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// UsesDepth reports whether the algorithm takes a depth limit.
func (a Algorithm) UsesDepth() bool { return a == DLS || a == IDDFS }

// Weighted reports whether the algorithm searches the weighted graph.
func (a Algorithm) Weighted() bool { return a == UCS }

// ParseAlgorithm maps a name (case-insensitive; "bidir" is accepted for
// Bidirectional) to its Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "bidir" {
		return Bidirectional, nil
	}
	for i, n := range algorithmNames {
		if n == name {
			return Algorithm(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if a < 0 || int(a) >= len(algorithmNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}

	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(b []byte) error {
	v, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = v

	return nil
}
