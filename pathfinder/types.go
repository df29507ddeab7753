// Package pathfinder defines the strategy contract, the algorithm
// enumeration, and the sentinel errors of the search boundary.
package pathfinder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mazegen/grid"
)

// Sentinel errors for strategy dispatch and the base contract.
var (
	// ErrNotImplemented indicates the base strategy was invoked directly;
	// only concrete variants are usable in production paths.
	ErrNotImplemented = errors.New("pathfinder: strategy not implemented")
	// ErrUnknownAlgorithm indicates an algorithm outside the closed enumeration.
	ErrUnknownAlgorithm = errors.New("pathfinder: unknown algorithm")
)

// Algorithm identifies a search-strategy variant. The enumeration is closed:
// adding a variant means adding a constant and a New case, not changing
// callers.
type Algorithm uint8

const (
	// AlgorithmUnspecified is the zero value; callers holding it fall back
	// to their configured default.
	AlgorithmUnspecified Algorithm = iota
	// AlgorithmBFS selects breadth-first search.
	AlgorithmBFS
)

// String returns the canonical variant name, as used in file names and logs.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmBFS:
		return "BFS"
	default:
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
}

// ParseAlgorithm resolves a case-insensitive variant name.
// Returns ErrUnknownAlgorithm for anything outside the enumeration.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs":
		return AlgorithmBFS, nil
	default:
		return AlgorithmUnspecified, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Maze is the aggregate access a strategy needs: the grid it reads and the
// cached-path field it writes. The maze package implements it; declaring the
// contract here keeps the strategy layer importable from the aggregate
// without a cycle.
type Maze interface {
	// Grid returns the passability grid to search.
	Grid() *grid.Grid
	// SetPath records the most recent successful route on the aggregate;
	// SetPath(nil) clears it.
	SetPath(path []grid.Position)
}

// Strategy is the search capability: one operation, polymorphic over
// Algorithm variants.
//
// FindPath returns an ordered route from start to goal through passable
// cells, or (nil, nil) when the goal is unreachable. On success the route is
// also written to the bound aggregate via SetPath and the identical slice is
// returned. Errors are reserved for strategy failures (ErrNotImplemented);
// they never signal "no path".
type Strategy interface {
	FindPath(start, goal grid.Position) ([]grid.Position, error)
}

// New constructs the strategy for alg bound to m.
// Returns ErrUnknownAlgorithm when alg is outside the enumeration.
func New(alg Algorithm, m Maze) (Strategy, error) {
	switch alg {
	case AlgorithmBFS:
		return NewBFS(m), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}
}
