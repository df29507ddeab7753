package maze

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazegen/pathfinder"
)

// Sentinel errors returned by maze construction and generation.
// Callers match them with errors.Is; wrapped variants carry the offending
// values.
var (
	// ErrSizeTooSmall is returned by New when size < MinSize.
	ErrSizeTooSmall = errors.New("maze: size must be at least 4")

	// ErrOptionViolation is returned by New when a functional option
	// received an out-of-range value.
	ErrOptionViolation = errors.New("maze: invalid option value")

	// ErrDimensionMismatch is returned by SetGrid when the staged grid does
	// not match the maze dimensions.
	ErrDimensionMismatch = errors.New("maze: grid dimensions do not match maze size")

	// ErrGenerationFailed is returned by GenerateMaze when no attempt
	// within the retry budget produced a maze satisfying the diversity
	// constraint, or when the constraint is unsatisfiable outright.
	ErrGenerationFailed = errors.New("maze: generation failed to satisfy constraints")
)

// Tunable defaults. DefaultOptions starts from these; functional options
// override them per maze.
const (
	// MinSize is the smallest accepted square side. Below it there is no
	// interior to carve.
	MinSize = 4

	// DefaultMinValidPaths is the route-diversity floor enforced by
	// GenerateMaze.
	DefaultMinValidPaths = 3

	// DefaultLoopBias is the probability of carving a frontier cell that
	// already touches more than one passable cell, which is what retains
	// loops (and therefore alternative routes) in the maze.
	DefaultLoopBias = 0.25

	// DefaultMaxAttempts bounds the number of independent carve attempts
	// before GenerateMaze reports ErrGenerationFailed.
	DefaultMaxAttempts = 16
)

// Options carries the tunable generation parameters of a Maze.
// Zero value is NOT ready to use: construct via DefaultOptions.
type Options struct {
	// MinValidPaths is the minimum number of structurally distinct
	// start→goal routes GenerateMaze must certify. Must be >= 1.
	MinValidPaths int

	// Algorithm selects the search strategy used to validate generation
	// and to answer FindPath. Must name a known strategy.
	Algorithm pathfinder.Algorithm

	// LoopBias is the probability in [0,1] of keeping a loop during
	// frontier carving. Higher values yield denser, more open mazes.
	LoopBias float64

	// MaxAttempts is the total number of carve attempts (first try
	// included) before generation gives up. Must be >= 1.
	MaxAttempts int

	// err records the first option violation; New surfaces it as
	// ErrOptionViolation.
	err error
}

// DefaultOptions returns the baseline generation parameters:
// MinValidPaths=3, Algorithm=BFS, LoopBias=0.25, MaxAttempts=16.
func DefaultOptions() Options {
	return Options{
		MinValidPaths: DefaultMinValidPaths,
		Algorithm:     pathfinder.AlgorithmBFS,
		LoopBias:      DefaultLoopBias,
		MaxAttempts:   DefaultMaxAttempts,
	}
}

// Option mutates Options. Invalid values are recorded, not applied; New
// surfaces the first violation as ErrOptionViolation.
type Option func(*Options)

// WithMinValidPaths requires at least n structurally distinct start→goal
// routes. n < 1 is a violation.
func WithMinValidPaths(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MinValidPaths %d < 1", ErrOptionViolation, n)
			return
		}
		o.MinValidPaths = n
	}
}

// WithAlgorithm selects the validating search strategy.
// AlgorithmUnspecified is a violation; use the default instead of setting
// nothing explicitly.
func WithAlgorithm(a pathfinder.Algorithm) Option {
	return func(o *Options) {
		if a == pathfinder.AlgorithmUnspecified {
			o.err = fmt.Errorf("%w: algorithm must be specified", ErrOptionViolation)
			return
		}
		o.Algorithm = a
	}
}

// WithLoopBias sets the loop-retention probability. p outside [0,1] is a
// violation.
func WithLoopBias(p float64) Option {
	return func(o *Options) {
		if p < 0 || p > 1 {
			o.err = fmt.Errorf("%w: LoopBias %v outside [0,1]", ErrOptionViolation, p)
			return
		}
		o.LoopBias = p
	}
}

// WithMaxAttempts bounds the carve attempts. n < 1 is a violation.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxAttempts %d < 1", ErrOptionViolation, n)
			return
		}
		o.MaxAttempts = n
	}
}
