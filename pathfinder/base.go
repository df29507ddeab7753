package pathfinder

import "github.com/katalvlaran/mazegen/grid"

// Base is the reference strategy variant. It carries no algorithm: invoking
// FindPath on it directly returns ErrNotImplemented. It exists to pin the
// shared contract (a strategy is constructed bound to one aggregate and
// keeps that binding for its lifetime), and concrete variants embed it to
// inherit the binding.
type Base struct {
	maze Maze
}

// NewBase binds the reference variant to m. Used by contract tests and by
// concrete variants via embedding; never dispatched by New.
func NewBase(m Maze) *Base {
	return &Base{maze: m}
}

// Maze returns the aggregate this strategy is bound to. The same value the
// strategy was constructed with, always.
func (b *Base) Maze() Maze {
	return b.maze
}

// FindPath on the base variant always fails with ErrNotImplemented.
func (b *Base) FindPath(_, _ grid.Position) ([]grid.Position, error) {
	return nil, ErrNotImplemented
}
