// Package grid owns the rectangular passability matrix a maze is carved
// into, and answers bounded adjacency queries over it.
//
// What:
//
//   - Grid wraps a rows×cols matrix of Cell values (Wall or Passable).
//   - CellNeighbours reports the four orthogonal neighbours of a cell in the
//     fixed order up, down, left, right; out-of-bounds directions are nil.
//   - Reachable flood-fills the region connected to a position through
//     passable cells.
//   - FromRows stages a grid from literal integer rows (nonzero = passable).
//
// Why:
//
//   - Maze generation: the carver flips walls to passages in place.
//   - Pathfinding: search walks the implicit 4-connected graph where an
//     edge exists iff both endpoints are passable.
//   - Tests: scenarios are staged wholesale from integer literals.
//
// Contract:
//
//   - Dimensions are fixed at construction and never resized.
//   - The queried cell of CellNeighbours must itself be in bounds; the
//     method does not validate it, and an invalid cell fails with an index
//     panic rather than a sentinel. Direction indices DirUp(0), DirDown(1),
//     DirLeft(2), DirRight(3) are part of the public contract.
//
// Complexity:
//
//   - CellNeighbours, At, Set, InBounds: O(1).
//   - Fill, Clone, CountPassable, Reachable: O(rows×cols).
//
// Errors:
//
//   - ErrEmptyGrid: construction with no rows or no columns.
//   - ErrNonRectangular: staged rows of differing lengths.
package grid
