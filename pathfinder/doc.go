// Package pathfinder provides the pluggable search-strategy boundary of a
// maze and its breadth-first search implementation.
//
// What:
//
//   - Algorithm is the closed enumeration of strategy variants (currently
//     AlgorithmBFS); New dispatches a variant bound to one maze aggregate.
//   - Strategy is the capability contract: FindPath(start, goal) returns an
//     ordered route of positions, or (nil, nil) when the goal is
//     unreachable; "no path" is a normal result, never an error.
//   - Base pins the parts of the contract shared by every variant
//     (aggregate binding, result caching) and fails with ErrNotImplemented
//     when invoked directly; concrete variants embed it.
//   - BFS walks the implicit 4-connected graph where an edge joins two
//     adjacent cells iff both are passable, and returns a minimum-length
//     route.
//
// Contract:
//
//   - Strategies read the grid and never mutate cells.
//   - On success the route is written into the bound aggregate via SetPath
//     (an observable side effect) and the same slice is returned.
//   - Start and goal cells are read before the walk, so out-of-range
//     coordinates fail with an index panic at that first grid access.
//   - Equal, passable start and goal yield the trivial single-cell route.
//
// Determinism:
//
//   - Neighbour expansion follows the grid's fixed up, down, left, right
//     order, which fixes the tie-break whenever several shortest routes
//     exist.
//
// Complexity:
//
//   - BFS: O(rows×cols) time and memory.
//
// Errors:
//
//   - ErrNotImplemented: the base variant was invoked directly.
//   - ErrUnknownAlgorithm: dispatch or parse of a variant outside the
//     enumeration.
package pathfinder
