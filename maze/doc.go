// Package maze owns the maze aggregate and its seeded generation engine.
//
// What:
//
//   - Maze binds a passability grid, start/goal positions, a seed, the
//     route-diversity constraint, and the configured search strategy, plus
//     the cached route of the most recent successful search.
//   - GenerateMaze carves the grid with Prim-style randomized frontier
//     growth, guarantees start→goal connectivity, and keeps opening
//     loop-forming walls until at least MinValidPaths structurally distinct
//     routes exist.
//   - FindPath answers the start→goal query through the configured strategy
//     and caches the route on the aggregate.
//
// Determinism:
//
//   - All randomness flows from one rand.New(rand.NewSource(seed)) stream
//     created per GenerateMaze call: identical seed and parameters always
//     reproduce an identical grid, across runs and platforms.
//
// Generation:
//
//  1. Scratch grid fully walled; start marked passable.
//  2. Frontier carving: pick a candidate wall with the seeded generator,
//     open it when it touches exactly one passable cell, or with
//     probability LoopBias even when it touches more (loop retention).
//  3. A seed-driven staircase corridor connects the goal to the region
//     reachable from start.
//  4. The validating strategy must find a route; route diversity is then
//     counted by iteratively blocking found-route interiors on a throwaway
//     clone and re-searching.
//  5. Shortfalls open additional loop-forming walls under a per-attempt
//     budget; attempts are retried under a bounded policy (ZeroBackOff,
//     default 16 attempts). A shortfall that persists on a fully open grid
//     is structurally unsatisfiable and fails immediately.
//  6. Only success commits the scratch grid to the aggregate, so a failed
//     generation never exposes partial state.
//
// Bounds policy:
//
//   - size >= 4 is validated at construction; start/goal bounds are lazy
//     and surface as an index panic on first grid access, during
//     generation or search.
//
// Errors:
//
//   - ErrSizeTooSmall: construction with size < 4.
//   - ErrOptionViolation: invalid functional option value.
//   - ErrDimensionMismatch: staging a grid with foreign dimensions.
//   - ErrGenerationFailed: bounded attempts exhausted, or the diversity
//     constraint is unsatisfiable for this start/goal shape.
package maze
