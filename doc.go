// Package mazegen is a seeded maze workshop: generate, solve and export
// square mazes with reproducible randomness.
//
// 🚀 What is mazegen?
//
//	A small, deterministic maze toolkit that brings together:
//		• Grid model: passability matrix, bounded neighbour queries, flood fill
//		• Search strategies: pluggable pathfinding behind one interface (BFS today)
//		• Maze aggregate: seed, start/goal, route cache, functional options
//		• Generation: randomized frontier carving with a route-diversity guarantee
//		• Export: HTML documents and PNG images, solution overlay optional
//		• CLI: a cobra/viper command wrapping the whole pipeline
//
// ✨ Why choose mazegen?
//
//   - Reproducible – one seed, one maze, on every platform
//   - Honest contracts – sentinel errors, lazy bounds checks, no hidden state
//   - Verified diversity – generated mazes admit a configurable number of
//     structurally distinct start→goal routes
//   - Composable – aggregate, strategies and exporters meet at small interfaces
//
// Under the hood, everything is organized bottom-up:
//
//	grid/       — passability matrix, positions, neighbours, reachability
//	pathfinder/ — Algorithm enum, Strategy interface, the BFS walker
//	maze/       — the Maze aggregate and its seeded generation engine
//	export/     — HTML and PNG renderers over one Source interface
//	logger/     — zap-backed structured logging for command code
//	cmd/        — the mazegen binary (root command + generate subcommand)
//
// Quick example:
//
//	m, err := maze.New(42, 40, grid.Pos(1, 1), grid.Pos(38, 38))
//	if err != nil { ... }
//	if err := m.GenerateMaze(pathfinder.AlgorithmBFS); err != nil { ... }
//	fmt.Println(len(m.Path()))                 // cached start→goal route
//	_ = export.HTMLFile("maze.html", m, true)  // render with the solution drawn
//
// Dive into each package's doc.go for contracts, complexity and error
// semantics.
//
//	go get github.com/katalvlaran/mazegen
package mazegen
