package maze_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/mazegen/grid"
	"github.com/katalvlaran/mazegen/maze"
	"github.com/katalvlaran/mazegen/pathfinder"
)

// BenchmarkGenerateMaze measures full generation (carve, connectivity,
// diversity repair) at typical sizes with default options.
func BenchmarkGenerateMaze(b *testing.B) {
	for _, size := range []int{16, 40, 64} {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				m, err := maze.New(42, size, grid.Pos(1, 1), grid.Pos(size-2, size-2))
				if err != nil {
					b.Fatal(err)
				}
				if err = m.GenerateMaze(pathfinder.AlgorithmBFS); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkMazeFindPath measures a repeated search over one generated maze,
// cache rewrites included.
func BenchmarkMazeFindPath(b *testing.B) {
	const size = 40
	m, err := maze.New(42, size, grid.Pos(1, 1), grid.Pos(size-2, size-2))
	if err != nil {
		b.Fatal(err)
	}
	if err = m.GenerateMaze(pathfinder.AlgorithmBFS); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = m.FindPath(); err != nil {
			b.Fatal(err)
		}
	}
}
