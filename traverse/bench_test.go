package traverse_test

import (
	"testing"

	"github.com/katalvlaran/mazewalk/grid"
	"github.com/katalvlaran/mazewalk/traverse"
)

// benchmarkRun measures one search on a 300×300 maze with the reference
// wall density, resetting marks between iterations.
// Complexity: O(N) for BFS/DFS, O(N log N) for greedy.
func benchmarkRun(b *testing.B, alg traverse.Algorithm) {
	g, err := grid.Generate(300, 300, grid.DefaultWallProbability, 42)
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Reset()
		if _, err = traverse.Run(g, alg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBFS(b *testing.B)             { benchmarkRun(b, traverse.AlgBFS) }
func BenchmarkDFS(b *testing.B)             { benchmarkRun(b, traverse.AlgDFS) }
func BenchmarkGreedyBestFirst(b *testing.B) { benchmarkRun(b, traverse.AlgGreedyBestFirst) }
