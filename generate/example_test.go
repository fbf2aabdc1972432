package generate_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmaze/generate"
	"github.com/katalvlaran/lvmaze/gridgraph"
)

// ExampleGenerate carves a single-row grid. Sidewinder cannot close a run
// northwards on the top row, so the result is one corridor for any seed.
func ExampleGenerate() {
	g, _ := gridgraph.New(1, 5)
	if err := generate.Generate(generate.Sidewinder, g, 7); err != nil {
		fmt.Println("error:", err)
		return
	}
	var edges []string
	for a, b := range g.Edges() {
		edges = append(edges, fmt.Sprintf("%d-%d", a, b))
	}
	fmt.Println(strings.Join(edges, " "))
	fmt.Println("spanning tree:", generate.Verify(g) == nil)
	// Output:
	// 0-1 1-2 2-3 3-4
	// spanning tree: true
}

// ExampleParseAlgorithm resolves canonical names and aliases.
func ExampleParseAlgorithm() {
	for _, name := range []string{"Wilson", "hunt_and_kill", "dfs"} {
		alg, err := generate.ParseAlgorithm(name)
		fmt.Println(alg, err)
	}
	_, err := generate.ParseAlgorithm("maze-o-matic")
	fmt.Println(err)
	// Output:
	// wilson <nil>
	// hunt-and-kill <nil>
	// recursive-backtracker <nil>
	// generate: unknown algorithm: "maze-o-matic"
}
