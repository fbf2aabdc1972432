// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/mask"
)

////////////////////////////////////////////////////////////////////////////////
// Example: links on a rectangular grid
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Link opens two passages on a 2×2 grid and shows that a
// diagonal link is refused.
func ExampleGrid_Link() {
	g, _ := gridgraph.New(2, 2)

	_ = g.Link(0, 1)
	_ = g.Link(1, 3)
	err := g.Link(0, 3)

	fmt.Println("links:", g.LinkCount())
	fmt.Println("0-1 linked:", g.IsLinked(0, 1))
	fmt.Println("degree of 1:", g.Degree(1))
	fmt.Println("diagonal:", err)
	// Output:
	// links: 2
	// 0-1 linked: true
	// degree of 1: 2
	// diagonal: Link: 0,0 and 1,1: gridgraph: cells are not adjacent
}

////////////////////////////////////////////////////////////////////////////////
// Example: masked grid
////////////////////////////////////////////////////////////////////////////////

// ExampleWithMask carves the middle cell out of a 3×3 grid.
func ExampleWithMask() {
	m, _ := mask.FromRows([]string{
		"...",
		".X.",
		"...",
	})
	g, _ := gridgraph.New(3, 3, gridgraph.WithMask(m))

	fmt.Println("cells:", g.Len())
	top, _ := g.CellAt(gridgraph.Coord{Row: 0, Col: 1})
	for _, n := range g.Neighbors(top) {
		at, _ := g.Coord(n)
		fmt.Println("neighbour:", at)
	}
	// Output:
	// cells: 8
	// neighbour: 0,2
	// neighbour: 0,0
}

////////////////////////////////////////////////////////////////////////////////
// Example: polar grid
////////////////////////////////////////////////////////////////////////////////

// ExampleNewPolar prints the ring sizes of a four-ring polar grid.
func ExampleNewPolar() {
	g, _ := gridgraph.NewPolar(4)
	for r := 0; r < g.Rows(); r++ {
		fmt.Printf("ring %d: %d cells\n", r, g.RowLen(r))
	}
	// Output:
	// ring 0: 1 cells
	// ring 1: 6 cells
	// ring 2: 12 cells
	// ring 3: 24 cells
}
