package generate

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// Verify checks that the links of g form a spanning tree over its included
// cells: a single link component holding every cell, and exactly N-1
// links, which together rule out cycles. Returns ErrNotSpanningTree
// describing the first violated property.
//
// Complexity: O(N·d).
func Verify(g *gridgraph.Grid) error {
	if g == nil {
		return ErrGridNil
	}
	n := g.Len()
	if got := g.LinkCount(); got != n-1 {
		return fmt.Errorf("%w: %d links for %d cells", ErrNotSpanningTree, got, n)
	}
	if comps := g.Components(); len(comps) != 1 {
		return fmt.Errorf("%w: %d components", ErrNotSpanningTree, len(comps))
	}
	return nil
}
