package generate

import (
	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// recursiveBacktracker is a randomized depth-first search. It keeps the
// current path on an explicit stack: while the top cell has unvisited
// neighbours it links one at random and pushes it, otherwise it pops.
// Long corridors, few dead ends.
//
// Complexity: O(N·d) time, O(N) stack.
func recursiveBacktracker(c *carver) error {
	visited := make([]bool, c.g.Size())
	st := stack.New[gridgraph.Cell]()
	start := c.pick(c.cells)
	visited[start] = true
	st.Push(start)

	for st.Size() > 0 {
		cur := st.Peek()
		fresh := filter(c.neighbors(cur), func(x gridgraph.Cell) bool { return !visited[x] })
		if len(fresh) == 0 {
			st.Pop()
			continue
		}
		next := c.pick(fresh)
		if err := c.link(cur, next); err != nil {
			return err
		}
		visited[next] = true
		st.Push(next)
	}
	return nil
}
