package generate

import "github.com/katalvlaran/lvmaze/gridgraph"

// wilson grows a uniform spanning tree from one random cell. Each round
// starts a random walk at a random cell outside the tree and erases every
// loop the walk makes; once the walk hits the tree its path is linked in.
//
// Steps:
//  1. Seed the tree with one random cell.
//  2. Walk from a random outside cell; on revisiting a cell of the current
//     path, cut the path back to that cell.
//  3. When the walk reaches the tree, link the path and add it to the tree.
//  4. Repeat until every cell is in the tree.
//
// Walk steps count against the step limit.
func wilson(c *carver) error {
	n := c.g.Size()
	// pending holds the cells outside the tree; where[x] is x's index in it.
	pending := make([]gridgraph.Cell, len(c.cells))
	copy(pending, c.cells)
	where := make([]int, n)
	for i, x := range pending {
		where[x] = i
	}
	remove := func(x gridgraph.Cell) {
		i, last := where[x], len(pending)-1
		pending[i] = pending[last]
		where[pending[i]] = i
		pending = pending[:last]
		where[x] = -1
	}

	// 1) seed the tree
	remove(c.pick(pending))

	// onPath[x] is x's position in the current walk plus one, 0 if absent.
	onPath := make([]int, n)
	var path []gridgraph.Cell

	for len(pending) > 0 {
		// 2) loop-erased walk
		cur := c.pick(pending)
		path = append(path[:0], cur)
		onPath[cur] = 1
		for where[cur] >= 0 {
			if err := c.step(); err != nil {
				return err
			}
			cur = c.pick(c.neighbors(cur))
			if at := onPath[cur]; at > 0 {
				for _, x := range path[at:] {
					onPath[x] = 0
				}
				path = path[:at]
				continue
			}
			path = append(path, cur)
			onPath[cur] = len(path)
		}

		// 3) commit the path; its last cell is already in the tree
		for i := 0; i+1 < len(path); i++ {
			if err := c.link(path[i], path[i+1]); err != nil {
				return err
			}
			remove(path[i])
		}
		for _, x := range path {
			onPath[x] = 0
		}
	}
	return nil
}
