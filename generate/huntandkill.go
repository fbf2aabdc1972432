package generate

import "github.com/katalvlaran/lvmaze/gridgraph"

// huntAndKill performs a random walk restricted to unvisited neighbours.
// When the walk is stuck it hunts: it scans the cells in order for the
// first unvisited cell next to the visited area, links it to a random
// visited neighbour and resumes walking from there.
//
// Cells before the hunt cursor are all visited, so each hunt starts at the
// first unvisited cell. Worst case O(N²) for the hunts.
func huntAndKill(c *carver) error {
	visited := make([]bool, c.g.Size())
	cur := c.pick(c.cells)
	visited[cur] = true
	hunt := 0

	for cur != gridgraph.NoCell {
		fresh := filter(c.neighbors(cur), func(x gridgraph.Cell) bool { return !visited[x] })
		if len(fresh) > 0 {
			next := c.pick(fresh)
			if err := c.link(cur, next); err != nil {
				return err
			}
			visited[next] = true
			cur = next
			continue
		}

		cur = gridgraph.NoCell
		for hunt < len(c.cells) && visited[c.cells[hunt]] {
			hunt++
		}
		for i := hunt; i < len(c.cells); i++ {
			x := c.cells[i]
			if visited[x] {
				continue
			}
			seen := filter(c.neighbors(x), func(y gridgraph.Cell) bool { return visited[y] })
			if len(seen) == 0 {
				continue
			}
			if err := c.link(x, c.pick(seen)); err != nil {
				return err
			}
			visited[x] = true
			cur = x
			break
		}
	}
	return nil
}
