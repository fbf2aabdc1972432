package generate

import "github.com/katalvlaran/lvmaze/gridgraph"

// prim is the simplified randomized Prim: keep a list of active cells, pick
// one at random, link it to a random unvisited neighbour and activate that
// neighbour; drop the cell once it has none left. Many short dead ends,
// radial texture around the start.
//
// Complexity: O(N·d).
func prim(c *carver) error {
	visited := make([]bool, c.g.Size())
	start := c.pick(c.cells)
	visited[start] = true
	active := []gridgraph.Cell{start}

	for len(active) > 0 {
		i := 0
		if len(active) > 1 {
			i = c.rng.Intn(len(active))
		}
		cur := active[i]
		fresh := filter(c.neighbors(cur), func(x gridgraph.Cell) bool { return !visited[x] })
		if len(fresh) == 0 {
			active[i] = active[len(active)-1]
			active = active[:len(active)-1]
			continue
		}
		next := c.pick(fresh)
		if err := c.link(cur, next); err != nil {
			return err
		}
		visited[next] = true
		active = append(active, next)
	}
	return nil
}
