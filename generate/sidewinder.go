package generate

import "github.com/katalvlaran/lvmaze/gridgraph"

// sidewinder processes the grid row by row. Each cell either extends the
// current run eastwards or closes it, linking one random member of the run
// to its north neighbour. Runs are always closed at the east edge and never
// closed early on the northern row, which therefore becomes one corridor.
//
// Complexity: O(N).
func sidewinder(c *carver) error {
	if err := c.requireFull(); err != nil {
		return err
	}
	var run []gridgraph.Cell
	for r := 0; r < c.g.Rows(); r++ {
		run = run[:0]
		for x := range c.g.Row(r) {
			run = append(run, x)
			_, hasNorth := c.northOf(x)
			east, hasEast := c.eastOf(x)

			closeRun := !hasEast || (hasNorth && c.rng.Intn(2) == 0)
			if !closeRun {
				if err := c.link(x, east); err != nil {
					return err
				}
				continue
			}
			member := c.pick(run)
			if n, ok := c.northOf(member); ok {
				if err := c.link(member, n); err != nil {
					return err
				}
			}
			run = run[:0]
		}
	}
	return nil
}
