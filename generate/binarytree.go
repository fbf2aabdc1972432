package generate

import "github.com/katalvlaran/lvmaze/gridgraph"

// binaryTree visits every cell in scan order and links it to its north or
// east neighbour, chosen at random when both exist. The north-east corner
// (centre of a polar grid) has neither and roots the tree.
//
// Complexity: O(N).
func binaryTree(c *carver) error {
	if err := c.requireFull(); err != nil {
		return err
	}
	var choice [2]gridgraph.Cell
	for _, x := range c.cells {
		opts := choice[:0]
		if n, ok := c.northOf(x); ok {
			opts = append(opts, n)
		}
		if e, ok := c.eastOf(x); ok {
			opts = append(opts, e)
		}
		if len(opts) == 0 {
			continue
		}
		if err := c.link(x, c.pick(opts)); err != nil {
			return err
		}
	}
	return nil
}
