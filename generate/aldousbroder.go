package generate

// aldousBroder walks from a random cell to uniformly random neighbours and
// links every cell on its first visit. The result is a uniform spanning
// tree, but the walk may take O(N²) steps on unlucky shapes; every step
// counts against the step limit.
func aldousBroder(c *carver) error {
	visited := make([]bool, c.g.Size())
	cur := c.pick(c.cells)
	visited[cur] = true
	remaining := len(c.cells) - 1

	for remaining > 0 {
		if err := c.step(); err != nil {
			return err
		}
		next := c.pick(c.neighbors(cur))
		if !visited[next] {
			if err := c.link(cur, next); err != nil {
				return err
			}
			visited[next] = true
			remaining--
		}
		cur = next
	}
	return nil
}
