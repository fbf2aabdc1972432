package distances

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// PathTo returns the cells from the source to target, both included. It
// walks back from target, each time stepping to the first linked
// neighbour (in neighbour order) whose distance is one less.
// Returns gridgraph.ErrInvalidCell for ids that are not included cells and
// ErrUnreachedTarget for cells without a distance.
//
// Complexity: O(L·d) for a path of L cells.
func (d *Distances) PathTo(target gridgraph.Cell) ([]gridgraph.Cell, error) {
	if !d.grid.Contains(target) {
		return nil, fmt.Errorf("distances: path to %d: %w", target, gridgraph.ErrInvalidCell)
	}
	k := d.dist[target]
	if k == Unreached {
		return nil, fmt.Errorf("distances: path to %d: %w", target, ErrUnreachedTarget)
	}

	path := make([]gridgraph.Cell, k+1)
	path[k] = target
	var buf []gridgraph.Cell
	for cur := target; k > 0; k-- {
		buf = d.grid.AppendLinks(buf[:0], cur)
		for _, n := range buf {
			if d.dist[n] == k-1 {
				cur = n
				break
			}
		}
		path[k-1] = cur
	}
	return path, nil
}

// LongestPath approximates the maze diameter with two searches: from the
// first included cell to its farthest cell, then from there to the
// farthest cell again. On a tree the result is exact. It returns the
// distances of the second search and the path between the two endpoints.
func LongestPath(g *gridgraph.Grid, opts ...Option) (*Distances, []gridgraph.Cell, error) {
	if g == nil {
		return nil, nil, ErrGridNil
	}
	first, err := Compute(g, g.First(), opts...)
	if err != nil {
		return nil, nil, err
	}
	from, _ := first.Farthest()
	second, err := Compute(g, from, opts...)
	if err != nil {
		return nil, nil, err
	}
	to, _ := second.Farthest()
	path, err := second.PathTo(to)
	if err != nil {
		return nil, nil, err
	}
	return second, path, nil
}

// Diameter returns the endpoints and length of the longest path found by
// LongestPath.
func Diameter(g *gridgraph.Grid, opts ...Option) (from, to gridgraph.Cell, length int, err error) {
	d, path, err := LongestPath(g, opts...)
	if err != nil {
		return gridgraph.NoCell, gridgraph.NoCell, 0, err
	}
	return d.Source(), path[len(path)-1], len(path) - 1, nil
}
