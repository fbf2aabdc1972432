package gridgraph

import "github.com/zyedidia/generic/queue"

// Components returns the connected components of the link graph. Each
// component lists its cells in BFS order from its lowest id; components are
// ordered by that id. A finished maze has exactly one component.
//
// Time:   O(N·d).
// Memory: O(N) for visited flags and output.
func (g *Grid) Components() [][]Cell {
	return g.flood(true)
}

// Regions returns the connected components of the included cells under
// plain adjacency, links ignored. A mask that splits the grid into several
// regions cannot be covered by a single spanning tree.
func (g *Grid) Regions() [][]Cell {
	return g.flood(false)
}

func (g *Grid) flood(linkedOnly bool) [][]Cell {
	seen := make([]bool, len(g.included))
	var comps [][]Cell
	var buf []Cell

	for c := range g.Cells() {
		if seen[c] {
			continue
		}
		seen[c] = true
		q := queue.New[Cell]()
		q.Enqueue(c)
		var comp []Cell

		for !q.Empty() {
			u := q.Dequeue()
			comp = append(comp, u)
			if linkedOnly {
				buf = g.AppendLinks(buf[:0], u)
			} else {
				buf = g.AppendNeighbors(buf[:0], u)
			}
			for _, v := range buf {
				if !seen[v] {
					seen[v] = true
					q.Enqueue(v)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}
