package generate

import "github.com/katalvlaran/lvmaze/gridgraph"

// kruskal shuffles every adjacent pair and links each pair whose cells are
// still in different sets, merging the sets. Stops after N-1 links.
//
// Steps:
//  1. Collect each adjacent pair once (a < b) in scan order.
//  2. Shuffle the pairs with the run's RNG.
//  3. Union-find with path compression and union by rank decides each pair.
//
// Complexity: O(E·α(N)) after an O(E) shuffle.
func kruskal(c *carver) error {
	// 1) candidate walls
	var pairs [][2]gridgraph.Cell
	for _, a := range c.cells {
		for _, b := range c.neighbors(a) {
			if a < b {
				pairs = append(pairs, [2]gridgraph.Cell{a, b})
			}
		}
	}

	// 2) random order
	c.rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })

	// 3) join distinct sets
	ds := newDisjointSet(c.g.Size())
	want := len(c.cells) - 1
	for _, p := range pairs {
		if len(c.added) == want {
			break
		}
		if !ds.union(int(p[0]), int(p[1])) {
			continue
		}
		if err := c.link(p[0], p[1]); err != nil {
			return err
		}
	}
	return nil
}

// disjointSet is a union-find forest over dense ids.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}
	return ds
}

// find returns the root of u, halving the path on the way.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}
	return u
}

// union merges the sets of u and v. It reports false if they were already joined.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	// attach the shallower tree under the deeper one
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}
	return true
}
