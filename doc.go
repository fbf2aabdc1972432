// Package lvmaze is a maze generation and analysis toolkit built on a
// grid graph.
//
// What is in the box?
//
//	gridgraph/  rectangular and polar grids, optional masks, symmetric links
//	mask/       enable/disable grid positions, from code, text or images
//	generate/   eight carving algorithms that each yield a perfect maze
//	distances/  BFS distances, paths and the longest path through a maze
//	cmd/lvmaze  command line front end (generate, bench, algorithms)
//
// A typical run builds a grid, carves it and measures it:
//
//	g, _ := gridgraph.New(20, 30)
//	_ = generate.Generate(generate.Wilson, g, 42)
//	from, to, length, _ := distances.Diameter(g)
//
// Every generator is deterministic for a given seed and grid shape, and
// leaves the grid untouched when it fails.
package lvmaze
