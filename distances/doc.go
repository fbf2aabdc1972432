// Package distances analyses a carved maze by breadth-first search over
// its links.
//
// What:
//
//   - Compute: hop count from one source to every reachable cell; cells the
//     search never reaches are reported as unreached, not as zero.
//   - Farthest: the cell at maximum distance, first in grid order on ties.
//   - PathTo: the source→target path, rebuilt by walking down the distance
//     gradient in neighbour order.
//   - LongestPath, Diameter: two searches that find the diameter endpoints
//     of a tree-shaped maze.
//
// Determinism:
//
//   - BFS expands links in the grid's fixed neighbour order, and ties are
//     resolved by fixed orders, so results depend only on the grid.
//
// Complexity:
//
//   - Compute: O(N·d) time, O(N) memory.
//   - PathTo:  O(L·d) for a path of L cells.
//
// Options:
//
//   - WithMaxDepth(d): stop expanding beyond distance d.
//   - WithOnVisit(fn): observe or abort the traversal.
//   - WithContext(ctx): cancellation.
//
// Errors:
//
//   - ErrGridNil, ErrUnreachedTarget, ErrOptionViolation.
//   - gridgraph.ErrInvalidCell for sources or targets outside the grid.
package distances
