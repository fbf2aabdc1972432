// Package gridgraph treats a grid of cells as the graph a maze is carved
// into: cells are vertices, topological adjacency bounds the possible
// edges, and links are the passages actually opened.
//
// What:
//
//   - Index maps (row, col) or (ring, position) coordinates to dense ids.
//   - Grid owns the included cells, their neighbour slots and the link set.
//   - Rect grids use N/S/E/W adjacency; Polar grids use clockwise,
//     counter-clockwise, inward and outward neighbours.
//   - A Masker passed through WithMask excludes positions entirely.
//
// Why:
//
//   - Generators need O(1) adjacency and link queries over tens of
//     thousands of cells, with deterministic iteration for reproducibility.
//   - Distance and rendering code reads the same structure without copying.
//
// Determinism:
//
//   - Cells, Row and Edges iterate in id order.
//   - Neighbors and Links follow the fixed per-topology direction order.
//
// Complexity:
//
//   - New, NewPolar:       O(N) time and memory.
//   - Link, Unlink, IsLinked, NeighborAt: O(d), d ≤ 32 neighbour slots.
//   - Degree:              O(1).
//   - Components, Regions: O(N·d).
//
// Errors:
//
//   - ErrInvalidDimensions: fewer than one row, column or ring.
//   - ErrEmptyGrid: the mask disables every position.
//   - ErrOutOfBounds: coordinate or id outside the grid extents.
//   - ErrInvalidCell: id is not an included cell (e.g. masked).
//   - ErrNonAdjacentLink: link between cells that are not neighbours.
//
// A Grid is not safe for concurrent mutation. Once generation is done it
// may be shared freely among readers.
package gridgraph
