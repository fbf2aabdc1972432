// Package gridgraph models a maze as a graph over grid cells. It supports:
//
//   - Rectangular grids with 4-neighbour adjacency (N, S, E, W)
//   - Polar grids of concentric rings (clockwise, counter-clockwise, inward, outward)
//   - Masks that carve non-rectangular shapes out of either layout
//   - A symmetric link (passage) relation restricted to adjacent included cells
package gridgraph

import (
	"fmt"
	"iter"
	"math"
)

const (
	methodNew      = "New"
	methodNewPolar = "NewPolar"
)

// New builds a rows × cols rectangular grid with no links.
// Returns ErrInvalidDimensions for extents below 1 and ErrEmptyGrid if the
// mask disables every position.
// Complexity: O(R×C) time and memory.
func New(rows, cols int, opts ...Option) (*Grid, error) {
	ix, err := NewRectIndex(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}
	g, err := build(Rect, ix, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}
	return g, nil
}

// NewPolar builds a polar grid with the given number of rings and no links.
// Ring sizes follow PolarRingLengths. A mask is consulted with
// (ring, position) coordinates.
// Complexity: O(N) time and memory for N cells.
func NewPolar(rings int, opts ...Option) (*Grid, error) {
	lens, err := PolarRingLengths(rings)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewPolar, err)
	}
	ix, err := NewPolarIndex(lens)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewPolar, err)
	}
	g, err := build(Polar, ix, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewPolar, err)
	}
	return g, nil
}

// PolarRingLengths returns the cell count of each ring of a polar grid.
// Ring 0 is a single centre cell. Every further ring keeps its cells
// roughly square: the previous ring's count is multiplied by the rounded
// ratio between the ring's cell width and the ring height, which makes
// ring 1 hold six cells and later rings double now and then.
func PolarRingLengths(rings int) ([]int, error) {
	if rings < 1 {
		return nil, fmt.Errorf("gridgraph: %d rings: %w", rings, ErrInvalidDimensions)
	}
	lens := make([]int, rings)
	lens[0] = 1
	rowHeight := 1.0 / float64(rings)
	for r := 1; r < rings; r++ {
		radius := float64(r) / float64(rings)
		circumference := 2 * math.Pi * radius
		prev := lens[r-1]
		cellWidth := circumference / float64(prev)
		ratio := int(math.Round(cellWidth / rowHeight))
		if ratio < 1 {
			ratio = 1
		}
		lens[r] = prev * ratio
	}
	return lens, nil
}

// build applies options, evaluates the mask and precomputes neighbour slots.
func build(topo Topology, ix Index, opts []Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := ix.Size()
	g := &Grid{
		topo:     topo,
		index:    ix,
		coords:   make([]Coord, n),
		included: make([]bool, n),
		start:    make([]int, n+1),
		links:    make([]uint32, n),
	}

	// 1) Coordinates and inclusion.
	for r := 0; r < ix.Rows(); r++ {
		for c := 0; c < ix.RowLen(r); c++ {
			id := ix.starts[r] + c
			g.coords[id] = Coord{Row: r, Col: c}
			if o.Mask == nil || o.Mask.IsEnabled(r, c) {
				g.included[id] = true
				g.count++
			}
		}
	}
	if g.count == 0 {
		return nil, ErrEmptyGrid
	}

	// 2) Neighbour slots, in the fixed per-topology order.
	var cand []slot
	for id := 0; id < n; id++ {
		g.start[id] = len(g.nbrs)
		if !g.included[id] {
			continue
		}
		cand = g.candidates(cand[:0], g.coords[id])
		deg := 0
		for _, s := range cand {
			nid, err := ix.ID(s.at)
			if err != nil || !g.included[nid] {
				continue
			}
			g.nbrs = append(g.nbrs, nid)
			g.dirs = append(g.dirs, s.dir)
			deg++
		}
		if deg > maxDegree {
			return nil, fmt.Errorf("cell %s has %d neighbours: %w", g.coords[id], deg, ErrDegreeOverflow)
		}
	}
	g.start[n] = len(g.nbrs)

	return g, nil
}

// slot is a candidate neighbour position before bounds and mask checks.
type slot struct {
	at  Coord
	dir Direction
}

// candidates appends the possible neighbour positions of c to dst.
func (g *Grid) candidates(dst []slot, c Coord) []slot {
	if g.topo == Rect {
		return append(dst,
			slot{Coord{c.Row - 1, c.Col}, North},
			slot{Coord{c.Row + 1, c.Col}, South},
			slot{Coord{c.Row, c.Col + 1}, East},
			slot{Coord{c.Row, c.Col - 1}, West},
		)
	}

	n := g.index.RowLen(c.Row)
	if c.Row > 0 {
		if n > 1 {
			cw := Coord{c.Row, (c.Col + 1) % n}
			ccw := Coord{c.Row, (c.Col - 1 + n) % n}
			dst = append(dst, slot{cw, Clockwise})
			if ccw != cw {
				dst = append(dst, slot{ccw, CounterClockwise})
			}
		}
		ratio := n / g.index.RowLen(c.Row-1)
		dst = append(dst, slot{Coord{c.Row - 1, c.Col / ratio}, Inward})
	}
	if next := g.index.RowLen(c.Row + 1); next > 0 {
		ratio := next / n
		for i := 0; i < ratio; i++ {
			dst = append(dst, slot{Coord{c.Row + 1, c.Col*ratio + i}, Outward})
		}
	}
	return dst
}

// Topology returns the layout of the grid.
func (g *Grid) Topology() Topology { return g.topo }

// Index returns the coordinate index of the grid.
func (g *Grid) Index() Index { return g.index }

// Rows returns the number of rows (rings for polar grids).
func (g *Grid) Rows() int { return g.index.Rows() }

// Cols returns the row length of a rectangular grid, or the length of the
// outermost ring of a polar grid.
func (g *Grid) Cols() int { return g.index.RowLen(g.index.Rows() - 1) }

// RowLen returns the number of positions in row (ring) r.
func (g *Grid) RowLen(r int) int { return g.index.RowLen(r) }

// Size returns the number of ids, included or not.
func (g *Grid) Size() int { return len(g.included) }

// Len returns the number of included cells.
func (g *Grid) Len() int { return g.count }

// AdjacentPairs returns the number of unordered pairs of neighbouring
// included cells, the edge count of the adjacency graph.
func (g *Grid) AdjacentPairs() int { return len(g.nbrs) / 2 }

// Contains reports whether c is an included cell.
// Complexity: O(1).
func (g *Grid) Contains(c Cell) bool {
	return c >= 0 && int(c) < len(g.included) && g.included[c]
}

// Coord returns the coordinate of c.
// Returns ErrOutOfBounds for ids outside the grid; masked cells still have
// a coordinate.
func (g *Grid) Coord(c Cell) (Coord, error) {
	if c < 0 || int(c) >= len(g.coords) {
		return Coord{}, fmt.Errorf("gridgraph: id %d: %w", c, ErrOutOfBounds)
	}
	return g.coords[c], nil
}

// CellAt returns the included cell at coordinate at.
// Returns ErrOutOfBounds outside the extents and ErrInvalidCell for a
// masked position.
func (g *Grid) CellAt(at Coord) (Cell, error) {
	id, err := g.index.ID(at)
	if err != nil {
		return NoCell, err
	}
	if !g.included[id] {
		return NoCell, fmt.Errorf("gridgraph: coordinate %s is masked: %w", at, ErrInvalidCell)
	}
	return id, nil
}

// First returns the first included cell in iteration order.
func (g *Grid) First() Cell {
	for id, ok := range g.included {
		if ok {
			return Cell(id)
		}
	}
	return NoCell
}

// Cells yields every included cell once, in row-major (ring) order.
func (g *Grid) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for id, ok := range g.included {
			if ok && !yield(Cell(id)) {
				return
			}
		}
	}
}

// Row yields the included cells of row (ring) r from column 0 upwards.
// An out-of-range row yields nothing.
func (g *Grid) Row(r int) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		if r < 0 || r >= g.index.Rows() {
			return
		}
		for id := g.index.starts[r]; id < g.index.starts[r+1]; id++ {
			if g.included[id] && !yield(Cell(id)) {
				return
			}
		}
	}
}

// Neighbors returns the included cells adjacent to c, in the fixed order
// N, S, E, W (rectangular) or clockwise, counter-clockwise, inward,
// outward (polar). When dirs is non-empty only those directions are kept.
// Returns nil if c is not an included cell.
func (g *Grid) Neighbors(c Cell, dirs ...Direction) []Cell {
	return g.AppendNeighbors(nil, c, dirs...)
}

// AppendNeighbors is Neighbors appending into dst.
func (g *Grid) AppendNeighbors(dst []Cell, c Cell, dirs ...Direction) []Cell {
	if !g.Contains(c) {
		return dst
	}
	for i := g.start[c]; i < g.start[c+1]; i++ {
		if len(dirs) > 0 && !hasDirection(dirs, g.dirs[i]) {
			continue
		}
		dst = append(dst, g.nbrs[i])
	}
	return dst
}

// NeighborAt returns the first neighbour of c in direction d.
func (g *Grid) NeighborAt(c Cell, d Direction) (Cell, bool) {
	if !g.Contains(c) {
		return NoCell, false
	}
	for i := g.start[c]; i < g.start[c+1]; i++ {
		if g.dirs[i] == d {
			return g.nbrs[i], true
		}
	}
	return NoCell, false
}

// DirectionTo returns the direction from a to its neighbour b.
func (g *Grid) DirectionTo(a, b Cell) (Direction, bool) {
	i := g.slotOf(a, b)
	if i < 0 {
		return 0, false
	}
	return g.dirs[g.start[a]+i], true
}

// IsAdjacent reports whether a and b are neighbouring included cells.
func (g *Grid) IsAdjacent(a, b Cell) bool {
	return g.slotOf(a, b) >= 0
}

// slotOf returns the slot of b among the neighbours of a, or -1.
func (g *Grid) slotOf(a, b Cell) int {
	if !g.Contains(a) {
		return -1
	}
	for i := g.start[a]; i < g.start[a+1]; i++ {
		if g.nbrs[i] == b {
			return i - g.start[a]
		}
	}
	return -1
}

func hasDirection(dirs []Direction, d Direction) bool {
	for _, x := range dirs {
		if x == d {
			return true
		}
	}
	return false
}

// Clone returns a grid with the same topology and a private copy of the
// links. The immutable topology tables are shared.
func (g *Grid) Clone() *Grid {
	cp := *g
	cp.links = make([]uint32, len(g.links))
	copy(cp.links, g.links)
	return &cp
}
