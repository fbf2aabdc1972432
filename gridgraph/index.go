package gridgraph

import (
	"fmt"
	"sort"
)

// Index is the bijection between coordinates and dense cell ids.
// Rectangular layouts are row-major; polar layouts number ring by ring,
// each ring starting at position 0.
// The zero Index has no cells.
type Index struct {
	uniform int   // row length for rectangular layouts, 0 for polar
	starts  []int // starts[r] is the first id of row r; starts[len-1] is the size
}

// NewRectIndex returns a row-major index over rows × cols positions.
// Returns ErrInvalidDimensions if either extent is below 1.
func NewRectIndex(rows, cols int) (Index, error) {
	if rows < 1 || cols < 1 {
		return Index{}, fmt.Errorf("gridgraph: rect index %dx%d: %w", rows, cols, ErrInvalidDimensions)
	}
	starts := make([]int, rows+1)
	for r := 1; r <= rows; r++ {
		starts[r] = starts[r-1] + cols
	}
	return Index{uniform: cols, starts: starts}, nil
}

// NewPolarIndex returns a ring-major index where ring r holds ringLens[r]
// positions. Returns ErrInvalidDimensions if there is no ring or a ring is empty.
func NewPolarIndex(ringLens []int) (Index, error) {
	if len(ringLens) == 0 {
		return Index{}, fmt.Errorf("gridgraph: polar index with no rings: %w", ErrInvalidDimensions)
	}
	starts := make([]int, len(ringLens)+1)
	for r, n := range ringLens {
		if n < 1 {
			return Index{}, fmt.Errorf("gridgraph: polar ring %d has %d cells: %w", r, n, ErrInvalidDimensions)
		}
		starts[r+1] = starts[r] + n
	}
	return Index{starts: starts}, nil
}

// Size returns the number of positions covered by the index.
func (ix Index) Size() int {
	if len(ix.starts) == 0 {
		return 0
	}
	return ix.starts[len(ix.starts)-1]
}

// Rows returns the number of rows (rings).
func (ix Index) Rows() int {
	if len(ix.starts) == 0 {
		return 0
	}
	return len(ix.starts) - 1
}

// RowLen returns the number of positions in row r, or 0 if r is out of range.
func (ix Index) RowLen(r int) int {
	if r < 0 || r >= ix.Rows() {
		return 0
	}
	return ix.starts[r+1] - ix.starts[r]
}

// InBounds reports whether c addresses a position of the index.
// Complexity: O(1).
func (ix Index) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < ix.Rows() && c.Col >= 0 && c.Col < ix.RowLen(c.Row)
}

// ID maps c to its dense id. Returns ErrOutOfBounds for coordinates
// outside the index.
// Complexity: O(1).
func (ix Index) ID(c Coord) (Cell, error) {
	if !ix.InBounds(c) {
		return NoCell, fmt.Errorf("gridgraph: coordinate %s: %w", c, ErrOutOfBounds)
	}
	return Cell(ix.starts[c.Row] + c.Col), nil
}

// Coord maps id back to its coordinate. Returns ErrOutOfBounds for ids
// outside [0, Size()).
// Complexity: O(1) rectangular, O(log rows) polar.
func (ix Index) Coord(id Cell) (Coord, error) {
	if id < 0 || int(id) >= ix.Size() {
		return Coord{}, fmt.Errorf("gridgraph: id %d: %w", id, ErrOutOfBounds)
	}
	if ix.uniform > 0 {
		return Coord{Row: int(id) / ix.uniform, Col: int(id) % ix.uniform}, nil
	}
	// first row whose successor starts beyond id
	r := sort.Search(ix.Rows(), func(i int) bool { return ix.starts[i+1] > int(id) })
	return Coord{Row: r, Col: int(id) - ix.starts[r]}, nil
}
