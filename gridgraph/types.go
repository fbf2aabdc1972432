// Package gridgraph defines core types, options, and sentinel errors
// for the maze grid of github.com/katalvlaran/lvmaze.
package gridgraph

import "fmt"

// Cell is the dense identifier of a grid position.
// Ids cover the whole coordinate space, masked positions included.
type Cell int

// NoCell marks the absence of a cell.
const NoCell Cell = -1

// Coord is a grid coordinate. For polar grids Row is the ring (0 is the
// centre) and Col the position within the ring, counted clockwise.
type Coord struct {
	Row, Col int
}

// String renders the coordinate as "row,col".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// Topology selects the cell layout of a grid.
type Topology int

const (
	// Rect is a rectangular grid with 4-neighbour adjacency.
	Rect Topology = iota
	// Polar is a circular grid of concentric rings.
	Polar
)

// String returns the topology name.
func (t Topology) String() string {
	switch t {
	case Rect:
		return "rect"
	case Polar:
		return "polar"
	default:
		return fmt.Sprintf("Topology(%d)", int(t))
	}
}

// Direction names the relation between a cell and one of its neighbours.
type Direction int

const (
	// North is the cell one row up.
	North Direction = iota
	// South is the cell one row down.
	South
	// East is the cell one column right.
	East
	// West is the cell one column left.
	West
	// Clockwise is the next cell of the same ring.
	Clockwise
	// CounterClockwise is the previous cell of the same ring.
	CounterClockwise
	// Inward is the parent cell in the next ring towards the centre.
	Inward
	// Outward is a child cell in the next ring away from the centre.
	// A polar cell may have several outward neighbours.
	Outward
)

var directionNames = [...]string{
	North:            "north",
	South:            "south",
	East:             "east",
	West:             "west",
	Clockwise:        "clockwise",
	CounterClockwise: "counter-clockwise",
	Inward:           "inward",
	Outward:          "outward",
}

// String returns the lower-case direction name.
func (d Direction) String() string {
	if d >= 0 && int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Masker reports whether the position (row, col) takes part in the grid.
// *mask.Mask satisfies it.
type Masker interface {
	IsEnabled(row, col int) bool
}

// Options holds construction parameters for a Grid.
type Options struct {
	// Mask, when non-nil, excludes every position it reports as disabled.
	Mask Masker
}

// Option configures grid construction.
type Option func(*Options)

// DefaultOptions returns Options with no mask.
func DefaultOptions() Options {
	return Options{}
}

// WithMask applies m to the grid being built. A nil mask is ignored.
func WithMask(m Masker) Option {
	return func(o *Options) {
		if m != nil {
			o.Mask = m
		}
	}
}

// maxDegree bounds the number of neighbour slots per cell; link sets are
// stored as one uint32 bit set per cell.
const maxDegree = 32

// Grid is a maze grid: a fixed set of included cells over a rectangular or
// polar layout plus a symmetric link relation between adjacent cells.
//
// Topology (included cells, neighbour slots) is immutable after New or
// NewPolar. Links are added by generators; a Grid must not be mutated while
// other goroutines read it.
type Grid struct {
	topo     Topology
	index    Index
	coords   []Coord
	included []bool
	count    int

	// Neighbour slots in CSR form: the neighbours of cell c are
	// nbrs[start[c]:start[c+1]] with directions dirs[start[c]:start[c+1]].
	start []int
	nbrs  []Cell
	dirs  []Direction

	// links[c] has bit i set when c is linked to nbrs[start[c]+i].
	links     []uint32
	linkCount int
}
