package gridgraph

import "errors"

var (
	// ErrInvalidDimensions indicates zero or negative grid extents.
	ErrInvalidDimensions = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrEmptyGrid indicates that a mask disabled every cell of the grid.
	ErrEmptyGrid = errors.New("gridgraph: mask leaves no included cell")
	// ErrOutOfBounds indicates a coordinate or id outside the grid extents.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrInvalidCell indicates an id that is not an included cell of the grid.
	ErrInvalidCell = errors.New("gridgraph: cell is not part of the grid")
	// ErrNonAdjacentLink indicates a link request between cells that are not neighbours.
	ErrNonAdjacentLink = errors.New("gridgraph: cells are not adjacent")
	// ErrDegreeOverflow indicates a topology whose cells exceed the link slot capacity.
	ErrDegreeOverflow = errors.New("gridgraph: cell degree exceeds link capacity")
)
