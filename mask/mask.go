// Package mask provides a boolean inclusion predicate over grid coordinates.
//
// A Mask is a rows × cols array of enabled flags. Positions outside its
// extents count as enabled, so a small mask can shape a larger grid or a
// polar grid whose outer rings are longer than the mask. Masks are plain
// values: build them, then pass them to gridgraph.WithMask.
package mask

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDimensions indicates zero or negative mask extents.
	ErrInvalidDimensions = errors.New("mask: mask must have at least one row and one column")
	// ErrOutOfBounds indicates a coordinate outside the mask.
	ErrOutOfBounds = errors.New("mask: coordinate out of bounds")
	// ErrBadFormat indicates malformed mask text.
	ErrBadFormat = errors.New("mask: malformed mask")
)

// Mask marks each (row, col) position as enabled or disabled.
type Mask struct {
	rows, cols int
	enabled    []bool
	count      int
}

// New returns a rows × cols mask with every position enabled.
func New(rows, cols int) (*Mask, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("mask: %dx%d: %w", rows, cols, ErrInvalidDimensions)
	}
	m := &Mask{rows: rows, cols: cols, enabled: make([]bool, rows*cols), count: rows * cols}
	for i := range m.enabled {
		m.enabled[i] = true
	}
	return m, nil
}

// Rows returns the number of mask rows.
func (m *Mask) Rows() int { return m.rows }

// Cols returns the number of mask columns.
func (m *Mask) Cols() int { return m.cols }

func (m *Mask) inBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// Set enables or disables (row, col).
func (m *Mask) Set(row, col int, on bool) error {
	if !m.inBounds(row, col) {
		return fmt.Errorf("mask: set %d,%d: %w", row, col, ErrOutOfBounds)
	}
	i := row*m.cols + col
	if m.enabled[i] == on {
		return nil
	}
	m.enabled[i] = on
	if on {
		m.count++
	} else {
		m.count--
	}
	return nil
}

// Enable marks (row, col) as part of the grid.
func (m *Mask) Enable(row, col int) error { return m.Set(row, col, true) }

// Disable removes (row, col) from the grid.
func (m *Mask) Disable(row, col int) error { return m.Set(row, col, false) }

// IsEnabled reports whether (row, col) is part of the grid.
// Positions outside the mask are enabled.
// Complexity: O(1).
func (m *Mask) IsEnabled(row, col int) bool {
	if !m.inBounds(row, col) {
		return true
	}
	return m.enabled[row*m.cols+col]
}

// Count returns the number of enabled positions inside the mask.
func (m *Mask) Count() int { return m.count }

// FirstEnabled returns the first enabled position in row-major order.
func (m *Mask) FirstEnabled() (row, col int, ok bool) {
	for i, on := range m.enabled {
		if on {
			return i / m.cols, i % m.cols, true
		}
	}
	return 0, 0, false
}

// String renders the mask with '.' for enabled and 'X' for disabled
// positions, one line per row. Parse reads the same format back.
func (m *Mask) String() string {
	var sb strings.Builder
	sb.Grow(m.rows * (m.cols + 1))
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if m.enabled[r*m.cols+c] {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('X')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
