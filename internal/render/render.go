// Package render draws a finished maze as text.
//
// The renderer only reads the grid and, optionally, a distance map and a
// path; it never mutates them. Rectangular grids (masked or not) are drawn
// with ASCII walls:
//
//	+---+---+
//	| S   . |
//	+---+   +
//	| E   . |
//	+---+---+
//
// Polar grids have no text layout and return ErrUnsupportedTopology.
package render

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvmaze/distances"
	"github.com/katalvlaran/lvmaze/gridgraph"
)

// ErrUnsupportedTopology is returned for grids without a text layout.
var ErrUnsupportedTopology = errors.New("render: topology has no text layout")

// ErrGridNil is returned if a nil grid pointer is passed.
var ErrGridNil = errors.New("render: grid is nil")

const (
	corner     = "+"
	wallH      = "---"
	openH      = "   "
	wallV      = "|"
	openV      = " "
	maskedBody = "###"
	pathBody   = " . "
	startBody  = " S "
	endBody    = " E "
)

// Option configures a rendering.
type Option func(*options)

type options struct {
	dist       *distances.Distances
	path       mapset.Set[gridgraph.Cell]
	start, end gridgraph.Cell
	color      bool
}

// WithDistances prints each reached cell's distance in base 36.
func WithDistances(d *distances.Distances) Option {
	return func(o *options) { o.dist = d }
}

// WithPath marks the cells of p.
func WithPath(p []gridgraph.Cell) Option {
	return func(o *options) {
		for _, c := range p {
			o.path.Put(c)
		}
	}
}

// WithMarkers labels start with S and end with E. gridgraph.NoCell omits a marker.
func WithMarkers(start, end gridgraph.Cell) Option {
	return func(o *options) { o.start, o.end = start, end }
}

// WithColor styles markers and the path with terminal colours.
func WithColor(on bool) Option {
	return func(o *options) { o.color = on }
}

var (
	pathStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	markerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// Text writes the maze to w.
func Text(w io.Writer, g *gridgraph.Grid, opts ...Option) error {
	s, err := String(g, opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// String returns the maze as text, one line per wall row and cell row.
func String(g *gridgraph.Grid, opts ...Option) (string, error) {
	if g == nil {
		return "", ErrGridNil
	}
	if g.Topology() != gridgraph.Rect {
		return "", ErrUnsupportedTopology
	}
	o := options{path: mapset.New[gridgraph.Cell](), start: gridgraph.NoCell, end: gridgraph.NoCell}
	for _, opt := range opts {
		opt(&o)
	}

	rows, cols := g.Rows(), g.Cols()
	var sb strings.Builder
	sb.WriteString(corner)
	for c := 0; c < cols; c++ {
		sb.WriteString(wallH + corner)
	}
	sb.WriteByte('\n')

	for r := 0; r < rows; r++ {
		var body, bottom strings.Builder
		body.WriteString(wallV)
		bottom.WriteString(corner)
		for c := 0; c < cols; c++ {
			id := gridgraph.Cell(r*cols + c)
			body.WriteString(o.body(g, id))

			east, ok := g.NeighborAt(id, gridgraph.East)
			if ok && g.IsLinked(id, east) {
				body.WriteString(openV)
			} else {
				body.WriteString(wallV)
			}

			south, ok := g.NeighborAt(id, gridgraph.South)
			if ok && g.IsLinked(id, south) {
				bottom.WriteString(openH)
			} else {
				bottom.WriteString(wallH)
			}
			bottom.WriteString(corner)
		}
		sb.WriteString(body.String())
		sb.WriteByte('\n')
		sb.WriteString(bottom.String())
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// body returns the three-character interior of a cell.
func (o *options) body(g *gridgraph.Grid, id gridgraph.Cell) string {
	switch {
	case !g.Contains(id):
		return maskedBody
	case id == o.start:
		return o.paint(markerStyle, startBody)
	case id == o.end:
		return o.paint(markerStyle, endBody)
	case o.path.Has(id):
		return o.paint(pathStyle, pathBody)
	}
	if o.dist != nil {
		if d, ok := o.dist.Distance(id); ok {
			return centre(strconv.FormatInt(int64(d), 36))
		}
	}
	return openH
}

func (o *options) paint(s lipgloss.Style, text string) string {
	if !o.color {
		return text
	}
	return s.Render(text)
}

// centre fits s into three columns, keeping the low digits of long values.
func centre(s string) string {
	switch len(s) {
	case 1:
		return " " + s + " "
	case 2:
		return s + " "
	case 3:
		return s
	default:
		return s[len(s)-3:]
	}
}
