package render

import (
	"fmt"
	"io"

	"github.com/katalvlaran/lvmaze/distances"
	"github.com/katalvlaran/lvmaze/gridgraph"
)

// Summary describes the shape and texture of a finished maze.
type Summary struct {
	Topology string
	Rows     int
	Cols     int
	Cells    int
	Links    int
	DeadEnds int
	Diameter int
	From, To gridgraph.Coord
}

// Summarize counts dead ends and measures the diameter of g.
func Summarize(g *gridgraph.Grid) (Summary, error) {
	if g == nil {
		return Summary{}, ErrGridNil
	}
	s := Summary{
		Topology: g.Topology().String(),
		Rows:     g.Rows(),
		Cols:     g.Cols(),
		Cells:    g.Len(),
		Links:    g.LinkCount(),
	}
	for c := range g.Cells() {
		if g.Degree(c) == 1 {
			s.DeadEnds++
		}
	}
	from, to, length, err := distances.Diameter(g)
	if err != nil {
		return Summary{}, err
	}
	s.Diameter = length
	s.From, _ = g.Coord(from)
	s.To, _ = g.Coord(to)
	return s, nil
}

// WriteTo writes the summary as aligned key/value lines.
func (s Summary) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w,
		"topology:  %s\nsize:      %dx%d\ncells:     %d\nlinks:     %d\ndead ends: %d\ndiameter:  %d (%s -> %s)\n",
		s.Topology, s.Rows, s.Cols, s.Cells, s.Links, s.DeadEnds, s.Diameter, s.From, s.To)
	return int64(n), err
}
