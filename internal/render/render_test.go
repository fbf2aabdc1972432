package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/distances"
	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/internal/render"
	"github.com/katalvlaran/lvmaze/mask"
)

// uMaze builds the 2×2 maze 0-1-3-2.
func uMaze(t *testing.T) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.Link(0, 1))
	require.NoError(t, g.Link(1, 3))
	require.NoError(t, g.Link(3, 2))
	return g
}

func TestString_Walls(t *testing.T) {
	got, err := render.String(uMaze(t))
	require.NoError(t, err)
	want := "" +
		"+---+---+\n" +
		"|       |\n" +
		"+---+   +\n" +
		"|       |\n" +
		"+---+---+\n"
	assert.Equal(t, want, got)
}

func TestString_Distances(t *testing.T) {
	g := uMaze(t)
	d, err := distances.Compute(g, 0)
	require.NoError(t, err)

	got, err := render.String(g, render.WithDistances(d))
	require.NoError(t, err)
	want := "" +
		"+---+---+\n" +
		"| 0   1 |\n" +
		"+---+   +\n" +
		"| 3   2 |\n" +
		"+---+---+\n"
	assert.Equal(t, want, got)
}

func TestString_PathAndMarkers(t *testing.T) {
	g := uMaze(t)
	d, err := distances.Compute(g, 0)
	require.NoError(t, err)
	path, err := d.PathTo(2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Text(&buf, g,
		render.WithDistances(d),
		render.WithPath(path),
		render.WithMarkers(0, 2),
		render.WithColor(false),
	))
	want := "" +
		"+---+---+\n" +
		"| S   . |\n" +
		"+---+   +\n" +
		"| E   . |\n" +
		"+---+---+\n"
	assert.Equal(t, want, buf.String())
}

func TestString_Masked(t *testing.T) {
	m, err := mask.FromRows([]string{"X.", ".."})
	require.NoError(t, err)
	g, err := gridgraph.New(2, 2, gridgraph.WithMask(m))
	require.NoError(t, err)
	require.NoError(t, g.Link(1, 3))
	require.NoError(t, g.Link(3, 2))

	got, err := render.String(g)
	require.NoError(t, err)
	want := "" +
		"+---+---+\n" +
		"|###|   |\n" +
		"+---+   +\n" +
		"|       |\n" +
		"+---+---+\n"
	assert.Equal(t, want, got)
}

func TestString_LongDistances(t *testing.T) {
	g, err := gridgraph.New(1, 40)
	require.NoError(t, err)
	for c := gridgraph.Cell(0); c < 39; c++ {
		require.NoError(t, g.Link(c, c+1))
	}
	d, err := distances.Compute(g, 0)
	require.NoError(t, err)
	got, err := render.String(g, render.WithDistances(d))
	require.NoError(t, err)
	// 36 is "10" in base 36
	assert.Contains(t, got, " z  10  11  12  13 |")
}

func TestString_Errors(t *testing.T) {
	_, err := render.String(nil)
	assert.ErrorIs(t, err, render.ErrGridNil)

	g, err := gridgraph.NewPolar(3)
	require.NoError(t, err)
	_, err = render.String(g)
	assert.ErrorIs(t, err, render.ErrUnsupportedTopology)
}

func TestSummarize(t *testing.T) {
	g, err := gridgraph.New(1, 4)
	require.NoError(t, err)
	for c := gridgraph.Cell(0); c < 3; c++ {
		require.NoError(t, g.Link(c, c+1))
	}
	s, err := render.Summarize(g)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Cells)
	assert.Equal(t, 3, s.Links)
	assert.Equal(t, 2, s.DeadEnds)
	assert.Equal(t, 3, s.Diameter)
	assert.Equal(t, gridgraph.Coord{Row: 0, Col: 3}, s.From)
	assert.Equal(t, gridgraph.Coord{Row: 0, Col: 0}, s.To)

	var buf bytes.Buffer
	_, err = s.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "diameter:  3 (0,3 -> 0,0)")
	assert.Contains(t, buf.String(), "size:      1x4")
}
