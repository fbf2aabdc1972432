// File: gridgraph/components_test.go
package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/mask"
)

// TestComponents_NoLinks checks that an unlinked grid has one component per cell.
func TestComponents_NoLinks(t *testing.T) {
	g, err := gridgraph.New(2, 3)
	require.NoError(t, err)

	comps := g.Components()
	assert.Len(t, comps, 6)
	for i, comp := range comps {
		assert.Equal(t, []gridgraph.Cell{gridgraph.Cell(i)}, comp)
	}
}

// TestComponents_Linked follows links only, in BFS order from the lowest id.
//
//	0 - 1   2
//	        |
//	3   4 - 5
func TestComponents_Linked(t *testing.T) {
	g, err := gridgraph.New(2, 3)
	require.NoError(t, err)
	require.NoError(t, g.Link(0, 1))
	require.NoError(t, g.Link(2, 5))
	require.NoError(t, g.Link(5, 4))

	comps := g.Components()
	require.Len(t, comps, 3)
	assert.Equal(t, []gridgraph.Cell{0, 1}, comps[0])
	assert.Equal(t, []gridgraph.Cell{2, 5, 4}, comps[1])
	assert.Equal(t, []gridgraph.Cell{3}, comps[2])
}

// TestRegions_SplitMask checks that a mask column splitting the grid yields
// two adjacency regions.
func TestRegions_SplitMask(t *testing.T) {
	m, err := mask.FromRows([]string{
		"..X..",
		"..X..",
	})
	require.NoError(t, err)
	g, err := gridgraph.New(2, 5, gridgraph.WithMask(m))
	require.NoError(t, err)

	regions := g.Regions()
	require.Len(t, regions, 2)
	assert.ElementsMatch(t, []gridgraph.Cell{0, 1, 5, 6}, regions[0])
	assert.ElementsMatch(t, []gridgraph.Cell{3, 4, 8, 9}, regions[1])
}

// TestRegions_Polar checks that an unmasked polar grid is a single region.
func TestRegions_Polar(t *testing.T) {
	g, err := gridgraph.NewPolar(5)
	require.NoError(t, err)
	regions := g.Regions()
	require.Len(t, regions, 1)
	assert.Len(t, regions[0], g.Len())
}
