package cli

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmaze/generate"
	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/internal/config"
	"github.com/katalvlaran/lvmaze/mask"
)

// loadMask returns the mask described by m, or nil when none is set.
// Files ending in .png are read as images, anything else as text.
func loadMask(m config.Maze) (*mask.Mask, error) {
	if len(m.Mask) > 0 {
		return mask.FromRows(m.Mask)
	}
	if m.MaskFile == "" {
		return nil, nil
	}
	f, err := os.Open(m.MaskFile)
	if err != nil {
		return nil, fmt.Errorf("open mask: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(m.MaskFile), ".png") {
		img, err := png.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decode mask %s: %w", m.MaskFile, err)
		}
		return mask.FromImage(img)
	}
	return mask.Parse(f)
}

// newGrid builds the empty grid described by m. Unset rectangular
// extents follow the mask.
func newGrid(m config.Maze, mk *mask.Mask) (*gridgraph.Grid, error) {
	var opts []gridgraph.Option
	var maskRows, maskCols int
	if mk != nil {
		opts = append(opts, gridgraph.WithMask(mk))
		maskRows, maskCols = mk.Rows(), mk.Cols()
	}
	if m.Rings > 0 {
		return gridgraph.NewPolar(m.Rings, opts...)
	}
	rows, cols := m.Extents(maskRows, maskCols)
	return gridgraph.New(rows, cols, opts...)
}

// generateOptions maps config to generator options.
func generateOptions(m config.Maze) []generate.Option {
	var opts []generate.Option
	if m.StepLimit >= 0 {
		opts = append(opts, generate.WithStepLimit(m.StepLimit))
	}
	return opts
}

// parseCell resolves a "row,col" coordinate on g.
func parseCell(g *gridgraph.Grid, s string) (gridgraph.Cell, error) {
	row, col, ok := strings.Cut(s, ",")
	if !ok {
		return gridgraph.NoCell, fmt.Errorf("coordinate %q: want row,col", s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(row))
	if err != nil {
		return gridgraph.NoCell, fmt.Errorf("coordinate %q: %w", s, err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(col))
	if err != nil {
		return gridgraph.NoCell, fmt.Errorf("coordinate %q: %w", s, err)
	}
	return g.CellAt(gridgraph.Coord{Row: r, Col: c})
}
