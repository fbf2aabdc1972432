// Package config loads run parameters for the lvmaze command from a TOML
// file. Every field has a default, so an empty or missing file is valid;
// command-line flags override whatever the file sets.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lvmaze/generate"
)

var (
	// ErrInvalid is returned by Validate for out-of-range settings.
	ErrInvalid = errors.New("config: invalid setting")
	// ErrUnknownKey is returned by Load for keys the file format does not define.
	ErrUnknownKey = errors.New("config: unknown key")
)

// File is the top-level layout of a config file:
//
//	[maze]
//	rows = 20
//	cols = 30
//	algorithm = "wilson"
//	seed = 42
//
//	[render]
//	distances = true
type File struct {
	Maze   Maze   `toml:"maze"`
	Render Render `toml:"render"`
	Bench  Bench  `toml:"bench"`
}

// DefaultSize is the grid extent used when neither the settings nor a
// mask give one.
const DefaultSize = 10

// Maze describes the grid and the generator.
type Maze struct {
	Rows      int    `toml:"rows"`  // 0 = mask rows, or DefaultSize
	Cols      int    `toml:"cols"`  // 0 = mask cols, or DefaultSize
	Rings     int    `toml:"rings"` // > 0 selects a polar grid
	Algorithm string `toml:"algorithm"`
	Seed      int64  `toml:"seed"`
	StepLimit int    `toml:"step_limit"` // 0 = unlimited, < 0 = derived
	MaskFile  string `toml:"mask_file"`
	// Mask holds an inline text mask, one string per row.
	Mask []string `toml:"mask"`
}

// Render selects what the text output shows.
type Render struct {
	Distances bool   `toml:"distances"`
	Path      bool   `toml:"path"`
	Color     bool   `toml:"color"`
	Start     string `toml:"start"` // "row,col"; empty means the diameter endpoints
	End       string `toml:"end"`
}

// Bench configures the batch command.
type Bench struct {
	Algorithms []string `toml:"algorithms"`
	Runs       int      `toml:"runs"`
	Workers    int      `toml:"workers"`
}

// Default returns the configuration used when no file is given.
func Default() File {
	return File{
		Maze: Maze{
			Algorithm: generate.RecursiveBacktracker.String(),
			Seed:      42,
			StepLimit: -1,
		},
		Bench: Bench{
			Runs:    10,
			Workers: 4,
		},
	}
}

// Load reads path on top of Default. Keys that map to no field are
// rejected with ErrUnknownKey.
func Load(path string) (File, error) {
	f := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("config: read %s: %w", path, err)
	}
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return f, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return f, fmt.Errorf("%w: %s in %s", ErrUnknownKey, strings.Join(keys, ", "), path)
	}
	return f, nil
}

// Extents resolves the rectangular grid size. A zero dimension takes the
// matching mask extent when a mask is given (maskRows, maskCols > 0), and
// DefaultSize otherwise.
func (m Maze) Extents(maskRows, maskCols int) (rows, cols int) {
	rows, cols = m.Rows, m.Cols
	if rows == 0 {
		rows = DefaultSize
		if maskRows > 0 {
			rows = maskRows
		}
	}
	if cols == 0 {
		cols = DefaultSize
		if maskCols > 0 {
			cols = maskCols
		}
	}
	return rows, cols
}

// Validate reports the first setting that cannot produce a maze.
func (f File) Validate() error {
	m := f.Maze
	if m.Rings < 0 {
		return fmt.Errorf("%w: rings = %d", ErrInvalid, m.Rings)
	}
	if m.Rows < 0 || m.Cols < 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, m.Rows, m.Cols)
	}
	if _, err := generate.ParseAlgorithm(m.Algorithm); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if m.MaskFile != "" && len(m.Mask) > 0 {
		return fmt.Errorf("%w: mask and mask_file are exclusive", ErrInvalid)
	}
	for _, name := range f.Bench.Algorithms {
		if _, err := generate.ParseAlgorithm(name); err != nil {
			return fmt.Errorf("%w: bench: %w", ErrInvalid, err)
		}
	}
	if f.Bench.Runs < 1 || f.Bench.Workers < 1 {
		return fmt.Errorf("%w: bench runs %d, workers %d", ErrInvalid, f.Bench.Runs, f.Bench.Workers)
	}
	return nil
}
