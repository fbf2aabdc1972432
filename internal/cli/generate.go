package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmaze/distances"
	"github.com/katalvlaran/lvmaze/generate"
	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/internal/config"
	"github.com/katalvlaran/lvmaze/internal/render"
)

const (
	formatText    = "text"
	formatSummary = "summary"
)

type generateOpts struct {
	cfg    config.File
	format string
}

func newGenerateCmd(root *rootFlags) *cobra.Command {
	opts := generateOpts{cfg: config.Default()}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a maze and print it",
		Long: `Generate carves a maze with the chosen algorithm and seed.

Rectangular mazes print as text by default; polar mazes print a summary.
With --distances every cell shows its distance (base 36) from the start,
with --path the path from start to end is marked. Start and end default
to the two ends of the longest path.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := root.loadConfig()
			if err != nil {
				return err
			}
			overrideMaze(cmd, &file, opts.cfg)
			return runGenerate(cmd, file, opts.format)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.cfg.Maze.Rows, "rows", 0, "grid rows (default: mask rows, or 10)")
	f.IntVar(&opts.cfg.Maze.Cols, "cols", 0, "grid columns (default: mask columns, or 10)")
	f.IntVar(&opts.cfg.Maze.Rings, "rings", 0, "polar grid with this many rings")
	f.StringVarP(&opts.cfg.Maze.Algorithm, "algorithm", "a", opts.cfg.Maze.Algorithm, "generation algorithm (see 'lvmaze algorithms')")
	f.Int64VarP(&opts.cfg.Maze.Seed, "seed", "s", opts.cfg.Maze.Seed, "random seed")
	f.IntVar(&opts.cfg.Maze.StepLimit, "step-limit", opts.cfg.Maze.StepLimit, "random-walk step cap (0 = unlimited, -1 = derived)")
	f.StringVarP(&opts.cfg.Maze.MaskFile, "mask", "m", "", "mask file (.png image or text)")
	f.BoolVar(&opts.cfg.Render.Distances, "distances", false, "show distances from the start cell")
	f.BoolVar(&opts.cfg.Render.Path, "path", false, "mark the path from start to end")
	f.BoolVar(&opts.cfg.Render.Color, "color", false, "colour markers and path")
	f.StringVar(&opts.cfg.Render.Start, "start", "", "start cell as row,col")
	f.StringVar(&opts.cfg.Render.End, "end", "", "end cell as row,col")
	f.StringVarP(&opts.format, "format", "f", "", "output format: text or summary")

	return cmd
}

// overrideMaze copies every explicitly set flag from flagCfg into file.
func overrideMaze(cmd *cobra.Command, file *config.File, flagCfg config.File) {
	set := cmd.Flags().Changed
	if set("rows") {
		file.Maze.Rows = flagCfg.Maze.Rows
	}
	if set("cols") {
		file.Maze.Cols = flagCfg.Maze.Cols
	}
	if set("rings") {
		file.Maze.Rings = flagCfg.Maze.Rings
	}
	if set("algorithm") {
		file.Maze.Algorithm = flagCfg.Maze.Algorithm
	}
	if set("seed") {
		file.Maze.Seed = flagCfg.Maze.Seed
	}
	if set("step-limit") {
		file.Maze.StepLimit = flagCfg.Maze.StepLimit
	}
	if set("mask") {
		file.Maze.MaskFile = flagCfg.Maze.MaskFile
		file.Maze.Mask = nil
	}
	if set("distances") {
		file.Render.Distances = flagCfg.Render.Distances
	}
	if set("path") {
		file.Render.Path = flagCfg.Render.Path
	}
	if set("color") {
		file.Render.Color = flagCfg.Render.Color
	}
	if set("start") {
		file.Render.Start = flagCfg.Render.Start
	}
	if set("end") {
		file.Render.End = flagCfg.Render.End
	}
}

func runGenerate(cmd *cobra.Command, file config.File, format string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	if err := file.Validate(); err != nil {
		return err
	}
	m := file.Maze

	mk, err := loadMask(m)
	if err != nil {
		return err
	}
	g, err := newGrid(m, mk)
	if err != nil {
		return err
	}
	logger.Debug("grid ready", "topology", g.Topology(), "rows", g.Rows(), "cols", g.Cols(), "cells", g.Len())

	prog := newProgress(logger)
	opts := append(generateOptions(m), generate.WithContext(ctx))
	if err := generate.GenerateByName(m.Algorithm, g, m.Seed, opts...); err != nil {
		return err
	}
	prog.done("maze generated", "alg", m.Algorithm, "seed", m.Seed, "links", g.LinkCount())

	if format == "" {
		format = formatText
		if g.Topology() != gridgraph.Rect {
			format = formatSummary
		}
	}
	out := cmd.OutOrStdout()
	switch format {
	case formatSummary:
		s, err := render.Summarize(g)
		if err != nil {
			return err
		}
		_, err = s.WriteTo(out)
		return err
	case formatText:
		ropts, err := renderOptions(g, file.Render)
		if err != nil {
			return err
		}
		return render.Text(out, g, ropts...)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// renderOptions resolves start and end cells and the overlays to draw.
func renderOptions(g *gridgraph.Grid, r config.Render) ([]render.Option, error) {
	if !r.Distances && !r.Path && r.Start == "" && r.End == "" {
		return []render.Option{render.WithColor(r.Color)}, nil
	}

	from, to, _, err := distances.Diameter(g)
	if err != nil {
		return nil, err
	}
	if r.Start != "" {
		if from, err = parseCell(g, r.Start); err != nil {
			return nil, err
		}
	}
	if r.End != "" {
		if to, err = parseCell(g, r.End); err != nil {
			return nil, err
		}
	}

	opts := []render.Option{render.WithMarkers(from, to), render.WithColor(r.Color)}
	d, err := distances.Compute(g, from)
	if err != nil {
		return nil, err
	}
	if r.Distances {
		opts = append(opts, render.WithDistances(d))
	}
	if r.Path {
		path, err := d.PathTo(to)
		if err != nil {
			return nil, err
		}
		opts = append(opts, render.WithPath(path))
	}
	return opts, nil
}
