package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvmaze/generate"
	"github.com/katalvlaran/lvmaze/internal/config"
	"github.com/katalvlaran/lvmaze/internal/render"
)

// benchResult is the outcome of one generated maze.
type benchResult struct {
	elapsed  time.Duration
	deadEnds int
	diameter int
}

func newBenchCmd(root *rootFlags) *cobra.Command {
	var (
		flagCfg = config.Default()
		algs    []string
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare algorithms over batches of generated mazes",
		Long: `Bench generates runs mazes per algorithm on the configured grid,
seeding run i with seed+i, and prints the mean generation time, dead-end
count and diameter for each algorithm. Every maze is checked to be a
spanning tree.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := root.loadConfig()
			if err != nil {
				return err
			}
			overrideMaze(cmd, &file, flagCfg)
			if cmd.Flags().Changed("runs") {
				file.Bench.Runs = flagCfg.Bench.Runs
			}
			if cmd.Flags().Changed("workers") {
				file.Bench.Workers = flagCfg.Bench.Workers
			}
			if len(algs) > 0 {
				file.Bench.Algorithms = algs
			}
			return runBench(cmd, file)
		},
	}

	f := cmd.Flags()
	f.IntVar(&flagCfg.Maze.Rows, "rows", 0, "grid rows (default: mask rows, or 10)")
	f.IntVar(&flagCfg.Maze.Cols, "cols", 0, "grid columns (default: mask columns, or 10)")
	f.IntVar(&flagCfg.Maze.Rings, "rings", 0, "polar grid with this many rings")
	f.Int64VarP(&flagCfg.Maze.Seed, "seed", "s", flagCfg.Maze.Seed, "base seed")
	f.IntVar(&flagCfg.Maze.StepLimit, "step-limit", flagCfg.Maze.StepLimit, "random-walk step cap (0 = unlimited, -1 = derived)")
	f.StringVarP(&flagCfg.Maze.MaskFile, "mask", "m", "", "mask file (.png image or text)")
	f.StringSliceVarP(&algs, "algorithm", "a", nil, "algorithms to compare (default: all that fit the grid)")
	f.IntVarP(&flagCfg.Bench.Runs, "runs", "n", flagCfg.Bench.Runs, "mazes per algorithm")
	f.IntVarP(&flagCfg.Bench.Workers, "workers", "w", flagCfg.Bench.Workers, "concurrent generators")

	return cmd
}

func runBench(cmd *cobra.Command, file config.File) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	if err := file.Validate(); err != nil {
		return err
	}
	m, b := file.Maze, file.Bench

	mk, err := loadMask(m)
	if err != nil {
		return err
	}
	proto, err := newGrid(m, mk)
	if err != nil {
		return err
	}

	algs, err := benchAlgorithms(b.Algorithms, proto.Len() != proto.Size())
	if err != nil {
		return err
	}
	logger.Debug("bench plan", "algorithms", len(algs), "runs", b.Runs, "workers", b.Workers, "cells", proto.Len())

	prog := newProgress(logger)
	results := make([]benchResult, len(algs)*b.Runs)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(b.Workers)
	for i, alg := range algs {
		for run := 0; run < b.Runs; run++ {
			slot := i*b.Runs + run
			seed := m.Seed + int64(run)
			eg.Go(func() error {
				g := proto.Clone()
				start := time.Now()
				opts := append(generateOptions(m), generate.WithContext(ctx))
				if err := generate.Generate(alg, g, seed, opts...); err != nil {
					return fmt.Errorf("%s seed %d: %w", alg, seed, err)
				}
				elapsed := time.Since(start)
				if err := generate.Verify(g); err != nil {
					return fmt.Errorf("%s seed %d: %w", alg, seed, err)
				}
				s, err := render.Summarize(g)
				if err != nil {
					return err
				}
				results[slot] = benchResult{elapsed: elapsed, deadEnds: s.DeadEnds, diameter: s.Diameter}
				logger.Debug("maze done", "alg", alg, "seed", seed, "elapsed", elapsed, "dead_ends", s.DeadEnds)
				return nil
			})
		}
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	prog.done("bench finished", "mazes", len(results))

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tRUNS\tMEAN TIME\tDEAD ENDS\tDIAMETER")
	for i, alg := range algs {
		var total time.Duration
		var deadEnds, diameter int
		for _, r := range results[i*b.Runs : (i+1)*b.Runs] {
			total += r.elapsed
			deadEnds += r.deadEnds
			diameter += r.diameter
		}
		n := float64(b.Runs)
		fmt.Fprintf(tw, "%s\t%d\t%s\t%.1f\t%.1f\n", alg, b.Runs,
			(total / time.Duration(b.Runs)).Round(time.Microsecond),
			float64(deadEnds)/n, float64(diameter)/n)
	}
	return tw.Flush()
}

// benchAlgorithms resolves names, defaulting to every algorithm. Scan
// algorithms are skipped on masked grids unless named explicitly.
func benchAlgorithms(names []string, masked bool) ([]generate.Algorithm, error) {
	if len(names) == 0 {
		var out []generate.Algorithm
		for _, alg := range generate.Algorithms() {
			if masked && (alg == generate.BinaryTree || alg == generate.Sidewinder) {
				continue
			}
			out = append(out, alg)
		}
		return out, nil
	}
	out := make([]generate.Algorithm, 0, len(names))
	for _, name := range names {
		alg, err := generate.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		out = append(out, alg)
	}
	return out, nil
}
