// Package generate carves mazes into a gridgraph.Grid. Every algorithm
// produces a spanning tree over the included cells: connected, acyclic,
// with exactly N-1 links for N cells.
package generate

import (
	"context"
	"fmt"
	"math/rand"
	"slices"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

const methodGenerate = "Generate"

// carveFunc is the shared signature of every algorithm.
type carveFunc func(c *carver) error

var carvers = [...]carveFunc{
	BinaryTree:           binaryTree,
	Sidewinder:           sidewinder,
	AldousBroder:         aldousBroder,
	Wilson:               wilson,
	HuntAndKill:          huntAndKill,
	RecursiveBacktracker: recursiveBacktracker,
	Kruskal:              kruskal,
	Prim:                 prim,
}

// Generate carves a maze into g with algorithm alg, drawing randomness from
// a source seeded with seed (unless WithRand is given). The same seed and
// grid shape always produce the same links.
//
// g must have no links and its included cells must be connected. On any
// error the links added by this call are removed again, so g is left as it
// was. Errors:
//   - ErrGridNil, ErrUnknownAlgorithm, ErrOptionViolation,
//   - ErrGridNotEmpty, ErrDisconnectedGrid, ErrMaskUnsupported,
//   - ErrGenerationLimitExceeded, or the context error.
func Generate(alg Algorithm, g *gridgraph.Grid, seed int64, opts ...Option) error {
	if g == nil {
		return ErrGridNil
	}
	if !alg.valid() {
		return fmt.Errorf("%s: %w: %d", methodGenerate, ErrUnknownAlgorithm, int(alg))
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}
	if g.LinkCount() > 0 {
		return fmt.Errorf("%s %s: %d links present: %w", methodGenerate, alg, g.LinkCount(), ErrGridNotEmpty)
	}
	if regions := len(g.Regions()); regions > 1 {
		return fmt.Errorf("%s %s: %d regions: %w", methodGenerate, alg, regions, ErrDisconnectedGrid)
	}

	c := newCarver(g, seed, o)
	if err := carvers[alg](c); err != nil {
		c.rollback()
		return fmt.Errorf("%s %s: %w", methodGenerate, alg, err)
	}
	for _, l := range c.added {
		o.OnLink(l[0], l[1])
	}
	return nil
}

// GenerateByName resolves name with ParseAlgorithm and runs Generate.
func GenerateByName(name string, g *gridgraph.Grid, seed int64, opts ...Option) error {
	alg, err := ParseAlgorithm(name)
	if err != nil {
		return err
	}
	return Generate(alg, g, seed, opts...)
}

// ctxCheckEvery is the number of walk steps between context checks.
const ctxCheckEvery = 1 << 10

// carver holds the mutable state shared by all algorithms.
type carver struct {
	g     *gridgraph.Grid
	rng   *rand.Rand
	ctx   context.Context
	cells []gridgraph.Cell
	limit int
	steps int
	added [][2]gridgraph.Cell
	buf   []gridgraph.Cell
}

func newCarver(g *gridgraph.Grid, seed int64, o Options) *carver {
	rng := o.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(seed))
	}
	cells := slices.Collect(g.Cells())
	limit := o.StepLimit
	if limit < 0 {
		limit = DefaultStepLimit(len(cells), g.AdjacentPairs())
	}
	return &carver{
		g:     g,
		rng:   rng,
		ctx:   o.Ctx,
		cells: cells,
		limit: limit,
		added: make([][2]gridgraph.Cell, 0, len(cells)),
	}
}

// link opens a passage and journals it for rollback.
func (c *carver) link(a, b gridgraph.Cell) error {
	if err := c.g.Link(a, b); err != nil {
		return err
	}
	c.added = append(c.added, [2]gridgraph.Cell{a, b})
	return nil
}

// rollback removes every link added by this run, newest first.
func (c *carver) rollback() {
	for i := len(c.added) - 1; i >= 0; i-- {
		_ = c.g.Unlink(c.added[i][0], c.added[i][1])
	}
	c.added = c.added[:0]
}

// step counts one random-walk step against the limit and polls the context.
func (c *carver) step() error {
	c.steps++
	if c.limit > 0 && c.steps > c.limit {
		return fmt.Errorf("%w (%d steps)", ErrGenerationLimitExceeded, c.limit)
	}
	if c.steps%ctxCheckEvery == 0 {
		select {
		case <-c.ctx.Done():
			return c.ctx.Err()
		default:
		}
	}
	return nil
}

// pick returns a uniformly random element of s, which must be non-empty.
func (c *carver) pick(s []gridgraph.Cell) gridgraph.Cell {
	if len(s) == 1 {
		return s[0]
	}
	return s[c.rng.Intn(len(s))]
}

// neighbors returns the neighbours of x in a buffer reused across calls.
func (c *carver) neighbors(x gridgraph.Cell) []gridgraph.Cell {
	c.buf = c.g.AppendNeighbors(c.buf[:0], x)
	return c.buf
}

// filter keeps the elements of s for which keep is true, in place.
func filter(s []gridgraph.Cell, keep func(gridgraph.Cell) bool) []gridgraph.Cell {
	out := s[:0]
	for _, x := range s {
		if keep(x) {
			out = append(out, x)
		}
	}
	return out
}

// requireFull rejects masked grids for algorithms whose bias needs every position.
func (c *carver) requireFull() error {
	if c.g.Len() != c.g.Size() {
		return fmt.Errorf("%d of %d positions masked: %w", c.g.Size()-c.g.Len(), c.g.Size(), ErrMaskUnsupported)
	}
	return nil
}

// northOf and eastOf give the two directions of the scan algorithms.
// On polar grids north is inward and east is clockwise, except that the
// last cell of a ring does not wrap back to position 0.
func (c *carver) northOf(x gridgraph.Cell) (gridgraph.Cell, bool) {
	if c.g.Topology() == gridgraph.Polar {
		return c.g.NeighborAt(x, gridgraph.Inward)
	}
	return c.g.NeighborAt(x, gridgraph.North)
}

func (c *carver) eastOf(x gridgraph.Cell) (gridgraph.Cell, bool) {
	if c.g.Topology() == gridgraph.Polar {
		at, _ := c.g.Coord(x)
		if at.Col == c.g.RowLen(at.Row)-1 {
			return gridgraph.NoCell, false
		}
		return c.g.NeighborAt(x, gridgraph.Clockwise)
	}
	return c.g.NeighborAt(x, gridgraph.East)
}
