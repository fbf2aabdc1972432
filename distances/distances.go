// Package distances computes breadth-first hop counts over the links of a
// gridgraph.Grid and derives farthest cells, paths and the maze diameter.
package distances

import (
	"context"
	"fmt"

	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

const methodCompute = "Compute"

// ctxCheckEvery is the number of dequeued cells between context checks.
const ctxCheckEvery = 1 << 10

// walker encapsulates mutable BFS state.
type walker struct {
	g     *gridgraph.Grid
	opts  Options
	ctx   context.Context
	queue *queue.Queue[gridgraph.Cell]
	res   *Distances
	buf   []gridgraph.Cell
	steps int
}

// Compute runs a breadth-first search from source over the links of g.
// Only linked cells are traversable. Returns ErrGridNil,
// gridgraph.ErrInvalidCell for a source that is not an included cell,
// ErrOptionViolation for bad options, the context error, or any OnVisit error.
//
// Complexity: O(N·d) time, O(N) memory.
func Compute(g *gridgraph.Grid, source gridgraph.Cell, opts ...Option) (*Distances, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Contains(source) {
		return nil, fmt.Errorf("%s: source %d: %w", methodCompute, source, gridgraph.ErrInvalidCell)
	}

	dist := make([]int, g.Size())
	for i := range dist {
		dist[i] = Unreached
	}
	w := &walker{
		g:     g,
		opts:  o,
		ctx:   o.Ctx,
		queue: queue.New[gridgraph.Cell](),
		res: &Distances{
			grid:   g,
			source: source,
			dist:   dist,
			order:  make([]gridgraph.Cell, 0, g.Len()),
		},
	}

	w.enqueue(source, 0)
	if err := w.loop(); err != nil {
		return nil, err
	}
	return w.res, nil
}

// enqueue records c at distance d and queues it.
func (w *walker) enqueue(c gridgraph.Cell, d int) {
	w.res.dist[c] = d
	w.queue.Enqueue(c)
}

// loop processes the queue until empty, error, or cancellation. The
// context is polled before the first cell and then every ctxCheckEvery cells.
func (w *walker) loop() error {
	for !w.queue.Empty() {
		if w.steps%ctxCheckEvery == 0 {
			select {
			case <-w.ctx.Done():
				return w.ctx.Err()
			default:
			}
		}
		w.steps++

		c := w.queue.Dequeue()
		d := w.res.dist[c]
		w.res.order = append(w.res.order, c)
		if err := w.opts.OnVisit(c, d); err != nil {
			return fmt.Errorf("distances: OnVisit error at %d: %w", c, err)
		}
		if w.opts.MaxDepth > 0 && d >= w.opts.MaxDepth {
			continue
		}
		w.buf = w.g.AppendLinks(w.buf[:0], c)
		for _, n := range w.buf {
			if w.res.dist[n] == Unreached {
				w.enqueue(n, d+1)
			}
		}
	}
	return nil
}

// Grid returns the grid the distances were computed on.
func (d *Distances) Grid() *gridgraph.Grid { return d.grid }

// Source returns the cell the search started from.
func (d *Distances) Source() gridgraph.Cell { return d.source }

// Distance returns the hop count from the source to c. The boolean is
// false for unreached cells and for ids outside the grid.
func (d *Distances) Distance(c gridgraph.Cell) (int, bool) {
	if c < 0 || int(c) >= len(d.dist) || d.dist[c] == Unreached {
		return Unreached, false
	}
	return d.dist[c], true
}

// Reached returns the number of cells with a distance.
func (d *Distances) Reached() int { return len(d.order) }

// Order returns the reached cells in BFS visit order.
func (d *Distances) Order() []gridgraph.Cell {
	out := make([]gridgraph.Cell, len(d.order))
	copy(out, d.order)
	return out
}

// Max returns the largest distance from the source.
func (d *Distances) Max() int {
	_, m := d.Farthest()
	return m
}

// Farthest returns the reached cell with the largest distance from the
// source. Ties go to the first such cell in the grid's iteration order.
// Complexity: O(N).
func (d *Distances) Farthest() (gridgraph.Cell, int) {
	best, bestDist := d.source, 0
	for c := range d.grid.Cells() {
		if d.dist[c] > bestDist {
			best, bestDist = c, d.dist[c]
		}
	}
	return best, bestDist
}
