// Package generate provides the algorithm enum, tunable options and
// hooks for maze generation over a gridgraph.Grid.
package generate

import (
	"context"
	"fmt"
	"math"
	"math/bits"
	"math/rand"
	"strings"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// Algorithm selects a maze generation algorithm.
type Algorithm int

const (
	// BinaryTree links every cell north or east. Strong diagonal bias.
	BinaryTree Algorithm = iota
	// Sidewinder builds eastward runs and closes each run northwards.
	Sidewinder
	// AldousBroder carves a uniform spanning tree with an unbiased random walk.
	AldousBroder
	// Wilson carves a uniform spanning tree with loop-erased random walks.
	Wilson
	// HuntAndKill walks randomly and, when stuck, hunts for an unvisited
	// cell next to the maze.
	HuntAndKill
	// RecursiveBacktracker is a randomized depth-first search on an explicit stack.
	RecursiveBacktracker
	// Kruskal joins random adjacent pairs from different sets.
	Kruskal
	// Prim grows the maze from random cells on its frontier.
	Prim
)

var algorithmNames = [...]string{
	BinaryTree:           "binary-tree",
	Sidewinder:           "sidewinder",
	AldousBroder:         "aldous-broder",
	Wilson:               "wilson",
	HuntAndKill:          "hunt-and-kill",
	RecursiveBacktracker: "recursive-backtracker",
	Kruskal:              "kruskal",
	Prim:                 "prim",
}

// aliases maps short names accepted by ParseAlgorithm.
var aliases = map[string]Algorithm{
	"binary":      BinaryTree,
	"hunt-kill":   HuntAndKill,
	"backtracker": RecursiveBacktracker,
	"dfs":         RecursiveBacktracker,
	"ab":          AldousBroder,
}

// String returns the canonical algorithm name.
func (a Algorithm) String() string {
	if a.valid() {
		return algorithmNames[a]
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

func (a Algorithm) valid() bool {
	return a >= 0 && int(a) < len(algorithmNames)
}

// Algorithms returns every algorithm in declaration order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithmNames))
	for i := range out {
		out[i] = Algorithm(i)
	}
	return out
}

// ParseAlgorithm resolves a name to an Algorithm. Matching ignores case and
// treats '_' and ' ' like '-'. Returns ErrUnknownAlgorithm otherwise.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	for i, n := range algorithmNames {
		if n == key {
			return Algorithm(i), nil
		}
	}
	if a, ok := aliases[key]; ok {
		return a, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Option configures generation via functional arguments.
// Invalid values (e.g. a negative step limit) are recorded and surfaced as
// ErrOptionViolation when Generate runs.
type Option func(*Options)

// Options holds parameters and callbacks for a generation run.
type Options struct {
	// Ctx allows cancellation of the random walks.
	Ctx context.Context

	// StepLimit caps the random-walk steps of AldousBroder and Wilson.
	// Negative means "derive from the grid shape" (DefaultStepLimit);
	// 0 disables the cap.
	StepLimit int

	// OnLink is called once per link of a successful run, in carving order.
	OnLink func(a, b gridgraph.Cell)

	// rng, when set, replaces the source seeded from the seed argument.
	rng *rand.Rand

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a derived step limit
//   - a no-op OnLink hook.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		StepLimit: -1,
		OnLink:    func(gridgraph.Cell, gridgraph.Cell) {},
	}
}

// WithContext sets a context checked during random walks.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStepLimit caps the random-walk steps.
//
//	n > 0: at most n steps
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithStepLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: StepLimit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.StepLimit = n
	}
}

// WithOnLink registers a callback run for every committed link.
func WithOnLink(fn func(a, b gridgraph.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLink = fn
		}
	}
}

// WithRand provides an explicit RNG, ignoring the seed argument.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}
	return func(o *Options) {
		o.rng = r
	}
}

// DefaultStepLimit returns the walk budget used when no limit is set, for
// a grid of n cells with pairs adjacent cell pairs: 32·pairs·(n−1), at
// least minStepLimit, saturating at math.MaxInt.
//
// 2·pairs·(n−1) bounds the expected cover time of a random walk on any
// connected graph, and the expected total walk of Wilson's algorithm.
func DefaultStepLimit(n, pairs int) int {
	if n < 2 || pairs < 1 {
		return minStepLimit
	}
	hi, lo := bits.Mul64(uint64(pairs), uint64(n-1))
	if hi != 0 || lo > math.MaxInt/32 {
		return math.MaxInt
	}
	return max(32*int(lo), minStepLimit)
}

// minStepLimit is the smallest derived walk budget.
const minStepLimit = 4096
