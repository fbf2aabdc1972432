// Package generate implements randomized maze generators over a
// gridgraph.Grid.
//
// What:
//
//   - BinaryTree, Sidewinder: scan algorithms with a fixed north/east bias.
//     Unmasked grids only (rectangular or polar).
//   - AldousBroder, Wilson: random-walk algorithms producing uniform
//     spanning trees, bounded by a step limit.
//   - HuntAndKill, RecursiveBacktracker: random walks that never revisit,
//     giving long winding corridors.
//   - Kruskal, Prim: randomized minimum-spanning-tree constructions.
//
// Contract:
//
//   - Input: a grid with no links whose included cells are connected.
//   - Output: links forming a spanning tree (N-1 links, one component);
//     Verify checks it.
//   - Failure leaves the grid exactly as it was.
//
// Determinism:
//
//   - All randomness comes from one *rand.Rand per call, seeded from the
//     seed argument or passed with WithRand. Cells and neighbours are
//     visited in the grid's fixed order, so equal seeds give equal mazes.
//
// Options:
//
//   - WithStepLimit(n): cap walk steps (0 = unlimited, default DefaultStepLimit).
//   - WithContext(ctx): cancel long walks.
//   - WithOnLink(fn): observe committed links.
//   - WithRand(r): supply the RNG directly.
//
// Errors:
//
//   - ErrUnknownAlgorithm, ErrGenerationLimitExceeded, ErrGridNotEmpty,
//     ErrDisconnectedGrid, ErrMaskUnsupported, ErrOptionViolation, ErrGridNil.
//
// Usage:
//
//	g, _ := gridgraph.New(20, 30)
//	if err := generate.Generate(generate.Wilson, g, 42); err != nil {
//	    return err
//	}
package generate
